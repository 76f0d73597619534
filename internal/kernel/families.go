package kernel

import (
	"slices"

	"github.com/tarusov/etwkernel/internal/provider"
)

// FieldInfo describes one top-level field of a layout.
type FieldInfo struct {
	Name string
	Type string
}

// VersionInfo lists the fields of one event version.
type VersionInfo struct {
	Version uint8
	Fields  []FieldInfo
}

// OperationInfo describes a decodable opcode.
type OperationInfo struct {
	Opcode   uint8
	Name     string
	Versions []VersionInfo
}

// FamilyInfo describes every decodable event of one provider.
type FamilyInfo struct {
	Category   string
	Provider   provider.GUID
	Operations []OperationInfo
}

// Families returns the decodable events, ordered by family, then opcode,
// then version. The result is a copy; callers may modify it.
func Families() []FamilyInfo {
	out := make([]FamilyInfo, 0, len(families))
	for _, f := range families {
		fi := FamilyInfo{Category: f.category, Provider: f.provider}

		opcodes := make([]uint8, 0, len(f.ops))
		for opcode := range f.ops {
			opcodes = append(opcodes, opcode)
		}
		slices.Sort(opcodes)

		for _, opcode := range opcodes {
			op := f.ops[opcode]
			oi := OperationInfo{Opcode: opcode, Name: op.name}

			vs := make([]uint8, 0, len(op.versions))
			for v := range op.versions {
				vs = append(vs, v)
			}
			slices.Sort(vs)

			for _, v := range vs {
				oi.Versions = append(oi.Versions, VersionInfo{Version: v, Fields: op.versions[v].info()})
			}
			fi.Operations = append(fi.Operations, oi)
		}
		out = append(out, fi)
	}
	return out
}
