// Package kernel decodes the raw payloads of NT Kernel Logger events.
//
// Events are dispatched on provider GUID, opcode and version. Each version
// of each event is described by a layout: the ordered list of fields the
// kernel wrote for it. Pointer-sized fields take their width from the
// trace, never from the host.
package kernel

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/tarusov/etwkernel/internal/fields"
	"github.com/tarusov/etwkernel/internal/provider"
	"github.com/tarusov/etwkernel/value"
)

// ErrUnrecognized is returned for a provider, opcode or version with no
// known layout.
var ErrUnrecognized = errors.New("event not recognized")

// Record is a decoded event payload.
type Record struct {
	Operation string
	Category  string
	Fields    *value.Struct
}

// versions maps an event version to its layout.
type versions map[uint8]layout

type operation struct {
	name     string
	versions versions
}

// family groups the events of one provider under a category name.
type family struct {
	category string
	provider provider.GUID
	ops      map[uint8]operation
}

func newFamily(category string, g provider.GUID) *family {
	return &family{category: category, provider: g, ops: make(map[uint8]operation)}
}

// op registers one opcode. Registering an opcode twice is a programming
// error in the tables below.
func (f *family) op(opcode uint8, name string, v versions) *family {
	if _, ok := f.ops[opcode]; ok {
		panic("kernel: duplicate opcode " + name + " in " + f.category)
	}
	f.ops[opcode] = operation{name: name, versions: v}
	return f
}

// families is ordered; when two families share a provider the first one
// owns it.
//
//nolint:gochecknoglobals
var families = []*family{
	eventTraceEvents,
	imageEvents,
	perfInfoEvents,
	processEvents,
	threadEvents,
	tcpIPEvents,
	registryEvents,
	fileIOEvents,
	diskIOEvents,
	stackWalkEvents,
	pageFaultEvents,
}

//nolint:gochecknoglobals
var byProvider = func() map[string]*family {
	m := make(map[string]*family, len(families))
	for _, f := range families {
		key := f.provider.String()
		if _, ok := m[key]; !ok {
			m[key] = f
		}
	}
	return m
}()

// Decode decodes payload as the event identified by providerID, version
// and opcode. is64 selects 8-byte pointer-sized fields. It reports false
// when the event is not recognized or the payload is too short for its
// layout. Bytes past the end of the layout are ignored.
func Decode(providerID string, version, opcode uint8, is64 bool, payload []byte) (Record, bool) {
	r, err := DecodeRecord(providerID, version, opcode, is64, payload)
	if err != nil {
		return Record{}, false
	}
	return r, true
}

// DecodeRecord is Decode reporting why a record could not be decoded. The
// error wraps ErrUnrecognized or cursor.ErrTruncated.
func DecodeRecord(providerID string, version, opcode uint8, is64 bool, payload []byte) (Record, error) {
	f, ok := byProvider[strings.ToUpper(providerID)]
	if !ok {
		return Record{}, errors.WithMessagef(ErrUnrecognized, "provider %s", providerID)
	}

	op, ok := f.ops[opcode]
	if !ok {
		return Record{}, errors.WithMessagef(ErrUnrecognized, "%s opcode %d", f.category, opcode)
	}

	l, ok := op.versions[version]
	if !ok {
		return Record{}, errors.WithMessagef(ErrUnrecognized, "%s/%s version %d", f.category, op.name, version)
	}

	d := fields.NewDecoder(payload, is64)
	l.decode(d)
	out, err := d.Result()
	if err != nil {
		return Record{}, errors.WithMessagef(err, "%s/%s version %d", f.category, op.name, version)
	}

	return Record{Operation: op.name, Category: f.category, Fields: out}, nil
}
