package provider

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// GUID is a Go-copy of windows GUID struct.
// See: https://docs.microsoft.com/en-us/windows/win32/api/guiddef/ns-guiddef-guid.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// String renders the GUID the way the kernel decoder keys its providers:
// uppercase, hyphenated, no braces.
func (g GUID) String() string {
	return fmt.Sprintf("%08X-%04X-%04X-%02X%02X-%02X%02X%02X%02X%02X%02X",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}

// IsZero reports whether g is the null GUID.
func (g GUID) IsZero() bool {
	return g == GUID{}
}

func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := ParseGUID(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// FromUUID converts the RFC 4122 byte order of u into GUID fields.
func FromUUID(u uuid.UUID) GUID {
	var g GUID
	g.Data1 = binary.BigEndian.Uint32(u[0:4])
	g.Data2 = binary.BigEndian.Uint16(u[4:6])
	g.Data3 = binary.BigEndian.Uint16(u[6:8])
	copy(g.Data4[:], u[8:16])
	return g
}

// ParseGUID return guid from string.
func ParseGUID(s string) (GUID, error) {
	switch len(s) {
	// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
	case 36:

	// {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
	case 36 + 2:
		if s[0] != '{' || s[37] != '}' {
			return GUID{}, errors.Errorf("invalid guid format: %q", s)
		}
	default:
		return GUID{}, errors.Errorf("invalid guid length: %d", len(s))
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, errors.Wrap(err, "failed to parse guid")
	}

	return FromUUID(u), nil
}

// ParseName converts a kernel provider name or a GUID string into a guid.
func ParseName(providerName string) (GUID, error) {
	providerName = strings.TrimSpace(providerName)

	if strings.HasPrefix(providerName, "{") || len(providerName) == 36 {
		return ParseGUID(providerName)
	}

	p, ok := LookupName(providerName)
	if !ok {
		return GUID{}, errors.Errorf("unknown provider name: %q", providerName)
	}

	return p.GUID, nil
}
