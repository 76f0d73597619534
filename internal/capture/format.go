// Package capture reads and writes kernel event captures: the raw records a
// trace consumer saw, with enough of the trace header to decode and time
// them later.
//
// A capture file is the magic string, one compression byte, then a CBOR
// sequence (RFC 8742) compressed as the byte says. The first item of the
// sequence is a Header, every following item is a Record.
package capture

import (
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"

	"github.com/tarusov/etwkernel/internal/provider"
)

// Magic opens every capture file.
const Magic = "ETWKCAP1"

// Extension is the file extension of an uncompressed capture.
const Extension = ".etwcap"

// Compression identifies how the CBOR sequence of a capture is compressed.
// Values are stored in files; do not renumber.
type Compression uint8

const (
	CompressionNone Compression = 0
	CompressionLZ4  Compression = 1
	CompressionZstd Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

// ParseCompression parses the name returned by Compression.String.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, errors.Errorf("unknown compression: %q", name)
	}
}

// Extension returns the file extension for captures compressed with c.
func (c Compression) Extension() string {
	switch c {
	case CompressionLZ4:
		return Extension + ".lz4"
	case CompressionZstd:
		return Extension + ".zst"
	default:
		return Extension
	}
}

// CompressionForPath reports the compression implied by the extension of
// path, and false when path is not a capture file name.
func CompressionForPath(path string) (Compression, bool) {
	lower := strings.ToLower(path)
	for _, c := range []Compression{CompressionLZ4, CompressionZstd, CompressionNone} {
		if strings.HasSuffix(lower, c.Extension()) {
			return c, true
		}
	}
	return 0, false
}

// Flag64BitHeader is EVENT_HEADER_FLAG_64_BIT_HEADER: the event was logged
// by a 64-bit kernel and its pointer-sized fields are 8 bytes wide.
const Flag64BitHeader = 0x0020

// Header carries the TRACE_LOGFILE_HEADER values needed after capture.
type Header struct {
	// StartTime is the trace start in FILETIME units.
	StartTime uint64 `cbor:"1,keyasint"`
	// PerfFreq is the frequency of the raw record timestamps, in Hz.
	PerfFreq    uint64 `cbor:"2,keyasint"`
	PointerSize uint32 `cbor:"3,keyasint"`
	BootTime    uint64 `cbor:"4,keyasint,omitempty"`
	LoggerName  string `cbor:"5,keyasint,omitempty"`
}

// Validate reports whether the header can be used to time records.
func (h Header) Validate() error {
	if h.PerfFreq == 0 {
		return errors.New("header: zero performance counter frequency")
	}
	if h.PointerSize != 0 && h.PointerSize != 4 && h.PointerSize != 8 {
		return errors.Errorf("header: invalid pointer size %d", h.PointerSize)
	}
	return nil
}

// Record is one raw event as delivered by the trace consumer.
type Record struct {
	ProviderID      provider.GUID `cbor:"1,keyasint"`
	Version         uint8         `cbor:"2,keyasint"`
	Opcode          uint8         `cbor:"3,keyasint"`
	Flags           uint16        `cbor:"4,keyasint"`
	ProcessID       uint32        `cbor:"5,keyasint"`
	ThreadID        uint32        `cbor:"6,keyasint"`
	ProcessorNumber uint8         `cbor:"7,keyasint"`
	// TimeStamp is the raw performance counter value.
	TimeStamp uint64 `cbor:"8,keyasint"`
	Payload   []byte `cbor:"9,keyasint"`
}

// Is64 reports whether the record comes from a 64-bit kernel.
func (r *Record) Is64() bool {
	return r.Flags&Flag64BitHeader != 0
}

//nolint:gochecknoglobals
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Provider GUIDs travel in their canonical text form.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("capture: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("capture: CBOR decoder initialization failed: " + err.Error())
	}
}
