// Package etw decodes the raw payloads of NT Kernel Logger events and
// replays recorded kernel traces as decoded events.
package etw

import (
	"context"

	"go.uber.org/zap"

	"github.com/tarusov/etwkernel/internal/kernel"
	"github.com/tarusov/etwkernel/internal/session"
)

type (
	// Record is a decoded kernel payload: operation name, category name
	// and the fields in wire order.
	Record = kernel.Record
	// Event is a decoded record with its header and timestamp.
	Event = session.Event
	// Callback receives the events of a session.
	Callback = session.Callback
	// Stats counts what a session did with the records of its trace.
	Stats = session.Stats
	// FamilyInfo describes the decodable events of one kernel provider.
	FamilyInfo = kernel.FamilyInfo
)

// Errors returned by sessions and decoding.
var (
	ErrUnrecognized = kernel.ErrUnrecognized
	ErrNoTrace      = session.ErrNoTrace
	ErrBusy         = session.ErrBusy
)

// Decode decodes a kernel event payload. It reports false when the event is
// unknown or the payload is too short for its layout.
func Decode(providerID string, version, opcode uint8, is64 bool, payload []byte) (Record, bool) {
	return kernel.Decode(providerID, version, opcode, is64, payload)
}

// DecodeRecord is Decode with the reason of a failure.
func DecodeRecord(providerID string, version, opcode uint8, is64 bool, payload []byte) (Record, error) {
	return kernel.DecodeRecord(providerID, version, opcode, is64, payload)
}

// Families lists every decodable kernel event.
func Families() []FamilyInfo {
	return kernel.Families()
}

// Session interface defines are module.
type Session interface {
	AddCallback(cb Callback)
	Process(ctx context.Context, cb Callback) error
	Stats() Stats
}

// SessionOptions defines session options.
type SessionOptions struct {
	// TraceFile is the capture to read.
	TraceFile string

	Providers  []string
	Categories []string
	Operations []string

	Logger *zap.Logger
}

// NewSession creates a session reading opts.TraceFile.
func NewSession(opts *SessionOptions) (Session, error) {
	if opts == nil {
		opts = &SessionOptions{}
	}

	s, err := session.New(&session.Options{
		Providers:  opts.Providers,
		Categories: opts.Categories,
		Operations: opts.Operations,
		Logger:     opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	if err := s.AddTraceFile(opts.TraceFile); err != nil {
		return nil, err
	}
	return s, nil
}

// JSONCallback adapts fn to a Callback receiving each event as JSON.
func JSONCallback(fn func([]byte)) Callback {
	return session.JSONCallback(fn)
}
