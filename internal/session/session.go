// Package session turns a kernel event capture into decoded events.
package session

import (
	"context"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/tarusov/etwkernel/internal/capture"
	"github.com/tarusov/etwkernel/internal/cursor"
	"github.com/tarusov/etwkernel/internal/kernel"
	"github.com/tarusov/etwkernel/internal/provider"
)

// Options restrict which events a session delivers. Empty lists accept
// everything. Names are matched ignoring case.
type Options struct {
	// Providers are kernel provider names or GUIDs, e.g. "Process".
	Providers []string
	// Categories are decoded category names, e.g. "FileIO".
	Categories []string
	// Operations are decoded operation names, e.g. "CSwitch".
	Operations []string

	Logger *zap.Logger
}

// Stats counts what a session did with the records of its trace.
type Stats struct {
	Records      int    `json:"records"`
	Decoded      int    `json:"decoded"`
	Filtered     int    `json:"filtered"`
	Unrecognized int    `json:"unrecognized"`
	Truncated    int    `json:"truncated"`
	PayloadBytes uint64 `json:"payload_bytes"`

	First time.Time `json:"first"`
	Last  time.Time `json:"last"`
}

// Skipped returns the number of records that could not be decoded.
func (s Stats) Skipped() int { return s.Unrecognized + s.Truncated }

// Session decodes the kernel events of a single capture file.
type Session struct {
	trace      string
	providers  map[provider.GUID]bool
	categories map[string]bool
	operations map[string]bool
	callbacks  []Callback
	logger     *zap.Logger

	running atomic.Bool
	mu      sync.Mutex
	stats   Stats
}

// New creates a session. It fails if a provider name cannot be resolved.
func New(opts *Options) (*Session, error) {
	if opts == nil {
		opts = &Options{}
	}

	s := &Session{
		categories: lowerSet(opts.Categories),
		operations: lowerSet(opts.Operations),
		logger:     opts.Logger,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}

	if len(opts.Providers) > 0 {
		s.providers = make(map[provider.GUID]bool, len(opts.Providers))
		for _, name := range opts.Providers {
			guid, err := provider.ParseName(name)
			if err != nil {
				return nil, errors.Wrap(err, "failed to parse provider name")
			}
			s.providers[guid] = true
		}
	}

	return s, nil
}

func lowerSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = true
	}
	return set
}

// AddTraceFile sets the capture the session reads. Only one trace can be
// added, and its name must carry a capture extension.
func (s *Session) AddTraceFile(path string) error {
	if s.trace != "" {
		s.logger.Error("session can only read one trace at a time",
			zap.String("current", s.trace), zap.String("rejected", path))
		return TraceLimitError{Current: s.trace}
	}
	if _, ok := capture.CompressionForPath(path); !ok {
		return UnsupportedFileError{Path: path}
	}
	s.trace = path
	return nil
}

// AddCallback registers cb to receive every event of later Process calls,
// before the callback passed to Process.
func (s *Session) AddCallback(cb Callback) {
	s.callbacks = append(s.callbacks, cb)
}

// Stats returns the counters of the current or last Process call.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Process reads the trace and passes every decoded event to the registered
// callbacks and then cb, synchronously and in trace order. Records that do
// not decode are skipped. Process stops early when ctx is done.
func (s *Session) Process(ctx context.Context, cb Callback) (err error) {
	if s.trace == "" {
		return ErrNoTrace
	}
	if !s.running.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.running.Store(false)

	r, err := capture.Open(s.trace)
	if err != nil {
		return errors.Wrap(err, "failed to open trace")
	}
	defer func() {
		err = multierr.Append(err, r.Close())
	}()

	s.mu.Lock()
	s.stats = Stats{}
	s.mu.Unlock()

	h := r.Header()
	s.logger.Debug("processing trace",
		zap.String("path", s.trace),
		zap.Stringer("compression", r.Compression()),
		zap.String("logger", h.LoggerName),
		zap.Uint64("perf_freq", h.PerfFreq),
		zap.Time("start", FiletimeToTime(h.StartTime)))

	deliver := MultiCallback(append(append([]Callback{}, s.callbacks...), cb)...)
	clk := newClock(h)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "failed to read trace")
		}

		if e := s.decode(clk, &rec); e != nil {
			deliver(e)
		}
	}

	stats := s.Stats()
	s.logger.Info("trace processed",
		zap.String("path", s.trace),
		zap.Int("records", stats.Records),
		zap.Int("decoded", stats.Decoded),
		zap.Int("skipped", stats.Skipped()),
		zap.Int("filtered", stats.Filtered))

	return nil
}

// decode converts one record. It returns nil when the record is skipped.
func (s *Session) decode(clk *clock, rec *capture.Record) *Event {
	// Every record moves the clock, decodable or not, so that the first
	// record of the trace anchors it.
	ts := clk.time(rec.TimeStamp)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.Records++
	s.stats.PayloadBytes += uint64(len(rec.Payload))

	if s.providers != nil && !s.providers[rec.ProviderID] {
		s.stats.Filtered++
		return nil
	}

	decoded, err := kernel.DecodeRecord(rec.ProviderID.String(), rec.Version, rec.Opcode, rec.Is64(), rec.Payload)
	if err != nil {
		if errors.Is(err, cursor.ErrTruncated) {
			s.stats.Truncated++
		} else {
			s.stats.Unrecognized++
		}
		s.logger.Debug("skipping record",
			zap.Stringer("provider", rec.ProviderID),
			zap.Uint8("version", rec.Version),
			zap.Uint8("opcode", rec.Opcode),
			zap.Bool("is64", rec.Is64()),
			zap.Int("size", len(rec.Payload)),
			zap.Error(err))
		return nil
	}

	if s.categories != nil && !s.categories[strings.ToLower(decoded.Category)] ||
		s.operations != nil && !s.operations[strings.ToLower(decoded.Operation)] {
		s.stats.Filtered++
		return nil
	}

	s.stats.Decoded++
	if s.stats.First.IsZero() {
		s.stats.First = ts
	}
	s.stats.Last = ts

	src := EventHeader{
		Descriptor:      EventDescriptor{Version: rec.Version, OpCode: rec.Opcode},
		ThreadID:        rec.ThreadID,
		ProcessID:       rec.ProcessID,
		ProcessorNumber: rec.ProcessorNumber,
		RawTimeStamp:    rec.TimeStamp,
		ProviderID:      rec.ProviderID,
		Flags:           rec.Flags,
	}

	return &Event{
		Timestamp: ts,
		Header:    newHeader(decoded.Operation, decoded.Category, &src),
		Payload:   decoded.Fields,
		Source:    src,
	}
}
