package capture

import (
	"bytes"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Reader reads records from a capture.
type Reader struct {
	header      Header
	compression Compression
	dec         *cbor.Decoder
	closers     []io.Closer
	count       int
}

// NewReader reads the capture preamble and header from r. Closing the
// reader does not close r.
func NewReader(r io.Reader) (*Reader, error) {
	preamble := make([]byte, len(Magic)+1)
	if _, err := io.ReadFull(r, preamble); err != nil {
		return nil, errors.Wrap(err, "failed to read capture preamble")
	}
	if !bytes.Equal(preamble[:len(Magic)], []byte(Magic)) {
		return nil, errors.Errorf("not a capture: bad magic %q", preamble[:len(Magic)])
	}

	rd := &Reader{compression: Compression(preamble[len(Magic)])}

	var body io.Reader
	switch rd.compression {
	case CompressionNone:
		body = r
	case CompressionLZ4:
		body = lz4.NewReader(r)
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create zstd reader")
		}
		rd.closers = append(rd.closers, closerFunc(func() error {
			zr.Close()
			return nil
		}))
		body = zr
	default:
		return nil, errors.Errorf("unsupported capture compression %s", rd.compression)
	}

	rd.dec = decMode.NewDecoder(body)
	if err := rd.dec.Decode(&rd.header); err != nil {
		_ = rd.Close()
		return nil, errors.Wrap(err, "failed to decode capture header")
	}
	if err := rd.header.Validate(); err != nil {
		_ = rd.Close()
		return nil, err
	}

	return rd, nil
}

// Open opens the capture file at path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open capture")
	}

	rd, err := NewReader(f)
	if err != nil {
		return nil, multierr.Append(errors.WithMessagef(err, "capture %s", path), f.Close())
	}
	rd.closers = append(rd.closers, f)

	return rd, nil
}

// Header returns the capture header.
func (r *Reader) Header() Header { return r.header }

// Compression returns the compression of the record stream.
func (r *Reader) Compression() Compression { return r.compression }

// Count returns the number of records read so far.
func (r *Reader) Count() int { return r.count }

// Next returns the next record. It returns io.EOF after the last one.
func (r *Reader) Next() (Record, error) {
	var rec Record
	if err := r.dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, errors.Wrapf(err, "failed to decode record %d", r.count)
	}
	r.count++
	return rec, nil
}

// Close releases the decompressor and, for Open, the file.
func (r *Reader) Close() error {
	var err error
	for _, c := range r.closers {
		err = multierr.Append(err, c.Close())
	}
	r.closers = nil
	return err
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
