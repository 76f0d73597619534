package capture

import (
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Writer writes records to a capture. Records are buffered by the
// compressor; Close must be called to complete the capture.
type Writer struct {
	enc     *cbor.Encoder
	closers []io.Closer
	count   int
}

// NewWriter writes the capture preamble and h to w. Closing the writer
// flushes the compressor but does not close w.
func NewWriter(w io.Writer, c Compression, h Header) (*Writer, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	if _, err := io.WriteString(w, Magic); err != nil {
		return nil, errors.Wrap(err, "failed to write capture preamble")
	}
	if _, err := w.Write([]byte{byte(c)}); err != nil {
		return nil, errors.Wrap(err, "failed to write capture preamble")
	}

	wr := &Writer{}

	var body io.Writer
	switch c {
	case CompressionNone:
		body = w
	case CompressionLZ4:
		lw := lz4.NewWriter(w)
		wr.closers = append(wr.closers, lw)
		body = lw
	case CompressionZstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create zstd writer")
		}
		wr.closers = append(wr.closers, zw)
		body = zw
	default:
		return nil, errors.Errorf("unsupported capture compression %s", c)
	}

	wr.enc = encMode.NewEncoder(body)
	if err := wr.enc.Encode(h); err != nil {
		return nil, multierr.Append(errors.Wrap(err, "failed to encode capture header"), wr.Close())
	}

	return wr, nil
}

// Create creates a capture file at path, compressed according to the
// path's extension.
func Create(path string, h Header) (*Writer, error) {
	c, ok := CompressionForPath(path)
	if !ok {
		return nil, errors.Errorf("%s: not a capture file name", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create capture")
	}

	wr, err := NewWriter(f, c, h)
	if err != nil {
		return nil, multierr.Append(err, f.Close())
	}
	wr.closers = append(wr.closers, f)

	return wr, nil
}

// Write appends rec to the capture.
func (w *Writer) Write(rec *Record) error {
	if err := w.enc.Encode(rec); err != nil {
		return errors.Wrapf(err, "failed to encode record %d", w.count)
	}
	w.count++
	return nil
}

// Count returns the number of records written.
func (w *Writer) Count() int { return w.count }

// Close flushes the compressor and, for Create, closes the file.
func (w *Writer) Close() error {
	var err error
	for _, c := range w.closers {
		err = multierr.Append(err, c.Close())
	}
	w.closers = nil
	return err
}
