package session

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoTrace is returned by Process when no trace file was added.
var ErrNoTrace = errors.New("no trace file added")

// ErrBusy is returned by Process when the session is already processing.
var ErrBusy = errors.New("session is already processing")

// UnsupportedFileError is returned by AddTraceFile for a file that is not a
// kernel event capture.
type UnsupportedFileError struct{ Path string }

func (e UnsupportedFileError) Error() string {
	return fmt.Sprintf("file %q is not a kernel event capture", e.Path)
}

// TraceLimitError is returned by AddTraceFile when a trace was already
// added. A session reads one trace at a time:
//
//		var limit session.TraceLimitError
//		if errors.As(err, &limit) {
//			s = session.New(opts)
//		}
type TraceLimitError struct{ Current string }

func (e TraceLimitError) Error() string {
	return fmt.Sprintf("session can only read one trace at a time; %q already added", e.Current)
}
