package config

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// TraceLevel names log verbosity the way ETW names trace levels. Higher
// levels imply that you get lower levels as well.
type TraceLevel uint8

//nolint:golint,stylecheck // We keep original names to underline that it's an external constants.
const (
	TRACE_LEVEL_CRITICAL    = TraceLevel(1)
	TRACE_LEVEL_ERROR       = TraceLevel(2)
	TRACE_LEVEL_WARNING     = TraceLevel(3)
	TRACE_LEVEL_INFORMATION = TraceLevel(4)
	TRACE_LEVEL_VERBOSE     = TraceLevel(5)
)

// ParseTraceLevel returns the trace level named v. zap level names are
// accepted too.
func ParseTraceLevel(v string) (TraceLevel, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "information", "info", "":
		return TRACE_LEVEL_INFORMATION, nil
	case "verbose", "debug":
		return TRACE_LEVEL_VERBOSE, nil
	case "warning", "warn":
		return TRACE_LEVEL_WARNING, nil
	case "error":
		return TRACE_LEVEL_ERROR, nil
	case "critical", "dpanic", "panic", "fatal":
		return TRACE_LEVEL_CRITICAL, nil
	default:
		return 0, errors.Errorf("unknown trace level %q", v)
	}
}

func (l TraceLevel) String() string {
	switch l {
	case TRACE_LEVEL_CRITICAL:
		return "critical"
	case TRACE_LEVEL_ERROR:
		return "error"
	case TRACE_LEVEL_WARNING:
		return "warning"
	case TRACE_LEVEL_INFORMATION:
		return "information"
	case TRACE_LEVEL_VERBOSE:
		return "verbose"
	default:
		return "unknown"
	}
}

// ZapLevel returns the lowest zap level logged at l.
func (l TraceLevel) ZapLevel() zapcore.Level {
	switch l {
	case TRACE_LEVEL_CRITICAL:
		return zapcore.DPanicLevel
	case TRACE_LEVEL_ERROR:
		return zapcore.ErrorLevel
	case TRACE_LEVEL_WARNING:
		return zapcore.WarnLevel
	case TRACE_LEVEL_VERBOSE:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
