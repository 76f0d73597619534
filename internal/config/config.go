// Package config loads the configuration of the example programs.
//
// Configuration comes from an optional YAML or JSONC file; flags set on the
// command line override it.
package config

import (
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/tarusov/etwkernel/internal/capture"
)

// Format selects how decoded events are printed.
type Format string

const (
	// FormatJSON prints one JSON object per event.
	FormatJSON Format = "json"
	// FormatText prints one line per event.
	FormatText Format = "text"
	// FormatDump prints the full Go structure of each event.
	FormatDump Format = "dump"
)

// Config is the configuration of the tracer.
type Config struct {
	// Trace is the capture file to read.
	Trace string `yaml:"trace" json:"trace"`

	// LogLevel is a trace level name, see ParseTraceLevel.
	LogLevel string `yaml:"log_level" json:"log_level"`

	Format Format `yaml:"format" json:"format"`

	// Providers, Categories and Operations restrict the printed events.
	Providers  []string `yaml:"providers" json:"providers"`
	Categories []string `yaml:"categories" json:"categories"`
	Operations []string `yaml:"operations" json:"operations"`

	// Summary prints per-operation counts after the trace.
	Summary bool `yaml:"summary" json:"summary"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: TRACE_LEVEL_WARNING.String(),
		Format:   FormatJSON,
	}
}

// LoadFile loads the configuration at path over the defaults. Files ending
// in .json or .jsonc are read as JSON with comments, anything else as YAML.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, errors.WithMessagef(err, "config %s", path)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read config")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(jsonc.ToJSON(data), c); err != nil {
			return errors.Wrap(err, "failed to parse config")
		}
	default:
		if err := yaml.Unmarshal(data, c); err != nil {
			return errors.Wrap(err, "failed to parse config")
		}
	}
	return nil
}

// Validate checks the values of c.
func (c *Config) Validate() error {
	if _, err := ParseTraceLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.Format {
	case FormatJSON, FormatText, FormatDump:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}

	if c.Trace == "" {
		return errors.New("no trace file given")
	}
	if _, ok := capture.CompressionForPath(c.Trace); !ok {
		return errors.Errorf("%s: not a capture file", c.Trace)
	}

	return nil
}

// Level returns the parsed LogLevel, or the default level when it does not
// parse.
func (c *Config) Level() TraceLevel {
	l, err := ParseTraceLevel(c.LogLevel)
	if err != nil {
		return TRACE_LEVEL_WARNING
	}
	return l
}
