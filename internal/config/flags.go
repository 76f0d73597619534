package config

import (
	"github.com/spf13/pflag"
)

// Flags holds the command line flags that override a Config.
type Flags struct {
	configPath string
	cfg        Config
	fs         *pflag.FlagSet
}

// AddFlags registers the configuration flags on fs.
func (f *Flags) AddFlags(fs *pflag.FlagSet) {
	def := Default()

	f.fs = fs
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML or JSONC configuration file")
	fs.StringVar(&f.cfg.Trace, "trace", "", "capture file to read (.etwcap, .etwcap.lz4, .etwcap.zst)")
	fs.StringVar(&f.cfg.LogLevel, "log-level", def.LogLevel, "log level: critical, error, warning, information or verbose")
	fs.StringVar((*string)(&f.cfg.Format), "format", string(def.Format), "event output format: json, text or dump")
	fs.StringSliceVar(&f.cfg.Providers, "provider", nil, "only events of these providers (names or GUIDs)")
	fs.StringSliceVar(&f.cfg.Categories, "category", nil, "only events of these categories")
	fs.StringSliceVar(&f.cfg.Operations, "operation", nil, "only events of these operations")
	fs.BoolVar(&f.cfg.Summary, "summary", false, "print per-operation counts at the end")
}

// Config returns the configuration file named by --config, or the
// defaults, with every flag set on the command line applied over it. It
// must be called after fs.Parse.
func (f *Flags) Config() (*Config, error) {
	cfg := Default()
	if f.configPath != "" {
		loaded, err := LoadFile(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if f.fs == nil {
		return cfg, nil
	}
	if f.fs.Changed("trace") {
		cfg.Trace = f.cfg.Trace
	}
	if f.fs.Changed("log-level") {
		cfg.LogLevel = f.cfg.LogLevel
	}
	if f.fs.Changed("format") {
		cfg.Format = f.cfg.Format
	}
	if f.fs.Changed("provider") {
		cfg.Providers = f.cfg.Providers
	}
	if f.fs.Changed("category") {
		cfg.Categories = f.cfg.Categories
	}
	if f.fs.Changed("operation") {
		cfg.Operations = f.cfg.Operations
	}
	if f.fs.Changed("summary") {
		cfg.Summary = f.cfg.Summary
	}

	return cfg, nil
}
