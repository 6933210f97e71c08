package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults are optional settings read from a YAML file.
//
//	ignore_case: true
//	decompress: false
//	log_level: debug
//	log_format: json
type Defaults struct {
	// IgnoreCase enables case-insensitive search. It can only turn it on;
	// IGNORE_CASE still applies when this is false.
	IgnoreCase bool `yaml:"ignore_case"`

	// Decompress enables transparent gzip and zstd decoding of the input.
	Decompress bool `yaml:"decompress"`

	LogLevel  string `yaml:"log_level,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"`
}

// LoadDefaults reads and validates a defaults file. Unknown keys are errors.
func LoadDefaults(_ context.Context, path string) (*Defaults, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	d := DefaultDefaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return d, nil
}

// Validate normalizes and checks the logging settings.
func (d *Defaults) Validate() error {
	d.LogLevel = strings.ToLower(strings.TrimSpace(d.LogLevel))
	if d.LogLevel == "" {
		d.LogLevel = DefaultLogLevel
	}
	if !slices.Contains(LogLevels, d.LogLevel) {
		return fmt.Errorf("log_level: invalid value %q (must be one of %s)",
			d.LogLevel, strings.Join(LogLevels, ", "))
	}

	d.LogFormat = strings.ToLower(strings.TrimSpace(d.LogFormat))
	if d.LogFormat == "" {
		d.LogFormat = DefaultLogFormat
	}
	if !slices.Contains(LogFormats, d.LogFormat) {
		return fmt.Errorf("log_format: invalid value %q (must be one of %s)",
			d.LogFormat, strings.Join(LogFormats, ", "))
	}

	return nil
}
