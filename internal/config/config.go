// Package config holds the settings of the gcfconv converter.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names an input document format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

var extFormats = map[string]Format{
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
	".json": FormatJSON,
}

// Config describes one conversion run.
type Config struct {
	Input    string // source document
	Output   string // destination file; empty means standard output
	Format   Format // source format; empty means infer from Input
	Check    bool   // compare with Output instead of writing it
	Watch    bool   // convert again whenever Input changes
	LogLevel string
}

var (
	ErrNoInput       = errors.New("config: input file is required")
	ErrUnknownFormat = errors.New("config: unknown input format")
)

// ResolveFormat returns the configured format, or the one implied by the
// input file extension.
func (c Config) ResolveFormat() (Format, error) {
	if c.Format != "" {
		f := Format(strings.ToLower(string(c.Format)))
		switch f {
		case FormatYAML, FormatTOML, FormatJSON:
			return f, nil
		}
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	if f, ok := extFormats[strings.ToLower(filepath.Ext(c.Input))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: cannot infer from %q, use --from", ErrUnknownFormat, c.Input)
}

// Validate reports the first inconsistency in c.
func (c Config) Validate() error {
	if c.Input == "" {
		return ErrNoInput
	}
	if _, err := c.ResolveFormat(); err != nil {
		return err
	}
	if c.Check && c.Output == "" {
		return errors.New("config: --check needs --output")
	}
	if c.Check && c.Watch {
		return errors.New("config: --check and --watch cannot be combined")
	}
	if c.Output != "" && filepath.Clean(c.Output) == filepath.Clean(c.Input) {
		return errors.New("config: output would overwrite input")
	}
	return nil
}
