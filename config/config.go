// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads window and input settings from TOML or YAML
// files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/nodens/Rack/io/input"
)

var (
	// ErrFormat is returned for files with an unsupported extension.
	ErrFormat = errors.New("config: unsupported format")
	// ErrInvalid is returned for settings outside their valid range.
	ErrInvalid = errors.New("config: invalid setting")
)

// Config holds the settings of a window.
type Config struct {
	Window Window `toml:"window" yaml:"window"`
	Input  Input  `toml:"input" yaml:"input"`
	Trace  Trace  `toml:"trace" yaml:"trace"`
}

// Window describes the initial platform window.
type Window struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
}

// Input tunes input routing.
type Input struct {
	// DoubleClick is the maximum interval between the presses of a
	// double click.
	DoubleClick Duration `toml:"double_click" yaml:"double_click"`
}

// Trace configures recording of window input.
type Trace struct {
	// Path is the file input is recorded to. Empty disables recording.
	Path string `toml:"path" yaml:"path,omitempty"`
}

// Duration is a time.Duration written as a string such as "300ms".
type Duration time.Duration

// Default returns the default configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:  "Rack",
			Width:  1024,
			Height: 768,
		},
		Input: Input{
			DoubleClick: Duration(input.DefaultDoubleClick),
		},
	}
}

// Load reads the configuration at path on top of the defaults. The
// format is chosen by extension: .toml, .yaml or .yml. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes c to path in the format chosen by its extension.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	case ".yaml", ".yml":
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrFormat, ext)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate reports settings outside their valid range.
func (c Config) Validate() error {
	if c.Input.DoubleClick <= 0 {
		return fmt.Errorf("%w: input.double_click must be positive, got %v", ErrInvalid, c.Input.DoubleClick)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	return nil
}

// Apply configures s with the input settings of c.
func (c Config) Apply(s *input.State) {
	s.DoubleClick = time.Duration(c.Input.DoubleClick)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}
