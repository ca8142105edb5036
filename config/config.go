// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/igraphgo/native"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed      = "IGRAPHGO_SEED"
	EnvLogLevel  = "IGRAPHGO_LOG_LEVEL"
	EnvLogFormat = "IGRAPHGO_LOG_FORMAT"
	EnvLibrary   = native.LibraryEnv
)

var (
	// ErrUnknownFormat is returned for files that are neither YAML nor TOML.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalid is returned for values that fail validation.
	ErrInvalid = errors.New("config: invalid value")
)

// LogConfig selects logger verbosity and output format (text or json).
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Config holds the settings of the binding.
type Config struct {
	// Seed makes native randomness reproducible. Nil draws a random seed.
	Seed *uint64 `yaml:"seed" toml:"seed"`
	// Library overrides the shared library names probed by native.Locate.
	Library string `yaml:"library" toml:"library"`
	// Interrupts lets SIGINT interrupt running native calls.
	Interrupts bool      `yaml:"interrupts" toml:"interrupts"`
	Log        LogConfig `yaml:"log" toml:"log"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{Log: LogConfig{Level: "info", Format: "text"}}
}

// Load reads path, choosing the decoder by extension (.yaml, .yml, .toml),
// on top of Default.
//
// Errors:
//   - ErrUnknownFormat for any other extension.
//   - decode errors, including unknown keys, from either decoder.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// Parse decodes data in the given format (yaml, yml or toml) on top of
// Default.
func Parse(data []byte, format string) (Config, error) {
	c := Default()
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	case "toml":
		md, err := toml.Decode(string(data), &c)
		if err != nil {
			return Config{}, fmt.Errorf("config: decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("config: decode toml: unknown key %q", undecoded[0].String())
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return c, c.Validate()
}

// ApplyEnv overrides c with the environment variables that are set.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		c.Seed = &seed
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvLibrary); ok && v != "" {
		c.Library = v
	}
	return c.Validate()
}

// Validate checks the log settings.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Logger builds the logger described by c.Log.
func (c Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	l := logrus.New()
	l.SetLevel(level)
	if strings.EqualFold(c.Log.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l, nil
}

// NativeOptions translates c into options for native.Init.
func (c Config) NativeOptions() ([]native.Option, error) {
	l, err := c.Logger()
	if err != nil {
		return nil, err
	}
	opts := []native.Option{native.WithLogger(l)}
	if c.Seed != nil {
		opts = append(opts, native.WithSeed(*c.Seed))
	}
	if c.Interrupts {
		opts = append(opts, native.WithSignalInterrupts())
	}
	return opts, nil
}

// Apply exports Library for native.Locate and initialises the binding.
func (c Config) Apply() error {
	if c.Library != "" {
		if err := os.Setenv(EnvLibrary, c.Library); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	opts, err := c.NativeOptions()
	if err != nil {
		return err
	}
	return native.Init(opts...)
}
