// Package config loads the optional scaffold.toml configuration file for the
// HTTP service.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults for the HTTP service.
const (
	DefaultAddr            = "127.0.0.1:8000"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxUploadBytes  = 10 << 20 // 10 MiB
)

// Config is the service configuration.
type Config struct {
	// Addr is the address the server listens on e.g. "127.0.0.1:8000"
	Addr string `toml:"addr"`

	// ReadTimeout is the maximum time to read a whole request
	ReadTimeout Duration `toml:"read-timeout"`

	// WriteTimeout is the maximum time to write a response
	WriteTimeout Duration `toml:"write-timeout"`

	// ShutdownTimeout is how long in-flight requests get to finish on shutdown
	ShutdownTimeout Duration `toml:"shutdown-timeout"`

	// MaxUploadBytes caps the size of an uploaded collection
	MaxUploadBytes int64 `toml:"max-upload-bytes"`
}

// Duration is a [time.Duration] that decodes from TOML strings like "15s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements [encoding.TextUnmarshaler] for [Duration].
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}

	d.Duration = parsed

	return nil
}

// MarshalText implements [encoding.TextMarshaler] for [Duration].
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Addr:            DefaultAddr,
		ReadTimeout:     Duration{DefaultReadTimeout},
		WriteTimeout:    Duration{DefaultWriteTimeout},
		ShutdownTimeout: Duration{DefaultShutdownTimeout},
		MaxUploadBytes:  DefaultMaxUploadBytes,
	}
}

// Load reads the TOML file at path on top of the defaults, so any key
// missing from the file keeps its default value.
//
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("could not decode config file %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		return Config{}, fmt.Errorf("unknown keys in config file %s: %v", path, undecoded)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports whether the Config is valid, returning a non-nil error if it's not.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("addr cannot be empty")
	case c.ReadTimeout.Duration <= 0:
		return errors.New("read-timeout must be positive")
	case c.WriteTimeout.Duration <= 0:
		return errors.New("write-timeout must be positive")
	case c.ShutdownTimeout.Duration <= 0:
		return errors.New("shutdown-timeout must be positive")
	case c.MaxUploadBytes <= 0:
		return errors.New("max-upload-bytes must be positive")
	default:
		return nil
	}
}
