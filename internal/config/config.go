// Package config defines the process configuration shared by the web and
// terminal hosts.
package config

import (
	"context"
	"time"
)

// Config contains process configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StaticDir holds css, the wasm bundle and the placeholder image.
	StaticDir string `koanf:"static_dir"`

	// LogoDir holds the company logos served under /logos.
	LogoDir string `koanf:"logo_dir"`

	// LogLevel controls verbosity: debug, info, warn, error, disabled.
	LogLevel string `koanf:"log_level"`

	// LogFormat is auto, json or console.
	LogFormat string `koanf:"log_format"`

	// LogFile receives logs of the terminal host, which owns stdout.
	// Empty discards them.
	LogFile string `koanf:"log_file"`

	// Metrics toggles the /metrics endpoint.
	Metrics bool `koanf:"metrics"`

	// GinMode is debug, release or test.
	GinMode string `koanf:"gin_mode"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// FrameRate is the terminal host refresh rate in frames per second.
	FrameRate int `koanf:"frame_rate"`

	// Seed seeds the starfield random source; 0 seeds from the clock.
	Seed int64 `koanf:"seed"`
}

// New returns a Config with defaults.
func New(_ context.Context) *Config {
	return &Config{
		Addr:            ":8080",
		StaticDir:       "./static",
		LogoDir:         "./logos",
		LogLevel:        "info",
		LogFormat:       "auto",
		Metrics:         true,
		GinMode:         "release",
		ShutdownTimeout: 5 * time.Second,
		FrameRate:       60,
	}
}

// FrameInterval is the time between two terminal frames.
func (c *Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}
