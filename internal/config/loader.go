package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every configuration variable.
	EnvPrefix = "PORTFOLIO_"

	// EnvFile names the variable pointing at an optional YAML file.
	EnvFile = EnvPrefix + "CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if PORTFOLIO_CONFIG is set
//  3. PORT, as set by most hosting platforms, for the listen address
//  4. env (prefix PORTFOLIO_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv(EnvFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		if err := k.Set("addr", ":"+port); err != nil {
			return nil, fmt.Errorf("%w: PORT: %w", ErrLoadConfig, err)
		}
	}

	// PORTFOLIO_STATIC_DIR -> static_dir. Underscores are kept so keys match
	// the koanf tags on the struct.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the hosts cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalidConfig, c.FrameRate)
	case c.ShutdownTimeout < 0:
		return fmt.Errorf("%w: shutdown_timeout must not be negative", ErrInvalidConfig)
	case c.GinMode != "debug" && c.GinMode != "release" && c.GinMode != "test":
		return fmt.Errorf("%w: gin_mode must be debug, release or test, got %q", ErrInvalidConfig, c.GinMode)
	}
	return nil
}
