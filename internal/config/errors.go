package config

import "errors"

// Errors returned by Load and Validate, wrapped with the offending key.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
