package config

import "errors"

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidConcurrency is returned when concurrency is negative.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be non-negative")
)
