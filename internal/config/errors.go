package config

import "errors"

var (
	// ErrInvalidLevel occurs when a log level name is not one of debug, info,
	// warn or error.
	ErrInvalidLevel = errors.New("invalid log level")
)
