package redis

import "errors"

var (
	// ErrHostRequired - Redis host is missing from config.
	ErrHostRequired = errors.New("redis: host is required")

	// ErrInvalidPort - Redis port is outside the valid range.
	ErrInvalidPort = errors.New("redis: invalid port")
)
