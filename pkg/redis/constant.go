package redis

import "time"

// DefaultConnectTimeout bounds the startup connection check.
const DefaultConnectTimeout = 5 * time.Second
