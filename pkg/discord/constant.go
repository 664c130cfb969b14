package discord

import (
	"net/http"
	"time"
)

const (
	webhookBaseURL = "https://discord.com/api/webhooks"

	colorError   = 0xE74C3C
	colorWarning = 0xF39C12
	colorSuccess = 0x2ECC71
)

// DefaultConfig returns the default Discord service configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		DefaultUsername: "trustrate-srv",
	}
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
