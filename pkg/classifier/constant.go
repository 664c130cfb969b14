package classifier

import "time"

const (
	// StatusHealthy is the healthy value of StatusOutput.Status.
	StatusHealthy = "healthy"

	// DefaultRequestTimeout bounds a single batch request.
	DefaultRequestTimeout = 30 * time.Second

	sentimentPath = "/sentiment"
	statusPath    = "/sentiment/status"
)
