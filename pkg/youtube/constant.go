package youtube

import "time"

const (
	// BaseURL is the YouTube Data API v3 endpoint.
	BaseURL = "https://www.googleapis.com/youtube/v3"

	// DefaultTimeout bounds a single API request.
	DefaultTimeout = 15 * time.Second

	// PageSize is the maximum page size commentThreads.list accepts.
	PageSize = 100
)
