package youtube

import (
	"context"
	"time"

	pkghttp "trustrate-srv/pkg/http"
)

// IYouTube defines the interface for the YouTube Data API v3.
// Implementations are safe for concurrent use.
type IYouTube interface {
	// GetVideo fetches snippet and statistics for one video.
	GetVideo(ctx context.Context, videoID string) (*Video, error)
	// ListComments fetches up to maxComments top-level comments for a video,
	// paginating through commentThreads ordered by relevance.
	ListComments(ctx context.Context, videoID string, maxComments int) ([]Comment, error)
}

// NewYouTube creates a new YouTube Data API client. APIKey must be set.
func NewYouTube(cfg YouTubeConfig) (IYouTube, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &youtubeImpl{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.Timeout,
			Retries:   2,
			RetryWait: 500 * time.Millisecond,
		}),
	}, nil
}
