package classifier

import (
	"context"

	pkghttp "trustrate-srv/pkg/http"
)

// IClassifier defines the interface for the external sentiment service.
// Implementations are safe for concurrent use.
type IClassifier interface {
	// Status reports service health. Any transport error counts as unhealthy.
	Status(ctx context.Context) (StatusOutput, error)
	// Classify labels each text in order. The response is index-aligned with
	// the request; callers must not assume equal length.
	Classify(ctx context.Context, texts []string) (ClassifyOutput, error)
}

// NewClassifier creates a new sentiment service client. BaseURL must be set.
func NewClassifier(cfg ClassifierConfig) (IClassifier, error) {
	if cfg.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	return &classifierImpl{
		baseURL: cfg.BaseURL,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   cfg.RequestTimeout,
			Retries:   0,
			RetryWait: 0,
		}),
	}, nil
}
