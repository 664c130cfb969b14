package classifier

import (
	"time"

	pkghttp "trustrate-srv/pkg/http"
)

// ClassifierConfig holds configuration for the sentiment service client.
type ClassifierConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// classifierImpl implements IClassifier over HTTP.
type classifierImpl struct {
	baseURL    string
	httpClient pkghttp.IClient
}

// Request defines the request body for the batch endpoint.
type Request struct {
	Texts []string `json:"texts"`
}

// Result is one sentiment prediction.
type Result struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ClassifyOutput defines the response body from the batch endpoint.
// Cached and ProcessingTime are service metadata used only for observability.
type ClassifyOutput struct {
	Results        []Result `json:"results"`
	Cached         bool     `json:"cached"`
	ProcessingTime float64  `json:"processing_time"`
	BatchCount     int      `json:"batch_count,omitempty"`
}

// StatusOutput defines the response body from the status endpoint.
type StatusOutput struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Device      string `json:"device,omitempty"`
	CacheSize   int    `json:"cache_size,omitempty"`
}

// Healthy reports whether the service can be trusted with a batch: the
// status must be "healthy" and the model must be loaded.
func (s StatusOutput) Healthy() bool {
	return s.Status == StatusHealthy && s.ModelLoaded
}
