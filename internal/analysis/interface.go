package analysis

import (
	"context"

	"trustrate-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze runs the full pipeline (sample, detect, classify, aggregate)
	// for one video and returns the immutable result. It never fails on
	// classifier unavailability; the local fallback covers that.
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)

	// GetByVideo returns the most recent stored analysis for a video.
	GetByVideo(ctx context.Context, sc model.Scope, videoID string) (model.Analysis, error)
}

// EventPublisher publishes analysis lifecycle events. Implemented by the
// kafka delivery; a nil publisher disables publishing.
type EventPublisher interface {
	AnalysisCompleted(ctx context.Context, analysis model.Analysis) error
}
