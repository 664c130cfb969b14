package repository

import (
	"context"

	"trustrate-srv/internal/model"
)

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetAnalysis(ctx context.Context, videoID string) (*model.Analysis, error)
	SaveAnalysis(ctx context.Context, analysis model.Analysis) error
	InvalidateAnalysis(ctx context.Context, videoID string) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateAnalysis(ctx context.Context, opts CreateAnalysisOptions) error
	GetLatestByVideoID(ctx context.Context, videoID string) (*model.Analysis, error)
}
