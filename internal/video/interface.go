package video

import (
	"context"

	"trustrate-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Get fetches snippet and statistics for one video.
	Get(ctx context.Context, sc model.Scope, videoID string) (*model.Video, error)

	// GetWithComments fetches the video and its top-level comments in one
	// pass. Comments are ordered by relevance as the platform ranks them.
	GetWithComments(ctx context.Context, sc model.Scope, input GetWithCommentsInput) (GetWithCommentsOutput, error)
}
