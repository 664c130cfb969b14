package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"trustrate-srv/internal/analysis/repository"
	"trustrate-srv/internal/model"
)

const createAnalysisQuery = `
	INSERT INTO analyses (
		id, video_id, total_comments,
		positive_count, negative_count, neutral_count,
		suspicious_count, spam_count, bot_like_count, verified_count,
		rating, confidence, quality_indicators,
		engagement_quality, fallback, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8,
		$9, $10, $11, $12, $13, $14, $15, $16
	)`

const latestByVideoQuery = `
	SELECT
		id, video_id, total_comments,
		positive_count, negative_count, neutral_count,
		suspicious_count, spam_count, bot_like_count, verified_count,
		rating, confidence, quality_indicators,
		engagement_quality, fallback, created_at
	FROM analyses
	WHERE video_id = $1
	ORDER BY created_at DESC
	LIMIT 1`

// CreateAnalysis inserts one analysis row. Quality indicators are stored as a
// JSONB column since they are read back whole, never queried by field.
func (r *implPostgresRepository) CreateAnalysis(ctx context.Context, opts repository.CreateAnalysisOptions) error {
	a := opts.Analysis

	indicators, err := json.Marshal(a.QualityIndicators)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrCreateFailed, err)
	}

	_, err = r.db.ExecContext(ctx, createAnalysisQuery,
		a.ID, a.VideoID, a.TotalComments,
		a.PositiveCount, a.NegativeCount, a.NeutralCount,
		a.SuspiciousCount, a.SpamCount, a.BotLikeCount, a.VerifiedCount,
		a.Rating, a.Confidence, indicators,
		string(a.EngagementQuality), a.Fallback, a.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.CreateAnalysis: insert failed: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrCreateFailed, err)
	}
	return nil
}

// GetLatestByVideoID returns the most recent analysis for a video or
// repository.ErrNotFound.
func (r *implPostgresRepository) GetLatestByVideoID(ctx context.Context, videoID string) (*model.Analysis, error) {
	var (
		a          model.Analysis
		indicators []byte
		quality    string
	)

	err := r.db.QueryRowContext(ctx, latestByVideoQuery, videoID).Scan(
		&a.ID, &a.VideoID, &a.TotalComments,
		&a.PositiveCount, &a.NegativeCount, &a.NeutralCount,
		&a.SuspiciousCount, &a.SpamCount, &a.BotLikeCount, &a.VerifiedCount,
		&a.Rating, &a.Confidence, &indicators,
		&quality, &a.Fallback, &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.GetLatestByVideoID: query failed: %v", err)
		return nil, err
	}

	a.EngagementQuality = model.EngagementQuality(quality)
	if len(indicators) > 0 {
		if err := json.Unmarshal(indicators, &a.QualityIndicators); err != nil {
			r.l.Errorf(ctx, "analysis.repository.postgre.GetLatestByVideoID: failed to decode indicators: %v", err)
			return nil, err
		}
	}
	return &a, nil
}
