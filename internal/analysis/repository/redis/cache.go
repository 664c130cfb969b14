package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"trustrate-srv/internal/analysis/repository"
	"trustrate-srv/internal/model"
)

func analysisKey(videoID string) string {
	return fmt.Sprintf("analysis:%s", videoID)
}

// GetAnalysis returns the cached analysis or repository.ErrNotFound.
func (r *implCacheRepository) GetAnalysis(ctx context.Context, videoID string) (*model.Analysis, error) {
	data, err := r.redis.Get(ctx, analysisKey(videoID))
	if err == goredis.Nil {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var a model.Analysis
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.GetAnalysis: failed to unmarshal cached analysis: %v", err)
		return nil, err
	}
	return &a, nil
}

// SaveAnalysis stores the analysis under the video key with the repo TTL.
func (r *implCacheRepository) SaveAnalysis(ctx context.Context, analysis model.Analysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, analysisKey(analysis.VideoID), data, r.ttl); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.SaveAnalysis: failed to save to cache: %v", err)
		return err
	}
	return nil
}

// InvalidateAnalysis drops the cached entry for a video.
func (r *implCacheRepository) InvalidateAnalysis(ctx context.Context, videoID string) error {
	if err := r.redis.Delete(ctx, analysisKey(videoID)); err != nil {
		r.l.Errorf(ctx, "analysis.repository.redis.InvalidateAnalysis: failed to delete key: %v", err)
		return err
	}
	return nil
}
