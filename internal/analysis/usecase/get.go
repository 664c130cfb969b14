package usecase

import (
	"context"

	"trustrate-srv/internal/analysis"
	"trustrate-srv/internal/analysis/repository"
	"trustrate-srv/internal/model"
)

// GetByVideo - Fetch the latest stored analysis: cache first, then Postgres.
func (uc *implUseCase) GetByVideo(ctx context.Context, sc model.Scope, videoID string) (model.Analysis, error) {
	if videoID == "" {
		return model.Analysis{}, analysis.ErrVideoIDRequired
	}

	if uc.cacheRepo != nil {
		if cached, err := uc.cacheRepo.GetAnalysis(ctx, videoID); err == nil && cached != nil {
			uc.l.Debugf(ctx, "analysis.usecase.GetByVideo: cache hit for video %s", videoID)
			return *cached, nil
		}
	}

	if uc.postgresRepo == nil {
		return model.Analysis{}, analysis.ErrAnalysisNotFound
	}

	stored, err := uc.postgresRepo.GetLatestByVideoID(ctx, videoID)
	if err == repository.ErrNotFound {
		return model.Analysis{}, analysis.ErrAnalysisNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.GetByVideo: postgres lookup failed: %v", err)
		return model.Analysis{}, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SaveAnalysis(ctx, *stored); err != nil {
			uc.l.Warnf(ctx, "analysis.usecase.GetByVideo: failed to refresh cache: %v", err)
		}
	}
	return *stored, nil
}

func toCreateOptions(a model.Analysis) repository.CreateAnalysisOptions {
	return repository.CreateAnalysisOptions{Analysis: a}
}
