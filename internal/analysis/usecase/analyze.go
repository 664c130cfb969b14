package usecase

import (
	"context"
	"time"

	"trustrate-srv/internal/analysis"
	"trustrate-srv/internal/model"
)

// Analyze - Main pipeline for one video.
// Flow: select mode → sample → heuristics → classify (with fallback) →
// annotate → aggregate → best-effort cache/persist/publish.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	startTime := time.Now()

	videoID := input.VideoID
	if videoID == "" && input.Video != nil {
		videoID = input.Video.ID
	}
	if videoID == "" {
		return analysis.AnalyzeOutput{}, analysis.ErrVideoIDRequired
	}

	mode := selectMode(len(input.Comments))
	sampled := uc.sample(input.Comments, mode)

	texts := make([]string, len(sampled))
	for i, c := range sampled {
		texts[i] = c.Text
	}

	results, usedFallback := uc.classify(ctx, texts, mode.BatchSize)

	// Annotation is atomic per comment: sentiment, flags and trust score are
	// written together so a comment is never half-processed.
	for i := range sampled {
		c := &sampled[i]
		isSpam := detectSpam(c.Text)
		isBotLike := detectBotLike(c.Text, c.Author)
		isSuspicious := isSpam || isBotLike

		c.Sentiment = model.SentimentLabel(results[i].Label)
		c.SentimentScore = results[i].Score
		c.IsSpam = isSpam
		c.IsBotLike = isBotLike
		c.IsSuspicious = isSuspicious
		c.TrustScore = trustScore(*c, isSpam, isBotLike, isSuspicious)
		c.Analyzed = true
	}

	result := aggregate(input.Video, videoID, sampled, len(input.Comments), usedFallback)

	uc.storeResult(ctx, result)

	uc.l.Infof(ctx, "analysis.usecase.Analyze: video=%s mode=%s sampled=%d/%d rating=%.2f confidence=%.2f fallback=%v duration=%dms",
		videoID, mode.Name, len(sampled), len(input.Comments), result.Rating, result.Confidence, usedFallback,
		time.Since(startTime).Milliseconds())

	return analysis.AnalyzeOutput{
		Analysis: result,
		Sampled:  sampled,
	}, nil
}

// storeResult caches, persists and publishes the analysis. All side effects
// are best-effort; the caller already owns a complete result.
func (uc *implUseCase) storeResult(ctx context.Context, result model.Analysis) {
	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SaveAnalysis(ctx, result); err != nil {
			uc.l.Warnf(ctx, "analysis.usecase.Analyze: failed to cache analysis: %v", err)
		}
	}
	if uc.postgresRepo != nil {
		if err := uc.postgresRepo.CreateAnalysis(ctx, toCreateOptions(result)); err != nil {
			uc.l.Warnf(ctx, "analysis.usecase.Analyze: failed to persist analysis: %v", err)
		}
	}
	if uc.publisher != nil {
		if err := uc.publisher.AnalysisCompleted(ctx, result); err != nil {
			uc.l.Warnf(ctx, "analysis.usecase.Analyze: failed to publish event: %v", err)
		}
	}
}
