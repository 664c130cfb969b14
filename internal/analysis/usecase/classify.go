package usecase

import (
	"context"
	"strings"

	"trustrate-srv/pkg/classifier"

	"golang.org/x/sync/errgroup"
)

// Fallback scores are fixed so results from the local classifier are
// recognizable downstream.
const (
	fallbackPositiveScore = 0.8
	fallbackNegativeScore = 0.2
	fallbackNeutralScore  = 0.5
)

var positiveKeywords = []string{
	"good", "great", "awesome", "amazing", "excellent", "love", "loved",
	"best", "helpful", "thanks", "thank you", "perfect", "nice", "works",
}

var negativeKeywords = []string{
	"bad", "terrible", "awful", "worst", "hate", "hated", "useless",
	"broken", "scam", "fake", "waste", "clickbait", "misleading", "wrong",
}

// classify obtains one sentiment result per text, preferring the external
// service but never failing. The second return reports whether the local
// fallback produced the results.
func (uc *implUseCase) classify(ctx context.Context, texts []string, batchSize int) ([]classifier.Result, bool) {
	if len(texts) == 0 {
		return nil, false
	}

	if !uc.serviceHealthy(ctx) {
		uc.l.Warnf(ctx, "analysis.usecase.classify: sentiment service unhealthy, using local fallback for %d texts", len(texts))
		return localClassifyAll(texts), true
	}

	results, err := uc.dispatchBatches(ctx, texts, batchSize)
	if err != nil {
		// All-or-nothing: any failed batch discards the successful ones and
		// the local classifier covers the full sample.
		uc.l.Warnf(ctx, "analysis.usecase.classify: batch dispatch failed (%v), using local fallback for %d texts", err, len(texts))
		return localClassifyAll(texts), true
	}
	return results, false
}

// serviceHealthy runs the bounded health check. Both the healthy status and
// the loaded model flag are required.
func (uc *implUseCase) serviceHealthy(ctx context.Context) bool {
	healthCtx, cancel := context.WithTimeout(ctx, uc.cfg.HealthTimeout)
	defer cancel()

	status, err := uc.classifier.Status(healthCtx)
	if err != nil {
		return false
	}
	return status.Healthy()
}

// dispatchBatches fans out one request per batch and joins them. Results are
// placed by pre-computed batch offset, never by arrival order, so the output
// is index-aligned with texts even though batches complete out of order.
func (uc *implUseCase) dispatchBatches(ctx context.Context, texts []string, batchSize int) ([]classifier.Result, error) {
	dispatchCtx, cancel := context.WithTimeout(ctx, uc.cfg.ClassifyTimeout)
	defer cancel()

	type batch struct {
		offset int
		texts  []string
	}
	var batches []batch
	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batches = append(batches, batch{offset: start, texts: texts[start:end]})
	}

	results := make([]classifier.Result, len(texts))
	g, gctx := errgroup.WithContext(dispatchCtx)
	for _, b := range batches {
		b := b
		g.Go(func() error {
			out, err := uc.classifier.Classify(gctx, b.texts)
			if err != nil {
				return err
			}
			for i := range b.texts {
				if i < len(out.Results) {
					results[b.offset+i] = normalizeResult(out.Results[i])
				} else {
					// The service returned fewer results than texts; pad neutral.
					results[b.offset+i] = classifier.Result{Label: "neutral", Score: fallbackNeutralScore}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// normalizeResult maps the service's label vocabulary onto the closed
// positive/negative/neutral set.
func normalizeResult(r classifier.Result) classifier.Result {
	switch strings.ToLower(r.Label) {
	case "positive", "label_2":
		r.Label = "positive"
	case "negative", "label_0":
		r.Label = "negative"
	default:
		r.Label = "neutral"
	}
	return r
}

func localClassifyAll(texts []string) []classifier.Result {
	results := make([]classifier.Result, len(texts))
	for i, text := range texts {
		results[i] = localClassify(text)
	}
	return results
}

// localClassify is the deterministic keyword fallback.
func localClassify(text string) classifier.Result {
	lower := strings.ToLower(text)

	positive, negative := 0, 0
	for _, kw := range positiveKeywords {
		positive += strings.Count(lower, kw)
	}
	for _, kw := range negativeKeywords {
		negative += strings.Count(lower, kw)
	}

	switch {
	case positive > negative:
		return classifier.Result{Label: "positive", Score: fallbackPositiveScore}
	case negative > positive:
		return classifier.Result{Label: "negative", Score: fallbackNegativeScore}
	default:
		return classifier.Result{Label: "neutral", Score: fallbackNeutralScore}
	}
}
