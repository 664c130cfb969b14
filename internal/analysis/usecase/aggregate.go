package usecase

import (
	"fmt"
	"time"

	"trustrate-srv/internal/model"

	"github.com/google/uuid"
)

// Weighted sentiment multipliers. Negative comments subtract from the
// numerator instead of merely not adding, so a mostly-negative video can
// rate near 0.
const (
	weightPositive = 1.0
	weightNeutral  = 0.8
	weightNegative = -0.2
)

// aggregate folds the annotated sample and the video stats into one
// immutable Analysis. fullCount is the size of the unsampled population.
func aggregate(video *model.Video, videoID string, sampled []model.Comment, fullCount int, fallback bool) model.Analysis {
	a := model.Analysis{
		ID:                uuid.NewString(),
		VideoID:           videoID,
		TotalComments:     len(sampled),
		EngagementQuality: engagementQuality(video),
		Fallback:          fallback,
		CreatedAt:         time.Now(),
	}

	var weightedPos, weightedNeu, weightedNeg float64
	for _, c := range sampled {
		weight := 1 + float64(c.LikeCount)/10
		if c.AuthorVerified {
			weight += 0.5
			a.VerifiedCount++
		}
		switch c.Sentiment {
		case model.SentimentPositive:
			a.PositiveCount++
			weightedPos += weight
		case model.SentimentNegative:
			a.NegativeCount++
			weightedNeg += weight
		default:
			a.NeutralCount++
			weightedNeu += weight
		}
		if c.IsSpam {
			a.SpamCount++
		}
		if c.IsBotLike {
			a.BotLikeCount++
		}
		if c.IsSuspicious {
			a.SuspiciousCount++
		}
	}

	totalWeight := weightedPos + weightedNeu + weightedNeg
	baseRating := 0.0
	if totalWeight > 0 && len(sampled) > 0 {
		raw := (weightedPos*weightPositive + weightedNeu*weightNeutral + weightedNeg*weightNegative) / totalWeight * 5
		baseRating = round2(clamp(raw, 0, 5))
	}

	a.Rating = round2(clamp(baseRating*engagementModifier(video), 0, 5))
	a.Confidence = round2(confidence(len(sampled), fullCount, a.PositiveCount, a.NegativeCount))
	a.QualityIndicators = qualityIndicators(video, a)

	return a
}

// confidence rewards coverage of the full population, absolute sample size,
// and a balanced sentiment distribution. Zero for an empty sample.
func confidence(sampledCount, fullCount, positive, negative int) float64 {
	if sampledCount == 0 {
		return 0
	}
	if fullCount < 1 {
		fullCount = 1
	}
	coverage := float64(sampledCount) / float64(fullCount)
	balance := 1 - abs(positive-negative)/float64(sampledCount)
	size := float64(sampledCount) / 100
	return clamp(coverage*balance*size, 0, 1)
}

// engagementModifier scales the base rating by video-level like and comment
// ratios. Neutral 1.0 without stats; denominators floored at 1.
func engagementModifier(video *model.Video) float64 {
	if video == nil {
		return 1.0
	}
	views := video.ViewCount
	if views < 1 {
		views = 1
	}
	likeRatio := float64(video.LikeCount) / float64(views)
	commentRatio := float64(video.CommentCount) / float64(views)

	likeScore := 1.0
	switch {
	case likeRatio >= 0.05:
		likeScore = 1.25
	case likeRatio >= 0.02:
		likeScore = 1.15
	case likeRatio >= 0.01:
		likeScore = 1.05
	}

	commentScore := 1.0
	switch {
	case commentRatio >= 0.005:
		commentScore = 1.2
	case commentRatio >= 0.001:
		commentScore = 1.1
	case commentRatio >= 0.0005:
		commentScore = 1.02
	}

	return (likeScore + commentScore) / 2
}

// qualityIndicators derives the closed set of labeled indicators from the
// tallied counts.
func qualityIndicators(video *model.Video, a model.Analysis) []model.QualityIndicator {
	var indicators []model.QualityIndicator
	total := a.TotalComments
	if total < 1 {
		total = 1
	}

	spamPct := float64(a.SpamCount) / float64(total) * 100
	if spamPct < 5 {
		indicators = append(indicators, model.QualityIndicator{
			Kind:     model.IndicatorSpam,
			Label:    "Low spam activity",
			Severity: model.SeveritySuccess,
		})
	} else if spamPct > 20 {
		indicators = append(indicators, model.QualityIndicator{
			Kind:     model.IndicatorSpam,
			Label:    "High spam activity",
			Severity: model.SeverityWarning,
		})
	}

	botPct := float64(a.BotLikeCount) / float64(total) * 100
	botIndicator := model.QualityIndicator{
		Kind:     model.IndicatorBot,
		Label:    fmt.Sprintf("%.1f%% bot-like comments", botPct),
		Severity: model.SeverityDanger,
	}
	if botPct < 5 {
		botIndicator.Severity = model.SeveritySuccess
	}
	indicators = append(indicators, botIndicator)

	verifiedPct := float64(a.VerifiedCount) / float64(total) * 100
	if verifiedPct > 10 {
		indicators = append(indicators, model.QualityIndicator{
			Kind:     model.IndicatorVerified,
			Label:    fmt.Sprintf("%.1f%% verified commenters", verifiedPct),
			Severity: model.SeveritySuccess,
		})
	}

	if video != nil {
		views := video.ViewCount
		if views < 1 {
			views = 1
		}
		likeRatio := float64(video.LikeCount) / float64(views)
		if likeRatio > 0.05 {
			indicators = append(indicators, model.QualityIndicator{
				Kind:     model.IndicatorEngagement,
				Label:    "Strong like ratio",
				Severity: model.SeveritySuccess,
			})
		} else if likeRatio < 0.01 {
			indicators = append(indicators, model.QualityIndicator{
				Kind:     model.IndicatorEngagement,
				Label:    "Weak like ratio",
				Severity: model.SeverityWarning,
			})
		}
	}

	return indicators
}

// engagementQuality maps video stats onto the ordered label vocabulary.
func engagementQuality(video *model.Video) model.EngagementQuality {
	if video == nil {
		return model.EngagementUnknown
	}
	views := video.ViewCount
	if views < 1 {
		views = 1
	}
	likeRatio := float64(video.LikeCount) / float64(views)
	commentsPer1000 := float64(video.CommentCount) / float64(views) * 1000

	likeScore := -1
	switch {
	case likeRatio >= 0.08:
		likeScore = 3
	case likeRatio >= 0.05:
		likeScore = 2
	case likeRatio >= 0.03:
		likeScore = 1
	case likeRatio >= 0.01:
		likeScore = 0
	}

	commentScore := -1
	switch {
	case commentsPer1000 >= 1.0:
		commentScore = 3
	case commentsPer1000 >= 0.5:
		commentScore = 2
	case commentsPer1000 >= 0.2:
		commentScore = 1
	case commentsPer1000 >= 0.1:
		commentScore = 0
	}

	switch total := likeScore + commentScore; {
	case total >= 5:
		return model.EngagementExceptional
	case total >= 3:
		return model.EngagementExcellent
	case total >= 1:
		return model.EngagementGood
	case total >= -1:
		return model.EngagementFair
	case total >= -3:
		return model.EngagementPoor
	default:
		return model.EngagementVeryPoor
	}
}

func abs(n int) float64 {
	if n < 0 {
		return float64(-n)
	}
	return float64(n)
}
