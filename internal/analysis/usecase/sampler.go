package usecase

import (
	"sort"

	"trustrate-srv/internal/analysis"
	"trustrate-srv/internal/model"
)

// selectMode picks the sampling mode purely from the comment count.
func selectMode(total int) analysis.Mode {
	switch {
	case total < analysis.FastThreshold:
		return analysis.ModeFast
	case total > analysis.ComprehensiveThreshold:
		return analysis.ModeComprehensive
	default:
		return analysis.ModeBalanced
	}
}

// engagementScore ranks a comment for sampling: likes plus a length bonus
// plus a flat bonus for verified authors.
func engagementScore(c model.Comment) float64 {
	score := float64(c.LikeCount) + float64(len(c.Text))/10
	if c.AuthorVerified {
		score += 10
	}
	return score
}

// sample reduces comments to at most mode.MaxComments, in the order the
// classification results must be re-merged in.
func (uc *implUseCase) sample(comments []model.Comment, mode analysis.Mode) []model.Comment {
	if len(comments) <= mode.MaxComments {
		out := make([]model.Comment, len(comments))
		copy(out, comments)
		return out
	}

	sorted := make([]model.Comment, len(comments))
	copy(sorted, comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return engagementScore(sorted[i]) > engagementScore(sorted[j])
	})

	if mode.Strategy == analysis.StrategyTopEngagement {
		return sorted[:mode.MaxComments]
	}
	return uc.stratify(sorted, mode.MaxComments)
}

// stratify takes the top 40%, a 40% window starting at the 30th percentile of
// the full sorted list, and fills the remaining 20% with a uniform random
// draw from whatever is left. The random stratum makes repeated runs
// non-deterministic on purpose.
func (uc *implUseCase) stratify(sorted []model.Comment, maxComments int) []model.Comment {
	topCount := maxComments * 40 / 100
	middleCount := maxComments * 40 / 100

	selected := make([]model.Comment, 0, maxComments)
	taken := make(map[int]bool, maxComments)

	for i := 0; i < topCount && i < len(sorted); i++ {
		selected = append(selected, sorted[i])
		taken[i] = true
	}

	middleStart := len(sorted) * 30 / 100
	for i := middleStart; i < len(sorted) && middleCount > 0; i++ {
		if taken[i] {
			continue
		}
		selected = append(selected, sorted[i])
		taken[i] = true
		middleCount--
	}

	remaining := make([]int, 0, len(sorted)-len(taken))
	for i := range sorted {
		if !taken[i] {
			remaining = append(remaining, i)
		}
	}

	randomCount := maxComments - len(selected)
	uc.rngMu.Lock()
	uc.rng.Shuffle(len(remaining), func(i, j int) {
		remaining[i], remaining[j] = remaining[j], remaining[i]
	})
	uc.rngMu.Unlock()
	for i := 0; i < randomCount && i < len(remaining); i++ {
		selected = append(selected, sorted[remaining[i]])
	}

	return selected
}
