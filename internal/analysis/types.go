package analysis

import "trustrate-srv/internal/model"

// Strategy names how a sampling mode reduces the comment population.
type Strategy string

const (
	StrategyTopEngagement Strategy = "top-engagement"
	StrategyStratified    Strategy = "stratified"
)

// Mode bounds one analysis pass: how many comments to keep and how large a
// classification batch may be.
type Mode struct {
	Name        string
	MaxComments int
	BatchSize   int
	Strategy    Strategy
}

var (
	// ModeFast - small comment sets, engagement-ranked head only.
	ModeFast = Mode{Name: "fast", MaxComments: 150, BatchSize: 30, Strategy: StrategyTopEngagement}
	// ModeBalanced - the default stratified pass.
	ModeBalanced = Mode{Name: "balanced", MaxComments: 300, BatchSize: 50, Strategy: StrategyStratified}
	// ModeComprehensive - large comment sets, wider stratified pass.
	ModeComprehensive = Mode{Name: "comprehensive", MaxComments: 500, BatchSize: 75, Strategy: StrategyStratified}
)

const (
	// FastThreshold - below this comment count the fast mode applies.
	FastThreshold = 200
	// ComprehensiveThreshold - above this comment count the comprehensive mode applies.
	ComprehensiveThreshold = 1000
)

// AnalyzeInput carries the already-materialized video and its comments. Video
// may be nil; engagement scoring then falls back to neutral defaults.
type AnalyzeInput struct {
	Video    *model.Video
	VideoID  string
	Comments []model.Comment
}

// AnalyzeOutput carries the aggregate result plus the annotated sample, in
// sampler order.
type AnalyzeOutput struct {
	Analysis model.Analysis
	Sampled  []model.Comment
}
