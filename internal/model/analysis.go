package model

import "time"

// IndicatorKind is the closed set of quality indicator variants.
type IndicatorKind string

const (
	IndicatorSpam       IndicatorKind = "spam"
	IndicatorBot        IndicatorKind = "bot"
	IndicatorVerified   IndicatorKind = "verified"
	IndicatorEngagement IndicatorKind = "engagement"
)

// IndicatorSeverity grades a quality indicator.
type IndicatorSeverity string

const (
	SeveritySuccess IndicatorSeverity = "success"
	SeverityWarning IndicatorSeverity = "warning"
	SeverityDanger  IndicatorSeverity = "danger"
)

// QualityIndicator is a labeled, severity-tagged summary fact about the
// analyzed sample.
type QualityIndicator struct {
	Kind     IndicatorKind
	Label    string
	Severity IndicatorSeverity
}

// EngagementQuality is the ordered vocabulary for video-level engagement.
type EngagementQuality string

const (
	EngagementExceptional EngagementQuality = "Exceptional"
	EngagementExcellent   EngagementQuality = "Excellent"
	EngagementGood        EngagementQuality = "Good"
	EngagementFair        EngagementQuality = "Fair"
	EngagementPoor        EngagementQuality = "Poor"
	EngagementVeryPoor    EngagementQuality = "Very Poor"
	EngagementUnknown     EngagementQuality = "Unknown"
)

// Analysis is the immutable result of one analysis invocation. TotalComments
// is the sampled count, not the full comment population.
type Analysis struct {
	ID                string
	VideoID           string
	TotalComments     int
	PositiveCount     int
	NegativeCount     int
	NeutralCount      int
	SuspiciousCount   int
	SpamCount         int
	BotLikeCount      int
	VerifiedCount     int
	Rating            float64
	Confidence        float64
	QualityIndicators []QualityIndicator
	EngagementQuality EngagementQuality
	Fallback          bool
	CreatedAt         time.Time
}
