package model

import "time"

// SentimentLabel is the closed vocabulary for comment sentiment.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// Comment is a single top-level comment on a video. The analysis fields are
// zero until the engine processes the comment; once processed they are set
// together, never partially.
type Comment struct {
	ID             string
	VideoID        string
	Author         string
	AuthorVerified bool
	Text           string
	LikeCount      int
	PublishedAt    time.Time

	// Derived by the analysis engine.
	Sentiment      SentimentLabel
	SentimentScore float64
	TrustScore     float64
	IsSpam         bool
	IsBotLike      bool
	IsSuspicious   bool
	Analyzed       bool
}
