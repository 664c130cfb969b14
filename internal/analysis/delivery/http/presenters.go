package http

import (
	"time"

	"trustrate-srv/internal/analysis"
	"trustrate-srv/internal/model"
)

// =====================================================
// Request DTOs
// =====================================================

type analyzeReq struct {
	VideoID     string `json:"video_id" binding:"required"`
	MaxComments int    `json:"max_comments,omitempty"`
}

// =====================================================
// Response DTOs
// =====================================================

type analysisResp struct {
	ID                string          `json:"id"`
	VideoID           string          `json:"video_id"`
	Video             *videoResp      `json:"video,omitempty"`
	TotalComments     int             `json:"total_comments"`
	PositiveCount     int             `json:"positive_count"`
	NegativeCount     int             `json:"negative_count"`
	NeutralCount      int             `json:"neutral_count"`
	SuspiciousCount   int             `json:"suspicious_count"`
	SpamCount         int             `json:"spam_count"`
	BotLikeCount      int             `json:"bot_like_count"`
	VerifiedCount     int             `json:"verified_count"`
	Rating            float64         `json:"rating"`
	Confidence        float64         `json:"confidence"`
	QualityIndicators []indicatorResp `json:"quality_indicators"`
	EngagementQuality string          `json:"engagement_quality"`
	Fallback          bool            `json:"fallback"`
	Comments          []commentResp   `json:"comments,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

type videoResp struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
	ViewCount    int64  `json:"view_count"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
}

type indicatorResp struct {
	Kind     string `json:"kind"`
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

type commentResp struct {
	ID             string  `json:"id"`
	Author         string  `json:"author"`
	AuthorVerified bool    `json:"author_verified"`
	Text           string  `json:"text"`
	LikeCount      int     `json:"like_count"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
	TrustScore     float64 `json:"trust_score"`
	IsSpam         bool    `json:"is_spam"`
	IsBotLike      bool    `json:"is_bot_like"`
	IsSuspicious   bool    `json:"is_suspicious"`
}

func (h *handler) newAnalysisResp(v *model.Video, output analysis.AnalyzeOutput) analysisResp {
	resp := newBaseAnalysisResp(output.Analysis)

	if v != nil {
		resp.Video = &videoResp{
			ID:           v.ID,
			Title:        v.Title,
			ChannelTitle: v.ChannelTitle,
			ViewCount:    v.ViewCount,
			LikeCount:    v.LikeCount,
			CommentCount: v.CommentCount,
		}
	}

	resp.Comments = make([]commentResp, len(output.Sampled))
	for i, c := range output.Sampled {
		resp.Comments[i] = commentResp{
			ID:             c.ID,
			Author:         c.Author,
			AuthorVerified: c.AuthorVerified,
			Text:           c.Text,
			LikeCount:      c.LikeCount,
			Sentiment:      string(c.Sentiment),
			SentimentScore: c.SentimentScore,
			TrustScore:     c.TrustScore,
			IsSpam:         c.IsSpam,
			IsBotLike:      c.IsBotLike,
			IsSuspicious:   c.IsSuspicious,
		}
	}

	return resp
}

func (h *handler) newStoredAnalysisResp(a model.Analysis) analysisResp {
	return newBaseAnalysisResp(a)
}

func newBaseAnalysisResp(a model.Analysis) analysisResp {
	resp := analysisResp{
		ID:                a.ID,
		VideoID:           a.VideoID,
		TotalComments:     a.TotalComments,
		PositiveCount:     a.PositiveCount,
		NegativeCount:     a.NegativeCount,
		NeutralCount:      a.NeutralCount,
		SuspiciousCount:   a.SuspiciousCount,
		SpamCount:         a.SpamCount,
		BotLikeCount:      a.BotLikeCount,
		VerifiedCount:     a.VerifiedCount,
		Rating:            a.Rating,
		Confidence:        a.Confidence,
		EngagementQuality: string(a.EngagementQuality),
		Fallback:          a.Fallback,
		CreatedAt:         a.CreatedAt,
	}
	resp.QualityIndicators = make([]indicatorResp, len(a.QualityIndicators))
	for i, ind := range a.QualityIndicators {
		resp.QualityIndicators[i] = indicatorResp{
			Kind:     string(ind.Kind),
			Label:    ind.Label,
			Severity: string(ind.Severity),
		}
	}
	return resp
}
