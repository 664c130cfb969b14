package kafka

import (
	"time"

	"trustrate-srv/internal/model"
)

// EventAnalysisCompleted is the event type emitted after every successful
// analysis.
const EventAnalysisCompleted = "analysis.completed"

// analysisCompletedMsg is the wire form of the completion event. Consumers
// key on video_id.
type analysisCompletedMsg struct {
	Event             string    `json:"event"`
	AnalysisID        string    `json:"analysis_id"`
	VideoID           string    `json:"video_id"`
	TotalComments     int       `json:"total_comments"`
	Rating            float64   `json:"rating"`
	Confidence        float64   `json:"confidence"`
	EngagementQuality string    `json:"engagement_quality"`
	Fallback          bool      `json:"fallback"`
	CreatedAt         time.Time `json:"created_at"`
}

func newAnalysisCompletedMsg(a model.Analysis) analysisCompletedMsg {
	return analysisCompletedMsg{
		Event:             EventAnalysisCompleted,
		AnalysisID:        a.ID,
		VideoID:           a.VideoID,
		TotalComments:     a.TotalComments,
		Rating:            a.Rating,
		Confidence:        a.Confidence,
		EngagementQuality: string(a.EngagementQuality),
		Fallback:          a.Fallback,
		CreatedAt:         a.CreatedAt,
	}
}
