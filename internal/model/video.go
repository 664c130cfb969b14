package model

import "time"

// Video carries the video-level statistics the aggregator reads. Counters are
// used only as ratios; consumers must floor denominators at 1.
type Video struct {
	ID           string
	Title        string
	ChannelID    string
	ChannelTitle string
	PublishedAt  time.Time
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
}
