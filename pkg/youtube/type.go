package youtube

import (
	"time"

	pkghttp "trustrate-srv/pkg/http"
)

// YouTubeConfig holds configuration for the YouTube Data API client.
type YouTubeConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// youtubeImpl implements IYouTube over HTTP.
type youtubeImpl struct {
	apiKey     string
	baseURL    string
	httpClient pkghttp.IClient
}

// Video is the client-level view of a video's snippet and statistics.
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

// Comment is the client-level view of a top-level comment.
type Comment struct {
	ID              string
	VideoID         string
	Author          string
	AuthorChannelID string
	Text            string
	LikeCount       int
	PublishedAt     time.Time
}

// =====================================================
// Wire DTOs (videos.list)
// =====================================================

type videoListResp struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID         string          `json:"id"`
	Snippet    videoSnippet    `json:"snippet"`
	Statistics videoStatistics `json:"statistics"`
}

type videoSnippet struct {
	Title        string `json:"title"`
	ChannelID    string `json:"channelId"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
}

// Statistics counters are decimal strings on the wire.
type videoStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

// =====================================================
// Wire DTOs (commentThreads.list)
// =====================================================

type commentThreadsResp struct {
	Items         []commentThreadItem `json:"items"`
	NextPageToken string              `json:"nextPageToken"`
}

type commentThreadItem struct {
	ID      string               `json:"id"`
	Snippet commentThreadSnippet `json:"snippet"`
}

type commentThreadSnippet struct {
	VideoID         string          `json:"videoId"`
	TopLevelComment topLevelComment `json:"topLevelComment"`
	TotalReplyCount int             `json:"totalReplyCount"`
}

type topLevelComment struct {
	ID      string         `json:"id"`
	Snippet commentSnippet `json:"snippet"`
}

type commentSnippet struct {
	AuthorDisplayName string        `json:"authorDisplayName"`
	AuthorChannelID   channelIDNode `json:"authorChannelId"`
	TextDisplay       string        `json:"textDisplay"`
	TextOriginal      string        `json:"textOriginal"`
	LikeCount         int           `json:"likeCount"`
	PublishedAt       string        `json:"publishedAt"`
}

type channelIDNode struct {
	Value string `json:"value"`
}
