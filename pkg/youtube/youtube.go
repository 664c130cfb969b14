package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// GetVideo fetches snippet and statistics for one video.
func (y *youtubeImpl) GetVideo(ctx context.Context, videoID string) (*Video, error) {
	q := url.Values{}
	q.Set("part", "snippet,statistics")
	q.Set("id", videoID)
	q.Set("key", y.apiKey)

	body, statusCode, err := y.httpClient.Get(ctx, y.baseURL+"/videos?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call videos.list: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("videos.list returned status: %d, body: %s", statusCode, string(body))
	}

	var resp videoListResp
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal videos.list response: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	item := resp.Items[0]
	publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	return &Video{
		ID:           item.ID,
		Title:        item.Snippet.Title,
		ChannelID:    item.Snippet.ChannelID,
		ChannelTitle: item.Snippet.ChannelTitle,
		PublishedAt:  publishedAt,
		ViewCount:    parseCount(item.Statistics.ViewCount),
		LikeCount:    parseCount(item.Statistics.LikeCount),
		CommentCount: parseCount(item.Statistics.CommentCount),
	}, nil
}

// ListComments fetches up to maxComments top-level comments, relevance first.
func (y *youtubeImpl) ListComments(ctx context.Context, videoID string, maxComments int) ([]Comment, error) {
	var comments []Comment
	pageToken := ""

	for len(comments) < maxComments {
		q := url.Values{}
		q.Set("part", "snippet")
		q.Set("videoId", videoID)
		q.Set("order", "relevance")
		q.Set("textFormat", "plainText")
		q.Set("maxResults", strconv.Itoa(PageSize))
		q.Set("key", y.apiKey)
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		body, statusCode, err := y.httpClient.Get(ctx, y.baseURL+"/commentThreads?"+q.Encode(), nil)
		if err != nil {
			return comments, fmt.Errorf("failed to call commentThreads.list: %w", err)
		}
		if statusCode == http.StatusForbidden {
			return comments, ErrCommentsDisabled
		}
		if statusCode != http.StatusOK {
			return comments, fmt.Errorf("commentThreads.list returned status: %d, body: %s", statusCode, string(body))
		}

		var resp commentThreadsResp
		if err := json.Unmarshal(body, &resp); err != nil {
			return comments, fmt.Errorf("failed to unmarshal commentThreads.list response: %w", err)
		}

		for _, item := range resp.Items {
			sn := item.Snippet.TopLevelComment.Snippet
			text := sn.TextOriginal
			if text == "" {
				text = sn.TextDisplay
			}
			publishedAt, _ := time.Parse(time.RFC3339, sn.PublishedAt)
			comments = append(comments, Comment{
				ID:              item.Snippet.TopLevelComment.ID,
				VideoID:         videoID,
				Author:          sn.AuthorDisplayName,
				AuthorChannelID: sn.AuthorChannelID.Value,
				Text:            text,
				LikeCount:       sn.LikeCount,
				PublishedAt:     publishedAt,
			})
			if len(comments) >= maxComments {
				break
			}
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return comments, nil
}

func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
