package usecase

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"trustrate-srv/internal/model"
	"trustrate-srv/internal/video"
	"trustrate-srv/pkg/youtube"
)

// Get - Fetch one video's snippet and statistics.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, videoID string) (*model.Video, error) {
	if videoID == "" {
		return nil, video.ErrVideoIDRequired
	}

	v, err := uc.yt.GetVideo(ctx, videoID)
	if errors.Is(err, youtube.ErrVideoNotFound) {
		return nil, video.ErrVideoNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "video.usecase.Get: failed to fetch video %s: %v", videoID, err)
		return nil, err
	}
	return toModelVideo(v), nil
}

// GetWithComments - Fetch the video and its comments concurrently, then map
// comments with the channel identity in hand.
func (uc *implUseCase) GetWithComments(ctx context.Context, sc model.Scope, input video.GetWithCommentsInput) (video.GetWithCommentsOutput, error) {
	if input.VideoID == "" {
		return video.GetWithCommentsOutput{}, video.ErrVideoIDRequired
	}
	maxComments := input.MaxComments
	if maxComments <= 0 || maxComments > uc.cfg.MaxComments {
		maxComments = uc.cfg.MaxComments
	}

	var (
		ytVideo    *youtube.Video
		ytComments []youtube.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := uc.yt.GetVideo(gctx, input.VideoID)
		if err != nil {
			return err
		}
		ytVideo = v
		return nil
	})
	g.Go(func() error {
		comments, err := uc.yt.ListComments(gctx, input.VideoID, maxComments)
		if err != nil {
			return err
		}
		ytComments = comments
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, youtube.ErrVideoNotFound) {
			return video.GetWithCommentsOutput{}, video.ErrVideoNotFound
		}
		if errors.Is(err, youtube.ErrCommentsDisabled) {
			return video.GetWithCommentsOutput{}, video.ErrNoComments
		}
		uc.l.Errorf(ctx, "video.usecase.GetWithComments: fetch failed for %s: %v", input.VideoID, err)
		return video.GetWithCommentsOutput{}, err
	}

	if len(ytComments) == 0 {
		return video.GetWithCommentsOutput{}, video.ErrNoComments
	}

	v := toModelVideo(ytVideo)
	comments := make([]model.Comment, len(ytComments))
	for i, c := range ytComments {
		comments[i] = model.Comment{
			ID:          c.ID,
			VideoID:     c.VideoID,
			Author:      c.Author,
			Text:        c.Text,
			LikeCount:   c.LikeCount,
			PublishedAt: c.PublishedAt,
			// The creator commenting on their own video is the only verified
			// identity the comment payload exposes.
			AuthorVerified: c.AuthorChannelID != "" && c.AuthorChannelID == v.ChannelID,
		}
	}

	uc.l.Debugf(ctx, "video.usecase.GetWithComments: video=%s comments=%d", input.VideoID, len(comments))
	return video.GetWithCommentsOutput{Video: v, Comments: comments}, nil
}

func toModelVideo(v *youtube.Video) *model.Video {
	if v == nil {
		return nil
	}
	return &model.Video{
		ID:           v.ID,
		Title:        v.Title,
		ChannelID:    v.ChannelID,
		ChannelTitle: v.ChannelTitle,
		PublishedAt:  v.PublishedAt,
		ViewCount:    v.ViewCount,
		LikeCount:    v.LikeCount,
		CommentCount: v.CommentCount,
	}
}
