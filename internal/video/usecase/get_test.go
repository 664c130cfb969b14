package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"trustrate-srv/internal/model"
	"trustrate-srv/internal/video"
	"trustrate-srv/pkg/youtube"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Fatal(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {}

type fakeYouTube struct {
	video       *youtube.Video
	videoErr    error
	comments    []youtube.Comment
	commentsErr error
	maxSeen     int
}

func (f *fakeYouTube) GetVideo(ctx context.Context, videoID string) (*youtube.Video, error) {
	return f.video, f.videoErr
}

func (f *fakeYouTube) ListComments(ctx context.Context, videoID string, maxComments int) ([]youtube.Comment, error) {
	f.maxSeen = maxComments
	if f.commentsErr != nil {
		return nil, f.commentsErr
	}
	if len(f.comments) > maxComments {
		return f.comments[:maxComments], nil
	}
	return f.comments, nil
}

func testVideo() *youtube.Video {
	return &youtube.Video{
		ID:           "vid-1",
		Title:        "Test Video",
		ChannelID:    "chan-1",
		ChannelTitle: "Test Channel",
		ViewCount:    10000,
		LikeCount:    500,
		CommentCount: 42,
	}
}

func testComments(n int) []youtube.Comment {
	comments := make([]youtube.Comment, n)
	for i := range comments {
		comments[i] = youtube.Comment{
			ID:              fmt.Sprintf("c%d", i),
			VideoID:         "vid-1",
			Author:          fmt.Sprintf("Viewer %d", i),
			AuthorChannelID: fmt.Sprintf("chan-viewer-%d", i),
			Text:            fmt.Sprintf("comment number %d with some substance", i),
			LikeCount:       i,
		}
	}
	return comments
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "tester"}

	t.Run("missing video id", func(t *testing.T) {
		uc := New(&fakeYouTube{}, nopLogger{}, DefaultConfig())
		if _, err := uc.Get(ctx, sc, ""); !errors.Is(err, video.ErrVideoIDRequired) {
			t.Errorf("err = %v, want ErrVideoIDRequired", err)
		}
	})

	t.Run("not found mapped to domain error", func(t *testing.T) {
		uc := New(&fakeYouTube{videoErr: youtube.ErrVideoNotFound}, nopLogger{}, DefaultConfig())
		if _, err := uc.Get(ctx, sc, "missing"); !errors.Is(err, video.ErrVideoNotFound) {
			t.Errorf("err = %v, want ErrVideoNotFound", err)
		}
	})

	t.Run("maps fields", func(t *testing.T) {
		uc := New(&fakeYouTube{video: testVideo()}, nopLogger{}, DefaultConfig())
		got, err := uc.Get(ctx, sc, "vid-1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.ID != "vid-1" || got.ChannelID != "chan-1" || got.ViewCount != 10000 {
			t.Errorf("mapped video = %+v", got)
		}
	})
}

func TestGetWithComments(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "tester"}

	t.Run("happy path", func(t *testing.T) {
		uc := New(&fakeYouTube{video: testVideo(), comments: testComments(10)}, nopLogger{}, DefaultConfig())
		out, err := uc.GetWithComments(ctx, sc, video.GetWithCommentsInput{VideoID: "vid-1"})
		if err != nil {
			t.Fatalf("GetWithComments: %v", err)
		}
		if out.Video == nil || out.Video.ID != "vid-1" {
			t.Fatalf("video = %+v", out.Video)
		}
		if len(out.Comments) != 10 {
			t.Errorf("comments = %d, want 10", len(out.Comments))
		}
	})

	t.Run("creator comments marked verified", func(t *testing.T) {
		comments := testComments(5)
		comments[2].AuthorChannelID = "chan-1"
		uc := New(&fakeYouTube{video: testVideo(), comments: comments}, nopLogger{}, DefaultConfig())

		out, err := uc.GetWithComments(ctx, sc, video.GetWithCommentsInput{VideoID: "vid-1"})
		if err != nil {
			t.Fatalf("GetWithComments: %v", err)
		}
		for i, c := range out.Comments {
			want := i == 2
			if c.AuthorVerified != want {
				t.Errorf("Comments[%d].AuthorVerified = %v, want %v", i, c.AuthorVerified, want)
			}
		}
	})

	t.Run("comments disabled", func(t *testing.T) {
		uc := New(&fakeYouTube{video: testVideo(), commentsErr: youtube.ErrCommentsDisabled}, nopLogger{}, DefaultConfig())
		_, err := uc.GetWithComments(ctx, sc, video.GetWithCommentsInput{VideoID: "vid-1"})
		if !errors.Is(err, video.ErrNoComments) {
			t.Errorf("err = %v, want ErrNoComments", err)
		}
	})

	t.Run("zero comments", func(t *testing.T) {
		uc := New(&fakeYouTube{video: testVideo()}, nopLogger{}, DefaultConfig())
		_, err := uc.GetWithComments(ctx, sc, video.GetWithCommentsInput{VideoID: "vid-1"})
		if !errors.Is(err, video.ErrNoComments) {
			t.Errorf("err = %v, want ErrNoComments", err)
		}
	})

	t.Run("video not found wins over comments", func(t *testing.T) {
		uc := New(&fakeYouTube{videoErr: youtube.ErrVideoNotFound, comments: testComments(3)}, nopLogger{}, DefaultConfig())
		_, err := uc.GetWithComments(ctx, sc, video.GetWithCommentsInput{VideoID: "gone"})
		if !errors.Is(err, video.ErrVideoNotFound) {
			t.Errorf("err = %v, want ErrVideoNotFound", err)
		}
	})

	t.Run("request capped at configured maximum", func(t *testing.T) {
		yt := &fakeYouTube{video: testVideo(), comments: testComments(10)}
		uc := New(yt, nopLogger{}, Config{MaxComments: 200})

		if _, err := uc.GetWithComments(ctx, sc, video.GetWithCommentsInput{VideoID: "vid-1", MaxComments: 5000}); err != nil {
			t.Fatalf("GetWithComments: %v", err)
		}
		if yt.maxSeen != 200 {
			t.Errorf("maxComments passed through = %d, want 200", yt.maxSeen)
		}
	})
}
