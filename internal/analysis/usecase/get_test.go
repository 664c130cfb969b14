package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"trustrate-srv/internal/analysis"
	"trustrate-srv/internal/model"
)

func TestGetByVideo(t *testing.T) {
	ctx := context.Background()
	stored := model.Analysis{
		ID:        "a-1",
		VideoID:   "vid-1",
		Rating:    4.2,
		CreatedAt: time.Now(),
	}

	t.Run("missing video id", func(t *testing.T) {
		uc := newTestUseCase(&fakeClassifier{})
		_, err := uc.GetByVideo(ctx, testScope(), "")
		if !errors.Is(err, analysis.ErrVideoIDRequired) {
			t.Errorf("err = %v, want ErrVideoIDRequired", err)
		}
	})

	t.Run("cache hit", func(t *testing.T) {
		cache := newFakeCacheRepo()
		cache.entries["vid-1"] = stored
		uc := New(&fakeClassifier{}, cache, &fakePostgresRepo{}, nil, nopLogger{}, DefaultConfig())

		got, err := uc.GetByVideo(ctx, testScope(), "vid-1")
		if err != nil {
			t.Fatalf("GetByVideo: %v", err)
		}
		if got.ID != "a-1" {
			t.Errorf("ID = %s, want a-1", got.ID)
		}
	})

	t.Run("cache miss falls back to postgres and refreshes cache", func(t *testing.T) {
		cache := newFakeCacheRepo()
		store := &fakePostgresRepo{created: []model.Analysis{stored}}
		uc := New(&fakeClassifier{}, cache, store, nil, nopLogger{}, DefaultConfig())

		got, err := uc.GetByVideo(ctx, testScope(), "vid-1")
		if err != nil {
			t.Fatalf("GetByVideo: %v", err)
		}
		if got.ID != "a-1" {
			t.Errorf("ID = %s, want a-1", got.ID)
		}
		if _, ok := cache.entries["vid-1"]; !ok {
			t.Error("cache not refreshed after store hit")
		}
	})

	t.Run("latest row wins", func(t *testing.T) {
		newer := stored
		newer.ID = "a-2"
		store := &fakePostgresRepo{created: []model.Analysis{stored, newer}}
		uc := New(&fakeClassifier{}, nil, store, nil, nopLogger{}, DefaultConfig())

		got, err := uc.GetByVideo(ctx, testScope(), "vid-1")
		if err != nil {
			t.Fatalf("GetByVideo: %v", err)
		}
		if got.ID != "a-2" {
			t.Errorf("ID = %s, want the most recent analysis", got.ID)
		}
	})

	t.Run("not found anywhere", func(t *testing.T) {
		uc := New(&fakeClassifier{}, newFakeCacheRepo(), &fakePostgresRepo{}, nil, nopLogger{}, DefaultConfig())
		_, err := uc.GetByVideo(ctx, testScope(), "unknown")
		if !errors.Is(err, analysis.ErrAnalysisNotFound) {
			t.Errorf("err = %v, want ErrAnalysisNotFound", err)
		}
	})

	t.Run("no repositories wired", func(t *testing.T) {
		uc := newTestUseCase(&fakeClassifier{})
		_, err := uc.GetByVideo(ctx, testScope(), "vid-1")
		if !errors.Is(err, analysis.ErrAnalysisNotFound) {
			t.Errorf("err = %v, want ErrAnalysisNotFound", err)
		}
	})
}
