package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"trustrate-srv/internal/analysis"
	"trustrate-srv/internal/model"
	"trustrate-srv/pkg/classifier"
)

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("missing video id", func(t *testing.T) {
		uc := newTestUseCase(&fakeClassifier{status: healthyStatus()})
		_, err := uc.Analyze(ctx, testScope(), analysis.AnalyzeInput{})
		if !errors.Is(err, analysis.ErrVideoIDRequired) {
			t.Errorf("err = %v, want ErrVideoIDRequired", err)
		}
	})

	t.Run("video id resolved from the video", func(t *testing.T) {
		uc := newTestUseCase(&fakeClassifier{statusErr: errors.New("down")})
		out, err := uc.Analyze(ctx, testScope(), analysis.AnalyzeInput{
			Video:    &model.Video{ID: "from-video"},
			Comments: makeComments(5),
		})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if out.Analysis.VideoID != "from-video" {
			t.Errorf("VideoID = %s, want from-video", out.Analysis.VideoID)
		}
	})

	t.Run("classifier outage never fails the pipeline", func(t *testing.T) {
		uc := newTestUseCase(&fakeClassifier{statusErr: errors.New("connection refused")})
		out, err := uc.Analyze(ctx, testScope(), analysis.AnalyzeInput{
			VideoID:  "vid-1",
			Comments: makeComments(40),
		})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if !out.Analysis.Fallback {
			t.Error("Fallback flag must be set when the service is down")
		}
		if out.Analysis.TotalComments != 40 {
			t.Errorf("TotalComments = %d, want 40", out.Analysis.TotalComments)
		}
	})

	t.Run("every sampled comment fully annotated", func(t *testing.T) {
		cl := &fakeClassifier{
			status: healthyStatus(),
			classifyFn: func(ctx context.Context, texts []string) (classifier.ClassifyOutput, error) {
				out := classifier.ClassifyOutput{Results: make([]classifier.Result, len(texts))}
				for i := range texts {
					out.Results[i] = classifier.Result{Label: "positive", Score: 0.9}
				}
				return out, nil
			},
		}
		uc := newTestUseCase(cl)
		comments := makeComments(30)
		comments[3].Text = "subscribe to my channel for daily uploads"
		comments[7].Text = "WOW"

		out, err := uc.Analyze(ctx, testScope(), analysis.AnalyzeInput{VideoID: "vid-1", Comments: comments})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if out.Analysis.Fallback {
			t.Error("unexpected fallback with a healthy classifier")
		}
		for i, c := range out.Sampled {
			if !c.Analyzed {
				t.Fatalf("Sampled[%d] not marked analyzed", i)
			}
			if c.Sentiment == "" {
				t.Fatalf("Sampled[%d] has no sentiment", i)
			}
		}
		if out.Analysis.SpamCount != 1 {
			t.Errorf("SpamCount = %d, want 1", out.Analysis.SpamCount)
		}
		// "WOW" is under the minimum length.
		if out.Analysis.BotLikeCount < 1 {
			t.Errorf("BotLikeCount = %d, want >= 1", out.Analysis.BotLikeCount)
		}
		if out.Analysis.SuspiciousCount < 2 {
			t.Errorf("SuspiciousCount = %d, want >= 2", out.Analysis.SuspiciousCount)
		}
	})

	t.Run("large input sampled down", func(t *testing.T) {
		uc := newTestUseCase(&fakeClassifier{statusErr: errors.New("down")})
		out, err := uc.Analyze(ctx, testScope(), analysis.AnalyzeInput{
			VideoID:  "vid-1",
			Comments: makeComments(2500),
		})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if got := len(out.Sampled); got != analysis.ModeComprehensive.MaxComments {
			t.Errorf("sampled %d comments, want %d", got, analysis.ModeComprehensive.MaxComments)
		}
		if out.Analysis.TotalComments != analysis.ModeComprehensive.MaxComments {
			t.Errorf("TotalComments = %d, want sampled count", out.Analysis.TotalComments)
		}
	})

	t.Run("side effects reach cache, store and publisher", func(t *testing.T) {
		cache := newFakeCacheRepo()
		store := &fakePostgresRepo{}
		pub := &fakePublisher{}
		uc := New(&fakeClassifier{statusErr: errors.New("down")}, cache, store, pub, nopLogger{}, DefaultConfig()).(*implUseCase)

		out, err := uc.Analyze(ctx, testScope(), analysis.AnalyzeInput{VideoID: "vid-9", Comments: makeComments(12)})
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if _, ok := cache.entries["vid-9"]; !ok {
			t.Error("analysis not cached")
		}
		if len(store.created) != 1 {
			t.Fatalf("persisted %d analyses, want 1", len(store.created))
		}
		if len(pub.published) != 1 || pub.published[0].ID != out.Analysis.ID {
			t.Errorf("published = %+v, want the produced analysis", pub.published)
		}
	})

	t.Run("cache failure is non fatal", func(t *testing.T) {
		cache := newFakeCacheRepo()
		cache.saveErr = fmt.Errorf("redis gone")
		uc := New(&fakeClassifier{statusErr: errors.New("down")}, cache, nil, nil, nopLogger{}, DefaultConfig()).(*implUseCase)

		if _, err := uc.Analyze(ctx, testScope(), analysis.AnalyzeInput{VideoID: "vid-1", Comments: makeComments(3)}); err != nil {
			t.Errorf("Analyze must tolerate cache failure, got %v", err)
		}
	})
}
