package usecase

import (
	"fmt"
	"testing"

	"trustrate-srv/internal/analysis"
	"trustrate-srv/internal/model"
)

func makeComments(n int) []model.Comment {
	comments := make([]model.Comment, n)
	for i := range comments {
		comments[i] = model.Comment{
			ID:        fmt.Sprintf("c%d", i),
			VideoID:   "video-1",
			Author:    fmt.Sprintf("Author Name %d", i),
			Text:      fmt.Sprintf("this is a reasonably long comment number %d", i),
			LikeCount: i,
		}
	}
	return comments
}

func TestSelectMode(t *testing.T) {
	cases := []struct {
		total int
		want  analysis.Mode
	}{
		{0, analysis.ModeFast},
		{199, analysis.ModeFast},
		{200, analysis.ModeBalanced},
		{1000, analysis.ModeBalanced},
		{1001, analysis.ModeComprehensive},
		{50000, analysis.ModeComprehensive},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("total=%d", tc.total), func(t *testing.T) {
			if got := selectMode(tc.total); got.Name != tc.want.Name {
				t.Errorf("selectMode(%d) = %s, want %s", tc.total, got.Name, tc.want.Name)
			}
		})
	}
}

func TestEngagementScore(t *testing.T) {
	t.Run("verified bonus", func(t *testing.T) {
		base := model.Comment{Text: "same text here", LikeCount: 3}
		verified := base
		verified.AuthorVerified = true
		if engagementScore(verified)-engagementScore(base) != 10 {
			t.Errorf("verified bonus = %v, want 10", engagementScore(verified)-engagementScore(base))
		}
	})

	t.Run("likes dominate length", func(t *testing.T) {
		liked := model.Comment{Text: "short", LikeCount: 100}
		long := model.Comment{Text: string(make([]byte, 500))}
		if engagementScore(liked) <= engagementScore(long) {
			t.Errorf("100 likes should outrank 500 chars")
		}
	})
}

func TestSample(t *testing.T) {
	t.Run("under limit returns copy", func(t *testing.T) {
		uc := newTestUseCase(nil)
		comments := makeComments(100)
		got := uc.sample(comments, analysis.ModeFast)
		if len(got) != 100 {
			t.Fatalf("len = %d, want 100", len(got))
		}
		got[0].Text = "mutated"
		if comments[0].Text == "mutated" {
			t.Error("sample must not alias the input slice")
		}
	})

	t.Run("top engagement keeps the highest ranked", func(t *testing.T) {
		uc := newTestUseCase(nil)
		comments := makeComments(180)
		got := uc.sample(comments, analysis.ModeFast)
		if len(got) != analysis.ModeFast.MaxComments {
			t.Fatalf("len = %d, want %d", len(got), analysis.ModeFast.MaxComments)
		}
		// Likes increase with index, so the head of the sample is the tail of
		// the input and nothing below the cutoff appears.
		if got[0].ID != "c179" {
			t.Errorf("first sampled = %s, want c179", got[0].ID)
		}
		for _, c := range got {
			if c.LikeCount < 180-analysis.ModeFast.MaxComments {
				t.Errorf("comment %s (likes=%d) is below the engagement cutoff", c.ID, c.LikeCount)
			}
		}
	})

	t.Run("stratified size and uniqueness", func(t *testing.T) {
		uc := newTestUseCase(nil)
		comments := makeComments(800)
		got := uc.sample(comments, analysis.ModeBalanced)
		if len(got) != analysis.ModeBalanced.MaxComments {
			t.Fatalf("len = %d, want %d", len(got), analysis.ModeBalanced.MaxComments)
		}
		seen := make(map[string]bool, len(got))
		for _, c := range got {
			if seen[c.ID] {
				t.Fatalf("comment %s sampled twice", c.ID)
			}
			seen[c.ID] = true
		}
	})

	t.Run("stratified includes the top stratum", func(t *testing.T) {
		uc := newTestUseCase(nil)
		comments := makeComments(800)
		got := uc.sample(comments, analysis.ModeBalanced)
		sampled := make(map[string]bool, len(got))
		for _, c := range got {
			sampled[c.ID] = true
		}
		// Top 40% of the 300-comment budget is the 120 highest-liked comments.
		for i := 799; i >= 680; i-- {
			id := fmt.Sprintf("c%d", i)
			if !sampled[id] {
				t.Errorf("top-engagement comment %s missing from stratified sample", id)
			}
		}
	})
}
