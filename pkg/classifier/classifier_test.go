package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatus(t *testing.T) {
	t.Run("healthy with model loaded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/sentiment/status" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(StatusOutput{Status: "healthy", ModelLoaded: true, Device: "cpu"})
		}))
		defer srv.Close()

		c, err := NewClassifier(ClassifierConfig{BaseURL: srv.URL})
		if err != nil {
			t.Fatalf("NewClassifier failed: %v", err)
		}

		out, err := c.Status(context.Background())
		if err != nil {
			t.Fatalf("Status failed: %v", err)
		}
		if !out.Healthy() {
			t.Error("expected Healthy() to be true")
		}
	})

	t.Run("healthy status but model not loaded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(StatusOutput{Status: "healthy", ModelLoaded: false})
		}))
		defer srv.Close()

		c, _ := NewClassifier(ClassifierConfig{BaseURL: srv.URL})
		out, err := c.Status(context.Background())
		if err != nil {
			t.Fatalf("Status failed: %v", err)
		}
		if out.Healthy() {
			t.Error("expected Healthy() to be false when model is not loaded")
		}
	})

	t.Run("non-200 counts as unhealthy", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		c, _ := NewClassifier(ClassifierConfig{BaseURL: srv.URL})
		if _, err := c.Status(context.Background()); err == nil {
			t.Error("expected error for 503 status")
		}
	})

	t.Run("unreachable service", func(t *testing.T) {
		c, _ := NewClassifier(ClassifierConfig{BaseURL: "http://127.0.0.1:1"})
		if _, err := c.Status(context.Background()); err == nil {
			t.Error("expected error for unreachable service")
		}
	})
}

func TestClassify(t *testing.T) {
	t.Run("returns parallel results", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/sentiment" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			var req Request
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("failed to decode request: %v", err)
			}
			results := make([]Result, len(req.Texts))
			for i := range req.Texts {
				results[i] = Result{Label: "positive", Score: 0.91}
			}
			json.NewEncoder(w).Encode(ClassifyOutput{Results: results, ProcessingTime: 0.12})
		}))
		defer srv.Close()

		c, _ := NewClassifier(ClassifierConfig{BaseURL: srv.URL})
		out, err := c.Classify(context.Background(), []string{"great video", "loved it"})
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if len(out.Results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(out.Results))
		}
		if out.Results[0].Label != "positive" {
			t.Errorf("unexpected label: %s", out.Results[0].Label)
		}
	})

	t.Run("empty input short-circuits", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		c, _ := NewClassifier(ClassifierConfig{BaseURL: srv.URL})
		out, err := c.Classify(context.Background(), nil)
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		if called {
			t.Error("expected no request for empty input")
		}
		if len(out.Results) != 0 {
			t.Errorf("expected no results, got %d", len(out.Results))
		}
	})

	t.Run("server error surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		c, _ := NewClassifier(ClassifierConfig{BaseURL: srv.URL})
		if _, err := c.Classify(context.Background(), []string{"text"}); err == nil {
			t.Error("expected error for 400 status")
		}
	})
}
