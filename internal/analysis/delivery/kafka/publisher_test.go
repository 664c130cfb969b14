package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"trustrate-srv/internal/model"
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

type fakeProducer struct {
	key   []byte
	value []byte
	err   error
}

func (f *fakeProducer) Publish(ctx context.Context, key, value []byte) error {
	if f.err != nil {
		return f.err
	}
	f.key = key
	f.value = value
	return nil
}

func (f *fakeProducer) HealthCheck() error { return nil }
func (f *fakeProducer) Close() error       { return nil }

func TestAnalysisCompleted(t *testing.T) {
	ctx := context.Background()
	a := model.Analysis{
		ID:                "a-1",
		VideoID:           "vid-1",
		TotalComments:     300,
		Rating:            4.1,
		Confidence:        0.62,
		EngagementQuality: model.EngagementGood,
	}

	t.Run("publishes keyed by video id", func(t *testing.T) {
		producer := &fakeProducer{}
		pub := NewPublisher(producer, nopLogger{})

		if err := pub.AnalysisCompleted(ctx, a); err != nil {
			t.Fatalf("AnalysisCompleted: %v", err)
		}
		if string(producer.key) != "vid-1" {
			t.Errorf("key = %s, want vid-1", producer.key)
		}

		var msg analysisCompletedMsg
		if err := json.Unmarshal(producer.value, &msg); err != nil {
			t.Fatalf("unmarshal payload: %v", err)
		}
		if msg.Event != EventAnalysisCompleted {
			t.Errorf("event = %s, want %s", msg.Event, EventAnalysisCompleted)
		}
		if msg.AnalysisID != "a-1" || msg.Rating != 4.1 || msg.EngagementQuality != "Good" {
			t.Errorf("payload = %+v", msg)
		}
	})

	t.Run("propagates producer errors", func(t *testing.T) {
		producer := &fakeProducer{err: errors.New("broker down")}
		pub := NewPublisher(producer, nopLogger{})

		if err := pub.AnalysisCompleted(ctx, a); err == nil {
			t.Error("expected error from failing producer")
		}
	})
}
