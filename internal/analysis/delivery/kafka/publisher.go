package kafka

import (
	"context"
	"encoding/json"

	"trustrate-srv/internal/analysis"
	"trustrate-srv/internal/model"
	pkgKafka "trustrate-srv/pkg/kafka"
	"trustrate-srv/pkg/log"
)

type implPublisher struct {
	producer pkgKafka.IProducer
	l        log.Logger
}

// NewPublisher - Factory function.
func NewPublisher(producer pkgKafka.IProducer, l log.Logger) analysis.EventPublisher {
	return &implPublisher{
		producer: producer,
		l:        l,
	}
}

// AnalysisCompleted publishes the completion event keyed by video ID.
func (p *implPublisher) AnalysisCompleted(ctx context.Context, a model.Analysis) error {
	msg := newAnalysisCompletedMsg(a)
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	if err := p.producer.Publish(ctx, []byte(a.VideoID), value); err != nil {
		p.l.Errorf(ctx, "analysis.delivery.kafka.AnalysisCompleted: publish failed: %v", err)
		return err
	}
	p.l.Debugf(ctx, "analysis.delivery.kafka.AnalysisCompleted: published event for video %s", a.VideoID)
	return nil
}
