package kafka

import "context"

// IProducer defines the interface for publishing messages to Kafka.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(ctx context.Context, key, value []byte) error
	HealthCheck() error
	Close() error
}
