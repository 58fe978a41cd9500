package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Kafka publishes changes as JSON records keyed by date, so every change for
// one date lands on the same partition in order.
type Kafka struct {
	client *kgo.Client
	topic  string
}

// NewKafka returns a publisher writing to topic. The client lifecycle is
// managed by the caller.
func NewKafka(client *kgo.Client, topic string) *Kafka {
	return &Kafka{client: client, topic: topic}
}

func (k *Kafka) Publish(ctx context.Context, change Change) error {
	value, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("encode change: %w", err)
	}
	record := &kgo.Record{
		Topic: k.topic,
		Key:   []byte(change.Date),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "op", Value: []byte(change.Op)},
		},
	}
	if err := k.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce change: %w", err)
	}
	return nil
}
