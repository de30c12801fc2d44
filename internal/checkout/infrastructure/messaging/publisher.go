package messaging

import (
	"context"

	"github.com/tokobajusablon/storefront/internal/checkout/domain"
	"github.com/tokobajusablon/storefront/pkg/mq"
)

type kafkaPublisher struct {
	producer *mq.Producer
}

// NewKafkaPublisher adapts the Kafka producer to the checkout event
// publisher port.
func NewKafkaPublisher(producer *mq.Producer) domain.EventPublisher {
	return &kafkaPublisher{producer: producer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, topic, key string, event any) error {
	return p.producer.SendMessage(ctx, topic, key, event)
}
