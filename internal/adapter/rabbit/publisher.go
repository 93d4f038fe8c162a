package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/teleka/teleka-taxi/internal/domain/models"
	wrap "github.com/teleka/teleka-taxi/pkg/logger/wrapper"
	"github.com/teleka/teleka-taxi/pkg/metrics"
	"github.com/teleka/teleka-taxi/pkg/rabbit"
)

// EventPublisher pushes ride lifecycle events to the topic exchange so
// external consumers (billing, analytics) can follow request state.
type EventPublisher struct {
	client   *rabbit.RabbitMQ
	exchange string
}

func NewEventPublisher(client *rabbit.RabbitMQ, exchange string) *EventPublisher {
	return &EventPublisher{
		client:   client,
		exchange: exchange,
	}
}

// PublishLifecycleEvent publishes an event keyed request.<event type>.
func (p *EventPublisher) PublishLifecycleEvent(ctx context.Context, event models.LifecycleEvent) error {
	const op = "EventPublisher.PublishLifecycleEvent"

	if p.client.IsConnectionClosed() {
		return wrap.Error(ctx, fmt.Errorf("%s: connection is closed", op))
	}

	body, err := json.Marshal(event)
	if err != nil {
		ctx = wrap.WithAction(ctx, "marshal_event")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to marshal event: %w", op, err))
	}

	key := fmt.Sprintf("request.%s", event.Type)

	if err := p.client.Channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		key,        // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	); err != nil {
		metrics.RecordBrokerPublish(key, err)
		ctx = wrap.WithAction(ctx, "publish_event")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to publish with context: %w", op, err))
	}

	metrics.RecordBrokerPublish(key, nil)
	return nil
}
