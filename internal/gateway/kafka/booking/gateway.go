package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
	retrierconfig "service/pkg/retrier"
	"service/pkg/retrier/backoff_adapter"
)

const serviceName = "booking-app"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// BookingGateway publishes converted inquiries to the external booking
// application over Kafka. The send is fire-and-confirm: a nil return means
// the broker accepted the event, not that the LR exists yet. The created LR
// comes back later on the booking.created topic.
type BookingGateway struct {
	producer producer
	topic    string
	retrier  retrier
}

func New(producer producer, topic string) *BookingGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil,
	}

	return &BookingGateway{
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

func (g *BookingGateway) PublishInquiryConverted(ctx context.Context, inquiry entities.Inquiry) error {
	event := toEvent(inquiry)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("gateway booking, marshal inquiry %s: %w", inquiry.ID, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(inquiry.ID),
		Value: sarama.ByteEncoder(payload),
	}

	err = g.executeWithMetrics(ctx, "PublishInquiryConverted", func(_ context.Context) error {
		_, _, err := g.producer.SendMessage(msg)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway booking, publish inquiry %s: %w", inquiry.ID, err)
	}

	return nil
}

func (g *BookingGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := resultLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, result).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, result).Inc()
	}

	return err
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}
