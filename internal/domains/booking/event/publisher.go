package event

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=../mocks/publisher_mock.go -package=mocks

import (
	"context"
	"rideflow/config"
	"rideflow/infras/kafka"
	"rideflow/infras/metrics"
	"rideflow/infras/otel"
	"rideflow/internal/domains/booking/model"
	"rideflow/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	outcomeSent   = "sent"
	outcomeFailed = "failed"
)

// Publisher hands booking lifecycle events to downstream consumers (refunds, notifications).
type Publisher interface {
	Publish(ctx context.Context, event model.Event)
}

type publisherImpl struct {
	client  kafka.Client
	topic   string
	metrics *metrics.Metrics
	otel    otel.Otel
}

func New(client kafka.Client, cfg *config.Config, metrics *metrics.Metrics, otel otel.Otel) Publisher {
	return &publisherImpl{
		client:  client,
		topic:   cfg.Kafka.Topic.BookingEvents,
		metrics: metrics,
		otel:    otel,
	}
}

// Publish is best effort; failures are logged and counted, never returned.
func (p *publisherImpl) Publish(ctx context.Context, event model.Event) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	scope.SetAttribute("booking.id", event.BookingID)
	scope.SetAttribute("booking.event", string(event.Type))

	err := p.client.SendMessages(ctx, p.topic, kafka.Message{Key: event.BookingID, Value: event})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", event.BookingID).Str("type", string(event.Type)).Msg("failed to publish booking event")
		p.metrics.BookingEvents.WithLabelValues(string(event.Type), outcomeFailed).Inc()

		return
	}

	p.metrics.BookingEvents.WithLabelValues(string(event.Type), outcomeSent).Inc()
}
