package service

import (
	"rideflow/config"
	"rideflow/infras/metrics"
	"rideflow/infras/otel"
	"rideflow/internal/domains/booking/event"
	"rideflow/internal/domains/booking/repository"
	fareService "rideflow/internal/domains/fare/service"
	"rideflow/shared/cache"
)

// NewInline runs cache writes and event publishing on the calling goroutine so mocks can assert them.
func NewInline(
	repo repository.Booking,
	fare fareService.Fare,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	metrics *metrics.Metrics,
	otel otel.Otel,
) Booking {
	svc, _ := New(repo, fare, publisher, cfg, cache, metrics, otel).(*serviceImpl)
	svc.async = func(f func()) { f() }

	return svc
}
