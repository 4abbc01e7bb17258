package service

import (
	"rideflow/config"
	"rideflow/infras/otel"
	"rideflow/infras/s3"
	"rideflow/internal/domains/user/repository"
	"rideflow/shared/cache"
)

// NewInline runs cache and storage cleanup on the calling goroutine so mocks can assert them.
func NewInline(repo repository.User, storage s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	svc, _ := New(repo, storage, cfg, cache, otel).(*serviceImpl)
	svc.async = func(f func()) { f() }

	return svc
}
