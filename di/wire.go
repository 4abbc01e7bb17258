//go:build wireinject
// +build wireinject

package di

import (
	"rideflow/config"
	"rideflow/infras/jwt"
	"rideflow/infras/kafka"
	"rideflow/infras/metrics"
	"rideflow/infras/otel"
	"rideflow/infras/postgres"
	"rideflow/infras/redis"
	"rideflow/infras/s3"
	"rideflow/permissions"
	"rideflow/shared/cache"
	"rideflow/transport/http"
	"rideflow/transport/http/middleware"
	"rideflow/transport/http/router"

	"github.com/google/wire"

	authService "rideflow/internal/domains/auth/service"
	bookingEvent "rideflow/internal/domains/booking/event"
	bookingRepository "rideflow/internal/domains/booking/repository"
	bookingService "rideflow/internal/domains/booking/service"
	fareService "rideflow/internal/domains/fare/service"
	placeService "rideflow/internal/domains/place/service"
	userRepository "rideflow/internal/domains/user/repository"
	userService "rideflow/internal/domains/user/service"

	authHandler "rideflow/internal/handlers/auth"
	bookingHandler "rideflow/internal/handlers/booking"
	driverHandler "rideflow/internal/handlers/driver"
	fareHandler "rideflow/internal/handlers/fare"
	placeHandler "rideflow/internal/handlers/place"
	userHandler "rideflow/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var fareDomain = wire.NewSet(
	fareService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.New,
	bookingService.New,
)

var placeDomain = wire.NewSet(
	placeService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	fareDomain,
	bookingDomain,
	placeDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	bookingHandler.New,
	driverHandler.New,
	fareHandler.New,
	placeHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
