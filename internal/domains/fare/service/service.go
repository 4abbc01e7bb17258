package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rideflow/config"
	"rideflow/infras/metrics"
	"rideflow/infras/otel"
	"rideflow/internal/domains/fare/model"
	"rideflow/internal/domains/fare/model/dto"
	"rideflow/shared/constant"
	"rideflow/shared/failure"
	"strings"

	"github.com/rs/zerolog/log"
)

type Fare interface {
	Calculate(ctx context.Context, req dto.CalculateFareRequest) (dto.FareResponse, error)
	Quote(ctx context.Context, class model.VehicleClass, distanceKm, durationMin float64, promoCode string) (model.Breakdown, error)
	Rates(ctx context.Context) dto.RatesResponse
}

type serviceImpl struct {
	cfg     *config.Config
	otel    otel.Otel
	metrics *metrics.Metrics
}

func New(cfg *config.Config, otel otel.Otel, metrics *metrics.Metrics) Fare {
	return &serviceImpl{
		cfg:     cfg,
		otel:    otel,
		metrics: metrics,
	}
}

// Calculate returns an estimate. It never applies a promo code.
func (s *serviceImpl) Calculate(ctx context.Context, req dto.CalculateFareRequest) (res dto.FareResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calculate")
	defer scope.End()

	class, distance, duration := req.Inputs()
	if !class.Valid() {
		log.Debug().Str("vehicleType", string(class)).Msg("unknown vehicle type, charging mini rates")

		class = model.VehicleMini
	}

	scope.SetAttributes(map[string]any{
		"fare.vehicle_type": string(class),
		"fare.distance_km":  distance,
		"fare.duration_min": duration,
	})

	res.FromModel(model.Calculate(class, distance, duration))

	s.metrics.FareEstimates.WithLabelValues(string(class)).Inc()

	return res, nil
}

// Quote prices a confirmed trip, applying promoCode when it is not empty.
func (s *serviceImpl) Quote(ctx context.Context, class model.VehicleClass, distanceKm, durationMin float64, promoCode string) (fare model.Breakdown, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	fare = model.Calculate(class, distanceKm, durationMin)

	code := strings.ToUpper(strings.TrimSpace(promoCode))
	if code == constant.Empty {
		return fare, nil
	}

	percent, ok := s.cfg.Fare.PromoCodes[code]
	if !ok {
		err = failure.BadRequestFromString(fmt.Sprintf("promo code %s is not valid", promoCode))

		return fare, err
	}

	scope.SetAttribute("fare.promo_code", code)

	return fare.WithPercentDiscount(percent), nil
}

func (s *serviceImpl) Rates(ctx context.Context) (res dto.RatesResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rates")
	defer scope.End()

	res.FromModel()

	return res
}
