package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rideflow/infras/otel"
	"rideflow/infras/postgres"
	"rideflow/internal/domains/user/model"
	"rideflow/shared/constant"
	gDto "rideflow/shared/dto"
	"rideflow/shared/logger"
	gRepo "rideflow/shared/repository"
)

// Drivers inside the earth_box pre-filter are re-checked with the exact distance so the
// GiST index on ll_to_earth(location_lat, location_lng) narrows the scan.
const queryNearbyDrivers = `SELECT id, name, phone, location_lng, location_lat,
	earth_distance(ll_to_earth(location_lat, location_lng), ll_to_earth(:lat, :lng)) AS distance
FROM users
WHERE role = :role
	AND is_active
	AND location_lat IS NOT NULL
	AND location_lng IS NOT NULL
	AND earth_box(ll_to_earth(:lat, :lng), :radius) @> ll_to_earth(location_lat, location_lng)
	AND earth_distance(ll_to_earth(location_lat, location_lng), ll_to_earth(:lat, :lng)) <= :radius
ORDER BY distance
LIMIT :limit`

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	FindNearbyDrivers(ctx context.Context, lng, lat, radius float64, limit int) ([]model.NearbyDriver, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) FindNearbyDrivers(ctx context.Context, lng, lat, radius float64, limit int) ([]model.NearbyDriver, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.FindNearbyDrivers")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryNearbyDrivers)

	drivers := []model.NearbyDriver{}

	prepare, err := r.db.Read.PrepareNamedContext(ctx, queryNearbyDrivers)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return drivers, fmt.Errorf("failed to prepare nearby drivers statement: %w", err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &drivers, map[string]any{
		"lng":    lng,
		"lat":    lat,
		"radius": radius,
		"role":   constant.RoleDriver,
		"limit":  limit,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return drivers, fmt.Errorf("failed to find nearby drivers: %w", err)
	}

	return drivers, nil
}

// EmailFilter matches the account registered under email.
func EmailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldEmail, Value: email, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}
