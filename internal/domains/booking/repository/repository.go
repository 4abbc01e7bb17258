package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"rideflow/infras/otel"
	"rideflow/infras/postgres"
	"rideflow/internal/domains/booking/model"
	gDto "rideflow/shared/dto"
	gRepo "rideflow/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// VersionedFilter matches a booking only while it is still at the version the caller read.
func VersionedFilter(id string, version int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{
				Field:    model.FieldVersion,
				Value:    version,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
				ArgName:  model.ArgCurrentVersion,
			},
		},
	}
}

// OwnerFilter restricts bookings to one rider or driver column, optionally by status.
func OwnerFilter(field, ownerID string, status *model.Status) gDto.FilterGroup {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: field, Value: ownerID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	if status != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    string(*status),
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return filter
}
