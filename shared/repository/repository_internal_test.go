package repository

import (
	"reflect"
	otelMocks "rideflow/infras/otel/mocks"
	"rideflow/shared/dto"
	"rideflow/shared/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

type projectedRow struct {
	ID         string  `db:"id"`
	RiderID    string  `db:"rider_id"`
	RiderName  *string `db:"rider_name"  table:"riders" column:"name"`
	Ignored    string
	model.Metadata
}

func TestGetColumns(t *testing.T) {
	columns, insertColumns := getColumns("bookings", reflect.TypeOf(projectedRow{}))

	assert.Equal(t, []string{"id", "rider_id", "created_at", "modified_at", "created_by", "modified_by"}, insertColumns)
	assert.Contains(t, columns, column{name: "name", table: "riders", alias: "rider_name"})
	assert.Contains(t, columns, column{name: "created_at", table: "bookings"})
	assert.Len(t, columns, 7)
}

type joinedRow struct {
	ID        string  `db:"id"`
	CreatedAt string  `db:"created_at"`
	RiderName *string `db:"rider_name" table:"riders" column:"name"`
}

func (joinedRow) GetJoinQuery() string {
	return "LEFT JOIN users AS riders ON riders.id = bookings.rider_id"
}

func TestSelectFrom(t *testing.T) {
	repo := NewRepository[joinedRow]("booking", "bookings", "id", nil, otelMocks.NewOtel())

	assert.Equal(t,
		"SELECT bookings.id, bookings.created_at, riders.name AS rider_name FROM bookings LEFT JOIN users AS riders ON riders.id = bookings.rider_id",
		repo.selectFrom(nil))
	assert.Equal(t, "SELECT bookings.id FROM bookings LEFT JOIN users AS riders ON riders.id = bookings.rider_id", repo.selectFrom([]string{"id"}))
}

func TestOrderBy(t *testing.T) {
	repo := NewRepository[joinedRow]("booking", "bookings", "id", nil, otelMocks.NewOtel())

	tests := []struct {
		name     string
		params   dto.QueryParams
		expected string
	}{
		{name: "qualified column", params: dto.QueryParams{SortBy: "bookings.created_at", SortDir: dto.SortDirDesc}, expected: " ORDER BY bookings.created_at DESC"},
		{name: "bare column", params: dto.QueryParams{SortBy: "id", SortDir: dto.SortDirAsc}, expected: " ORDER BY id ASC"},
		{name: "unknown column", params: dto.QueryParams{SortBy: "1; DROP TABLE bookings", SortDir: dto.SortDirAsc}, expected: ""},
		{name: "missing direction", params: dto.QueryParams{SortBy: "id"}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repo.orderBy(tt.params))
		})
	}
}

func TestBuildWhereClause(t *testing.T) {
	repo := NewRepository[joinedRow]("booking", "bookings", "id", nil, otelMocks.NewOtel())

	where, args := repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "id", Value: "b-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
	}})
	assert.Equal(t, " WHERE (bookings.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "b-1"}, args)
}
