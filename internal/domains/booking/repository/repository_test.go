package repository_test

import (
	"rideflow/internal/domains/booking/model"
	"rideflow/internal/domains/booking/repository"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
)

func TestVersionedFilter(t *testing.T) {
	filter := repository.VersionedFilter("b-1", 3)

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id AND bookings.version = :current_version)", where)
	assert.Equal(t, map[string]any{"id": "b-1", "current_version": 3}, args)
}

func TestOwnerFilter(t *testing.T) {
	filter := repository.OwnerFilter(model.FieldRiderID, "rider-1", nil)

	where, args := filter.GetWhereClause()
	assert.Equal(t, "(bookings.rider_id = :rider_id)", where)
	assert.Equal(t, map[string]any{"rider_id": "rider-1"}, args)

	filter = repository.OwnerFilter(model.FieldDriverID, "driver-1", pointer.To(model.StatusPickup))

	where, args = filter.GetWhereClause()
	assert.Equal(t, "(bookings.driver_id = :driver_id AND bookings.status = :status)", where)
	assert.Equal(t, map[string]any{"driver_id": "driver-1", "status": "pickup"}, args)
}
