package model_test

import (
	"rideflow/internal/domains/user/model"
	"rideflow/shared/constant"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
)

func TestUserLocation(t *testing.T) {
	user := model.User{Role: constant.RoleDriver}

	assert.True(t, user.IsDriver())
	assert.Nil(t, user.Location())

	user.LocationLng = pointer.ToFloat64(72.8777)
	assert.Nil(t, user.Location())

	user.LocationLat = pointer.ToFloat64(19.076)
	assert.Equal(t, []float64{72.8777, 19.076}, user.Location())
}
