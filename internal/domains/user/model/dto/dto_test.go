package dto_test

import (
	"rideflow/internal/domains/user/model"
	"rideflow/internal/domains/user/model/dto"
	"rideflow/shared/failure"
	"rideflow/shared/validator"
	"strings"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearbyDriversRequest(t *testing.T) {
	var req dto.NearbyDriversRequest

	err := validator.Validate(strings.NewReader(`{"coordinates":[72.8777,19.076]}`), &req)
	require.NoError(t, err)
	assert.InDelta(t, 5000, req.RadiusOrDefault(), 1e-9)

	req = dto.NearbyDriversRequest{}
	err = validator.Validate(strings.NewReader(`{"coordinates":[72.8777,19.076],"radius":2500}`), &req)
	require.NoError(t, err)
	assert.InDelta(t, 2500, req.RadiusOrDefault(), 1e-9)

	req = dto.NearbyDriversRequest{}
	err = validator.Validate(strings.NewReader(`{"coordinates":[19.076]}`), &req)
	assert.True(t, failure.IsKind(err, failure.KindValidation))

	req = dto.NearbyDriversRequest{}
	err = validator.Validate(strings.NewReader(`{"coordinates":[72.8777,19.076],"radius":-1}`), &req)
	assert.True(t, failure.IsKind(err, failure.KindValidation))
}

func TestUpdateLocationRequest(t *testing.T) {
	req := dto.UpdateLocationRequest{Coordinates: []float64{73.8567, 18.5204}}

	assert.Equal(t, map[string]any{
		model.FieldLocationLng: 73.8567,
		model.FieldLocationLat: 18.5204,
	}, req.ToFields())

	bad := dto.UpdateLocationRequest{Coordinates: []float64{200, 18.5}}
	assert.Error(t, validator.ValidateStruct(&bad))
}

func TestUserResponseFromModel(t *testing.T) {
	var res dto.UserResponse

	res.FromModel(model.User{
		ID:           "user-1",
		Name:         "Asha",
		Email:        "asha@example.com",
		Password:     "hash",
		Role:         "rider",
		ProfileImage: pointer.To("https://cdn.rideflow.app/profiles/u.png"),
		IsActive:     true,
	})

	assert.Equal(t, "Asha", res.Name)
	assert.Nil(t, res.Location)
	assert.Equal(t, "https://cdn.rideflow.app/profiles/u.png", *res.ProfileImage)
}

func TestUploadImageRequest(t *testing.T) {
	ok := dto.UploadImageRequest{Image: "data:image/jpeg;base64,/9j/4AAQ"}
	require.NoError(t, validator.ValidateStruct(&ok))

	gif := dto.UploadImageRequest{Image: "data:image/gif;base64,R0lGOD"}
	assert.Error(t, validator.ValidateStruct(&gif))

	huge := dto.UploadImageRequest{Image: "data:image/png;base64," + strings.Repeat("A", 3<<20)}
	assert.Error(t, validator.ValidateStruct(&huge))
}

func TestUpdateProfileRequest(t *testing.T) {
	assert.True(t, dto.UpdateProfileRequest{}.IsEmpty())
	assert.False(t, dto.UpdateProfileRequest{Phone: pointer.To("+919000000009")}.IsEmpty())

	short := dto.UpdateProfileRequest{Name: pointer.To("A")}
	assert.Error(t, validator.ValidateStruct(&short))
}
