package validator_test

import (
	"rideflow/shared/failure"
	"rideflow/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Address     string    `json:"address"     validate:"required"`
	Coordinates []float64 `json:"coordinates" validate:"required,coordinates"`
}

type tripRequest struct {
	Pickup      point  `json:"pickupLocation" validate:"required"`
	VehicleType string `json:"vehicleType"    validate:"required,oneof=mini sedan suv luxury"`
	Rating      int    `json:"rating"         validate:"omitempty,gte=1,lte=5"`
}

type avatar struct {
	Image string `json:"image" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=1"`
}

type optionalReason struct {
	Reason *string `json:"reason" validate:"omitempty,max=10"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name: "valid",
			body: `{"pickupLocation":{"address":"Andheri","coordinates":[72.84,19.11]},"vehicleType":"sedan"}`,
		},
		{
			name:    "missing vehicle type",
			body:    `{"pickupLocation":{"address":"Andheri","coordinates":[72.84,19.11]}}`,
			message: "vehicleType is required",
		},
		{
			name:    "unknown vehicle type",
			body:    `{"pickupLocation":{"address":"Andheri","coordinates":[72.84,19.11]},"vehicleType":"rickshaw"}`,
			message: "vehicleType must be one of mini sedan suv luxury",
		},
		{
			name:    "latitude out of range",
			body:    `{"pickupLocation":{"address":"Andheri","coordinates":[72.84,119.11]},"vehicleType":"sedan"}`,
			message: "coordinates must be a [longitude, latitude] pair",
		},
		{
			name:    "three coordinates",
			body:    `{"pickupLocation":{"address":"Andheri","coordinates":[72.84,19.11,3]},"vehicleType":"sedan"}`,
			message: "coordinates must be a [longitude, latitude] pair",
		},
		{
			name:    "rating out of range",
			body:    `{"pickupLocation":{"address":"Andheri","coordinates":[72.84,19.11]},"vehicleType":"sedan","rating":6}`,
			message: "rating must be less than or equal to 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tripRequest{}

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.message == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
			assert.True(t, failure.IsKind(err, failure.KindValidation))
		})
	}
}

func TestValidateRejectsMalformedBody(t *testing.T) {
	req := tripRequest{}

	err := validator.Validate(strings.NewReader(`{"vehicleType":`), &req)
	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindValidation))

	err = validator.Validate(strings.NewReader(`{"vehicleType":"sedan","surge":2}`), &req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown field")
}

func TestValidateOptional(t *testing.T) {
	req := optionalReason{}

	require.NoError(t, validator.ValidateOptional(strings.NewReader(""), &req))
	assert.Nil(t, req.Reason)

	require.NoError(t, validator.ValidateOptional(strings.NewReader(`{"reason":"late"}`), &req))
	require.NotNil(t, req.Reason)
	assert.Equal(t, "late", *req.Reason)

	err := validator.ValidateOptional(strings.NewReader(`{"reason":"driver never showed up"}`), &req)
	require.Error(t, err)
	assert.Equal(t, "reason must be less than or equal to 10", err.Error())

	require.Error(t, validator.ValidateOptional(strings.NewReader(`{"reason":`), &req))
}

func TestImageValidation(t *testing.T) {
	png := "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

	require.NoError(t, validator.ValidateStruct(&avatar{Image: png}))

	err := validator.ValidateStruct(&avatar{Image: "data:application/pdf;base64,JVBERi0="})
	require.Error(t, err)
	assert.Equal(t, "image must be one of image/png image/jpeg", err.Error())

	err = validator.ValidateStruct(&avatar{Image: "not a data url"})
	require.Error(t, err)
}

func TestValidateVar(t *testing.T) {
	require.NoError(t, validator.ValidateVar("rider@example.com", "email"))

	err := validator.ValidateVar("nope", "email")
	require.Error(t, err)
	assert.True(t, failure.IsKind(err, failure.KindValidation))
}
