package model

import (
	"rideflow/shared/constant"
	"rideflow/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID           = "id"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldPassword     = "password"
	FieldRole         = "role"
	FieldLocationLng  = "location_lng"
	FieldLocationLat  = "location_lat"
	FieldProfileImage = "profile_image"
	FieldIsActive     = "is_active"
	FieldLastLogin    = "last_login"

	// DefaultRadiusMeters applies when a nearby search names no radius.
	DefaultRadiusMeters = 5000
	MaxNearbyDrivers    = 50
)

type User struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	Phone        string     `db:"phone"`
	Password     string     `db:"password"`
	Role         string     `db:"role"`
	LocationLng  *float64   `db:"location_lng"`
	LocationLat  *float64   `db:"location_lat"`
	ProfileImage *string    `db:"profile_image"`
	IsActive     bool       `db:"is_active"`
	LastLogin    *time.Time `db:"last_login"`
	model.Metadata
}

func (u User) IsDriver() bool {
	return u.Role == constant.RoleDriver
}

// Location returns [lng, lat], or nil while the user has never reported one.
func (u User) Location() []float64 {
	if u.LocationLng == nil || u.LocationLat == nil {
		return nil
	}

	return []float64{*u.LocationLng, *u.LocationLat}
}

// NearbyDriver is one row of a proximity search, Distance in meters.
type NearbyDriver struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Phone       string  `db:"phone"`
	LocationLng float64 `db:"location_lng"`
	LocationLat float64 `db:"location_lat"`
	Distance    float64 `db:"distance"`
}
