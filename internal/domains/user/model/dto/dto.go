package dto

import (
	"rideflow/internal/domains/user/model"
	gDto "rideflow/shared/dto"
	"time"
)

const geoJSONPoint = "Point"

// GeoPoint is a GeoJSON point, coordinates ordered [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates" swaggertype:"array,number"`
}

func NewGeoPoint(lng, lat float64) *GeoPoint {
	return &GeoPoint{Type: geoJSONPoint, Coordinates: []float64{lng, lat}}
}

type UserResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Role         string     `json:"role"`
	Location     *GeoPoint  `json:"location,omitempty"`
	ProfileImage *string    `json:"profileImage,omitempty"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(m model.User) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.Phone = m.Phone
	r.Role = m.Role
	r.ProfileImage = m.ProfileImage
	r.IsActive = m.IsActive
	r.LastLogin = m.LastLogin

	if loc := m.Location(); loc != nil {
		r.Location = NewGeoPoint(loc[0], loc[1])
	}

	r.Metadata.FromModel(m.Metadata)
}

type ProfileResponse struct {
	User UserResponse `json:"user"`
}

type UpdateProfileRequest struct {
	Name  *string `db:"name"  json:"name,omitempty"  validate:"omitempty,min=2,max=100"`
	Phone *string `db:"phone" json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
}

func (r UpdateProfileRequest) IsEmpty() bool {
	return r.Name == nil && r.Phone == nil
}

// UploadImageRequest carries a data URL, e.g. data:image/png;base64,iVBOR...
type UploadImageRequest struct {
	Image string `json:"image" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=2"`
}

type UploadImageResponse struct {
	ProfileImage string `json:"profileImage"`
}

type NearbyDriversRequest struct {
	Coordinates []float64 `json:"coordinates" validate:"required,coordinates" swaggertype:"array,number"`
	Radius      *float64  `json:"radius"      validate:"omitempty,gt=0,lte=50000"`
}

// RadiusOrDefault returns the requested radius in meters.
func (r NearbyDriversRequest) RadiusOrDefault() float64 {
	if r.Radius == nil {
		return model.DefaultRadiusMeters
	}

	return *r.Radius
}

type NearbyDriver struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Location *GeoPoint `json:"location"`
	Distance float64   `json:"distance"`
}

type NearbyDriversResponse struct {
	Drivers []NearbyDriver `json:"drivers"`
}

func (r *NearbyDriversResponse) FromModels(models []model.NearbyDriver) {
	r.Drivers = make([]NearbyDriver, 0, len(models))

	for _, m := range models {
		r.Drivers = append(r.Drivers, NearbyDriver{
			ID:       m.ID,
			Name:     m.Name,
			Phone:    m.Phone,
			Location: NewGeoPoint(m.LocationLng, m.LocationLat),
			Distance: m.Distance,
		})
	}
}

type UpdateLocationRequest struct {
	Coordinates []float64 `json:"coordinates" validate:"required,coordinates" swaggertype:"array,number"`
}

func (r UpdateLocationRequest) ToFields() map[string]any {
	return map[string]any{
		model.FieldLocationLng: r.Coordinates[0],
		model.FieldLocationLat: r.Coordinates[1],
	}
}
