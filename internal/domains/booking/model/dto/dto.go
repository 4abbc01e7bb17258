package dto

import (
	"rideflow/internal/domains/booking/model"
	fareModel "rideflow/internal/domains/fare/model"
	"rideflow/shared"
	"rideflow/shared/constant"
	gDto "rideflow/shared/dto"
	gModel "rideflow/shared/model"
	"rideflow/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	lngIndex = 0
	latIndex = 1
)

type Location struct {
	Address     string    `json:"address"     validate:"required,max=255"`
	Coordinates []float64 `json:"coordinates" validate:"required,coordinates" swaggertype:"array,number"`
}

func NewLocation(address string, lng, lat float64) Location {
	return Location{Address: address, Coordinates: []float64{lng, lat}}
}

func (l Location) Lng() float64 { return l.Coordinates[lngIndex] }
func (l Location) Lat() float64 { return l.Coordinates[latIndex] }

type CreateBookingRequest struct {
	PickupLocation  Location `json:"pickupLocation"  validate:"required"`
	DropLocation    Location `json:"dropLocation"    validate:"required"`
	VehicleType     string   `json:"vehicleType"     validate:"required,oneof=mini sedan suv luxury"`
	ScheduledTime   *string  `json:"scheduledTime"   validate:"omitempty"`
	SpecialRequests *string  `json:"specialRequests" validate:"omitempty,max=500"`
}

// ToModel builds a pending booking with a zero fare. scheduledTime must already be parsed.
func (c *CreateBookingRequest) ToModel(riderID string, scheduledTime time.Time) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:              uuid.NewString(),
		RiderID:         riderID,
		PickupAddress:   strings.TrimSpace(c.PickupLocation.Address),
		PickupLng:       c.PickupLocation.Lng(),
		PickupLat:       c.PickupLocation.Lat(),
		DropAddress:     strings.TrimSpace(c.DropLocation.Address),
		DropLng:         c.DropLocation.Lng(),
		DropLat:         c.DropLocation.Lat(),
		VehicleType:     c.VehicleType,
		ScheduledTime:   scheduledTime,
		Status:          model.StatusPending,
		PaymentMethod:   model.PaymentMethodCash,
		PaymentStatus:   model.PaymentStatusPending,
		SpecialRequests: c.SpecialRequests,
		Version:         1,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  riderID,
			ModifiedBy: riderID,
		},
	}
}

type ConfirmBookingRequest struct {
	Distance      *float64 `json:"distance"      validate:"required,gte=0"`
	Duration      *float64 `json:"duration"      validate:"required,gte=0"`
	PaymentMethod string   `json:"paymentMethod" validate:"omitempty,oneof=cash card wallet upi"`
	PromoCode     *string  `json:"promoCode"     validate:"omitempty,max=50"`
}

type CancelBookingRequest struct {
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

type RateBookingRequest struct {
	Rating   int     `json:"rating"   validate:"required,gte=1,lte=5"`
	Feedback *string `json:"feedback" validate:"omitempty,max=1000"`
}

type CompleteBookingRequest struct {
	ActualDuration *float64 `json:"actualDuration" validate:"omitempty,gte=0"`
}

type Party struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Fare struct {
	BaseFare     float64 `json:"baseFare"`
	DistanceFare float64 `json:"distanceFare"`
	TimeFare     float64 `json:"timeFare"`
	TotalFare    float64 `json:"totalFare"`
	Discount     float64 `json:"discount"`
	FinalAmount  float64 `json:"finalAmount"`
}

// FareColumns maps a priced breakdown onto the booking's fare columns.
func FareColumns(fare fareModel.Breakdown) map[string]any {
	return map[string]any{
		model.FieldBaseFare:     fare.BaseFare.InexactFloat64(),
		model.FieldDistanceFare: fare.DistanceFare.InexactFloat64(),
		model.FieldTimeFare:     fare.TimeFare.InexactFloat64(),
		model.FieldTotalFare:    fare.TotalFare.InexactFloat64(),
		model.FieldDiscount:     fare.Discount.InexactFloat64(),
		model.FieldFinalAmount:  fare.FinalAmount.InexactFloat64(),
	}
}

type Duration struct {
	Estimated float64 `json:"estimated"`
	Actual    float64 `json:"actual"`
}

type Rating struct {
	UserRating     *int    `json:"userRating,omitempty"`
	DriverRating   *int    `json:"driverRating,omitempty"`
	UserFeedback   *string `json:"userFeedback,omitempty"`
	DriverFeedback *string `json:"driverFeedback,omitempty"`
}

type BookingResponse struct {
	ID                 string   `json:"id"`
	Rider              Party    `json:"rider"`
	Driver             *Party   `json:"driver,omitempty"`
	PickupLocation     Location `json:"pickupLocation"`
	DropLocation       Location `json:"dropLocation"`
	VehicleType        string   `json:"vehicleType"`
	ScheduledTime      string   `json:"scheduledTime"`
	Status             string   `json:"status"`
	Fare               Fare     `json:"fare"`
	Distance           float64  `json:"distance"`
	Duration           Duration `json:"duration"`
	PaymentMethod      string   `json:"paymentMethod"`
	PaymentStatus      string   `json:"paymentStatus"`
	Rating             *Rating  `json:"rating,omitempty"`
	SpecialRequests    *string  `json:"specialRequests,omitempty"`
	PromoCode          *string  `json:"promoCode,omitempty"`
	CancellationReason *string  `json:"cancellationReason,omitempty"`
	Version            int      `json:"version"`
	gDto.Metadata
}

func deref(value *string) string {
	if value == nil {
		return constant.Empty
	}

	return *value
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.Rider = Party{ID: m.RiderID, Name: deref(m.RiderName), Phone: deref(m.RiderPhone)}

	r.Driver = nil
	if m.DriverID != nil {
		r.Driver = &Party{ID: *m.DriverID, Name: deref(m.DriverName), Phone: deref(m.DriverPhone)}
	}

	r.PickupLocation = NewLocation(m.PickupAddress, m.PickupLng, m.PickupLat)
	r.DropLocation = NewLocation(m.DropAddress, m.DropLng, m.DropLat)
	r.VehicleType = m.VehicleType
	r.ScheduledTime = timezone.Format(m.ScheduledTime, constant.DateFormat)
	r.Status = m.Status.String()
	r.Fare = Fare{
		BaseFare:     m.BaseFare,
		DistanceFare: m.DistanceFare,
		TimeFare:     m.TimeFare,
		TotalFare:    m.TotalFare,
		Discount:     m.Discount,
		FinalAmount:  m.FinalAmount,
	}
	r.Distance = m.DistanceKm
	r.Duration = Duration{Estimated: m.EstimatedDuration, Actual: m.ActualDuration}
	r.PaymentMethod = m.PaymentMethod
	r.PaymentStatus = m.PaymentStatus

	r.Rating = nil
	if m.UserRating != nil || m.DriverRating != nil {
		r.Rating = &Rating{
			UserRating:     m.UserRating,
			DriverRating:   m.DriverRating,
			UserFeedback:   m.UserFeedback,
			DriverFeedback: m.DriverFeedback,
		}
	}

	r.SpecialRequests = m.SpecialRequests
	r.PromoCode = m.PromoCode
	r.CancellationReason = m.CancellationReason
	r.Version = m.Version
	r.Metadata.FromModel(m.Metadata)
}

type GetBookingsResponse struct {
	Bookings    []BookingResponse `json:"bookings"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
	Total       int               `json:"total"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, total int, params gDto.QueryParams) {
	r.Total = total
	r.CurrentPage = params.Page
	r.TotalPages = shared.CalculateTotalPage(total, params.Limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type DriverBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *DriverBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
