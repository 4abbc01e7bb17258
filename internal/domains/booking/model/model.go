package model

import (
	"rideflow/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                 = "id"
	FieldRiderID            = "rider_id"
	FieldDriverID           = "driver_id"
	FieldStatus             = "status"
	FieldVersion            = "version"
	FieldCreatedAt          = "created_at"
	FieldDistanceKm         = "distance_km"
	FieldEstimatedDuration  = "estimated_duration"
	FieldActualDuration     = "actual_duration"
	FieldBaseFare           = "base_fare"
	FieldDistanceFare       = "distance_fare"
	FieldTimeFare           = "time_fare"
	FieldTotalFare          = "total_fare"
	FieldDiscount           = "discount"
	FieldFinalAmount        = "final_amount"
	FieldPaymentMethod      = "payment_method"
	FieldPaymentStatus      = "payment_status"
	FieldPromoCode          = "promo_code"
	FieldCancellationReason = "cancellation_reason"
	FieldUserRating         = "user_rating"
	FieldUserFeedback       = "user_feedback"
	FieldDriverRating       = "driver_rating"
	FieldDriverFeedback     = "driver_feedback"

	// ArgCurrentVersion keeps the version filter apart from the version column being SET.
	ArgCurrentVersion = "current_version"

	SortNewestFirst = "bookings.created_at"
)

const (
	PaymentMethodCash   = "cash"
	PaymentMethodCard   = "card"
	PaymentMethodWallet = "wallet"
	PaymentMethodUPI    = "upi"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
	PaymentStatusRefunded  = "refunded"
)

type Booking struct {
	ID                 string    `db:"id"`
	RiderID            string    `db:"rider_id"`
	DriverID           *string   `db:"driver_id"`
	PickupAddress      string    `db:"pickup_address"`
	PickupLng          float64   `db:"pickup_lng"`
	PickupLat          float64   `db:"pickup_lat"`
	DropAddress        string    `db:"drop_address"`
	DropLng            float64   `db:"drop_lng"`
	DropLat            float64   `db:"drop_lat"`
	VehicleType        string    `db:"vehicle_type"`
	ScheduledTime      time.Time `db:"scheduled_time"`
	Status             Status    `db:"status"`
	BaseFare           float64   `db:"base_fare"`
	DistanceFare       float64   `db:"distance_fare"`
	TimeFare           float64   `db:"time_fare"`
	TotalFare          float64   `db:"total_fare"`
	Discount           float64   `db:"discount"`
	FinalAmount        float64   `db:"final_amount"`
	DistanceKm         float64   `db:"distance_km"`
	EstimatedDuration  float64   `db:"estimated_duration"`
	ActualDuration     float64   `db:"actual_duration"`
	PaymentMethod      string    `db:"payment_method"`
	PaymentStatus      string    `db:"payment_status"`
	UserRating         *int      `db:"user_rating"`
	UserFeedback       *string   `db:"user_feedback"`
	DriverRating       *int      `db:"driver_rating"`
	DriverFeedback     *string   `db:"driver_feedback"`
	SpecialRequests    *string   `db:"special_requests"`
	PromoCode          *string   `db:"promo_code"`
	CancellationReason *string   `db:"cancellation_reason"`
	Version            int       `db:"version"`
	RiderName          *string   `db:"rider_name"   table:"riders"  column:"name"`
	RiderPhone         *string   `db:"rider_phone"  table:"riders"  column:"phone"`
	DriverName         *string   `db:"driver_name"  table:"drivers" column:"name"`
	DriverPhone        *string   `db:"driver_phone" table:"drivers" column:"phone"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN users AS riders ON riders.id = bookings.rider_id " +
		"LEFT JOIN users AS drivers ON drivers.id = bookings.driver_id"
}

// IsParticipant reports whether userID is the rider or the assigned driver.
func (b Booking) IsParticipant(userID string) bool {
	return b.RiderID == userID || b.IsAssignedTo(userID)
}

func (b Booking) IsAssignedTo(driverID string) bool {
	return b.DriverID != nil && *b.DriverID == driverID
}

// CanBeMovedBy reports whether userID is the party ActorFor(next) names on this booking.
// Any driver may take a booking that has no driver yet.
func (b Booking) CanBeMovedBy(userID string, next Status) bool {
	if userID == "" {
		return false
	}

	switch ActorFor(next) {
	case ActorRider:
		return b.RiderID == userID
	case ActorDriver:
		return b.IsAssignedTo(userID) || (next == StatusDriverAssigned && b.DriverID == nil)
	default:
		return false
	}
}
