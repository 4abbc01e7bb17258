package model

import "time"

type EventType string

const (
	EventCreated        EventType = "booking.created"
	EventConfirmed      EventType = "booking.confirmed"
	EventDriverAssigned EventType = "booking.driver_assigned"
	EventPickup         EventType = "booking.pickup"
	EventStarted        EventType = "booking.started"
	EventCompleted      EventType = "booking.completed"
	EventCancelled      EventType = "booking.cancelled"
	EventRated          EventType = "booking.rated"
)

var statusEvents = map[Status]EventType{
	StatusPending:        EventCreated,
	StatusConfirmed:      EventConfirmed,
	StatusDriverAssigned: EventDriverAssigned,
	StatusPickup:         EventPickup,
	StatusInProgress:     EventStarted,
	StatusCompleted:      EventCompleted,
	StatusCancelled:      EventCancelled,
}

// Event is published to the booking events topic after every successful mutation.
type Event struct {
	Type               EventType `json:"type"`
	BookingID          string    `json:"bookingId"`
	RiderID            string    `json:"riderId"`
	DriverID           *string   `json:"driverId,omitempty"`
	Status             Status    `json:"status"`
	FinalAmount        float64   `json:"finalAmount"`
	PaymentStatus      string    `json:"paymentStatus"`
	CancellationReason *string   `json:"cancellationReason,omitempty"`
	OccurredAt         time.Time `json:"occurredAt"`
}

// NewEvent derives the event type from the booking's current status.
func NewEvent(booking Booking, at time.Time) Event {
	return NewEventOfType(statusEvents[booking.Status], booking, at)
}

func NewEventOfType(eventType EventType, booking Booking, at time.Time) Event {
	return Event{
		Type:               eventType,
		BookingID:          booking.ID,
		RiderID:            booking.RiderID,
		DriverID:           booking.DriverID,
		Status:             booking.Status,
		FinalAmount:        booking.FinalAmount,
		PaymentStatus:      booking.PaymentStatus,
		CancellationReason: booking.CancellationReason,
		OccurredAt:         at,
	}
}
