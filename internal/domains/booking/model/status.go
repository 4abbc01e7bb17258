package model

import (
	"fmt"
	"rideflow/shared/failure"
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusDriverAssigned Status = "driver_assigned"
	StatusPickup         Status = "pickup"
	StatusInProgress     Status = "in_progress"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusDriverAssigned,
	StatusPickup,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

var transitions = map[Status][]Status{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusDriverAssigned, StatusCancelled},
	StatusDriverAssigned: {StatusPickup, StatusCancelled},
	StatusPickup:         {StatusInProgress, StatusCancelled},
	StatusInProgress:     {StatusCompleted, StatusCancelled},
}

func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if !status.Valid() {
		return "", failure.BadRequestFromString(fmt.Sprintf("invalid status %q", value))
	}

	return status, nil
}

// ParseStatusFilter is ParseStatus for optional query parameters: an empty value means no filter.
func ParseStatusFilter(value string) (*Status, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	status, err := ParseStatus(value)
	if err != nil {
		return nil, err
	}

	return &status, nil
}

func (s Status) Valid() bool {
	for _, status := range Statuses {
		if status == s {
			return true
		}
	}

	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

func (s Status) String() string {
	return string(s)
}

// Actor is the party allowed to move a booking into a status.
type Actor string

const (
	ActorRider  Actor = "rider"
	ActorDriver Actor = "driver"
)

// ActorFor returns who may move a booking into next.
func ActorFor(next Status) Actor {
	switch next {
	case StatusConfirmed, StatusCancelled:
		return ActorRider
	default:
		return ActorDriver
	}
}

// Lifecycle validates status changes. In permissive mode any non-terminal booking may move to
// any status other than pending; terminal states stay final in both modes.
type Lifecycle struct {
	permissive bool
}

func NewLifecycle(permissive bool) Lifecycle {
	return Lifecycle{permissive: permissive}
}

func (l Lifecycle) Check(current, next Status) error {
	if current.IsTerminal() {
		return failure.InvalidState(fmt.Sprintf("booking is already %s", current))
	}

	if !next.Valid() || next == StatusPending || next == current {
		return failure.InvalidState(fmt.Sprintf("cannot move booking to %q", next))
	}

	if l.permissive || current.CanTransitionTo(next) {
		return nil
	}

	return failure.InvalidState(fmt.Sprintf("cannot move booking from %s to %s", current, next))
}
