package reservation

import (
	"errors"
	"fmt"
	"time"
)

// Status is the persisted lifecycle state. It is an audit trail: nothing in
// the read path ever writes a derived value back.
type Status string

const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
	StatusDone     Status = "done"
)

var ErrInvalidStatus = errors.New("invalid reservation status")

// Storage codes are single characters, matching the reservation table.
func (s Status) Code() string {
	switch s {
	case StatusActive:
		return "a"
	case StatusPending:
		return "p"
	case StatusRejected:
		return "r"
	case StatusDone:
		return "d"
	}
	return ""
}

func StatusFromCode(code string) (Status, error) {
	switch code {
	case "a":
		return StatusActive, nil
	case "p":
		return StatusPending, nil
	case "r":
		return StatusRejected, nil
	case "d":
		return StatusDone, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, code)
}

// PresentedStatus is the read-time state space: the stored states plus the
// derived Expired, which is never persisted.
type PresentedStatus string

const (
	PresentedActive   PresentedStatus = "active"
	PresentedPending  PresentedStatus = "pending"
	PresentedRejected PresentedStatus = "rejected"
	PresentedDone     PresentedStatus = "done"
	PresentedExpired  PresentedStatus = "expired"
)

// DeriveStatus computes the presentation state from stored state, the pickup
// window end, and the current time. A reservation whose window has closed
// reports expired regardless of what is stored.
func DeriveStatus(stored Status, endDateTime *time.Time, now time.Time) PresentedStatus {
	if endDateTime != nil && endDateTime.Before(now) {
		return PresentedExpired
	}

	switch stored {
	case StatusActive:
		return PresentedActive
	case StatusPending:
		return PresentedPending
	case StatusRejected:
		return PresentedRejected
	case StatusDone:
		return PresentedDone
	}
	return PresentedStatus(stored)
}
