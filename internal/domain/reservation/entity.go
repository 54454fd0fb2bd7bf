package reservation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"apothecary/internal/domain/medication"
)

// PickupWindow is the fixed interval a package reservation stays collectable.
const PickupWindow = 30 * time.Minute

// Reservation copies quantity and price from the stock entry at reservation
// time, so later stock changes never rewrite history. Price is nil when the
// stock row carries none, as untracked stock does.
type Reservation struct {
	ID            uuid.UUID
	ApothecaryID  uuid.UUID
	MedicationID  uuid.UUID
	UserID        uuid.UUID
	QuantityType  medication.QuantityType
	Quantity      *uint64
	Price         *decimal.Decimal
	Status        Status
	StartDateTime *time.Time
	EndDateTime   *time.Time
}

// NewPackageReservation builds an active reservation for counted stock with
// the fixed pickup window starting at start.
func NewPackageReservation(apothecaryID, medicationID, userID uuid.UUID, amount uint64, price decimal.Decimal, start time.Time) Reservation {
	end := start.Add(PickupWindow)
	return Reservation{
		ID:            uuid.New(),
		ApothecaryID:  apothecaryID,
		MedicationID:  medicationID,
		UserID:        userID,
		QuantityType:  medication.QuantityTypePackage,
		Quantity:      &amount,
		Price:         &price,
		Status:        StatusActive,
		StartDateTime: &start,
		EndDateTime:   &end,
	}
}

// NewPendingReservation builds a pending reservation against untracked
// stock; it has no pickup window or price until an external process
// fulfills it.
func NewPendingReservation(apothecaryID, medicationID, userID uuid.UUID, amount uint64) Reservation {
	return Reservation{
		ID:           uuid.New(),
		ApothecaryID: apothecaryID,
		MedicationID: medicationID,
		UserID:       userID,
		QuantityType: medication.QuantityTypeUnknown,
		Quantity:     &amount,
		Status:       StatusPending,
	}
}

// PresentedStatusAt derives the status shown to clients at the given time.
func (r Reservation) PresentedStatusAt(now time.Time) PresentedStatus {
	return DeriveStatus(r.Status, r.EndDateTime, now)
}
