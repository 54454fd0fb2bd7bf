package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"apothecary/internal/domain/apothecary"
	"apothecary/internal/domain/medication"
	"apothecary/internal/domain/reservation"
	"apothecary/internal/domain/schedule"
)

// Read models (DTO for read side)

type ApothecaryWithSchedules struct {
	Apothecary apothecary.Apothecary
	Schedules  []schedule.Slot
}

// StockMatch is one apothecary carrying the searched medication.
type StockMatch struct {
	Quantity   medication.Quantity
	Apothecary ApothecaryWithSchedules
}

// MedicationGroup collects every surviving stock match for one medication.
// Groups with no matches are never returned.
type MedicationGroup struct {
	Medication medication.Medication
	Results    []StockMatch
}

// ReservationView is the response aggregate of a reservation: the stored
// record joined with its apothecary, schedules and medication, plus the
// status derived at read time.
type ReservationView struct {
	ID            uuid.UUID
	Apothecary    ApothecaryWithSchedules
	Medication    medication.Medication
	QuantityType  medication.QuantityType
	Quantity      *uint64
	Price         *decimal.Decimal
	Status        reservation.PresentedStatus
	StartDateTime *time.Time
	EndDateTime   *time.Time
}
