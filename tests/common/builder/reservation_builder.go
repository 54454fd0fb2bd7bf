//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"apothecary/internal/domain/medication"
	"apothecary/internal/domain/reservation"
	"apothecary/internal/handler/dto/request"
	"apothecary/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	ApothecaryID  uuid.UUID
	MedicationID  uuid.UUID
	Amount        uint64
	Price         decimal.Decimal
	Status        reservation.PresentedStatus
	StartDateTime time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:            uuid.New(),
		ApothecaryID:  uuid.New(),
		MedicationID:  uuid.New(),
		Amount:        2,
		Price:         decimal.NewFromFloat(9.50),
		Status:        reservation.PresentedActive,
		// UTC at second precision survives a JSON round trip unchanged.
		StartDateTime: time.Now().Add(time.Hour).Truncate(time.Second).UTC(),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() request.CreateReservationRequest {
	return request.CreateReservationRequest{
		ApothecaryID:  b.ApothecaryID,
		MedicationID:  b.MedicationID,
		QuantityType:  string(medication.QuantityTypePackage),
		Amount:        b.Amount,
		StartDateTime: b.StartDateTime,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	start := b.StartDateTime
	end := start.Add(reservation.PickupWindow)
	amount := b.Amount
	price := b.Price

	return &queries.ReservationView{
		ID:            b.ID,
		Apothecary:    NewApothecaryBuilder().With(func(a *ApothecaryBuilder) { a.ID = b.ApothecaryID }).BuildWithSchedules(),
		Medication:    medication.Medication{ID: b.MedicationID, Name: "Aspirin"},
		QuantityType:  medication.QuantityTypePackage,
		Quantity:      &amount,
		Price:         &price,
		Status:        b.Status,
		StartDateTime: &start,
		EndDateTime:   &end,
	}
}
