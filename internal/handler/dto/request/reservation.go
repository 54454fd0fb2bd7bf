package request

import (
	"time"

	"github.com/google/uuid"

	"apothecary/internal/domain/medication"
	"apothecary/internal/usecase/commands"
)

// CreateReservationRequest carries the client-chosen pickup start; the
// window end is derived server-side.
type CreateReservationRequest struct {
	ApothecaryID  uuid.UUID `json:"apothecaryId" binding:"required"`
	MedicationID  uuid.UUID `json:"medicationId" binding:"required"`
	QuantityType  string    `json:"quantityType" binding:"required,oneof=package unknown"`
	Amount        uint64    `json:"amount" binding:"required,gt=0"`
	StartDateTime time.Time `json:"startDateTime" binding:"required"`
}

func (r CreateReservationRequest) ToInput() commands.ReserveInput {
	return commands.ReserveInput{
		ApothecaryID:  r.ApothecaryID,
		MedicationID:  r.MedicationID,
		QuantityType:  medication.QuantityType(r.QuantityType),
		Amount:        r.Amount,
		StartDateTime: r.StartDateTime,
	}
}
