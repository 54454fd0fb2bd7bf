package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"apothecary/internal/usecase/queries"
)

type MedicationResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ReservationResponse struct {
	ID            uuid.UUID          `json:"id"`
	Apothecary    ApothecaryResponse `json:"apothecary"`
	Medication    MedicationResponse `json:"medication"`
	QuantityType  string             `json:"quantityType"`
	Quantity      *uint64            `json:"quantity,omitempty"`
	Price         *decimal.Decimal   `json:"price,omitempty"`
	Status        string             `json:"status"`
	StartDateTime *time.Time         `json:"startDateTime,omitempty"`
	EndDateTime   *time.Time         `json:"endDateTime,omitempty"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:            view.ID,
		Apothecary:    FromApothecaryWithSchedules(view.Apothecary),
		Medication:    MedicationResponse{ID: view.Medication.ID, Name: view.Medication.Name},
		QuantityType:  string(view.QuantityType),
		Quantity:      view.Quantity,
		Price:         view.Price,
		Status:        string(view.Status),
		StartDateTime: view.StartDateTime,
		EndDateTime:   view.EndDateTime,
	}
}
