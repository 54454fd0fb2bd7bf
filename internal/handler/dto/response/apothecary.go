package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"apothecary/internal/domain/schedule"
	"apothecary/internal/usecase/queries"
)

type ScheduleResponse struct {
	ID      uuid.UUID `json:"id"`
	Weekday int16     `json:"weekday"`
	Start   string    `json:"start"`
	End     string    `json:"end"`
}

type ApothecaryResponse struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Street    string             `json:"street"`
	Number    string             `json:"number"`
	PostCode  int32              `json:"postCode"`
	City      string             `json:"city"`
	Country   string             `json:"country"`
	Latitude  float32            `json:"latitude"`
	Longitude float32            `json:"longitude"`
	Schedules []ScheduleResponse `json:"schedules"`
}

func FromApothecaryWithSchedules(a queries.ApothecaryWithSchedules) ApothecaryResponse {
	var resp ApothecaryResponse
	_ = copier.Copy(&resp, &a.Apothecary)

	resp.Schedules = make([]ScheduleResponse, len(a.Schedules))
	for i, slot := range a.Schedules {
		resp.Schedules[i] = fromScheduleSlot(slot)
	}
	return resp
}

func fromScheduleSlot(s schedule.Slot) ScheduleResponse {
	return ScheduleResponse{
		ID:      s.ID,
		Weekday: int16(s.Weekday),
		Start:   s.Start.String(),
		End:     s.End.String(),
	}
}
