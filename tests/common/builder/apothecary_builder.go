//go:build unit || e2e

package builder

import (
	"github.com/google/uuid"

	"apothecary/internal/domain/apothecary"
	"apothecary/internal/domain/schedule"
	"apothecary/internal/usecase/queries"
)

type ApothecaryBuilder struct {
	ID        uuid.UUID
	Name      string
	Latitude  float32
	Longitude float32
}

// NewApothecaryBuilder defaults to a pharmacy in Vienna's 14th district.
func NewApothecaryBuilder() *ApothecaryBuilder {
	return &ApothecaryBuilder{
		ID:        uuid.New(),
		Name:      "Apotheke zum Löwen",
		Latitude:  48.1942566,
		Longitude: 16.3181194,
	}
}

func (b *ApothecaryBuilder) With(mutate func(*ApothecaryBuilder)) *ApothecaryBuilder {
	mutate(b)
	return b
}

func (b *ApothecaryBuilder) BuildDomain() apothecary.Apothecary {
	return apothecary.Apothecary{
		ID:        b.ID,
		Name:      b.Name,
		Street:    "Teststrasse",
		Number:    "1",
		PostCode:  1140,
		City:      "Vienna",
		Country:   "Austria",
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
	}
}

func (b *ApothecaryBuilder) BuildWithSchedules() queries.ApothecaryWithSchedules {
	return queries.ApothecaryWithSchedules{
		Apothecary: b.BuildDomain(),
		Schedules: []schedule.Slot{
			{
				ID:      uuid.New(),
				Weekday: schedule.Monday,
				Start:   schedule.TimeOfDay{Hour: 8, Minute: 0},
				End:     schedule.TimeOfDay{Hour: 12, Minute: 0},
			},
		},
	}
}
