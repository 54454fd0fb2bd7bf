package request

import (
	"apothecary/internal/domain/geo"
	"apothecary/internal/usecase/queries"
)

// MedicationSearchRequest carries the search parameters of the stock lookup.
// MaxDistance is in kilometers from the given center.
type MedicationSearchRequest struct {
	Name        string  `form:"name" binding:"required"`
	Latitude    float32 `form:"latitude" binding:"required"`
	Longitude   float32 `form:"longitude" binding:"required"`
	MaxDistance float64 `form:"maxDistance" binding:"required,gt=0"`
}

func (r MedicationSearchRequest) ToSearch() queries.MedicationSearch {
	return queries.MedicationSearch{
		Name:        r.Name,
		Center:      geo.Coordinates{Latitude: r.Latitude, Longitude: r.Longitude},
		MaxDistance: r.MaxDistance,
	}
}
