// Package apothecary holds the pharmacy-location aggregate. Apothecaries are
// immutable reference data seeded administratively; the core only reads them.
package apothecary

import (
	"github.com/google/uuid"

	"apothecary/internal/domain/geo"
)

type Apothecary struct {
	ID        uuid.UUID
	Name      string
	Street    string
	Number    string
	PostCode  int32
	City      string
	Country   string
	Latitude  float32
	Longitude float32
}

func (a Apothecary) Coordinates() geo.Coordinates {
	return geo.Coordinates{Latitude: a.Latitude, Longitude: a.Longitude}
}
