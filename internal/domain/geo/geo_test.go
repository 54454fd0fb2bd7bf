//go:build unit

package geo_test

import (
	"testing"

	"apothecary/internal/domain/geo"

	"github.com/stretchr/testify/assert"
)

var (
	viennaCenter     = geo.Coordinates{Latitude: 48.2009, Longitude: 16.3700}
	penzingApothecary = geo.Coordinates{Latitude: 48.1942566, Longitude: 16.3181194}
)

func TestDistanceIdentity(t *testing.T) {
	assert.InDelta(t, 0.0, geo.Distance(viennaCenter, viennaCenter), 1e-9)
}

func TestDistanceSymmetry(t *testing.T) {
	forward := geo.Distance(viennaCenter, penzingApothecary)
	backward := geo.Distance(penzingApothecary, viennaCenter)
	assert.InDelta(t, forward, backward, 1e-9)
}

func TestDistanceViennaFixture(t *testing.T) {
	// Roughly 3.9 km between the city center and the Penzing pharmacy.
	d := geo.Distance(penzingApothecary, viennaCenter)
	assert.Greater(t, d, 2.0)
	assert.Less(t, d, 5.0)
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, geo.WithinRadius(penzingApothecary, viennaCenter, 5.0),
		"pharmacy must be inside a 5 km radius")
	assert.False(t, geo.WithinRadius(penzingApothecary, viennaCenter, 2.0),
		"pharmacy must be outside a 2 km radius")
}

func TestWithinRadiusBoundaryInclusive(t *testing.T) {
	d := geo.Distance(penzingApothecary, viennaCenter)
	assert.True(t, geo.WithinRadius(penzingApothecary, viennaCenter, d))
}
