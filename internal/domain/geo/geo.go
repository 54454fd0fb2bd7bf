// Package geo implements great-circle distance math for apothecary radius
// filtering. Coordinates are single precision; for retail-search radii the
// resulting meter-scale error is acceptable.
package geo

import "math"

const EarthRadiusKm = 6371.009

type Coordinates struct {
	Latitude  float32
	Longitude float32
}

// Distance returns the great-circle distance between a and b in kilometers,
// using the atan2 form of the spherical law of cosines, which stays
// numerically stable for both antipodal and near-identical points.
func Distance(a, b Coordinates) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	deltaLon := radians(b.Longitude) - radians(a.Longitude)

	sinLat1, cosLat1 := math.Sincos(lat1)
	sinLat2, cosLat2 := math.Sincos(lat2)
	sinDeltaLon, cosDeltaLon := math.Sincos(deltaLon)

	y := math.Sqrt(
		math.Pow(cosLat2*sinDeltaLon, 2) +
			math.Pow(cosLat1*sinLat2-sinLat1*cosLat2*cosDeltaLon, 2))
	x := sinLat1*sinLat2 + cosLat1*cosLat2*cosDeltaLon

	return EarthRadiusKm * math.Atan2(y, x)
}

// WithinRadius reports whether candidate lies within maxDistanceKm of center.
func WithinRadius(candidate, center Coordinates, maxDistanceKm float64) bool {
	return Distance(candidate, center) <= maxDistanceKm
}

func radians(deg float32) float64 {
	return float64(deg) * math.Pi / 180
}
