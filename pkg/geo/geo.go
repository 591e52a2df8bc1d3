// Package geo provides great-circle distance calculations for proximity
// matching between users, donors and blood banks.
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// DistanceKm calculates the great-circle distance in kilometers between two
// points given in decimal degrees, using the haversine formula.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := toRadians(lat1)
	rLon1 := toRadians(lon1)
	rLat2 := toRadians(lat2)
	rLon2 := toRadians(lon2)

	dLat := rLat2 - rLat1
	dLon := rLon2 - rLon1

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return c * EarthRadiusKm
}

// RoundKm rounds a distance to two decimal places for display.
func RoundKm(d float64) float64 {
	return math.Round(d*100) / 100
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
