package utils

import "math"

const earthRadiusKm = 6371

// CalculateDistance computes the great-circle distance in kilometers between
// two coordinates using the haversine formula, rounded to one decimal place.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadiusKm * c

	return math.Round(distance*10) / 10
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
