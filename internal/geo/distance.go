// Package geo provides great-circle distance math for school lookups.
package geo

import (
	"math"
	"sort"

	"github.com/UnknownOlympus/compass/internal/models"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Distance computes the great-circle distance in kilometers between two points
// using the haversine formula. It is symmetric in its arguments and returns 0
// for two identical points.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Round2 rounds a distance to two decimal places for display.
func Round2(km float64) float64 {
	return math.Round(km*100) / 100
}

// Annotate attaches the rounded distance from the origin to every school,
// preserving the input order.
func Annotate(origin models.Coordinates, schools []models.School) []models.SchoolDistance {
	annotated := make([]models.SchoolDistance, 0, len(schools))
	for _, school := range schools {
		annotated = append(annotated, models.SchoolDistance{
			School:   school,
			Distance: Round2(Distance(origin.Latitude, origin.Longitude, school.Latitude, school.Longitude)),
		})
	}

	return annotated
}

// SortByDistance orders schools by ascending distance in place.
// The sort is stable: equally distant schools keep their retrieval order.
func SortByDistance(schools []models.SchoolDistance) {
	sort.SliceStable(schools, func(i, j int) bool {
		return schools[i].Distance < schools[j].Distance
	})
}
