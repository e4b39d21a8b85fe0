package geo

import "math"

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero reports whether the coordinate is the unset zero value.
func (c Coordinate) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}

// DistanceMeters calculates the great-circle distance between two coordinates
// in meters, rounded to the nearest meter.
func DistanceMeters(a, b Coordinate) int {
	const earthRadiusM = 6371000.0

	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	lat1Rad := degreesToRadians(a.Lat)
	lat2Rad := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLng/2)*math.Sin(dLng/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return int(math.Round(earthRadiusM * c))
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
