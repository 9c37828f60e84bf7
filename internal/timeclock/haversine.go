package timeclock

import "math"

const earthRadiusMeters = 6371000

// HaversineMeters is the great-circle distance between two WGS84 points.
func HaversineMeters(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// WithinRadius reports whether the point is at most radius meters from the
// office. A distance exactly on the boundary counts as inside.
func WithinRadius(lat, lng, officeLat, officeLng, radius float64) (float64, bool) {
	d := HaversineMeters(lat, lng, officeLat, officeLng)
	return d, d <= radius
}
