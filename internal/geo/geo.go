package geo

import "math"

const earthRadiusM = 6371000.0

// HaversineM returns the great-circle distance in meters between two
// lat/lng pairs.
func HaversineM(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusM * c
}

// BoundingBox returns the lat/lng bounds of a square that fully contains the
// circle of radiusM around the center. Used as a cheap SQL prefilter before
// the exact haversine check.
func BoundingBox(lat, lng, radiusM float64) (minLat, maxLat, minLng, maxLng float64) {
	dLat := radiusM / earthRadiusM * (180 / math.Pi)
	minLat = lat - dLat
	maxLat = lat + dLat

	// Longitude degrees shrink with latitude; at the poles the box spans
	// the full range.
	cosLat := math.Cos(toRad(lat))
	if cosLat < 1e-10 {
		return minLat, maxLat, -180, 180
	}
	dLng := radiusM / (earthRadiusM * cosLat) * (180 / math.Pi)
	return minLat, maxLat, lng - dLng, lng + dLng
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
