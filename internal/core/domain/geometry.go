package domain

import "math"

const (
	// MissingDistance is the catalog sentinel for "no luminosity distance estimate".
	// It is matched by exact equality, never by tolerance.
	MissingDistance = -99.0

	// BrightThreshold splits distance-valid clusters by m10: strictly below is bright,
	// the threshold itself and above is faint.
	BrightThreshold = 17.0
)

// HasDistance reports whether d is a real luminosity distance rather than the sentinel.
//
// The comparison is exact. A sentinel that was computed upstream instead of written
// literally would slip through as a distance.
func HasDistance(d float64) bool {
	return d != MissingDistance
}

// IsBright reports whether a cluster with the given m10 falls in the bright subset.
func IsBright(m10 float64) bool {
	return m10 < BrightThreshold
}

// NormalizeLongitude maps a longitude in degrees into (-180, 180].
// It applies ((glon + 180) mod 360) - 180 with a floored modulo and folds the
// open end -180 onto 180.
func NormalizeLongitude(glon float64) float64 {
	m := math.Mod(glon+180, 360)
	if m < 0 {
		m += 360
	}
	lon := m - 180
	if lon <= -180 {
		lon += 360
	}
	return lon
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Cartesian projects a distance-scaled spherical position (radians) onto x, y, z.
func Cartesian(d, lon, lat float64) (x, y, z float64) {
	cosLat := math.Cos(lat)
	return d * math.Cos(lon) * cosLat,
		d * math.Sin(lon) * cosLat,
		d * math.Sin(lat)
}
