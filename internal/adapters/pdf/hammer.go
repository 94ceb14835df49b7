package pdf

import "math"

// Hammer projects a galactic position (radians) onto the Hammer-Aitoff plane.
// The projection spans x in [-2√2, 2√2] and y in [-√2, √2].
func Hammer(lon, lat float64) (x, y float64) {
	cosLat := math.Cos(lat)
	d := math.Sqrt(1 + cosLat*math.Cos(lon/2))
	return 2 * math.Sqrt2 * cosLat * math.Sin(lon/2) / d,
		math.Sqrt2 * math.Sin(lat) / d
}

const graticuleStep = 30.0

// graticule returns the meridian and parallel polylines of the all-sky map,
// every 30 degrees, with the outer meridians forming the boundary ellipse.
func graticule() [][][2]float64 {
	const samples = 90
	var lines [][][2]float64

	for lonDeg := -180.0; lonDeg <= 180; lonDeg += graticuleStep {
		lon := lonDeg * math.Pi / 180
		line := make([][2]float64, 0, samples+1)
		for i := range samples + 1 {
			lat := -math.Pi/2 + math.Pi*float64(i)/samples
			x, y := Hammer(lon, lat)
			line = append(line, [2]float64{x, y})
		}
		lines = append(lines, line)
	}

	for latDeg := -60.0; latDeg <= 60; latDeg += graticuleStep {
		lat := latDeg * math.Pi / 180
		line := make([][2]float64, 0, samples+1)
		for i := range samples + 1 {
			lon := -math.Pi + 2*math.Pi*float64(i)/samples
			x, y := Hammer(lon, lat)
			line = append(line, [2]float64{x, y})
		}
		lines = append(lines, line)
	}

	return lines
}
