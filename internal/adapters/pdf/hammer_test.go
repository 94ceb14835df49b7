package pdf_test

import (
	"math"
	"testing"

	"github.com/josebatistam/Astroinformatics-II/internal/adapters/pdf"
	"github.com/stretchr/testify/assert"
)

func TestHammer(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		x, y     float64
	}{
		{"origin", 0, 0, 0, 0},
		{"north pole", 0, math.Pi / 2, 0, math.Sqrt2},
		{"south pole", 1.0, -math.Pi / 2, 0, -math.Sqrt2},
		{"east edge", math.Pi, 0, 2 * math.Sqrt2, 0},
		{"west edge", -math.Pi, 0, -2 * math.Sqrt2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := pdf.Hammer(tt.lon, tt.lat)
			assert.InDelta(t, tt.x, x, 1e-9)
			assert.InDelta(t, tt.y, y, 1e-9)
		})
	}
}

func TestHammer_StaysInsideEllipse(t *testing.T) {
	for lon := -math.Pi; lon <= math.Pi; lon += 0.1 {
		for lat := -math.Pi / 2; lat <= math.Pi/2; lat += 0.1 {
			x, y := pdf.Hammer(lon, lat)
			r := x*x/8 + y*y/2
			assert.LessOrEqual(t, r, 1+1e-9, "lon=%v lat=%v", lon, lat)
		}
	}
}
