package pipeline

import "github.com/josebatistam/Astroinformatics-II/internal/core/domain"

// Transform derives the bundle from catalog records. It is pure and deterministic.
//
// Longitudes are normalized into (-180, 180] before conversion to radians.
// Cartesian coordinates and the bright/faint partition are computed only for rows
// whose luminosity distance is not the sentinel, in file order.
func Transform(records []domain.CatalogRecord) *domain.Bundle {
	n := len(records)
	b := &domain.Bundle{
		LonRad:             make([]float64, n),
		LatRad:             make([]float64, n),
		HasDistance:        make([]bool, n),
		Richness:           make([]int8, n),
		M10:                make([]float64, n),
		LuminosityDistance: make([]float64, n),
	}

	valid := 0
	for i, r := range records {
		b.LonRad[i] = domain.Radians(domain.NormalizeLongitude(r.GLon))
		b.LatRad[i] = domain.Radians(r.GLat)
		b.HasDistance[i] = r.HasDistance()
		b.Richness[i] = r.Richness
		b.M10[i] = r.M10
		b.LuminosityDistance[i] = r.LuminosityDistance
		if b.HasDistance[i] {
			valid++
		}
	}

	b.X = make([]float64, 0, valid)
	b.Y = make([]float64, 0, valid)
	b.Z = make([]float64, 0, valid)
	b.Bright = make([]bool, 0, valid)
	b.Faint = make([]bool, 0, valid)

	for i := range records {
		if !b.HasDistance[i] {
			continue
		}
		x, y, z := domain.Cartesian(b.LuminosityDistance[i], b.LonRad[i], b.LatRad[i])
		bright := domain.IsBright(b.M10[i])
		b.X = append(b.X, x)
		b.Y = append(b.Y, y)
		b.Z = append(b.Z, z)
		b.Bright = append(b.Bright, bright)
		b.Faint = append(b.Faint, !bright)
	}

	return b
}
