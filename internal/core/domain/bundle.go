package domain

import (
	"fmt"
	"iter"

	"go.trai.ch/zerr"
)

// Bundle is the derived, cacheable view of the catalog.
//
// Full-length columns (one entry per catalog row) and valid-subset columns (one
// entry per row with a luminosity distance) live together so that masks are always
// applied against the columns they were derived from. Use Rows to walk both at once.
// A Bundle is immutable once built.
type Bundle struct {
	// LonRad is the galactic longitude in radians, normalized into (-π, π].
	LonRad []float64 `cbor:"lon_rad"`
	// LatRad is the galactic latitude in radians.
	LatRad []float64 `cbor:"lat_rad"`
	// HasDistance marks rows whose luminosity distance is not the sentinel.
	HasDistance []bool `cbor:"has_distance"`
	// Richness is passed through from the catalog.
	Richness []int8 `cbor:"richness"`
	// M10 is passed through from the catalog.
	M10 []float64 `cbor:"m10"`
	// LuminosityDistance is passed through from the catalog, sentinel included.
	LuminosityDistance []float64 `cbor:"luminosity_distance"`

	// X, Y and Z are the Cartesian coordinates (Mpc) of distance-valid rows.
	X []float64 `cbor:"x"`
	Y []float64 `cbor:"y"`
	Z []float64 `cbor:"z"`
	// Bright marks distance-valid rows with m10 < 17.0.
	Bright []bool `cbor:"bright"`
	// Faint marks distance-valid rows with m10 >= 17.0.
	Faint []bool `cbor:"faint"`
}

// Row is one catalog row joined with its derived values.
type Row struct {
	// Index is the position of the row in the source catalog.
	Index int
	// ValidIndex is the position of the row in the distance-valid subset, or -1.
	ValidIndex int

	LonRad             float64
	LatRad             float64
	HasDistance        bool
	Richness           int8
	M10                float64
	LuminosityDistance float64

	// X, Y, Z, Bright and Faint are only meaningful when HasDistance is true.
	X, Y, Z float64
	Bright  bool
	Faint   bool
}

// Subset selects rows of the distance-valid subset.
type Subset int

const (
	// SubsetValid selects every row with a luminosity distance.
	SubsetValid Subset = iota
	// SubsetBright selects distance-valid rows with m10 < 17.0.
	SubsetBright
	// SubsetFaint selects distance-valid rows with m10 >= 17.0.
	SubsetFaint
)

// String returns the subset name.
func (s Subset) String() string {
	switch s {
	case SubsetValid:
		return "valid"
	case SubsetBright:
		return "bright"
	case SubsetFaint:
		return "faint"
	default:
		return fmt.Sprintf("subset(%d)", int(s))
	}
}

// Contains reports whether the row belongs to the subset.
func (s Subset) Contains(r Row) bool {
	if !r.HasDistance {
		return false
	}
	switch s {
	case SubsetBright:
		return r.Bright
	case SubsetFaint:
		return r.Faint
	default:
		return true
	}
}

// Len returns the number of catalog rows.
func (b *Bundle) Len() int {
	return len(b.LonRad)
}

// ValidLen returns the number of distance-valid rows.
func (b *Bundle) ValidLen() int {
	return len(b.X)
}

// Rows iterates over all catalog rows in file order.
// The bundle must satisfy Validate.
func (b *Bundle) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		k := 0
		for i := range b.LonRad {
			r := Row{
				Index:              i,
				ValidIndex:         -1,
				LonRad:             b.LonRad[i],
				LatRad:             b.LatRad[i],
				HasDistance:        b.HasDistance[i],
				Richness:           b.Richness[i],
				M10:                b.M10[i],
				LuminosityDistance: b.LuminosityDistance[i],
			}
			if r.HasDistance {
				r.ValidIndex = k
				r.X, r.Y, r.Z = b.X[k], b.Y[k], b.Z[k]
				r.Bright, r.Faint = b.Bright[k], b.Faint[k]
				k++
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Select iterates over the rows of the given subset in file order.
func (b *Bundle) Select(s Subset) iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for r := range b.Rows() {
			if s.Contains(r) && !yield(r) {
				return
			}
		}
	}
}

// Stats summarizes a bundle.
type Stats struct {
	Clusters     int
	WithDistance int
	Bright       int
	Faint        int
}

// Stats counts the rows of each subset.
func (b *Bundle) Stats() Stats {
	st := Stats{Clusters: b.Len(), WithDistance: b.ValidLen()}
	for k := range b.Bright {
		if b.Bright[k] {
			st.Bright++
		}
		if b.Faint[k] {
			st.Faint++
		}
	}
	return st
}

// Validate checks the structural invariants of the bundle: column lengths, the
// distance mask against the pass-through distances, and the bright/faint partition.
func (b *Bundle) Validate() error {
	n := len(b.LonRad)
	full := map[string]int{
		"lat_rad":             len(b.LatRad),
		"has_distance":        len(b.HasDistance),
		"richness":            len(b.Richness),
		"m10":                 len(b.M10),
		"luminosity_distance": len(b.LuminosityDistance),
	}
	for name, l := range full {
		if l != n {
			return invalid("column length mismatch", name, l, n)
		}
	}

	valid := 0
	for i, has := range b.HasDistance {
		if has != HasDistance(b.LuminosityDistance[i]) {
			return zerr.With(zerr.Wrap(ErrInvalidBundle, "distance mask disagrees with luminosity distance"), "row", i)
		}
		if has {
			valid++
		}
	}

	subset := map[string]int{
		"x":      len(b.X),
		"y":      len(b.Y),
		"z":      len(b.Z),
		"bright": len(b.Bright),
		"faint":  len(b.Faint),
	}
	for name, l := range subset {
		if l != valid {
			return invalid("valid subset length mismatch", name, l, valid)
		}
	}

	for r := range b.Rows() {
		if !r.HasDistance {
			continue
		}
		if r.Bright == r.Faint {
			return zerr.With(zerr.Wrap(ErrInvalidBundle, "bright/faint masks do not partition the valid subset"), "row", r.Index)
		}
		if r.Bright != IsBright(r.M10) {
			return zerr.With(zerr.Wrap(ErrInvalidBundle, "bright mask disagrees with m10"), "row", r.Index)
		}
	}

	return nil
}

func invalid(msg, column string, got, want int) error {
	err := zerr.Wrap(ErrInvalidBundle, msg)
	err = zerr.With(err, "column", column)
	err = zerr.With(err, "len", got)
	return zerr.With(err, "want", want)
}
