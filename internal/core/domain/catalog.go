package domain

// CatalogRecord is one galaxy cluster row of the Abell, Corwin & Olowin (1989) catalog.
type CatalogRecord struct {
	// GLon is the galactic longitude in degrees, conventionally in [0, 360).
	GLon float64
	// GLat is the galactic latitude in degrees, in [-90, 90].
	GLat float64
	// Richness is the Abell richness class, 0 (30-40 galaxies) to 5 (over 300 galaxies).
	Richness int8
	// DistanceClass is the Abell distance class, 1 (near) to 7 (extremely distant).
	DistanceClass int8
	// M10 is the red magnitude of the tenth brightest member.
	M10 float64
	// LuminosityDistance is D_L in Mpc, or MissingDistance when there is no estimate.
	LuminosityDistance float64
}

// HasDistance reports whether the record carries a luminosity distance estimate.
func (r CatalogRecord) HasDistance() bool {
	return HasDistance(r.LuminosityDistance)
}
