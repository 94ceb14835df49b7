package domain

import (
	"math"

	"go.trai.ch/zerr"
)

// SpeedOfLight is c in km/s.
const SpeedOfLight = 299792.458

// distanceSteps is the number of midpoint samples of the comoving distance integral.
const distanceSteps = 10000

// radiationDensity is the present radiation density parameter scaled by h², covering
// photons and three massless neutrino species.
const radiationDensity = 4.165e-5

// Cosmology is a Friedmann-Lemaître model with matter, radiation, vacuum energy
// and whatever curvature closes the budget.
type Cosmology struct {
	// H0 is the Hubble constant in km/s/Mpc.
	H0 float64
	// OmegaM is the matter density parameter.
	OmegaM float64
	// OmegaV is the vacuum energy density parameter.
	OmegaV float64
}

// DefaultCosmology is the concordance model used when no parameters are given.
var DefaultCosmology = Cosmology{H0: 70, OmegaM: 0.3, OmegaV: 0.7}

// RedshiftRecord is one object of a redshift table.
type RedshiftRecord struct {
	// RA is the right ascension in degrees.
	RA float64
	// Dec is the declination in degrees.
	Dec float64
	// Z is the redshift. It is always greater than -1.
	Z float64
}

// Validate reports whether the model parameters are usable.
func (c Cosmology) Validate() error {
	switch {
	case !(c.H0 > 0):
		return zerr.With(zerr.Wrap(ErrInvalidCosmology, "hubble constant must be positive"), "h0", c.H0)
	case !(c.OmegaM >= 0):
		return zerr.With(zerr.Wrap(ErrInvalidCosmology, "matter density must not be negative"), "omega_m", c.OmegaM)
	case !(c.OmegaV >= 0):
		return zerr.With(zerr.Wrap(ErrInvalidCosmology, "vacuum density must not be negative"), "omega_v", c.OmegaV)
	}
	return nil
}

// OmegaR is the radiation density parameter.
func (c Cosmology) OmegaR() float64 {
	h := c.H0 / 100
	return radiationDensity / (h * h)
}

// OmegaK is the curvature density parameter.
func (c Cosmology) OmegaK() float64 {
	return 1 - c.OmegaM - c.OmegaR() - c.OmegaV
}

// HubbleDistance is c/H0 in Mpc.
func (c Cosmology) HubbleDistance() float64 {
	return SpeedOfLight / c.H0
}

// LuminosityDistance returns D_L in Mpc for redshift z.
// The comoving distance is integrated over the scale factor with the midpoint
// rule; the first sample next to a = 1/(1+z) is left out of the sum.
func (c Cosmology) LuminosityDistance(z float64) float64 {
	az := 1 / (1 + z)
	omegaR := c.OmegaR()
	omegaK := c.OmegaK()

	var dcmr float64
	for i := 1; i < distanceSteps; i++ {
		a := az + (1-az)*(float64(i)+0.5)/distanceSteps
		adot := math.Sqrt(omegaK + c.OmegaM/a + omegaR/(a*a) + c.OmegaV*a*a)
		dcmr += 1 / (a * adot)
	}
	dcmr = (1 - az) * dcmr / distanceSteps

	dcmt := dcmr
	if omegaK != 0 {
		k := math.Sqrt(math.Abs(omegaK))
		if omegaK < 0 {
			dcmt = math.Sin(k*dcmr) / k
		} else {
			dcmt = math.Sinh(k*dcmr) / k
		}
	}

	da := c.HubbleDistance() * az * dcmt
	return da / (az * az)
}

// LuminosityDistance returns D_L in Mpc for redshift z under DefaultCosmology.
func LuminosityDistance(z float64) float64 {
	return DefaultCosmology.LuminosityDistance(z)
}
