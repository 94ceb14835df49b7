package domain_test

import (
	"math"
	"testing"

	"github.com/josebatistam/Astroinformatics-II/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuminosityDistance(t *testing.T) {
	tests := []struct {
		z    float64
		want float64
	}{
		{z: 0, want: 0},
		{z: 0.01, want: 43.153867},
		{z: 0.0231, want: 100.677844},
		{z: 0.1, want: 460.248307},
		{z: 0.5, want: 2832.478823},
		{z: 1, want: 6606.194793},
		{z: 2, want: 15534.609190},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, domain.LuminosityDistance(tt.z), 1e-5, "z=%v", tt.z)
	}
}

func TestLuminosityDistance_Increasing(t *testing.T) {
	prev := domain.LuminosityDistance(0)
	for z := 0.05; z <= 5; z += 0.05 {
		d := domain.LuminosityDistance(z)
		require.Greater(t, d, prev, "z=%v", z)
		prev = d
	}
}

func TestCosmology_LuminosityDistance(t *testing.T) {
	t.Run("einstein-de sitter", func(t *testing.T) {
		c := domain.Cosmology{H0: 100, OmegaM: 1}
		assert.InDelta(t, 3511.805183, c.LuminosityDistance(1), 1e-5)

		analytic := 2 * c.HubbleDistance() * 2 * (1 - 1/math.Sqrt2)
		assert.InEpsilon(t, analytic, c.LuminosityDistance(1), 1e-3)
	})

	t.Run("open", func(t *testing.T) {
		c := domain.Cosmology{H0: 70, OmegaM: 0.3}
		assert.Positive(t, c.OmegaK())
		assert.InDelta(t, 2564.809735, c.LuminosityDistance(0.5), 1e-5)
	})

	t.Run("concordance is marginally closed", func(t *testing.T) {
		c := domain.DefaultCosmology
		assert.Negative(t, c.OmegaK())
		assert.InDelta(t, -c.OmegaR(), c.OmegaK(), 1e-12)
	})
}

func TestCosmology_Validate(t *testing.T) {
	require.NoError(t, domain.DefaultCosmology.Validate())

	for _, c := range []domain.Cosmology{
		{H0: 0, OmegaM: 0.3, OmegaV: 0.7},
		{H0: -70, OmegaM: 0.3, OmegaV: 0.7},
		{H0: math.NaN(), OmegaM: 0.3, OmegaV: 0.7},
		{H0: 70, OmegaM: -0.1, OmegaV: 0.7},
		{H0: 70, OmegaM: 0.3, OmegaV: -1},
	} {
		assert.ErrorIs(t, c.Validate(), domain.ErrInvalidCosmology, "%+v", c)
	}
}
