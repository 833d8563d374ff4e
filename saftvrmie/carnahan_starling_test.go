package saftvrmie

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_PackingFraction(t *testing.T) {
	cs, err := NewCarnahanStarling(3.7)
	assert.NoError(t, err)

	// no particles, no packing
	eta := cs.PackingFraction([]float64{0})
	assert.True(t, math.Abs(eta[0]) < 1e-15)

	// eta = rho*pi*sigma^3/6
	eta = cs.PackingFraction([]float64{0.01})
	want := 0.01 * math.Pi * 3.7 * 3.7 * 3.7 / 6
	assert.True(t, math.Abs(eta[0]-want) < 1e-12)

	// monotonically increasing in density
	eta = cs.PackingFraction([]float64{0.001, 0.002, 0.005, 0.01, 0.02})
	for i := 1; i < len(eta); i++ {
		assert.True(t, eta[i] > eta[i-1])
	}

	_, err = NewCarnahanStarling(0)
	assert.ErrorIs(t, err, ErrParameterDomain)
}

func Test_HelmholtzEnergy(t *testing.T) {
	cs, err := NewCarnahanStarling(3.7)
	assert.NoError(t, err)

	// ideal gas limit
	a_hs := cs.HelmholtzEnergy([]float64{0})
	assert.True(t, math.Abs(a_hs[0]) < 1e-15)

	// (4*eta - 3*eta^2)/(1-eta)^2 spot check at eta = 0.2
	rho := 0.2 * 6 / (math.Pi * 3.7 * 3.7 * 3.7)
	a_hs = cs.HelmholtzEnergy([]float64{rho})
	want := (4*0.2 - 3*0.04) / (0.8 * 0.8)
	assert.True(t, math.Abs(a_hs[0]-want) < 1e-12)
}

func Test_CompressibilityFactor(t *testing.T) {
	cs, err := NewCarnahanStarling(3.7)
	assert.NoError(t, err)

	// ideal gas limit
	k_hs := cs.CompressibilityFactor([]float64{0})
	assert.True(t, math.Abs(k_hs[0]-1) < 1e-15)

	// monotonically decreasing at low packing
	rho := func(eta float64) float64 { return eta * 6 / (math.Pi * 3.7 * 3.7 * 3.7) }
	k_hs = cs.CompressibilityFactor([]float64{rho(0.05), rho(0.1), rho(0.2), rho(0.3)})
	for i := 1; i < len(k_hs); i++ {
		assert.True(t, k_hs[i] < k_hs[i-1])
		assert.True(t, k_hs[i] > 0)
	}
}

func Test_Alpha(t *testing.T) {
	cs, err := NewCarnahanStarling(3.7)
	assert.NoError(t, err)

	// C = 4 for (6, 12), alpha = 4*(1/3 - 1/9) = 8/9
	alpha, err := cs.Alpha(6, 12)
	assert.NoError(t, err)
	assert.True(t, math.Abs(alpha-8.0/9.0) < 1e-12)

	_, err = cs.Alpha(6, 6)
	assert.ErrorIs(t, err, ErrParameterDomain)

	_, err = cs.Alpha(3, 12)
	assert.ErrorIs(t, err, ErrParameterDomain)
}

func Test_CorrectionFactor(t *testing.T) {
	cs, err := NewCarnahanStarling(3.7)
	assert.NoError(t, err)

	alpha, err := cs.Alpha(6, 12)
	assert.NoError(t, err)

	// rows = temperatures (x0 axis), cols = densities (eta axis)
	chi := cs.CorrectionFactor(alpha, []float64{0, 0.1, 0.2}, []float64{1.05, 1.1})
	r, c := chi.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	// vanishes with the packing fraction
	assert.True(t, math.Abs(chi.At(0, 0)) < 1e-15)
	assert.True(t, math.Abs(chi.At(1, 0)) < 1e-15)

	// finite everywhere on a physical grid
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.False(t, math.IsNaN(chi.At(i, j)))
			assert.False(t, math.IsInf(chi.At(i, j), 0))
		}
	}
}
