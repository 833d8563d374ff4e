package saftvrmie

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Carnahan-Starling hard sphere reference model.
type CarnahanStarling struct {
	diameter float64
}

// Coefficient table phi from Table 2 of Lafitte, 2013. Columns hold the
// six component functions f_k; rows 0-3 are the numerator coefficients
// (powers alpha^0..alpha^3) and rows 4-6 the denominator coefficients
// (powers alpha^1..alpha^3, constant term implicitly 1).
// Fixed lookup table, do not re-derive.
var phi = [7][6]float64{
	{7.5365557, -359.44, 1550.9, -1.19932, -1911.28, 9236.9},
	{-37.60463, 1825.6, -5070.1, 9.063632, 21390.175, -129430},
	{71.745953, -3168, 6534.6, -17.94482, -51320.7, 357230},
	{-46.83552, 1884.2, -3288.7, 11.34027, 37064.54, -315530},
	{-2.467982, -0.82376, -2.7171, 20.52142, 1103.742, 1390.2},
	{-0.50272, -3.1935, 2.0883, -56.6377, -3264.61, -4518.2},
	{8.0956883, 3.7090, 0, 40.53683, 2556.181, 4241.6},
}

// """Initializes the Carnahan-Starling model.
// Args:
//
//	diameter(float64): hard sphere diameter [A]
//
// Returns:
//
//	*CarnahanStarling: the hard sphere model object
//
// """
func NewCarnahanStarling(diameter float64) (*CarnahanStarling, error) {
	if diameter <= 0 {
		return nil, fmt.Errorf("%w: diameter %g must be positive", ErrParameterDomain, diameter)
	}
	return &CarnahanStarling{diameter: diameter}, nil
}

// """Computes the packing fraction per density.
// Args:
//
//	density([]float64): segment number densities [segments/A3]
//
// Returns:
//
//	[]float64: eta = density*pi*diameter^3/6 per density
//
// """
func (cs *CarnahanStarling) PackingFraction(density []float64) []float64 {
	eta := make([]float64, len(density))
	for i := 0; i < len(density); i++ {
		eta[i] = density[i] * math.Pi * math.Pow(cs.diameter, 3) / 6
	}
	return eta
}

// """Computes the hard sphere Helmholtz free energy per density.
//
// a_hs = (4*eta - 3*eta^2)/(1 - eta)^2
//
// eta -> 1 is a singularity of the hard sphere reference and is not
// guarded; unphysical densities produce +/-Inf.
// """
func (cs *CarnahanStarling) HelmholtzEnergy(density []float64) []float64 {
	eta := cs.PackingFraction(density)
	a_hs := make([]float64, len(eta))
	for i := 0; i < len(eta); i++ {
		a_hs[i] = (4*eta[i] - 3*eta[i]*eta[i]) / ((1 - eta[i]) * (1 - eta[i]))
	}
	return a_hs
}

// """Computes the isothermal compressibility factor K_hs per density.
//
// K_hs = (1-eta)^4 / (1 + 4*eta + 4*eta^2 - 4*eta^3 + eta^4)
//
// Reference: Equation 16 from Lafitte, 2013.
// """
func (cs *CarnahanStarling) CompressibilityFactor(density []float64) []float64 {
	eta := cs.PackingFraction(density)
	k_hs := make([]float64, len(eta))
	for i := 0; i < len(eta); i++ {
		e := eta[i]
		k_hs[i] = math.Pow(1-e, 4) / (1 + 4*e + 4*e*e - 4*e*e*e + e*e*e*e)
	}
	return k_hs
}

// """Computes the dimensionless van der Waals attractive constant alpha.
// Args:
//
//	lambda_a(float64): attractive exponent
//	lambda_r(float64): repulsive exponent
//
// Returns:
//
//	float64: alpha = C*(1/(lambda_a-3) - 1/(lambda_r-3))
//
// Reference: Equation 24 from Lafitte, 2013.
// """
func (cs *CarnahanStarling) Alpha(lambda_a float64, lambda_r float64) (float64, error) {
	if lambda_r == lambda_a {
		return 0, fmt.Errorf("%w: repulsive and attractive exponents are both %g", ErrParameterDomain, lambda_a)
	}
	if lambda_a == 3 || lambda_r == 3 {
		return 0, fmt.Errorf("%w: interaction exponent of 3 in alpha", ErrParameterDomain)
	}
	c := (lambda_r / (lambda_r - lambda_a)) *
		math.Pow(lambda_r/lambda_a, lambda_a/(lambda_r-lambda_a))
	return c * (1/(lambda_a-3) - 1/(lambda_r-3)), nil
}

// Rational polynomial component functions f_k(alpha), k=0..5.
// Reference: Equation 20 from Lafitte, 2013.
func (cs *CarnahanStarling) f(alpha float64) [6]float64 {
	alpha2 := alpha * alpha
	alpha3 := alpha2 * alpha

	var f [6]float64
	for k := 0; k < 6; k++ {
		numerator := phi[0][k] + phi[1][k]*alpha + phi[2][k]*alpha2 + phi[3][k]*alpha3
		denominator := 1 + phi[4][k]*alpha + phi[5][k]*alpha2 + phi[6][k]*alpha3
		f[k] = numerator / denominator
	}
	return f
}

// """Computes the empirical correction factor chi of the second order
// perturbation term, broadcast over the outer grid of x0 (temperature
// axis) and packing fraction (density axis).
// Args:
//
//	alpha(float64): the van der Waals attractive constant
//	packing_fraction([]float64): eta per density
//	x0([]float64): reduced diameter per temperature
//
// Returns:
//
//	*mat.Dense: chi, rows = temperatures, cols = densities
//
// Reference: Equation 20 from Lafitte, 2013.
// """
func (cs *CarnahanStarling) CorrectionFactor(alpha float64, packing_fraction []float64, x0 []float64) *mat.Dense {
	f := cs.f(alpha)

	chi := mat.NewDense(len(x0), len(packing_fraction), nil)
	for i := 0; i < len(x0); i++ {
		x03 := math.Pow(x0[i], 3)
		for j := 0; j < len(packing_fraction); j++ {
			zeta := packing_fraction[j] * x03
			chi.Set(i, j, f[0]*zeta+f[1]*math.Pow(zeta, 5)+f[2]*math.Pow(zeta, 8))
		}
	}
	return chi
}
