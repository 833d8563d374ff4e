package saftvrmie

import (
	"fmt"
	"math"
)

// Sutherland (single power law) attractive potential. Used by the
// perturbation engine as the analytic reference for the first order
// term at several interaction exponents.
type Sutherland struct {
	interactionExponent float64
	segmentDiameter     float64
	potentialDepth      float64
	c                   [4]float64 //effective packing fraction coefficients
}

// Coefficient matrix of the effective packing fraction, Table 16 /
// Equation 41 from Lafitte, 2013. Rows produce the coefficients c1..c4
// when dotted with [1, 1/lambda, 1/lambda^2, 1/lambda^3].
var sutherland_parameters = [4][4]float64{
	{0.81096, 1.7888, -37.578, 92.284},
	{1.0505, -19.341, 151.26, -465.50},
	{-1.9057, 22.845, -228.14, 973.92},
	{1.0885, -6.1962, 106.98, -677.64},
}

// """Initializes the Sutherland potential.
//
// Exponents of exactly 3 or 4 are rejected eagerly: both the first
// order term below and the I/J integrals of the perturbation engine
// divide by (lambda-3) and (lambda-4).
//
// Args:
//
//	interaction_exponent(float64): exponent of the power term
//	segment_diameter(float64): segment diameter [A]
//	potential_depth(float64): potential well depth [K]
//
// Returns:
//
//	*Sutherland: the Sutherland potential object
//
// """
func NewSutherland(interaction_exponent float64, segment_diameter float64, potential_depth float64) (*Sutherland, error) {
	if interaction_exponent == 3 || interaction_exponent == 4 {
		return nil, fmt.Errorf("%w: interaction exponent %g", ErrParameterDomain, interaction_exponent)
	}
	if segment_diameter <= 0 {
		return nil, fmt.Errorf("%w: segment diameter %g must be positive", ErrParameterDomain, segment_diameter)
	}
	if potential_depth <= 0 {
		return nil, fmt.Errorf("%w: potential depth %g must be positive", ErrParameterDomain, potential_depth)
	}

	s := &Sutherland{
		interactionExponent: interaction_exponent,
		segmentDiameter:     segment_diameter,
		potentialDepth:      potential_depth,
	}
	lambda_inv := [4]float64{
		1,
		1 / interaction_exponent,
		1 / (interaction_exponent * interaction_exponent),
		1 / (interaction_exponent * interaction_exponent * interaction_exponent),
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			s.c[i] += sutherland_parameters[i][j] * lambda_inv[j]
		}
	}
	return s, nil
}

// """Computes the effective packing fraction per packing fraction.
//
// eta_eff = c1*eta + c2*eta^2 + c3*eta^3 + c4*eta^4
//
// Reference: Equation 40 from Lafitte, 2013.
// """
func (s *Sutherland) EffectivePackingFraction(packing_fraction []float64) []float64 {
	eta_eff := make([]float64, len(packing_fraction))
	for i := 0; i < len(packing_fraction); i++ {
		eta := packing_fraction[i]
		eta_eff[i] = s.c[0]*eta + s.c[1]*eta*eta + s.c[2]*eta*eta*eta + s.c[3]*eta*eta*eta*eta
	}
	return eta_eff
}

// """Computes the first order perturbation term of the Sutherland
// potential per packing fraction.
// Args:
//
//	packing_fraction([]float64): eta per density
//
// Returns:
//
//	[]float64: a1S per density [J]
//
// Reference: Equation 39 from Lafitte, 2013.
// """
func (s *Sutherland) FirstOrderPerturbationTerm(packing_fraction []float64) []float64 {
	eta_eff := s.EffectivePackingFraction(packing_fraction)

	a1S := make([]float64, len(packing_fraction))
	for i := 0; i < len(packing_fraction); i++ {
		a1S[i] = -12 * s.potentialDepth * BOLTZMANN * packing_fraction[i] *
			(1 / (s.interactionExponent - 3)) *
			((1 - eta_eff[i]/2) / math.Pow(1-eta_eff[i], 3))
	}
	return a1S
}
