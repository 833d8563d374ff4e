package saftvrmie

import "errors"

var (
	// ErrParameterDomain indicates a molecular parameter outside the domain of
	// the model formulas (equal Mie exponents, interaction exponents of 3 or 4,
	// non-positive diameter or depth).
	ErrParameterDomain = errors.New("saftvrmie: parameter outside model domain")

	// ErrInputShape indicates an empty or non-finite state-variable sequence.
	ErrInputShape = errors.New("saftvrmie: empty or non-finite input")

	// ErrConfiguration indicates a missing or invalid field in the input file.
	ErrConfiguration = errors.New("saftvrmie: invalid configuration")
)
