package saftvrmie

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func write_input(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

func Test_ReadInput(t *testing.T) {
	path := write_input(t, `
segment_diameter: 3.7
potential_depth: 150
repulsive_exponent: 12
attractive_exponent: 6
ms: 1
molar_mass: 16.04
temperature: [280, 300, 320]
density: 800
output_filename: methane_a1_a2
`)

	input, err := ReadInput(path)
	assert.NoError(t, err)
	assert.Equal(t, 3.7, input.SegmentDiameter)
	assert.Equal(t, 150.0, input.PotentialDepth)
	assert.Equal(t, 12.0, input.RepulsiveExponent)
	assert.Equal(t, 6.0, input.AttractiveExponent)
	assert.Equal(t, 1.0, input.Ms)
	assert.Equal(t, 16.04, input.MolarMass)
	assert.Equal(t, path, input.YamlPath)
	assert.Equal(t, "methane_a1_a2", input.OutputFilename)

	// list temperature, scalar density promoted to length-1 sequence
	assert.Equal(t, []float64{280, 300, 320}, input.Temperature)
	assert.Equal(t, []float64{800}, input.Density)
}

func Test_ReadInput_MissingField(t *testing.T) {
	// no potential_depth
	path := write_input(t, `
segment_diameter: 3.7
repulsive_exponent: 12
attractive_exponent: 6
ms: 1
molar_mass: 16.04
temperature: 300
density: 800
output_filename: out
`)

	_, err := ReadInput(path)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func Test_ReadInput_NoFile(t *testing.T) {
	_, err := ReadInput(filepath.Join(t.TempDir(), "does_not_exist.yaml"))
	assert.ErrorIs(t, err, ErrConfiguration)
}

func Test_InputConversions(t *testing.T) {
	input := &Input{
		SegmentDiameter:    3.7,
		PotentialDepth:     150,
		RepulsiveExponent:  12,
		AttractiveExponent: 6,
		Ms:                 1,
		MolarMass:          16.04,
		Temperature:        []float64{300},
		Density:            []float64{800},
	}

	beta := input.Beta()
	assert.Equal(t, 1, len(beta))
	assert.True(t, math.Abs(beta[0]-1/(BOLTZMANN*300)) < 1e-12*beta[0])

	// kg/m3 -> segments/A3
	density := input.SegmentDensity()
	want := 800 * 1e3 / 16.04 * AVOGADRO * 1 * 1e-30
	assert.True(t, math.Abs(density[0]-want) < 1e-12*want)
}
