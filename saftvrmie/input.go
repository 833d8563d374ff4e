package saftvrmie

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// FloatList accepts either a single YAML scalar or a YAML list of
// numbers, so `temperature: 300` and `temperature: [280, 300, 320]`
// both parse to a sequence.
type FloatList []float64

func (fl *FloatList) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var single float64
	if err := unmarshal(&single); err == nil {
		*fl = FloatList{single}
		return nil
	}
	var many []float64
	if err := unmarshal(&many); err != nil {
		return err
	}
	*fl = FloatList(many)
	return nil
}

// Raw file schema. Pointer fields so that missing keys are
// distinguishable from zero values.
type input_file struct {
	SegmentDiameter    *float64   `yaml:"segment_diameter"`
	PotentialDepth     *float64   `yaml:"potential_depth"`
	RepulsiveExponent  *float64   `yaml:"repulsive_exponent"`
	AttractiveExponent *float64   `yaml:"attractive_exponent"`
	Ms                 *float64   `yaml:"ms"`
	MolarMass          *float64   `yaml:"molar_mass"`
	Temperature        *FloatList `yaml:"temperature"`
	Density            *FloatList `yaml:"density"`
	OutputFilename     *string    `yaml:"output_filename"`
}

// Input holds the molecule parameters and the simulation setup read
// from a YAML input file.
type Input struct {
	YamlPath string

	//molecule parameters
	SegmentDiameter    float64 //segment diameter [A]
	PotentialDepth     float64 //potential well depth [K]
	RepulsiveExponent  float64
	AttractiveExponent float64
	Ms                 float64 //segments per molecule
	MolarMass          float64 //molar mass [g/mol]

	//simulation setup
	Temperature []float64 //temperatures [K]
	Density     []float64 //densities [kg/m3]

	//output options
	OutputFilename string
}

// """Reads a YAML input file.
// Args:
//
//	yaml_path(string): path to the input file
//
// Returns:
//
//	*Input: the input object with the relevant data
//
// """
func ReadInput(yaml_path string) (*Input, error) {
	data, err := os.ReadFile(yaml_path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	var file input_file
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	if file.SegmentDiameter == nil {
		return nil, fmt.Errorf("%w: missing segment_diameter in %s", ErrConfiguration, yaml_path)
	}
	if file.PotentialDepth == nil {
		return nil, fmt.Errorf("%w: missing potential_depth in %s", ErrConfiguration, yaml_path)
	}
	if file.RepulsiveExponent == nil {
		return nil, fmt.Errorf("%w: missing repulsive_exponent in %s", ErrConfiguration, yaml_path)
	}
	if file.AttractiveExponent == nil {
		return nil, fmt.Errorf("%w: missing attractive_exponent in %s", ErrConfiguration, yaml_path)
	}
	if file.Ms == nil {
		return nil, fmt.Errorf("%w: missing ms in %s", ErrConfiguration, yaml_path)
	}
	if file.MolarMass == nil {
		return nil, fmt.Errorf("%w: missing molar_mass in %s", ErrConfiguration, yaml_path)
	}
	if file.Temperature == nil {
		return nil, fmt.Errorf("%w: missing temperature in %s", ErrConfiguration, yaml_path)
	}
	if file.Density == nil {
		return nil, fmt.Errorf("%w: missing density in %s", ErrConfiguration, yaml_path)
	}
	if file.OutputFilename == nil {
		return nil, fmt.Errorf("%w: missing output_filename in %s", ErrConfiguration, yaml_path)
	}

	return &Input{
		YamlPath:           yaml_path,
		SegmentDiameter:    *file.SegmentDiameter,
		PotentialDepth:     *file.PotentialDepth,
		RepulsiveExponent:  *file.RepulsiveExponent,
		AttractiveExponent: *file.AttractiveExponent,
		Ms:                 *file.Ms,
		MolarMass:          *file.MolarMass,
		Temperature:        []float64(*file.Temperature),
		Density:            []float64(*file.Density),
		OutputFilename:     *file.OutputFilename,
	}, nil
}

// """Converts the temperatures to beta values.
// Returns:
//
//	[]float64: beta = 1/(kB*T) per temperature [1/J]
//
// """
func (input *Input) Beta() []float64 {
	beta := make([]float64, len(input.Temperature))
	for i := 0; i < len(input.Temperature); i++ {
		beta[i] = 1 / (BOLTZMANN * input.Temperature[i])
	}
	return beta
}

// """Converts the mass densities to segment number densities.
//
// kg/m3 -> g/m3 -> mol/m3 -> molecules/m3 -> segments/m3 -> segments/A3
//
// Returns:
//
//	[]float64: density per input density [segments/A3]
//
// """
func (input *Input) SegmentDensity() []float64 {
	density := make([]float64, len(input.Density))
	for i := 0; i < len(input.Density); i++ {
		density[i] = input.Density[i] * KILOGRAM / input.MolarMass *
			AVOGADRO * input.Ms * (ANGSTRON * ANGSTRON * ANGSTRON)
	}
	return density
}
