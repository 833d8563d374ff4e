package saftvrmie

import (
	"bytes"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// CSV format
//
// One record per (temperature, density) combination, in the order of
// the input sequences (temperature outer, density inner), with the
// dimensionless reductions a1/(eps*kB) and a2/(eps*kB)^2 and the input
// parameters echoed on every row.
func ToCSV(buf *bytes.Buffer, input *Input, a1 *mat.Dense, a2 *mat.Dense) {
	buf.WriteString("temperature")
	buf.WriteString(",density")
	buf.WriteString(",a1")
	buf.WriteString(",a2")
	buf.WriteString(",a1_dimensionless")
	buf.WriteString(",a2_dimensionless")
	buf.WriteString(",segment_diameter")
	buf.WriteString(",potential_depth")
	buf.WriteString(",repulsive_exponent")
	buf.WriteString(",attractive_exponent")
	buf.WriteString(",input_filename")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}

	depth := input.PotentialDepth * BOLTZMANN
	for i := 0; i < len(input.Temperature); i++ {
		for j := 0; j < len(input.Density); j++ {
			buf.WriteString(strconv.FormatFloat(input.Temperature[i], 'g', -1, 64))
			writeFloat(input.Density[j])
			writeFloat(a1.At(i, j))
			writeFloat(a2.At(i, j))
			writeFloat(a1.At(i, j) / depth)
			writeFloat(a2.At(i, j) / (depth * depth))
			writeFloat(input.SegmentDiameter)
			writeFloat(input.PotentialDepth)
			writeFloat(input.RepulsiveExponent)
			writeFloat(input.AttractiveExponent)
			buf.WriteString(",")
			buf.WriteString(input.YamlPath)
			buf.WriteString("\n")
		}
	}
}
