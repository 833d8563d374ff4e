// SAFT-VR Mie perturbation term calculator
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/klauspost/compress/gzip"

	"github.com/gosaft/saftvrmie-go/saftvrmie"
)

func main() {
	parser := argparse.NewParser("saftvrmie", "Computes the SAFT-VR Mie first and second order perturbation terms over a temperature x density grid")

	filename := parser.StringPositional(&argparse.Options{
		Default: "",
		Help:    "YAML input filename"})

	output := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output filename (overrides output_filename from the input file)"})

	gz := parser.Flag("", "gzip", &argparse.Options{
		Help: "Compress the output CSV with gzip"})

	log := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "Log level"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}
	if *filename == "" {
		fmt.Print(parser.Usage(fmt.Errorf("input filename is required")))
		os.Exit(1)
	}

	logger := logging.GetLogger("saftvrmie")
	if *log == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *log == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *log == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *log == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *log == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	// Reading input
	input, err := saftvrmie.ReadInput(*filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Printf("Input file information\n"+
		"Attractive exponent = %g\n"+
		"Repulsive exponent = %g\n"+
		"Segment diameter = %g A\n"+
		"Potential depth = %g K\n"+
		"Segments per chain = %g\n"+
		"Molar mass = %g g/mol\n\n"+
		"Simulation setup\n"+
		"Temperature = %v K\n"+
		"Density = %v kg/m3\n\n"+
		"Output\n"+
		"Output filename = %s\n\n",
		input.AttractiveExponent,
		input.RepulsiveExponent,
		input.SegmentDiameter,
		input.PotentialDepth,
		input.Ms,
		input.MolarMass,
		input.Temperature,
		input.Density,
		input.OutputFilename)

	// Converting units
	beta := input.Beta()
	density := input.SegmentDensity()
	logger.Infof("Beta %v 1/J", beta)
	logger.Infof("Density %v segments/A3", density)

	// Perturbation terms
	logger.Infof("Simulation starting")
	saft, err := saftvrmie.NewSAFTVRMie(
		input.AttractiveExponent,
		input.RepulsiveExponent,
		input.SegmentDiameter,
		input.PotentialDepth)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	a1, err := saft.FirstOrderPerturbationTerm(beta, density)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	a2, err := saft.SecondOrderPerturbationTerm(beta, density)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	logger.Infof("Perturbation terms calculated")

	// Exporting data
	out := input.OutputFilename
	if *output != "" {
		out = *output
	}

	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	saftvrmie.ToCSV(buf, input, a1, a2)

	var save_path string
	if *gz {
		save_path = out + ".csv.gz"
		f, err := os.Create(save_path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		zw := gzip.NewWriter(f)
		if _, err := zw.Write(buf.Bytes()); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		zw.Close()
		f.Close()
	} else {
		save_path = out + ".csv"
		if err := os.WriteFile(save_path, buf.Bytes(), 0644); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}
	fmt.Printf("Data exported to %s\n", save_path)
}
