package main

import (
	"flag"
	"fmt"
	"math"
	"strconv"

	"github.com/wildstyl3r/dustcharge/internal/charging"
	"github.com/wildstyl3r/dustcharge/internal/config"
	"github.com/wildstyl3r/dustcharge/internal/object"
	"github.com/wildstyl3r/dustcharge/internal/utils"
)

// Result of one scenario.
type Result struct {
	name       string
	parameters config.ScenarioParameters
	dust       *object.DustObject

	energies   []float64
	yields     []float64
	peakEnergy float64
	peakYield  float64

	currents   charging.Currents
	photons    charging.PhotonSource
	saturation float64

	floating       float64 // [V]
	floatingCharge float64 // [C]
	floatingErr    error

	err error
}

type DataItem struct {
	saveFlag   *bool
	fileSuffix string
}

type SequentialDataItem struct {
	DataItem
	columnNames []string
	values      func(*Result) [][]float64
}

type DataFlags struct {
	all         *bool
	sequentials map[string]SequentialDataItem
	outputPath  string
}

func newDataFlags() DataFlags {
	return DataFlags{
		all: flag.Bool("all", false, "save every available table"),
		sequentials: map[string]SequentialDataItem{
			"SEY curve": {
				DataItem: DataItem{
					saveFlag:   flag.Bool("sey", false, "save secondary electron yield curve"),
					fileSuffix: "SEY",
				},
				columnNames: []string{"E (eV)", "delta"},
				values: func(r *Result) [][]float64 {
					return [][]float64{r.energies, r.yields}
				},
			},
			"Charging currents": {
				DataItem: DataItem{
					saveFlag:   flag.Bool("j", true, "save capture, secondary and photoelectric current densities"),
					fileSuffix: "J",
				},
				columnNames: []string{"phi (V)", "J_e (A m^-2)", "J_s (A m^-2)", "J_hv (A m^-2)", "J_tot (A m^-2)"},
				values: func(r *Result) [][]float64 {
					c := r.currents
					return [][]float64{c.Potential, c.Capture, c.Secondary, c.Photo, c.Total}
				},
			},
			"Electron flux": {
				DataItem: DataItem{
					saveFlag:   flag.Bool("flux", false, "save net current as electron flux"),
					fileSuffix: "flux",
				},
				columnNames: []string{"phi (V)", "J_tot/e (s^-1 m^-2)"},
				values: func(r *Result) [][]float64 {
					return [][]float64{r.currents.Potential, utils.ElectronFlux(r.currents.Total)}
				},
			},
		},
	}
}

func (df *DataFlags) SetOutputPath(path string) {
	df.outputPath = path
}

// Save writes every requested table of the scenario.
func (df *DataFlags) Save(r *Result) error {
	for name, output := range df.sequentials {
		if !*output.saveFlag && !*df.all {
			continue
		}
		file, err := utils.OpenFile(r.parameters.MakeDir, df.outputPath, output.fileSuffix, r.name)
		if err != nil {
			return fmt.Errorf("unable to save %s: %w", name, err)
		}
		err = utils.WriteColumns(file, output.columnNames, output.values(r)...)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return fmt.Errorf("unable to save %s: %w", name, err)
		}
		if r.parameters.Verbose() {
			fmt.Println(r.name + ": " + name + " saved")
		}
	}
	return nil
}

var summaryColumns = []string{
	"scenario", "material", "SEY", "mass (kg)", "area (m^2)", "volume (m^3)",
	"n_e,bulk (m^-3)", "Sigma (m^-1)", "initial phi (V)",
	"peak E (eV)", "peak delta", "screen perimeter (m)", "screen area (m^2)",
	"J_sat (A m^-2)", "floating phi (V)", "floating Q (C)",
}

func (r *Result) summaryRow() []string {
	format := func(v float64) string {
		return strconv.FormatFloat(v, 'g', 8, 64)
	}
	floating, charge := "", ""
	if r.floatingErr == nil {
		floating, charge = format(r.floating), format(r.floatingCharge)
	}
	m := r.dust.Material
	return []string{
		r.name,
		m.Kind.String(),
		m.SEY.Model.String(),
		format(r.dust.Mass),
		format(r.dust.Shape.Area()),
		format(r.dust.Shape.Volume()),
		format(m.ElectronDensity),
		format(m.MacroscopicCrossSection),
		format(r.dust.Potential()),
		format(r.peakEnergy),
		format(r.peakYield),
		format(r.photons.BeamScreenPerimeter),
		format(r.photons.BeamScreenArea),
		format(r.saturation),
		floating,
		charge,
	}
}

func writeSummary(rows [][]string, outputPath string) error {
	return utils.WriteAsCSV(utils.CSV(rows), outputPath, "summary", summaryColumns)
}

func finiteOrEmpty(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return v
}
