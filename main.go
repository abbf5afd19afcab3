package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/facette/natsort"
	"github.com/fatih/color"
	"gonum.org/v1/gonum/floats"

	"github.com/wildstyl3r/dustcharge/internal/config"
	"github.com/wildstyl3r/dustcharge/internal/material"
	"github.com/wildstyl3r/dustcharge/internal/object"
	"github.com/wildstyl3r/dustcharge/internal/utils"
)

const floatingPotentialPrecision = 1e-6 // [V]

func main() {
	dataFlags := newDataFlags()
	var configFileNamePointer = flag.String("input", "dust", "scenario configuration in toml format")
	var xlsxFlag = flag.Bool("xlsx", false, "also save every sweep into one workbook")
	flag.Parse()

	startTime := time.Now()
	fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))

	cfg, meta, err := config.LoadConfig(*configFileNamePointer)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	outputPath, err := utils.OutputPath(cfg.OutputDir)
	if err != nil {
		log.Fatalln("unable to create output directory:", err)
	}
	dataFlags.SetOutputPath(outputPath)

	names := make([]string, 0, len(cfg.Scenarios))
	for name := range cfg.Scenarios {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return natsort.Compare(names[i], names[j]) })

	var chanWg sync.WaitGroup
	dataflow := make(chan *Result)
	for _, name := range names {
		parameters := cfg.Scenarios[name]
		chanWg.Add(1)
		//worker
		go func() {
			defer chanWg.Done()
			dataflow <- runScenario(name, parameters, &cfg, &meta)
		}()
	}

	// chan killer
	go func() {
		chanWg.Wait()
		close(dataflow)
	}()

	results := make(map[string]*Result, len(names))
	counter := 0
	for result := range dataflow {
		counter++
		if result.err != nil {
			color.Red("[%d/%d] %s failed: %v", counter, len(names), result.name, result.err)
			continue
		}
		color.Green("[%d/%d] %s done", counter, len(names), result.name)
		results[result.name] = result
	}

	var summary [][]string
	var workbook *Workbook
	if *xlsxFlag {
		workbook = NewWorkbook()
	}
	for _, name := range names {
		result, ok := results[name]
		if !ok {
			continue
		}
		if result.floatingErr != nil {
			color.Yellow("%s: %v", name, result.floatingErr)
		}
		if err := dataFlags.Save(result); err != nil {
			color.Red("%s: %v", name, err)
		}
		if workbook != nil {
			if err := workbook.Add(result); err != nil {
				color.Red("%s: %v", name, err)
			}
		}
		summary = append(summary, result.summaryRow())
	}

	if len(summary) > 0 {
		if err := writeSummary(summary, outputPath); err != nil {
			log.Fatalln("unable to save summary:", err)
		}
		if workbook != nil {
			if err := workbook.SaveAs(outputPath + "charging.xlsx"); err != nil {
				log.Fatalln("unable to save workbook:", err)
			}
		}
	}
	fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
}

func runScenario(name string, parameters config.ScenarioParameters, cfg *config.Config, meta *toml.MetaData) *Result {
	r := &Result{name: name}
	if r.err = parameters.CheckAndUnify(name, cfg, meta); r.err != nil {
		return r
	}
	r.parameters = parameters

	materialConfig, err := parameters.MaterialConfig()
	if err != nil {
		r.err = err
		return r
	}
	m, err := material.New(materialConfig)
	if err != nil {
		r.err = err
		return r
	}
	yield, err := m.Yield()
	if err != nil {
		r.err = err
		return r
	}
	r.dust = object.New(m, parameters.Radius, parameters.Charge)
	if parameters.Verbose() {
		fmt.Printf("%s: %v grain, R = %g m, S = %g m^2, V = %g m^3, m = %g kg, phi = %g V\n",
			name, m.Kind, r.dust.Radius(), r.dust.Shape.Area(), r.dust.Shape.Volume(), r.dust.Mass, r.dust.Potential())
		fmt.Printf("%s: n_e = %g m^-3, Sigma = %g m^-1\n", name, m.ElectronDensity, m.MacroscopicCrossSection)
	}

	r.energies = floats.Span(make([]float64, parameters.EnergySteps), 0, parameters.EnergyTo)
	if r.yields, err = m.SEY.Evaluate(r.energies); err != nil {
		r.err = err
		return r
	}
	if r.peakEnergy, r.peakYield, err = m.SEY.Peak(parameters.EnergyTo); err != nil {
		r.err = err
		return r
	}

	balance := parameters.Balance(yield)
	phi := floats.Span(make([]float64, parameters.PotentialSteps), parameters.PotentialFrom, parameters.PotentialTo)
	if r.currents, err = balance.Currents(phi); err != nil {
		r.err = err
		return r
	}
	r.photons = balance.Photons
	r.saturation = balance.Photons.SaturationCurrent(balance.ProtonCount)

	r.floating, r.floatingErr = balance.FloatingPotential(r.currents, floatingPotentialPrecision)
	if r.floatingErr == nil {
		equilibrium := object.New(m, parameters.Radius, 0)
		equilibrium.SetPotential(r.floating)
		r.floatingCharge = equilibrium.Charge()
		if parameters.Verbose() {
			fmt.Printf("%s: floating potential %g V, charge %g C\n", name, r.floating, r.floatingCharge)
		}
	}
	return r
}
