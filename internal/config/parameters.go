package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/wildstyl3r/lxgata"

	"github.com/wildstyl3r/dustcharge/internal/charging"
	"github.com/wildstyl3r/dustcharge/internal/material"
)

var (
	ErrNoScenarios      = errors.New("no scenarios provided")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrUnitConflict     = errors.New("unit conflict")
)

type Config struct {
	OutputDir string
	Scenarios map[string]ScenarioParameters
	ScenarioParameters
	Threads int
	Verbose bool

	InputUnits []string
}

// Scalar is an environment value that must be a single number. Arrays are rejected while
// decoding, since only the potential is swept.
type Scalar float64

func (s *Scalar) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case float64:
		*s = Scalar(v)
	case int64:
		*s = Scalar(v)
	case []any:
		return fmt.Errorf("%w: got %d values", charging.ErrVectorParameter, len(v))
	default:
		return fmt.Errorf("%w: expected a number, got %T", ErrInvalidParameter, data)
	}
	return nil
}

type ScenarioParameters struct {
	Material string
	SEY      string

	// material overrides, required for Material = "custom"
	Density      float64 // [kg m^-3]
	AtomicNumber float64
	MassNumber   float64
	SpecificHeat float64 // [J kg^-1 K^-1]
	CrossSection float64 // [m^2]
	DeltaMax     float64
	EMax         float64 // [eV]
	EElastic     float64 // [eV]
	R0           float64

	CrossSections      string  // LXCat file providing CrossSection
	CrossSectionEnergy float64 // [eV]

	Radius float64 // [m]
	Charge float64 // [C]

	ElectronDensity          Scalar // [m^-3]
	ElectronTemperature      Scalar // [eV]
	SecondaryTemperature     Scalar // [eV]
	ProtonCount              Scalar
	PhotoelectronTemperature Scalar // [eV]
	BeamEnergy               Scalar // [eV]
	AbsorptionEfficiency     Scalar
	PhotoelectricYield       Scalar
	PhotonFraction           Scalar

	PotentialFrom  float64 // [V]
	PotentialTo    float64 // [V]
	PotentialSteps int
	EnergyTo       float64 // [eV]
	EnergySteps    int
	MakeDir        bool

	_defined []string
	_threads int
	_verbose bool
}

func (p *ScenarioParameters) Threads() int {
	return p._threads
}

func (p *ScenarioParameters) Verbose() bool {
	return p._verbose
}

// IsDefined reports whether the field was given in the configuration, for the scenario or globally.
func (p *ScenarioParameters) IsDefined(field string) bool {
	return slices.Contains(p._defined, field)
}

var defaultValues = map[string]any{ // in SI, energies in eV
	"SEY":                      "LHC",
	"Radius":                   30e-6,
	"Charge":                   0.,
	"SecondaryTemperature":     Scalar(charging.DefaultSecondaryTemperature),
	"ProtonCount":              Scalar(1.15e11 * 2808),
	"PhotoelectronTemperature": Scalar(6.),
	"BeamEnergy":               Scalar(6.5e12),
	"AbsorptionEfficiency":     Scalar(1.),
	"PhotoelectricYield":       Scalar(0.3),
	"PhotonFraction":           Scalar(1.08423 / 3.24759),
	"PotentialFrom":            -40.,
	"PotentialTo":              10.,
	"PotentialSteps":           1000,
	"EnergyTo":                 2000.,
	"EnergySteps":              3000,
	"MakeDir":                  false,
}

var requiredFields = []string{"Material", "ElectronDensity", "ElectronTemperature"}

var materialOverrides = []string{
	"Density", "AtomicNumber", "MassNumber", "SpecificHeat", "CrossSection",
	"DeltaMax", "EMax", "EElastic", "R0",
}

var fieldsAnd = map[string][]string{
	"CrossSections": {"CrossSectionEnergy"},
}

var fieldsXor = map[string][]string{
	"CrossSections": {"CrossSection"},
	"CrossSection":  {"CrossSections"},
}

var valueUnits = map[string][]UnitElement{
	"Density":                  {{Class: Length, Power: -3}},
	"CrossSection":             {{Class: Length, Power: 2}},
	"EMax":                     {{Class: Energy, Power: 1}},
	"EElastic":                 {{Class: Energy, Power: 1}},
	"CrossSectionEnergy":       {{Class: Energy, Power: 1}},
	"Radius":                   {{Class: Length, Power: 1}},
	"Charge":                   {{Class: Charge, Power: 1}},
	"ElectronDensity":          {{Class: Length, Power: -3}},
	"ElectronTemperature":      {{Class: Energy, Power: 1}},
	"SecondaryTemperature":     {{Class: Energy, Power: 1}},
	"PhotoelectronTemperature": {{Class: Energy, Power: 1}},
	"BeamEnergy":               {{Class: Energy, Power: 1}},
	"EnergyTo":                 {{Class: Energy, Power: 1}},
}

// LoadConfig decodes <configFileName>.toml.
func LoadConfig(configFileName string) (Config, toml.MetaData, error) {
	var config Config
	meta, err := toml.DecodeFile(strings.TrimSuffix(configFileName, ".toml")+".toml", &config)
	if err != nil {
		return config, meta, err
	}

	var unitsConflict []string
	config.InputUnits, unitsConflict = checkUnits(config.InputUnits)
	if len(unitsConflict) > 0 {
		return config, meta, unitConflict("input", unitsConflict)
	}
	if len(config.Scenarios) == 0 {
		return config, meta, ErrNoScenarios
	}
	return config, meta, nil
}

func (c *Config) isDefined(path []string, meta *toml.MetaData) bool {
	return meta.IsDefined(path...)
}

/*
field value priority:
1. scenario
2. global
3. default
*/

// CheckAndUnify fills the scenario from the global section and the defaults, converts it
// to SI and validates it.
func (scenario *ScenarioParameters) CheckAndUnify(name string, config *Config, meta *toml.MetaData) error {
	local := reflect.ValueOf(scenario).Elem()
	global := reflect.ValueOf(&config.ScenarioParameters).Elem()
	fields := local.Type()

	var discovered []string
	for i := range fields.NumField() {
		field := fields.Field(i)
		if !field.IsExported() {
			continue
		}
		switch {
		case config.isDefined([]string{"Scenarios", name, field.Name}, meta):
		case config.isDefined([]string{field.Name}, meta):
			local.Field(i).Set(global.Field(i))
		default:
			continue
		}
		discovered = append(discovered, field.Name)
	}

	var problems []string
	for _, field := range discovered {
		for _, requirement := range fieldsAnd[field] {
			if !slices.Contains(discovered, requirement) {
				problems = append(problems, fmt.Sprintf("%s requires %s", field, requirement))
			}
		}
		for _, conflict := range fieldsXor[field] {
			if slices.Contains(discovered, conflict) && field < conflict {
				problems = append(problems, fmt.Sprintf("%s conflicts with %s", field, conflict))
			}
		}
	}
	for _, field := range requiredFields {
		if !slices.Contains(discovered, field) {
			problems = append(problems, fmt.Sprintf("%s is required", field))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w in scenario %s: %s", ErrInvalidParameter, name, strings.Join(problems, "; "))
	}

	scenario.toSI(discovered, config.InputUnits)

	for field, value := range defaultValues {
		if !slices.Contains(discovered, field) {
			local.FieldByName(field).Set(reflect.ValueOf(value))
		}
	}

	if scenario.CrossSections != "" {
		if err := scenario.loadCrossSection(); err != nil {
			return fmt.Errorf("scenario %s: %w", name, err)
		}
		discovered = append(discovered, "CrossSection")
	}

	scenario._defined = discovered
	scenario._threads = config.Threads
	scenario._verbose = config.Verbose
	if err := scenario.validate(); err != nil {
		return fmt.Errorf("%w in scenario %s: %w", ErrInvalidParameter, name, err)
	}
	return nil
}

func (scenario *ScenarioParameters) toSI(parameterNames, units []string) {
	scenarioReflect := reflect.ValueOf(scenario).Elem()
	for _, name := range parameterNames {
		field := scenarioReflect.FieldByName(name)
		if field.CanFloat() {
			field.SetFloat(SI(field.Float(), valueUnits[name], units, true))
		}
	}
}

// loadCrossSection takes the total electron cross section of an LXCat set at CrossSectionEnergy.
func (scenario *ScenarioParameters) loadCrossSection() error {
	collisions, err := lxgata.LoadCrossSections(scenario.CrossSections)
	if err != nil {
		return fmt.Errorf("invalid cross section file: %w", err)
	}
	scenario.CrossSection = collisions.TotalCrossSectionAt(scenario.CrossSectionEnergy)
	return nil
}

func (scenario *ScenarioParameters) validate() error {
	switch {
	case scenario.Radius <= 0:
		return fmt.Errorf("radius must be positive, got %g m", scenario.Radius)
	case scenario.ElectronTemperature <= 0:
		return fmt.Errorf("electron temperature must be positive, got %g eV", scenario.ElectronTemperature)
	case scenario.PhotoelectronTemperature <= 0:
		return fmt.Errorf("photoelectron temperature must be positive, got %g eV", scenario.PhotoelectronTemperature)
	case scenario.SecondaryTemperature <= 0:
		return fmt.Errorf("secondary temperature must be positive, got %g eV", scenario.SecondaryTemperature)
	case scenario.PotentialSteps < 2 || scenario.PotentialFrom >= scenario.PotentialTo:
		return fmt.Errorf("potential sweep needs at least 2 steps over an increasing range, got %d on [%g, %g]",
			scenario.PotentialSteps, scenario.PotentialFrom, scenario.PotentialTo)
	case scenario.EnergySteps < 2 || scenario.EnergyTo <= 0:
		return fmt.Errorf("energy sweep needs at least 2 steps up to a positive energy, got %d up to %g",
			scenario.EnergySteps, scenario.EnergyTo)
	}
	return nil
}

// MaterialConfig builds the material configuration from the tags and the overrides that were given.
func (scenario *ScenarioParameters) MaterialConfig() (material.Config, error) {
	var cfg material.Config
	var err error
	if cfg.Material, err = material.ParseKind(scenario.Material); err != nil {
		return cfg, err
	}
	if cfg.SEY, err = material.ParseSEYModel(scenario.SEY); err != nil {
		return cfg, err
	}

	scenarioReflect := reflect.ValueOf(scenario).Elem()
	cfgReflect := reflect.ValueOf(&cfg).Elem()
	for _, name := range materialOverrides {
		if scenario.IsDefined(name) {
			value := scenarioReflect.FieldByName(name).Float()
			cfgReflect.FieldByName(name).Set(reflect.ValueOf(&value))
		}
	}
	return cfg, nil
}

// Balance assembles the charging environment of the scenario around the given yield function.
func (scenario *ScenarioParameters) Balance(yield material.YieldFunc) charging.Balance {
	photons := charging.DefaultPhotonSource()
	photons.BeamEnergy = float64(scenario.BeamEnergy)
	photons.AbsorptionEfficiency = float64(scenario.AbsorptionEfficiency)
	photons.PhotoelectricYield = float64(scenario.PhotoelectricYield)
	photons.PhotonFraction = float64(scenario.PhotonFraction)
	return charging.Balance{
		ElectronDensity:     float64(scenario.ElectronDensity),
		ElectronTemperature: float64(scenario.ElectronTemperature),
		Yield:               yield,
		Secondary: charging.SecondaryOptions{
			Temperature: float64(scenario.SecondaryTemperature),
			Threads:     scenario._threads,
		},
		ProtonCount:              float64(scenario.ProtonCount),
		PhotoelectronTemperature: float64(scenario.PhotoelectronTemperature),
		Photons:                  photons,
	}
}
