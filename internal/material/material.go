// Package material holds the physical constants of the grain material and its
// secondary-electron-yield model.
package material

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wildstyl3r/dustcharge/internal/constants"
)

var (
	ErrUnknownMaterial  = errors.New("unknown material")
	ErrUnknownSEYModel  = errors.New("unknown SEY model")
	ErrMissingParameter = errors.New("missing material parameter")
)

type Kind int

const (
	Custom Kind = iota
	Carbon
	Copper
	Alumina
	Aluminium
	Silicon
	Oxygen
)

var kindTags = map[Kind]string{
	Custom:    "custom",
	Carbon:    "C",
	Copper:    "Cu",
	Alumina:   "Al2O3",
	Aluminium: "Al",
	Silicon:   "Si",
	Oxygen:    "O",
}

var kindAliases = map[string]Kind{
	"custom":    Custom,
	"c":         Carbon,
	"carbon":    Carbon,
	"cu":        Copper,
	"copper":    Copper,
	"al2o3":     Alumina,
	"alumina":   Alumina,
	"al":        Aluminium,
	"aluminium": Aluminium,
	"aluminum":  Aluminium,
	"si":        Silicon,
	"silicon":   Silicon,
	"o":         Oxygen,
	"oxygen":    Oxygen,
}

func (k Kind) String() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts chemical symbols ("Cu", "Al2O3") and names ("copper", "alumina"), case-insensitively.
func ParseKind(tag string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return k, nil
	}
	return Custom, fmt.Errorf("%w: %q", ErrUnknownMaterial, tag)
}

// Constants are the bulk properties of a material.
type Constants struct {
	Density      float64 // [kg m^-3]
	AtomicNumber float64
	MassNumber   float64
	SpecificHeat float64 // [J kg^-1 K^-1]
	CrossSection float64 // atomic cross section [m^2]
}

// Config selects a material and a yield model. Non-nil fields override the built-in
// values; for Custom every constant and every parameter of the chosen model is required.
type Config struct {
	Material Kind
	SEY      SEYModel

	Density      *float64
	AtomicNumber *float64
	MassNumber   *float64
	SpecificHeat *float64
	CrossSection *float64

	DeltaMax *float64
	EMax     *float64
	EElastic *float64
	R0       *float64
}

type Material struct {
	Kind Kind
	Constants
	SEY SEY

	ElectronDensity         float64 // [m^-3]
	MacroscopicCrossSection float64 // [m^-1]
}

// New builds an immutable material. It fails with ErrUnknownMaterial or ErrUnknownSEYModel
// for tags outside the closed sets, and with ErrMissingParameter when the kind/model
// combination lacks a required value.
func New(cfg Config) (*Material, error) {
	base, ok := builtins[cfg.Material]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMaterial, cfg.Material)
	}
	if !cfg.SEY.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSEYModel, cfg.SEY)
	}

	var missing []string
	constant := func(name string, override *float64, builtin float64) float64 {
		switch {
		case override != nil:
			return *override
		case cfg.Material == Custom:
			missing = append(missing, name)
		}
		return builtin
	}
	m := &Material{Kind: cfg.Material}
	m.Density = constant("Density", cfg.Density, base.constants.Density)
	m.AtomicNumber = constant("AtomicNumber", cfg.AtomicNumber, base.constants.AtomicNumber)
	m.MassNumber = constant("MassNumber", cfg.MassNumber, base.constants.MassNumber)
	m.SpecificHeat = constant("SpecificHeat", cfg.SpecificHeat, base.constants.SpecificHeat)
	m.CrossSection = constant("CrossSection", cfg.CrossSection, base.constants.CrossSection)

	yield := func(name string, override *float64, builtin *float64) float64 {
		switch {
		case override != nil:
			return *override
		case builtin != nil:
			return *builtin
		}
		missing = append(missing, name)
		return 0
	}
	m.SEY.Model = cfg.SEY
	m.SEY.Params.DeltaMax = yield("DeltaMax", cfg.DeltaMax, base.deltaMax)
	m.SEY.Params.EMax = yield("EMax", cfg.EMax, base.eMax)
	if cfg.SEY.usesElastic() {
		m.SEY.Params.EElastic = yield("EElastic", cfg.EElastic, base.eElastic)
		m.SEY.Params.R0 = yield("R0", cfg.R0, base.r0)
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w for %v with %v model: %s", ErrMissingParameter, cfg.Material, cfg.SEY, strings.Join(missing, ", "))
	}

	m.ElectronDensity = constants.Avogadro * m.AtomicNumber * m.Density / (m.MassNumber * constants.MolarMassConstant)
	m.MacroscopicCrossSection = m.CrossSection * constants.Avogadro * m.Density / (m.MassNumber * constants.MolarMassConstant)
	return m, nil
}

// Yield is the bound yield function of the material, safe for concurrent use.
func (m *Material) Yield() (YieldFunc, error) {
	return m.SEY.Func()
}
