package material

import (
	"fmt"
	"math"
	"strings"

	"github.com/wildstyl3r/dustcharge/internal/utils"
)

type SEYModel int

const (
	Sternglass SEYModel = iota
	Jonker
	Zimm
	LHC
)

var seyTags = map[SEYModel]string{
	Sternglass: "sternglass",
	Jonker:     "jonker",
	Zimm:       "zimm",
	LHC:        "LHC",
}

func (s SEYModel) String() string {
	if tag, ok := seyTags[s]; ok {
		return tag
	}
	return fmt.Sprintf("SEYModel(%d)", int(s))
}

func (s SEYModel) Valid() bool {
	_, ok := seyTags[s]
	return ok
}

func (s SEYModel) usesElastic() bool {
	return s == LHC
}

func ParseSEYModel(tag string) (SEYModel, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "sternglass":
		return Sternglass, nil
	case "jonker":
		return Jonker, nil
	case "zimm":
		return Zimm, nil
	case "lhc", "lhc-composite":
		return LHC, nil
	}
	return Sternglass, fmt.Errorf("%w: %q", ErrUnknownSEYModel, tag)
}

// SEYParameters of the yield curves. EElastic and R0 are used by the LHC model only.
type SEYParameters struct {
	DeltaMax float64
	EMax     float64 // energy of maximum yield [eV]
	EElastic float64 // [eV]
	R0       float64
}

// YieldFunc maps primary electron energy [eV] to the number of secondaries per primary.
type YieldFunc func(energy float64) float64

// SEY pairs a model with its parameters.
type SEY struct {
	Model  SEYModel
	Params SEYParameters
}

const (
	jonkerS = 1.8
	lhcS    = 1.35
)

// Func resolves the model to a closure over a copy of the parameters.
// Energies must be non-negative.
func (s SEY) Func() (YieldFunc, error) {
	p := s.Params
	switch s.Model {
	case Sternglass:
		return func(e float64) float64 {
			x := e / p.EMax
			return p.DeltaMax * x * math.Exp(2-2*math.Sqrt(x))
		}, nil
	case Jonker:
		return func(e float64) float64 {
			return p.DeltaMax * jonker(e/p.EMax, jonkerS)
		}, nil
	case Zimm:
		return func(e float64) float64 {
			x := e / p.EMax
			return p.DeltaMax * 1.11 * math.Pow(x, -0.35) * (1 - math.Exp(-2.3*math.Pow(x, 1.35)))
		}, nil
	case LHC:
		return func(e float64) float64 {
			return p.DeltaMax*jonker(e/p.EMax, lhcS) + elastic(e, p.EElastic, p.R0)
		}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownSEYModel, s.Model)
}

func jonker(x, s float64) float64 {
	return s * x / (s - 1 + math.Pow(x, s))
}

func elastic(e, e0, r0 float64) float64 {
	a, b := math.Sqrt(e), math.Sqrt(e+e0)
	r := (a - b) / (a + b)
	return r0 * r * r
}

// Evaluate returns the yield for each energy, with the same length as energies.
func (s SEY) Evaluate(energies []float64) ([]float64, error) {
	yield, err := s.Func()
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(energies))
	for i, e := range energies {
		out[i] = yield(e)
	}
	return out, nil
}

const peakGrid = 1000

// Peak returns the energy and the value of the maximum yield within [0, limit] eV.
// For the LHC model the elastic term shifts the maximum away from EMax and adds a
// local maximum at zero energy, so the search is bracketed on a grid first.
func (s SEY) Peak(limit float64) (energy, yield float64, err error) {
	f, err := s.Func()
	if err != nil {
		return 0, 0, err
	}
	step := limit / peakGrid
	grid := make([]float64, peakGrid+1)
	for i := range grid {
		// zimm is undefined at exactly zero energy
		grid[i] = f(max(float64(i)*step, 1e-12*limit))
	}
	best := utils.Argmax(grid)
	left := max(float64(best-1)*step, 0)
	right := min(float64(best+1)*step, limit)
	energy, yield = utils.TernarySearchMax(f, left, right, 1e-9*limit)
	return energy, yield, nil
}
