package charging

import (
	"fmt"

	"github.com/wildstyl3r/dustcharge/internal/material"
	"github.com/wildstyl3r/dustcharge/internal/utils"
)

// Balance holds the environment of a grain: the electron cloud, the yield of its surface
// and the photon source.
type Balance struct {
	ElectronDensity     float64 // [m^-3]
	ElectronTemperature float64 // [eV]
	Yield               material.YieldFunc
	Secondary           SecondaryOptions

	ProtonCount              float64
	PhotoelectronTemperature float64 // [eV]
	Photons                  PhotonSource
}

// Currents are the contributions evaluated on a potential sweep.
type Currents struct {
	Potential []float64
	Capture   []float64
	Secondary []float64
	Photo     []float64
	Total     []float64
}

func (b Balance) Currents(phi []float64) (Currents, error) {
	c := Currents{Potential: phi}
	var err error
	if c.Capture, err = ElectronCapture(phi, b.ElectronDensity, b.ElectronTemperature); err != nil {
		return Currents{}, err
	}
	if c.Secondary, err = SecondaryEmission(phi, b.ElectronDensity, b.ElectronTemperature, b.Yield, b.Secondary); err != nil {
		return Currents{}, err
	}
	if c.Photo, err = Photoelectric(phi, b.ProtonCount, b.PhotoelectronTemperature, b.Photons); err != nil {
		return Currents{}, err
	}
	c.Total = utils.SumSlices(c.Capture, c.Secondary, c.Photo)
	return c, nil
}

// Total is the net current density at a single potential.
func (b Balance) Total(phi float64) (float64, error) {
	c, err := b.Currents([]float64{phi})
	if err != nil {
		return 0, err
	}
	return c.Total[0], nil
}

// FloatingPotential refines the first sign change of the sweep's total current to within eps volts.
// The sweep must be sorted by potential.
func (b Balance) FloatingPotential(sweep Currents, eps float64) (float64, error) {
	i, found := utils.SignChange(sweep.Total)
	if !found {
		return 0, fmt.Errorf("%w on [%g, %g] V", ErrNoEquilibrium, first(sweep.Potential), last(sweep.Potential))
	}
	if sweep.Total[i] == 0 {
		return sweep.Potential[i], nil
	}
	var failure error
	root := utils.Root(func(phi float64) float64 {
		if failure != nil {
			return 0
		}
		total, err := b.Total(phi)
		if err != nil {
			failure = err
		}
		return total
	}, sweep.Potential[i], sweep.Potential[i+1], eps)
	if failure != nil {
		return 0, failure
	}
	return root, nil
}

func first(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

func last(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}
