package charging

import (
	"math"

	"github.com/wildstyl3r/dustcharge/internal/constants"
)

// ThermalFlux is the random current density J0 = ne*e*sqrt(Te*e/(2*pi*me)) of a Maxwellian
// electron population of density ne [m^-3] and temperature te [eV].
func ThermalFlux(ne, te float64) float64 {
	return ne * constants.ElectronCharge * math.Sqrt(te*constants.ElectronCharge/(2*math.Pi*constants.ElectronMass))
}

// ElectronCapture returns the current density of electrons collected from the cloud:
// -J0*(1+phi/Te) for phi >= 0 and -J0*exp(phi/Te) for phi < 0.
// ne and te must be single values; a one-element slice counts as one.
func ElectronCapture[N, T Quantity](phi []float64, ne N, te T) ([]float64, error) {
	density, err := scalar("ne", ne)
	if err != nil {
		return nil, err
	}
	temperature, err := scalar("Te", te)
	if err != nil {
		return nil, err
	}

	j0 := ThermalFlux(density, temperature)
	je := make([]float64, len(phi))
	for i, p := range phi {
		if p >= 0 {
			je[i] = -j0 * (1 + p/temperature)
		} else {
			je[i] = -j0 * math.Exp(p/temperature)
		}
	}
	return je, nil
}
