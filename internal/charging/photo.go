package charging

import (
	"math"

	"github.com/wildstyl3r/dustcharge/internal/constants"
)

// PhotonSource describes the synchrotron radiation that reaches the beam screen.
type PhotonSource struct {
	BeamEnergy           float64 // [eV]
	AbsorptionEfficiency float64
	PhotoelectricYield   float64
	PhotonFraction       float64 // fraction of photons energetic enough to extract electrons

	BendingRadius       float64 // [m]
	HalfArcCellLength   float64 // [m]
	BeamScreenPerimeter float64 // [m]
	BeamScreenArea      float64 // [m^2]
	Circumference       float64 // [m]
}

// DefaultPhotonSource is the LHC arc at 6.5 TeV.
func DefaultPhotonSource() PhotonSource {
	return PhotonSource{
		BeamEnergy:           6.5e12,
		AbsorptionEfficiency: 1,
		PhotoelectricYield:   0.3,
		PhotonFraction:       1.08423 / 3.24759,
		BendingRadius:        constants.LHCArcBendingRadius,
		HalfArcCellLength:    constants.LHCHalfArcCellLength,
		BeamScreenPerimeter:  constants.LHCBeamScreenPerimeter,
		BeamScreenArea:       constants.LHCBeamScreenArea,
		Circumference:        constants.LHCCircumference,
	}
}

// PhotonRate is the number of photons emitted per proton per second along the arcs.
func (s PhotonSource) PhotonRate() float64 {
	gamma := 1 + s.BeamEnergy/constants.ProtonMassEV
	arcs := 23 * 2 * s.HalfArcCellLength * 8 / (2 * math.Pi * s.BendingRadius)
	return 5. / 2. / math.Sqrt(3) * gamma * (constants.SpeedOfLight / s.BendingRadius) * constants.FineStructure * arcs
}

// SaturationCurrent is the photoelectron current density [A m^-2] leaving a non-repelling
// surface for a beam of np protons.
func (s PhotonSource) SaturationCurrent(np float64) float64 {
	flux := s.PhotonRate() / (s.BeamScreenPerimeter * s.Circumference) * np
	return constants.ElectronCharge * s.PhotonFraction * flux * s.AbsorptionEfficiency * s.PhotoelectricYield
}

// Photoelectric returns the photoelectron current density: J_sat for phi <= 0 and
// J_sat*exp(-phi/Thv) for phi > 0. np and thv must be single values; a one-element slice counts as one.
func Photoelectric[N, T Quantity](phi []float64, np N, thv T, source PhotonSource) ([]float64, error) {
	protons, err := scalar("Np", np)
	if err != nil {
		return nil, err
	}
	temperature, err := scalar("Thv", thv)
	if err != nil {
		return nil, err
	}

	jSat := source.SaturationCurrent(protons)
	jhv := make([]float64, len(phi))
	for i, p := range phi {
		if p > 0 {
			jhv[i] = jSat * math.Exp(-p/temperature)
		} else {
			jhv[i] = jSat
		}
	}
	return jhv, nil
}
