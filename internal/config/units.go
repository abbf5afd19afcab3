package config

import (
	"fmt"

	"github.com/wildstyl3r/dustcharge/internal/constants"
	"github.com/wildstyl3r/dustcharge/internal/utils"
)

var unitToSI = map[string]float64{
	"m":   1,    // [m]
	"cm":  1e-2, // [m]
	"mm":  1e-3, // [m]
	"um":  1e-6, // [m]
	"eV":  1,    // [eV]
	"keV": 1e3,  // [eV]
	"MeV": 1e6,  // [eV]
	"GeV": 1e9,  // [eV]
	"TeV": 1e12, // [eV]
	"C":   1,    // [C]
	"fC":  1e-15,
	"e":   constants.ElectronCharge,
}

type UnitClass int

const (
	Length UnitClass = iota
	Energy
	Charge
)

var unitsInClass = map[UnitClass][]string{
	Length: {"um", "mm", "cm", "m"},
	Energy: {"eV", "keV", "MeV", "GeV", "TeV"},
	Charge: {"e", "fC", "C"},
}

var classesOfUnits = map[string]UnitClass{
	"m":   Length,
	"cm":  Length,
	"mm":  Length,
	"um":  Length,
	"eV":  Energy,
	"keV": Energy,
	"MeV": Energy,
	"GeV": Energy,
	"TeV": Energy,
	"C":   Charge,
	"fC":  Charge,
	"e":   Charge,
}

var defaultUnits = []string{"m", "eV", "C"}

type UnitElement = struct {
	Class UnitClass
	Power int
}

// checkUnits completes units with the defaults of the classes it does not mention and
// reports units that are unknown or repeat a class.
func checkUnits(units []string) (extended, conflicts []string) {
	classes := map[UnitClass]struct{}{}
	for _, unit := range units {
		class, known := classesOfUnits[unit]
		if !known {
			conflicts = append(conflicts, unit)
			continue
		}
		if _, some := classes[class]; some {
			conflicts = append(conflicts, unit)
		} else {
			classes[class] = struct{}{}
		}
	}
	extended = append([]string{}, units...)
	for _, unit := range defaultUnits {
		if _, some := classes[classesOfUnits[unit]]; !some {
			extended = append(extended, unit)
		}
	}
	return
}

// SI converts v expressed in units to SI (eV for energies) when direct is set, and back otherwise.
func SI(v float64, classes []UnitElement, units []string, direct bool) float64 {
	for i := range classes {
		uc := classes[i]
		unit := utils.Intersect(unitsInClass[uc.Class], units)
		if unit == nil {
			continue
		}
		absPower := utils.IntAbs(uc.Power)
		if direct == (uc.Power > 0) {
			for range absPower {
				v *= unitToSI[*unit]
			}
		} else {
			for range absPower {
				v /= unitToSI[*unit]
			}
		}
	}
	return v
}

func unitConflict(kind string, conflicts []string) error {
	return fmt.Errorf("%w: %s units %v", ErrUnitConflict, kind, conflicts)
}
