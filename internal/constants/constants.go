package constants

import "math"

const SpeedOfLight float64 = 299792458                                                 // [m s^-1]
const VacuumPermeability float64 = 4 * math.Pi * 1e-7                                  // [T m A^-1]
const FreeSpacePermittivityE0 = 1 / (VacuumPermeability * SpeedOfLight * SpeedOfLight) // [F m^-1]
const ElectronCharge = 1.602176634e-19                                                 // C
const ElectronMass float64 = 9.10938356e-31                                            // [kg]
const ProtonMass float64 = 1.672621898e-27                                             // [kg]
const ProtonMassEV = ProtonMass * SpeedOfLight * SpeedOfLight / ElectronCharge         // [eV]
const Avogadro float64 = 6.02214076e23
const MolarMassConstant float64 = 1e-3 // [kg mol^-1]
const FineStructure float64 = 1. / 137.

// LHC machine and beam-screen geometry
const LHCCircumference float64 = 26659      // [m]
const LHCHalfArcCellLength float64 = 53.45  // [m]
const LHCArcBendingRadius float64 = 2804    // [m]
const LHCBeamScreenHeight float64 = 36.9e-3 // [m]
const LHCBeamScreenWidth float64 = 46.5e-3  // [m]
const LHCBeamScreenAlpha float64 = 52.4     // end of the flat part [deg]
const LHCBeamScreenBeta float64 = 37.6      // complementary to alpha [deg]

var LHCBeamScreenArea = math.Pi*(LHCBeamScreenWidth/2)*(LHCBeamScreenWidth/2)*(1-4*LHCBeamScreenBeta/360) +
	LHCBeamScreenWidth*math.Sin(deg2rad(LHCBeamScreenBeta))*LHCBeamScreenHeight/2 // [m^2]

// beta enters the sine undivided, which is how the reference saturation photocurrent was computed
var LHCBeamScreenPerimeter = (LHCBeamScreenWidth / 2) * 4 * (deg2rad(LHCBeamScreenAlpha) + math.Sin(LHCBeamScreenBeta)) // [m]

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.
}
