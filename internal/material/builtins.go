package material

type builtin struct {
	constants Constants

	deltaMax *float64
	eMax     *float64 // [eV]
	eElastic *float64 // [eV]
	r0       *float64
}

func value(v float64) *float64 {
	return &v
}

// cross sections are given in mbarn, 1 mbarn = 1e-31 m^2
var builtins = map[Kind]builtin{
	Custom: {},
	Carbon: {
		constants: Constants{Density: 2000, AtomicNumber: 6, MassNumber: 12, SpecificHeat: 710.6, CrossSection: 266e-31},
	},
	Copper: {
		constants: Constants{Density: 8960, AtomicNumber: 29, MassNumber: 64, SpecificHeat: 384.56, CrossSection: 850e-31},
		deltaMax:  value(1.7),
		eMax:      value(332),
		eElastic:  value(150),
		r0:        value(0.7),
	},
	// bulk constants of alumina are placeholders until measured values are tabulated
	Alumina: {
		constants: Constants{Density: 0, AtomicNumber: 0, MassNumber: 1, SpecificHeat: 1, CrossSection: 1},
		deltaMax:  value(4.7),
		eMax:      value(600),
		eElastic:  value(150),
		r0:        value(0.7),
	},
	Aluminium: {
		constants: Constants{Density: 2700, AtomicNumber: 13, MassNumber: 27, SpecificHeat: 898.7, CrossSection: 470e-31},
	},
	Silicon: {
		constants: Constants{Density: 2328, AtomicNumber: 14, MassNumber: 28, SpecificHeat: 898.7, CrossSection: 530e-31},
	},
	Oxygen: {
		constants: Constants{Density: 1310, AtomicNumber: 8, MassNumber: 16, SpecificHeat: 1861, CrossSection: 335e-31},
	},
}
