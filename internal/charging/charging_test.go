package charging

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/wildstyl3r/dustcharge/internal/constants"
	"github.com/wildstyl3r/dustcharge/internal/material"
	"github.com/wildstyl3r/dustcharge/internal/utils"
)

const lhcProtons = 1.15e11 * 2808

func TestThermalFlux(t *testing.T) {
	ne, te := 1e12, 10.
	expected := ne * constants.ElectronCharge * math.Sqrt(te*constants.ElectronCharge/(2*math.Pi*9.10938356e-31))
	assert.InEpsilon(t, expected, ThermalFlux(ne, te), 1e-15)
}

func TestElectronCapture(t *testing.T) {
	ne, te := 1e12, 10.
	j0 := ThermalFlux(ne, te)

	je, err := ElectronCapture([]float64{-1e-12, 0, 5, -10, -1000}, ne, te)
	require.NoError(t, err)
	require.Len(t, je, 5)

	assert.Equal(t, -j0, je[1])
	assert.InEpsilon(t, je[1], je[0], 1e-9)
	assert.InEpsilon(t, -j0*1.5, je[2], 1e-12)
	assert.InEpsilon(t, -j0*math.Exp(-1), je[3], 1e-12)
	assert.Less(t, je[4], 0.)
	assert.Greater(t, je[4], -j0*1e-40)

	t.Run("single element slices", func(t *testing.T) {
		vectorized, err := ElectronCapture([]float64{5}, []float64{ne}, []float64{te})
		require.NoError(t, err)
		assert.Equal(t, je[2], vectorized[0])
	})

	t.Run("vector density", func(t *testing.T) {
		je, err := ElectronCapture([]float64{0}, []float64{1e12, 2e12}, te)
		assert.ErrorIs(t, err, ErrVectorParameter)
		assert.Nil(t, je)
	})

	t.Run("vector temperature", func(t *testing.T) {
		_, err := ElectronCapture([]float64{0}, ne, []float64{10, 20})
		assert.ErrorIs(t, err, ErrVectorParameter)
	})

	t.Run("empty sweep", func(t *testing.T) {
		je, err := ElectronCapture(nil, ne, te)
		require.NoError(t, err)
		assert.Empty(t, je)
	})
}

func TestPhotoelectric(t *testing.T) {
	source := DefaultPhotonSource()
	jSat := source.SaturationCurrent(lhcProtons)
	assert.Greater(t, jSat, 0.)
	assert.InEpsilon(t, 2*jSat, source.SaturationCurrent(2*lhcProtons), 1e-12)

	jhv, err := Photoelectric([]float64{-20, -5, 0, 6, 1e-12}, lhcProtons, 6., source)
	require.NoError(t, err)
	assert.Equal(t, jSat, jhv[0])
	assert.Equal(t, jhv[0], jhv[1])
	assert.Equal(t, jSat, jhv[2])
	assert.InEpsilon(t, jSat*math.Exp(-1), jhv[3], 1e-12)
	assert.InEpsilon(t, jSat, jhv[4], 1e-9)

	_, err = Photoelectric([]float64{0}, []float64{1, 2}, 6., source)
	assert.ErrorIs(t, err, ErrVectorParameter)
	_, err = Photoelectric([]float64{0}, lhcProtons, []float64{6, 7}, source)
	assert.ErrorIs(t, err, ErrVectorParameter)
}

func TestSecondaryEmissionConstantYield(t *testing.T) {
	unit := func(float64) float64 { return 1 }
	tests := []struct {
		name   string
		ne, te float64
		ts     float64
	}{
		{"cold cloud", 1e12, 10, 3},
		{"hot cloud", 1e12, 300, 3},
		{"default Ts", 1e11, 50, 0},
	}
	phi := []float64{-20, -5, -1e-9, 0, 2, 10, 2, 35}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j0 := ThermalFlux(tt.ne, tt.te)
			ts := tt.ts
			if ts == 0 {
				ts = DefaultSecondaryTemperature
			}
			js, err := SecondaryEmission(phi, tt.ne, tt.te, unit, SecondaryOptions{Temperature: tt.ts, Threads: 2})
			require.NoError(t, err)
			require.Len(t, js, len(phi))
			for i, p := range phi {
				expected := j0 * math.Exp(p/tt.te)
				if p >= 0 {
					expected = j0 * math.Exp(-p/ts) * (1 + p/ts) * (1 + p/tt.te)
				}
				assert.InEpsilon(t, expected, js[i], 1e-8, "phi = %g", p)
			}
			assert.Equal(t, js[4], js[6])
		})
	}
}

func TestSecondaryEmissionStrongRetarding(t *testing.T) {
	unit := func(float64) float64 { return 1 }
	const ts = DefaultSecondaryTemperature
	tests := []struct {
		phi, te float64
	}{
		{10, 0.01},
		{720, 1},
		{800, 1},
	}
	for _, tt := range tests {
		js, err := SecondaryEmission([]float64{tt.phi}, 1e12, tt.te, unit, SecondaryOptions{})
		require.NoError(t, err, "phi = %g, Te = %g", tt.phi, tt.te)
		expected := ThermalFlux(1e12, tt.te) * math.Exp(-tt.phi/ts) * (1 + tt.phi/ts) * (1 + tt.phi/tt.te)
		assert.InEpsilon(t, expected, js[0], 1e-8, "phi = %g, Te = %g", tt.phi, tt.te)
	}
}

func TestSecondaryEmissionLHC(t *testing.T) {
	m, err := material.New(material.Config{Material: material.Copper, SEY: material.LHC})
	require.NoError(t, err)
	yield, err := m.Yield()
	require.NoError(t, err)

	te := 10.
	phi := []float64{-2, -1, -1e-9, 0, 1, 5}
	js, err := SecondaryEmission(phi, 1e12, te, yield, SecondaryOptions{})
	require.NoError(t, err)

	assert.InEpsilon(t, math.Exp(-1/te), js[0]/js[1], 1e-12)
	assert.InEpsilon(t, js[3], js[2], 1e-6)
	for i := range js {
		assert.Greater(t, js[i], 0.)
	}
	assert.Less(t, js[5], js[4])
}

func TestSecondaryEmissionErrors(t *testing.T) {
	t.Run("no yield", func(t *testing.T) {
		_, err := SecondaryEmission([]float64{0}, 1e12, 10., nil, SecondaryOptions{})
		assert.ErrorIs(t, err, ErrNoYield)
	})

	t.Run("vector parameters", func(t *testing.T) {
		unit := func(float64) float64 { return 1 }
		_, err := SecondaryEmission([]float64{0}, []float64{1e12, 1e13}, 10., unit, SecondaryOptions{})
		assert.ErrorIs(t, err, ErrVectorParameter)
		_, err = SecondaryEmission([]float64{0}, 1e12, []float64{10, 20}, unit, SecondaryOptions{})
		assert.ErrorIs(t, err, ErrVectorParameter)
	})

	t.Run("failed integral", func(t *testing.T) {
		broken := func(float64) float64 { return math.NaN() }
		js, err := SecondaryEmission([]float64{1, 2, 3}, 1e12, 10., broken, SecondaryOptions{Threads: 2})
		assert.ErrorIs(t, err, ErrIntegration)
		assert.Nil(t, js)

		_, err = SecondaryEmission([]float64{-1}, 1e12, 10., broken, SecondaryOptions{})
		assert.ErrorIs(t, err, ErrIntegration)
	})

	t.Run("non finite current", func(t *testing.T) {
		unit := func(float64) float64 { return 1 }
		js, err := SecondaryEmission([]float64{-1, 1}, math.Inf(1), 10., unit, SecondaryOptions{})
		assert.ErrorIs(t, err, ErrIntegration)
		assert.ErrorIs(t, err, utils.ErrNonFinite)
		assert.Nil(t, js)
	})
}

func TestFloatingPotential(t *testing.T) {
	noYield := func(float64) float64 { return 0 }
	b := Balance{
		ElectronDensity:          1e12,
		ElectronTemperature:      10,
		Yield:                    noYield,
		ProtonCount:              lhcProtons,
		PhotoelectronTemperature: 6,
		Photons:                  DefaultPhotonSource(),
	}
	phi := floats.Span(make([]float64, 501), -40, 10)

	sweep, err := b.Currents(phi)
	require.NoError(t, err)
	require.Len(t, sweep.Total, len(phi))
	for i := range phi {
		assert.InDelta(t, sweep.Capture[i]+sweep.Secondary[i]+sweep.Photo[i], sweep.Total[i], 1e-15)
	}

	// without secondaries the balance is J0*exp(phi/Te) = J_sat below zero
	expected := 10 * math.Log(b.Photons.SaturationCurrent(lhcProtons)/ThermalFlux(1e12, 10))
	floating, err := b.FloatingPotential(sweep, 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, expected, floating, 1e-6)

	total, err := b.Total(floating)
	require.NoError(t, err)
	assert.InDelta(t, 0., total, 1e-9)

	t.Run("no photons", func(t *testing.T) {
		dark := b
		dark.Photons.PhotoelectricYield = 0
		sweep, err := dark.Currents(phi)
		require.NoError(t, err)
		_, err = dark.FloatingPotential(sweep, 1e-9)
		assert.ErrorIs(t, err, ErrNoEquilibrium)
	})
}
