package main

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildstyl3r/dustcharge/internal/charging"
	"github.com/wildstyl3r/dustcharge/internal/material"
	"github.com/wildstyl3r/dustcharge/internal/object"
)

func TestSummaryRow(t *testing.T) {
	m, err := material.New(material.Config{Material: material.Copper, SEY: material.LHC})
	require.NoError(t, err)
	r := &Result{
		name:       "Cu_10eV",
		dust:       object.New(m, 30e-6, 0),
		photons:    charging.DefaultPhotonSource(),
		saturation: 0.02,
		floating:   -13.3,
	}

	row := r.summaryRow()
	require.Len(t, row, len(summaryColumns))
	column := func(name string) float64 {
		for i, c := range summaryColumns {
			if c == name {
				v, err := strconv.ParseFloat(row[i], 64)
				require.NoError(t, err, name)
				return v
			}
		}
		t.Fatalf("no column %s", name)
		return 0
	}
	assert.Equal(t, "Cu", row[1])
	assert.InEpsilon(t, r.dust.Shape.Area(), column("area (m^2)"), 1e-7)
	assert.InEpsilon(t, r.dust.Shape.Volume(), column("volume (m^3)"), 1e-7)
	assert.InEpsilon(t, m.ElectronDensity, column("n_e,bulk (m^-3)"), 1e-7)
	assert.InEpsilon(t, m.MacroscopicCrossSection, column("Sigma (m^-1)"), 1e-7)
	assert.InEpsilon(t, r.photons.BeamScreenArea, column("screen area (m^2)"), 1e-7)
	assert.InEpsilon(t, -13.3, column("floating phi (V)"), 1e-7)

	r.floatingErr = errors.New("no equilibrium")
	row = r.summaryRow()
	assert.Empty(t, row[len(row)-2])
	assert.Empty(t, row[len(row)-1])
}
