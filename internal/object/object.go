package object

import (
	"math"

	"github.com/wildstyl3r/dustcharge/internal/constants"
	"github.com/wildstyl3r/dustcharge/internal/material"
)

type Sphere struct {
	Radius float64 // [m]
}

// Area is the projected (cross-sectional) area seen by a directed flux.
func (s Sphere) Area() float64 {
	return math.Pi * s.Radius * s.Radius
}

func (s Sphere) Volume() float64 {
	return 4 * math.Pi * s.Radius * s.Radius * s.Radius / 3
}

// capacitance of an isolated sphere, 4*pi*e0*R
func (s Sphere) Capacitance() float64 {
	return 4 * math.Pi * constants.FreeSpacePermittivityE0 * s.Radius
}

// PotentialFromCharge returns the surface potential [V] of a sphere of the given radius [m]
// carrying charge [C]. radius must be positive.
func PotentialFromCharge(charge, radius float64) float64 {
	return charge / Sphere{Radius: radius}.Capacitance()
}

func ChargeFromPotential(potential, radius float64) float64 {
	return potential * Sphere{Radius: radius}.Capacitance()
}

// DustObject is a spherical grain. Only the charge is stored; the potential is derived on read.
type DustObject struct {
	Material *material.Material
	Shape    Sphere
	Mass     float64 // [kg]

	charge float64 // [C]
}

// New builds a grain of the given material, radius [m] and charge [C]. A zero radius is
// accepted for material-only use, but then the potential is undefined.
func New(m *material.Material, radius, charge float64) *DustObject {
	shape := Sphere{Radius: radius}
	return &DustObject{
		Material: m,
		Shape:    shape,
		Mass:     m.Density * shape.Volume(),
		charge:   charge,
	}
}

func (d *DustObject) Radius() float64 {
	return d.Shape.Radius
}

func (d *DustObject) Charge() float64 {
	return d.charge
}

func (d *DustObject) SetCharge(charge float64) {
	d.charge = charge
}

func (d *DustObject) Potential() float64 {
	return PotentialFromCharge(d.charge, d.Shape.Radius)
}

func (d *DustObject) SetPotential(potential float64) {
	d.charge = ChargeFromPotential(potential, d.Shape.Radius)
}
