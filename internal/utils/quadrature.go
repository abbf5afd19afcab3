package utils

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

var (
	ErrNotConverged = errors.New("quadrature did not converge")
	ErrNonFinite    = errors.New("integrand is not finite")
)

// Quadrature is an adaptive Gauss-Legendre integrator. Each panel is estimated with an
// Order-point rule and compared with the sum over its two halves; panels are bisected until
// the difference falls under their share of the tolerance or MaxDepth is reached.
// The zero value uses DefaultQuadrature.
type Quadrature struct {
	Order          int
	RelTol, AbsTol float64
	InitialPanels  int
	MaxDepth       int
}

var DefaultQuadrature = Quadrature{
	Order:         10,
	RelTol:        1e-10,
	AbsTol:        1e-300,
	InitialPanels: 16,
	MaxDepth:      40,
}

func (q Quadrature) withDefaults() Quadrature {
	if q.Order <= 0 {
		q.Order = DefaultQuadrature.Order
	}
	if q.RelTol <= 0 {
		q.RelTol = DefaultQuadrature.RelTol
	}
	if q.AbsTol <= 0 {
		q.AbsTol = DefaultQuadrature.AbsTol
	}
	if q.InitialPanels <= 0 {
		q.InitialPanels = DefaultQuadrature.InitialPanels
	}
	if q.MaxDepth <= 0 {
		q.MaxDepth = DefaultQuadrature.MaxDepth
	}
	return q
}

type legendreRule struct {
	x, w []float64 // nodes and weights on [-1, 1]
}

func newLegendreRule(order int) legendreRule {
	rule := legendreRule{x: make([]float64, order), w: make([]float64, order)}
	quad.Legendre{}.FixedLocations(rule.x, rule.w, -1, 1)
	return rule
}

func (r legendreRule) panel(f func(float64) float64, a, b float64) float64 {
	mid, half := 0.5*(a+b), 0.5*(b-a)
	var sum float64
	for i := range r.x {
		sum += r.w[i] * f(mid+half*r.x[i])
	}
	return sum * half
}

// Interval integrates f over the finite interval [a, b].
func (q Quadrature) Interval(f func(float64) float64, a, b float64) (float64, error) {
	if a == b {
		return 0, nil
	}
	if a > b {
		v, err := q.Interval(f, b, a)
		return -v, err
	}
	q = q.withDefaults()
	rule := newLegendreRule(q.Order)

	step := (b - a) / float64(q.InitialPanels)
	estimates := make([]float64, q.InitialPanels)
	var total float64
	for i := range estimates {
		left := a + float64(i)*step
		right := left + step
		if i == len(estimates)-1 {
			right = b
		}
		estimates[i] = rule.panel(f, left, right)
		total += estimates[i]
	}
	if !IsFinite(total) {
		return math.NaN(), fmt.Errorf("%w on [%g, %g]", ErrNonFinite, a, b)
	}

	tol := max(q.AbsTol, q.RelTol*math.Abs(total))
	panelTol := tol / float64(q.InitialPanels)
	var sum float64
	for i, estimate := range estimates {
		left := a + float64(i)*step
		right := left + step
		if i == len(estimates)-1 {
			right = b
		}
		v, err := q.refine(rule, f, left, right, estimate, panelTol, q.MaxDepth)
		if err != nil {
			return math.NaN(), err
		}
		sum += v
	}
	return sum, nil
}

func (q Quadrature) refine(rule legendreRule, f func(float64) float64, a, b, whole, tol float64, depth int) (float64, error) {
	mid := 0.5 * (a + b)
	left := rule.panel(f, a, mid)
	right := rule.panel(f, mid, b)
	split := left + right
	if !IsFinite(split) {
		return math.NaN(), fmt.Errorf("%w on [%g, %g]", ErrNonFinite, a, b)
	}
	if math.Abs(split-whole) <= tol {
		return split, nil
	}
	if depth == 0 || mid <= a || mid >= b {
		return math.NaN(), fmt.Errorf("%w: panel [%g, %g] error %g above %g", ErrNotConverged, a, b, math.Abs(split-whole), tol)
	}
	l, err := q.refine(rule, f, a, mid, left, 0.5*tol, depth-1)
	if err != nil {
		return math.NaN(), err
	}
	r, err := q.refine(rule, f, mid, b, right, 0.5*tol, depth-1)
	if err != nil {
		return math.NaN(), err
	}
	return l + r, nil
}

// SemiInfinite integrates f over [from, +Inf) using the substitution x = from + scale*t/(1-t),
// t in [0, 1). scale should be of the order of the decay length of f; a non-positive scale means 1.
// The rule never samples t = 1, so f only needs to decay fast enough for the transformed
// integrand to vanish there.
func (q Quadrature) SemiInfinite(f func(float64) float64, from, scale float64) (float64, error) {
	if scale <= 0 {
		scale = 1
	}
	return q.Interval(func(t float64) float64 {
		v := 1 - t
		return scale * f(from+scale*t/v) / (v * v)
	}, 0, 1)
}
