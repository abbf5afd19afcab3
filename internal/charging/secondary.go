package charging

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/wildstyl3r/dustcharge/internal/material"
	"github.com/wildstyl3r/dustcharge/internal/utils"
)

const DefaultSecondaryTemperature = 3. // [eV]

type SecondaryOptions struct {
	Temperature float64 // Ts of the emitted secondaries [eV], DefaultSecondaryTemperature if zero
	Threads     int     // concurrent integrations, GOMAXPROCS if not positive
	Quadrature  utils.Quadrature
}

func (o SecondaryOptions) withDefaults() SecondaryOptions {
	if o.Temperature == 0 {
		o.Temperature = DefaultSecondaryTemperature
	}
	if o.Threads <= 0 {
		o.Threads = runtime.GOMAXPROCS(0)
	}
	return o
}

// SecondaryEmission returns the current density of secondaries emitted under the electron cloud.
//
// With I(a) = int_a^inf E*delta(E)*exp(-(E-a)/Te) dE:
//
//	phi <  0: Js = J0/Te^2 * exp(phi/Te) * I(0)
//	phi >= 0: Js = J0/Te^2 * exp(-phi/Ts) * (1+phi/Ts) * I(phi)
//
// I(0) is integrated once; I(phi) once per distinct non-negative potential, concurrently.
// Any failed integral or non-finite result fails the whole call. ne and te must be single
// values; a one-element slice counts as one.
func SecondaryEmission[N, T Quantity](phi []float64, ne N, te T, yield material.YieldFunc, opts SecondaryOptions) ([]float64, error) {
	density, err := scalar("ne", ne)
	if err != nil {
		return nil, err
	}
	temperature, err := scalar("Te", te)
	if err != nil {
		return nil, err
	}
	if yield == nil {
		return nil, ErrNoYield
	}
	opts = opts.withDefaults()

	// weight normalized to 1 at the lower bound
	integrand := func(from float64) func(float64) float64 {
		return func(e float64) float64 {
			return e * yield(e) * math.Exp(-(e-from)/temperature)
		}
	}
	prefactor := ThermalFlux(density, temperature) / (temperature * temperature)

	js := make([]float64, len(phi))
	var retarded []float64
	atLevel := make(map[float64][]int)
	var attracting []int
	for i, p := range phi {
		if p < 0 {
			attracting = append(attracting, i)
			continue
		}
		if _, seen := atLevel[p]; !seen {
			retarded = append(retarded, p)
		}
		atLevel[p] = append(atLevel[p], i)
	}

	if len(attracting) > 0 {
		full, err := opts.Quadrature.SemiInfinite(integrand(0), 0, temperature)
		if err != nil {
			return nil, fmt.Errorf("%w for phi < 0: %w", ErrIntegration, err)
		}
		for _, i := range attracting {
			js[i] = prefactor * math.Exp(phi[i]/temperature) * full
		}
	}

	integrals, err := batchIntegrate(integrand, retarded, temperature, opts)
	if err != nil {
		return nil, err
	}
	ts := opts.Temperature
	for k, p := range retarded {
		escape := math.Exp(-p/ts) * (1 + p/ts)
		for _, i := range atLevel[p] {
			js[i] = prefactor * escape * integrals[k]
		}
	}
	for i := range js {
		if !utils.IsFinite(js[i]) {
			return nil, fmt.Errorf("%w at phi = %g V: %w", ErrIntegration, phi[i], utils.ErrNonFinite)
		}
	}
	return js, nil
}

// batchIntegrate computes int_from^inf integrand(from) for every lower bound.
func batchIntegrate(integrand func(from float64) func(float64) float64, lowerBounds []float64, scale float64, opts SecondaryOptions) ([]float64, error) {
	integrals := make([]float64, len(lowerBounds))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(opts.Threads)
	for k, from := range lowerBounds {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			v, err := opts.Quadrature.SemiInfinite(integrand(from), from, scale)
			if err != nil {
				return fmt.Errorf("%w at phi = %g V: %w", ErrIntegration, from, err)
			}
			integrals[k] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return integrals, nil
}
