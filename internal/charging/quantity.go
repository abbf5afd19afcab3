// Package charging computes the current densities collected and emitted by a grain
// as functions of its surface potential.
//
// Potentials are in volts, temperatures and energies in eV and current densities in A m^-2.
// Positive current densities charge the grain positively.
package charging

import (
	"errors"
	"fmt"
)

var (
	ErrVectorParameter = errors.New("only potential may be vectorized")
	ErrIntegration     = errors.New("secondary emission integral failed")
	ErrNoYield         = errors.New("yield function is not set")
	ErrNoEquilibrium   = errors.New("total current does not change sign")
)

// Quantity is an environment value. Only single values are accepted; a slice is allowed
// so that callers holding array data get ErrVectorParameter instead of a silent first element.
type Quantity interface {
	float64 | []float64
}

func scalar[Q Quantity](name string, q Q) (float64, error) {
	switch v := any(q).(type) {
	case float64:
		return v, nil
	case []float64:
		if len(v) == 1 {
			return v[0], nil
		}
		return 0, fmt.Errorf("%w: %s has %d values", ErrVectorParameter, name, len(v))
	}
	return 0, fmt.Errorf("%w: %s", ErrVectorParameter, name)
}
