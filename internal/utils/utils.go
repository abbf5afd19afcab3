package utils

import (
	"cmp"
	"math"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/wildstyl3r/dustcharge/internal/constants"
)

func Argmax[T cmp.Ordered](arr []T) (argmax int) {
	for i := range arr {
		if cmp.Compare(arr[i], arr[argmax]) == 1 {
			argmax = i
		}
	}
	return
}

type Number interface {
	constraints.Float | constraints.Integer
}

// SumSlices adds the slices elementwise. All parts must have the same length.
func SumSlices[T Number](parts ...[]T) []T {
	if len(parts) == 0 {
		return nil
	}
	sum := make([]T, len(parts[0]))
	for _, part := range parts {
		for i := range part {
			sum[i] += part[i]
		}
	}
	return sum
}

// SignChange returns the first index i such that s[i] and s[i+1] have different signs
// (or s[i+1] is exactly zero), and false if there is none.
func SignChange[T Number](s []T) (int, bool) {
	for i := 0; i+1 < len(s); i++ {
		if s[i] == 0 {
			return i, true
		}
		if (s[i] < 0) != (s[i+1] < 0) || s[i+1] == 0 {
			return i, true
		}
	}
	return 0, false
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ElectronFlux converts current densities [A m^-2] to electron fluxes [s^-1 m^-2].
func ElectronFlux(j []float64) []float64 {
	flux := make([]float64, len(j))
	for i := range j {
		flux[i] = j[i] / constants.ElectronCharge
	}
	return flux
}

func IntAbs(a int) int {
	if a < 0 {
		return -a
	} else {
		return a
	}
}

func Intersect(a, b []string) *string {
	for i := range a {
		if slices.Contains(b, a[i]) {
			return &a[i]
		}
	}
	return nil
}
