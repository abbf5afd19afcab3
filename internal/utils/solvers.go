package utils

import "math"

// TernarySearchMax returns the argument and the value of the maximum of a unimodal f on [left, right].
func TernarySearchMax(f func(float64) float64, left, right, eps float64) (arg, value float64) {
	for right-left > eps {
		a := math.FMA(left, 2., right) / 3.
		b := math.FMA(right, 2., left) / 3.
		if f(a) > f(b) {
			right = b
		} else {
			left = a
		}
	}
	arg = (left + right) * 0.5
	return arg, f(arg)
}

// return the point of the condition support that is not farther than eps from the support boundary
// invariant: at *right* condition must be TRUE
func BinarySearch(condition func(float64) bool, falseDom, trueDom, eps float64) (float64, float64) {
	for math.Abs(trueDom-falseDom) > eps {
		c := (falseDom + trueDom) * 0.5
		if condition(c) {
			trueDom = c
		} else {
			falseDom = c
		}
	}
	return falseDom, trueDom
}

// Root locates a zero of f inside [left, right], where f(left) and f(right) must differ in sign.
func Root(f func(float64) float64, left, right, eps float64) float64 {
	fLeft := f(left)
	if fLeft == 0 {
		return left
	}
	if f(right) == 0 {
		return right
	}
	negativeLeft := fLeft < 0
	l, r := BinarySearch(func(x float64) bool {
		return (f(x) < 0) != negativeLeft
	}, left, right, eps)
	return 0.5 * (l + r)
}
