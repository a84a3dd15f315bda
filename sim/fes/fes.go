// Package fes provides one-dimensional free-energy surfaces and single
// particle dynamics on them. A particle's total energy can stand in for a
// walker's energy function in the tempering engine (see ParticleEnergy),
// replacing the stub stochastic sampler without touching the exchange logic.
package fes

import (
	"gonum.org/v1/gonum/floats"
)

// Surface is a one-dimensional free-energy surface.
type Surface interface {
	// Value returns the surface value at x.
	Value(x float64) float64
	// Deriv returns the derivative of the surface at x.
	Deriv(x float64) float64
}

// DoubleWell is the classic symmetric double-well surface
//
//	V(x) = Height * ((x/HalfWidth)^2 - 1)^2
//
// with minima at ±HalfWidth and a barrier of Height at x = 0.
type DoubleWell struct {
	Height    float64
	HalfWidth float64
}

func (d DoubleWell) Value(x float64) float64 {
	u := x / d.HalfWidth
	return d.Height * (u*u - 1) * (u*u - 1)
}

func (d DoubleWell) Deriv(x float64) float64 {
	u := x / d.HalfWidth
	return 4 * d.Height * u * (u*u - 1) / d.HalfWidth
}

// Profile evaluates a surface on a uniform grid of n points over [lo, hi].
// Useful for inspecting a surface (or the hills deposited on one) after a
// run. n must be at least 2.
func Profile(s Surface, lo, hi float64, n int) (xs, vs []float64) {
	xs = make([]float64, n)
	floats.Span(xs, lo, hi)
	vs = make([]float64, n)
	for i, x := range xs {
		vs[i] = s.Value(x)
	}
	return xs, vs
}

// Barrier returns the largest surface value over a uniform n-point scan of
// [lo, hi].
func Barrier(s Surface, lo, hi float64, n int) float64 {
	_, vs := Profile(s, lo, hi, n)
	return floats.Max(vs)
}

var _ Surface = DoubleWell{}
