package sim

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// EnergySource yields one instantaneous energy sample for a walker at the
// given temperature. Implementations must be pure up to their own RNG state:
// no dependence on the ensemble's bookkeeping.
type EnergySource interface {
	Sample(temp float64) float64
}

// GaussianSource is the stub observable: samples are normally distributed
// with mean temp and standard deviation temp/WidthParam. It stands in for
// "instantaneous system energy at this temperature" until a real model
// (e.g. fes.ParticleEnergy) is plugged in.
type GaussianSource struct {
	WidthParam float64
	src        *rand.Rand
}

// NewGaussianSource creates a GaussianSource drawing from src.
func NewGaussianSource(widthParam float64, src *rand.Rand) *GaussianSource {
	return &GaussianSource{WidthParam: widthParam, src: src}
}

// Sample draws one energy value for a walker at temperature temp.
func (g *GaussianSource) Sample(temp float64) float64 {
	dist := distuv.Normal{Mu: temp, Sigma: temp / g.WidthParam, Src: g.src}
	return dist.Rand()
}

// GaussianSources builds one stub source per walker, all drawing from the
// same underlying stream so a run consumes exactly size draws per step.
func GaussianSources(size int, widthParam float64, src *rand.Rand) []EnergySource {
	sources := make([]EnergySource, size)
	for i := range sources {
		sources[i] = NewGaussianSource(widthParam, src)
	}
	return sources
}

// ConstantSource always reports the same energy. Forcing all slots equal
// makes the Metropolis exponent zero, so every attempted pair swaps.
type ConstantSource float64

// Sample returns the constant regardless of temperature.
func (c ConstantSource) Sample(temp float64) float64 {
	return float64(c)
}
