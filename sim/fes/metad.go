package fes

import "math"

// MetadSurface wraps a base surface and accumulates metadynamics bias:
// Gaussian hills of fixed Width and Height deposited at visited positions.
// Value and Deriv include the bias contribution of every deposited hill.
type MetadSurface struct {
	Base    Surface
	Width   float64
	Height  float64
	centers []float64
}

// NewMetadSurface creates a bias-free metadynamics surface over base.
func NewMetadSurface(base Surface, width, height float64) *MetadSurface {
	return &MetadSurface{Base: base, Width: width, Height: height}
}

// AddHill deposits one Gaussian hill centered at x.
func (m *MetadSurface) AddHill(x float64) {
	m.centers = append(m.centers, x)
}

// Hills returns a copy of the deposited hill centers, in deposition order.
func (m *MetadSurface) Hills() []float64 {
	out := make([]float64, len(m.centers))
	copy(out, m.centers)
	return out
}

func (m *MetadSurface) Value(x float64) float64 {
	v := m.Base.Value(x)
	for _, c := range m.centers {
		d := x - c
		v += m.Height * math.Exp(-d*d/(2*m.Width*m.Width))
	}
	return v
}

func (m *MetadSurface) Deriv(x float64) float64 {
	g := m.Base.Deriv(x)
	for _, c := range m.centers {
		d := x - c
		g += m.Height * math.Exp(-d*d/(2*m.Width*m.Width)) * (-d / (m.Width * m.Width))
	}
	return g
}

var _ Surface = (*MetadSurface)(nil)
