package fes

// Particle is a point mass traveling on a Surface under the force
// F = -dV/dx, integrated with velocity Verlet.
type Particle struct {
	Surface  Surface
	Mass     float64
	Position float64
	Velocity float64
}

// NewParticle creates a unit-mass particle at rest at position x.
func NewParticle(surface Surface, x float64) *Particle {
	return &Particle{Surface: surface, Mass: 1, Position: x}
}

// Step advances the particle by one velocity-Verlet step of length dt.
func (p *Particle) Step(dt float64) {
	a := -p.Surface.Deriv(p.Position) / p.Mass
	p.Position += p.Velocity*dt + 0.5*a*dt*dt
	aNew := -p.Surface.Deriv(p.Position) / p.Mass
	p.Velocity += 0.5 * (a + aNew) * dt
}

// PotentialEnergy is the surface value at the particle's position.
func (p *Particle) PotentialEnergy() float64 {
	return p.Surface.Value(p.Position)
}

// KineticEnergy is (1/2) m v^2.
func (p *Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass * p.Velocity * p.Velocity
}

// TotalEnergy is kinetic plus potential energy.
func (p *Particle) TotalEnergy() float64 {
	return p.KineticEnergy() + p.PotentialEnergy()
}
