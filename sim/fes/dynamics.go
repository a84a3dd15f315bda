package fes

// Dynamics advances a particle on a metadynamics surface, depositing a hill
// at the particle's position every HillInterval steps and recording the
// position trajectory.
type Dynamics struct {
	Particle     *Particle
	Surface      *MetadSurface
	DT           float64
	HillInterval int

	steps int
	traj  []float64
}

// NewDynamics creates a Dynamics driver. p must travel on surface.
func NewDynamics(p *Particle, surface *MetadSurface, dt float64, hillInterval int) *Dynamics {
	return &Dynamics{Particle: p, Surface: surface, DT: dt, HillInterval: hillInterval}
}

// Step advances the particle once, appends the new position to the
// trajectory, and deposits a hill if the interval elapsed.
func (d *Dynamics) Step() {
	d.Particle.Step(d.DT)
	d.traj = append(d.traj, d.Particle.Position)
	d.steps++
	if d.HillInterval > 0 && d.steps%d.HillInterval == 0 {
		d.Surface.AddHill(d.Particle.Position)
	}
}

// Run advances the particle for n steps.
func (d *Dynamics) Run(n int) {
	for i := 0; i < n; i++ {
		d.Step()
	}
}

// Trajectory returns the recorded positions, one per completed step.
func (d *Dynamics) Trajectory() []float64 {
	out := make([]float64, len(d.traj))
	copy(out, d.traj)
	return out
}

// ParticleEnergy adapts a Particle to the tempering engine's energy seam:
// each sample advances the particle by one integration step and reports its
// total energy. It satisfies sim.EnergySource structurally; the temperature
// argument is unused because the particle's energy is a pure function of its
// own state.
type ParticleEnergy struct {
	Particle *Particle
	DT       float64
}

// Sample advances the particle and returns its total energy.
func (pe *ParticleEnergy) Sample(temp float64) float64 {
	pe.Particle.Step(pe.DT)
	return pe.Particle.TotalEnergy()
}
