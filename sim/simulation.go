package sim

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/remd-sim/remd-sim/sim/trace"
)

// ErrNoData is returned when the energy or state log is read before Run()
// has executed.
var ErrNoData = errors.New("simulation has not run yet")

// Simulation drives a System for a fixed number of steps, recording the
// per-slot energies and the slot permutation at every step and triggering
// an exchange sweep every Interval steps.
type Simulation struct {
	cfg    Config
	system *System

	// energies[t][slot] is the energy sampled for that slot at step t;
	// states[t][slot] is the walker identity occupying the slot at step t.
	// Both are allocated once at construction and filled monotonically.
	energies [][]float64
	states   [][]int

	metrics *Metrics
	trace   *trace.SimulationTrace
	ran     bool
}

// NewSimulation builds a Simulation from cfg with the stub Gaussian energy
// sources.
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	prng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	sources := GaussianSources(cfg.Size, cfg.WidthParam, prng.ForSubsystem(SubsystemEnergy))
	return newSimulation(cfg, prng, sources)
}

// NewSimulationWithSources builds a Simulation from cfg with caller-supplied
// energy sources, one per slot in initial slot order. This is the seam for
// substituting a real observable (e.g. fes.ParticleEnergy) for the stub.
func NewSimulationWithSources(cfg Config, sources []EnergySource) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	if len(sources) != cfg.Size {
		return nil, fmt.Errorf("need %d energy sources, got %d", cfg.Size, len(sources))
	}
	return newSimulation(cfg, NewPartitionedRNG(NewSimulationKey(cfg.Seed)), sources)
}

func newSimulation(cfg Config, prng *PartitionedRNG, sources []EnergySource) (*Simulation, error) {
	metrics := NewMetrics(cfg.Size)
	tr := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevel(cfg.TraceLevel)})
	replicas := NewReplicas(cfg.Size, cfg.StartTemp, cfg.ScalingExponent, sources)
	system := NewSystem(replicas, prng.ForSubsystem(SubsystemExchange), metrics, tr)

	s := &Simulation{
		cfg:      cfg,
		system:   system,
		energies: make([][]float64, cfg.NSteps),
		states:   make([][]int, cfg.NSteps),
		metrics:  metrics,
		trace:    tr,
	}
	for t := range s.energies {
		s.energies[t] = make([]float64, cfg.Size)
		s.states[t] = make([]int, cfg.Size)
	}
	return s, nil
}

// Run executes the simulation. For each step t the current energies and
// state are logged first; an exchange sweep triggered at that step runs
// after logging, so energies[t] always reflects the permutation in effect
// before any exchange at step t.
func (s *Simulation) Run() error {
	logrus.Infof("starting run: size=%d steps=%d interval=%d seed=%d",
		s.cfg.Size, s.cfg.NSteps, s.cfg.Interval, s.cfg.Seed)
	for t := 0; t < s.cfg.NSteps; t++ {
		copy(s.energies[t], s.system.Energies())
		copy(s.states[t], s.system.State())
		s.metrics.RecordStep(s.energies[t], s.states[t])
		if (t+1)%s.cfg.Interval == 0 {
			if err := s.system.Exchange(); err != nil {
				return fmt.Errorf("exchange sweep at step %d: %w", t, err)
			}
		}
	}
	s.ran = true
	logrus.Infof("run complete: %d steps, final state %v", s.cfg.NSteps, s.system.State())
	return nil
}

// Energies returns the (NSteps x Size) energy log, or ErrNoData before Run.
func (s *Simulation) Energies() ([][]float64, error) {
	if !s.ran {
		return nil, fmt.Errorf("energy log: %w", ErrNoData)
	}
	return s.energies, nil
}

// States returns the (NSteps x Size) state log, or ErrNoData before Run.
func (s *Simulation) States() ([][]int, error) {
	if !s.ran {
		return nil, fmt.Errorf("state log: %w", ErrNoData)
	}
	return s.states, nil
}

// System exposes the owned System for read access.
func (s *Simulation) System() *System { return s.system }

// Metrics returns the run's aggregated metrics.
func (s *Simulation) Metrics() *Metrics { return s.metrics }

// Trace returns the exchange-decision trace (empty unless cfg.TraceLevel
// captures decisions).
func (s *Simulation) Trace() *trace.SimulationTrace { return s.trace }
