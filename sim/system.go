package sim

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/remd-sim/remd-sim/sim/trace"
)

// System owns a Replicas ensemble exclusively and runs the alternating
// neighbor-exchange schedule over it. No other component mutates the
// ensemble's permutation or temperatures.
type System struct {
	replicas *Replicas
	rng      *rand.Rand // SubsystemExchange stream: one uniform draw per pair
	metrics  *Metrics
	trace    *trace.SimulationTrace

	// lastExchangeEven records whether the previous sweep used the even
	// parity offset; the next sweep uses the complementary one. A fixed
	// single offset would never swap the pairs straddling the other parity
	// boundary.
	lastExchangeEven bool
	sweepCount       int
}

// NewSystem creates a System over replicas. metrics and tr may be nil.
func NewSystem(replicas *Replicas, rng *rand.Rand, metrics *Metrics, tr *trace.SimulationTrace) *System {
	return &System{
		replicas: replicas,
		rng:      rng,
		metrics:  metrics,
		trace:    tr,
	}
}

// Replicas exposes the owned ensemble for read access.
func (s *System) Replicas() *Replicas { return s.replicas }

// State returns the current slot → walker-identity permutation.
func (s *System) State() []int {
	return s.replicas.Indexes()
}

// Energies returns one fresh energy sample per slot, in slot order, from
// the walker currently occupying each slot.
func (s *System) Energies() []float64 {
	energies := make([]float64, 0, s.replicas.Size())
	for w := range s.replicas.All() {
		energies = append(energies, w.Energy())
	}
	return energies
}

// Exchange runs one sweep of neighbor-exchange attempts.
//
// Energies and temperatures are snapshotted once at the top of the sweep, so
// every acceptance decision of the sweep uses the same consistent view; an
// applied swap never perturbs the computation for a later pair. Pairs are
// (offset, offset+1), (offset+2, offset+3), ... with offset alternating
// between 0 and 1 across sweeps; a pair that would run past the last slot is
// skipped. For each pair the parallel-tempering Metropolis probability
//
//	p = min(1, exp((E_i - E_j) * (1/T_i - 1/T_j)))
//
// is compared against one uniform draw, and an accepted pair swaps via
// Replicas.Exchange in increasing slot order.
func (s *System) Exchange() error {
	energies := s.Energies()
	temps := s.replicas.Temps()
	offset := 0
	if s.lastExchangeEven {
		offset = 1
	}
	s.sweepCount++

	for i := offset; i+1 < s.replicas.Size(); i += 2 {
		expo := (energies[i] - energies[i+1]) * (1/temps[i] - 1/temps[i+1])
		prob := math.Min(1, math.Exp(expo))
		draw := s.rng.Float64()
		accepted := prob > draw

		s.trace.RecordExchange(trace.ExchangeRecord{
			Sweep:       s.sweepCount,
			Offset:      offset,
			LowerSlot:   i,
			WalkerLow:   s.replicas.indexes[i],
			WalkerHigh:  s.replicas.indexes[i+1],
			Probability: prob,
			Draw:        draw,
			Accepted:    accepted,
		})
		if s.metrics != nil {
			s.metrics.RecordAttempt(i, prob, accepted)
		}

		if !accepted {
			continue
		}
		if err := s.replicas.Exchange(i); err != nil {
			// In-range by loop construction; an error here means the
			// permutation bookkeeping is corrupt.
			return err
		}
	}

	logrus.Debugf("sweep %d done (offset %d)", s.sweepCount, offset)
	s.lastExchangeEven = !s.lastExchangeEven
	return nil
}
