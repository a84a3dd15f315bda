package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/remd-sim/remd-sim/sim/trace"
)

// forcedSystem builds a System whose slots all report the same energy, so
// the Metropolis exponent is zero and every attempted pair swaps.
func forcedSystem(size int) *System {
	r := NewReplicas(size, 300.0, 0.05, constantSources(size))
	return NewSystem(r, rand.New(rand.NewSource(1)), NewMetrics(size), nil)
}

func TestSystem_State_ReturnsPermutationCopy(t *testing.T) {
	sys := forcedSystem(4)
	state := sys.State()
	assert.Equal(t, []int{0, 1, 2, 3}, state)

	// Mutating the returned slice must not corrupt the ensemble
	state[0] = 99
	assert.Equal(t, []int{0, 1, 2, 3}, sys.State())
}

func TestSystem_Energies_SlotOrder(t *testing.T) {
	// GIVEN per-slot sources with distinguishable energies
	sources := []EnergySource{ConstantSource(10), ConstantSource(20), ConstantSource(30)}
	r := NewReplicas(3, 300.0, 0.05, sources)
	sys := NewSystem(r, rand.New(rand.NewSource(1)), nil, nil)

	// THEN energies come back in slot order
	assert.Equal(t, []float64{10, 20, 30}, sys.Energies())

	// AND after a swap the moved walker's energy follows it to its new slot
	if err := r.Exchange(0); err != nil {
		t.Fatalf("Exchange(0): %v", err)
	}
	assert.Equal(t, []float64{20, 10, 30}, sys.Energies())
}

func TestSystem_Exchange_AlternatingParity(t *testing.T) {
	// GIVEN equal energies everywhere (acceptance probability exactly 1)
	sys := forcedSystem(4)

	// WHEN the first sweep runs (offset 0: pairs (0,1) and (2,3))
	if err := sys.Exchange(); err != nil {
		t.Fatalf("sweep 1: %v", err)
	}
	assert.Equal(t, []int{1, 0, 3, 2}, sys.State(), "sweep 1 must swap only even pairs")

	// AND the second sweep runs (offset 1: pair (1,2) only)
	if err := sys.Exchange(); err != nil {
		t.Fatalf("sweep 2: %v", err)
	}
	assert.Equal(t, []int{1, 3, 0, 2}, sys.State(), "sweep 2 must swap only the odd pair")

	// AND a third sweep is back to offset 0
	if err := sys.Exchange(); err != nil {
		t.Fatalf("sweep 3: %v", err)
	}
	assert.Equal(t, []int{3, 1, 2, 0}, sys.State(), "sweep 3 must use offset 0 again")
}

func TestSystem_Exchange_OddSizeSkipsFinalPair(t *testing.T) {
	// GIVEN 5 slots with forced acceptance
	sys := forcedSystem(5)

	// WHEN the offset-0 sweep runs, pairs (0,1),(2,3) fire; slot 4 has no partner
	if err := sys.Exchange(); err != nil {
		t.Fatalf("sweep 1: %v", err)
	}
	assert.Equal(t, []int{1, 0, 3, 2, 4}, sys.State())

	// AND the offset-1 sweep runs, pairs (1,2),(3,4) fire
	if err := sys.Exchange(); err != nil {
		t.Fatalf("sweep 2: %v", err)
	}
	assert.Equal(t, []int{1, 3, 0, 4, 2}, sys.State())
}

func TestSystem_Exchange_SizeTwo(t *testing.T) {
	// GIVEN the minimum ensemble, the offset-1 sweep has no eligible pair
	sys := forcedSystem(2)
	if err := sys.Exchange(); err != nil {
		t.Fatalf("sweep 1: %v", err)
	}
	assert.Equal(t, []int{1, 0}, sys.State())
	if err := sys.Exchange(); err != nil {
		t.Fatalf("sweep 2: %v", err)
	}
	assert.Equal(t, []int{1, 0}, sys.State(), "offset-1 sweep of a 2-slot ensemble must be a no-op")
}

func TestSystem_Exchange_RecordsMetricsAndTrace(t *testing.T) {
	// GIVEN a traced system with forced acceptance
	r := NewReplicas(4, 300.0, 0.05, constantSources(4))
	metrics := NewMetrics(4)
	tr := trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelDecisions})
	sys := NewSystem(r, rand.New(rand.NewSource(1)), metrics, tr)

	// WHEN one sweep runs
	if err := sys.Exchange(); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	// THEN both attempts are recorded with probability 1 and accepted
	assert.Len(t, tr.Exchanges, 2)
	for _, rec := range tr.Exchanges {
		assert.Equal(t, 1, rec.Sweep)
		assert.Equal(t, 0, rec.Offset)
		assert.Equal(t, 1.0, rec.Probability)
		assert.True(t, rec.Accepted)
	}
	assert.Equal(t, 1, metrics.PairAttempts[0])
	assert.Equal(t, 1, metrics.PairAttempts[2])
	assert.Equal(t, 1, metrics.PairAccepts[0])
	assert.Equal(t, 1, metrics.PairAccepts[2])
}

func TestSystem_Exchange_SnapshotConsistency(t *testing.T) {
	// GIVEN sources that change value on every read: a swap applied
	// mid-sweep must not perturb later pair decisions, which use the
	// pre-sweep snapshot only.
	reads := 0
	sources := make([]EnergySource, 4)
	for i := range sources {
		sources[i] = sampleFunc(func(float64) float64 {
			reads++
			return 0
		})
	}
	r := NewReplicas(4, 300.0, 0.05, sources)
	sys := NewSystem(r, rand.New(rand.NewSource(1)), nil, nil)

	if err := sys.Exchange(); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	// THEN exactly one energy read per slot happened for the whole sweep
	if reads != 4 {
		t.Errorf("energy reads during sweep: got %d, want 4 (one snapshot per slot)", reads)
	}
}

// sampleFunc adapts a function to the EnergySource interface.
type sampleFunc func(temp float64) float64

func (f sampleFunc) Sample(temp float64) float64 { return f(temp) }
