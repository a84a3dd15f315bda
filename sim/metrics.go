// Tracks ensemble-wide exchange and mixing statistics for final reporting.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about a simulation run: how often each
// adjacent pair attempted and accepted a swap, the acceptance probabilities
// seen, per-slot energy statistics, and how walkers spread over slots
// (a mixing diagnostic).
type Metrics struct {
	Sweeps       int
	PairAttempts map[int]int // lower slot → attempts
	PairAccepts  map[int]int // lower slot → accepted swaps
	AcceptProbs  []float64   // every computed acceptance probability

	slotEnergies [][]float64 // per slot: logged energy samples
	slotVisits   [][]int     // per walker: count of steps spent in each slot
}

// NewMetrics creates a Metrics for a size-slot ensemble.
func NewMetrics(size int) *Metrics {
	m := &Metrics{
		PairAttempts: make(map[int]int),
		PairAccepts:  make(map[int]int),
		slotEnergies: make([][]float64, size),
		slotVisits:   make([][]int, size),
	}
	for i := range m.slotVisits {
		m.slotVisits[i] = make([]int, size)
	}
	return m
}

// RecordAttempt counts one exchange attempt for the pair at lowerSlot.
func (m *Metrics) RecordAttempt(lowerSlot int, prob float64, accepted bool) {
	m.PairAttempts[lowerSlot]++
	if accepted {
		m.PairAccepts[lowerSlot]++
	}
	m.AcceptProbs = append(m.AcceptProbs, prob)
}

// RecordStep accumulates one step's logged energies and state snapshot.
func (m *Metrics) RecordStep(energies []float64, state []int) {
	for slot, e := range energies {
		m.slotEnergies[slot] = append(m.slotEnergies[slot], e)
	}
	for slot, w := range state {
		m.slotVisits[w][slot]++
	}
}

// AcceptanceRate returns accepted/attempted for the pair at lowerSlot,
// or 0 if the pair was never attempted.
func (m *Metrics) AcceptanceRate(lowerSlot int) float64 {
	attempts := m.PairAttempts[lowerSlot]
	if attempts == 0 {
		return 0
	}
	return float64(m.PairAccepts[lowerSlot]) / float64(attempts)
}

// SlotVisits returns how many logged steps walker w spent in each slot.
func (m *Metrics) SlotVisits(w int) []int {
	out := make([]int, len(m.slotVisits[w]))
	copy(out, m.slotVisits[w])
	return out
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Exchange Attempts    : %d\n", len(m.AcceptProbs))
	if len(m.AcceptProbs) > 0 {
		fmt.Printf("Mean Accept Prob     : %.4f\n", stat.Mean(m.AcceptProbs, nil))
		fmt.Printf("Stdev Accept Prob    : %.4f\n", stat.StdDev(m.AcceptProbs, nil))
		for slot := 0; slot < len(m.slotEnergies)-1; slot++ {
			if m.PairAttempts[slot] == 0 {
				continue
			}
			fmt.Printf("Pair (%d,%d) accepted  : %d/%d (%.2f)\n",
				slot, slot+1, m.PairAccepts[slot], m.PairAttempts[slot], m.AcceptanceRate(slot))
		}
	}
	for slot, samples := range m.slotEnergies {
		if len(samples) == 0 {
			continue
		}
		fmt.Printf("Slot %d energy        : mean %.2f stdev %.2f over %d samples\n",
			slot, stat.Mean(samples, nil), stat.StdDev(samples, nil), len(samples))
	}
}
