package sim

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/sirupsen/logrus"
)

// ErrSlotOutOfRange is returned when an exchange names a lower slot outside
// [0, size-2].
var ErrSlotOutOfRange = errors.New("exchange slot out of range")

// Replicas is the walker ensemble plus the permutation mapping slots to
// walker identities.
//
// walkers is indexed by WIndex (creation order) and never reordered.
// indexes is the single source of truth for "who is where":
// indexes[slot] is the WIndex of the walker currently occupying slot.
// Invariant: indexes is a permutation of 0..size-1 and
// walkers[indexes[slot]].RIndex() == slot for every slot.
type Replicas struct {
	size    int
	walkers []*Walker
	temps   []float64
	indexes []int
}

// NewReplicas builds a size-walker ensemble with the exponential temperature
// ladder temps[i] = startTemp * exp(i*scalingExponent) and the identity slot
// assignment. sources supplies each walker's energy sampler and must have
// exactly size entries. Parameters are assumed pre-validated (Config.Validate).
func NewReplicas(size int, startTemp, scalingExponent float64, sources []EnergySource) *Replicas {
	r := &Replicas{
		size:    size,
		walkers: make([]*Walker, size),
		temps:   make([]float64, size),
		indexes: make([]int, size),
	}
	for i := 0; i < size; i++ {
		temp := startTemp * math.Exp(float64(i)*scalingExponent)
		r.temps[i] = temp
		r.walkers[i] = NewWalker(i, temp, sources[i])
		r.indexes[i] = i
	}
	logrus.Debugf("built %d-walker ensemble, temperature ladder %.2f..%.2f",
		size, r.temps[0], r.temps[size-1])
	return r
}

// Size is the number of walkers/slots, fixed at construction.
func (r *Replicas) Size() int { return r.size }

// Temps returns a copy of the per-slot temperature ladder.
func (r *Replicas) Temps() []float64 {
	out := make([]float64, r.size)
	copy(out, r.temps)
	return out
}

// Indexes returns a copy of the slot -> walker-identity permutation.
func (r *Replicas) Indexes() []int {
	out := make([]int, r.size)
	copy(out, r.indexes)
	return out
}

// Replicas returns the walkers in slot order: element i is the walker
// currently occupying temperature slot i. Rebuilt from the live permutation
// on every call.
func (r *Replicas) Replicas() []*Walker {
	out := make([]*Walker, r.size)
	for slot, w := range r.indexes {
		out[slot] = r.walkers[w]
	}
	return out
}

// All iterates the walkers lazily in slot order. The sequence is finite and
// restartable; each restart re-reads the current permutation.
func (r *Replicas) All() iter.Seq[*Walker] {
	return func(yield func(*Walker) bool) {
		for _, w := range r.indexes {
			if !yield(r.walkers[w]) {
				return
			}
		}
	}
}

// Exchange swaps the occupants of lowerSlot and lowerSlot+1: the two
// permutation entries are exchanged, both walkers take the other slot's
// temperature, and each walker's RIndex moves by exactly one. lowerSlot must
// be in [0, size-2].
func (r *Replicas) Exchange(lowerSlot int) error {
	if lowerSlot < 0 || lowerSlot > r.size-2 {
		return fmt.Errorf("%w: lower slot %d with %d slots", ErrSlotOutOfRange, lowerSlot, r.size)
	}
	upperSlot := lowerSlot + 1
	low := r.walkers[r.indexes[lowerSlot]]
	high := r.walkers[r.indexes[upperSlot]]
	if err := low.SetSlot(upperSlot); err != nil {
		return err
	}
	if err := high.SetSlot(lowerSlot); err != nil {
		return err
	}
	r.indexes[lowerSlot], r.indexes[upperSlot] = r.indexes[upperSlot], r.indexes[lowerSlot]
	low.SetTemperature(r.temps[upperSlot])
	high.SetTemperature(r.temps[lowerSlot])
	logrus.Debugf("exchanged slots %d<->%d (walkers %d, %d)",
		lowerSlot, upperSlot, high.WIndex(), low.WIndex())
	return nil
}
