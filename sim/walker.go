package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidSlotMove is returned when a walker is asked to move to a slot
// that is not immediately adjacent to its current one.
var ErrInvalidSlotMove = errors.New("invalid slot move")

// Walker is a single replica with a persistent identity. Its identity
// (WIndex) is fixed at creation; its slot (RIndex) and temperature change
// only through adjacent-slot exchanges driven by the Replicas ensemble.
type Walker struct {
	wIndex      int
	rIndex      int
	temperature float64
	source      EnergySource
}

// NewWalker creates walker wIndex occupying slot wIndex at temperature temp.
func NewWalker(wIndex int, temp float64, source EnergySource) *Walker {
	return &Walker{
		wIndex:      wIndex,
		rIndex:      wIndex,
		temperature: temp,
		source:      source,
	}
}

// WIndex is the walker's immutable identity.
func (w *Walker) WIndex() int { return w.wIndex }

// RIndex is the temperature slot the walker currently occupies.
func (w *Walker) RIndex() int { return w.rIndex }

// Temperature is the temperature assigned to the walker's current slot.
func (w *Walker) Temperature() float64 { return w.temperature }

// Energy draws one fresh stochastic energy sample at the walker's current
// temperature. The value is never cached; every read consumes randomness.
func (w *Walker) Energy() float64 {
	return w.source.Sample(w.temperature)
}

// SetSlot moves the walker to slot. The only legal transition is to an
// immediately adjacent slot: |slot - RIndex| must be exactly 1. Anything
// else, including a no-op move, returns ErrInvalidSlotMove and leaves the
// walker unchanged. This is the lowest-level enforcement of the
// "replica exchange is always between neighbors" invariant.
func (w *Walker) SetSlot(slot int) error {
	if d := slot - w.rIndex; d != 1 && d != -1 {
		return fmt.Errorf("%w: walker %d cannot move from slot %d to slot %d",
			ErrInvalidSlotMove, w.wIndex, w.rIndex, slot)
	}
	w.rIndex = slot
	return nil
}

// SetTemperature updates the walker's temperature unconditionally.
// The Replicas ensemble is the only legitimate caller; it keeps the value
// consistent with the temperature assigned to slot RIndex.
func (w *Walker) SetTemperature(temp float64) {
	w.temperature = temp
}
