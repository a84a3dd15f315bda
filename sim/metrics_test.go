package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordAttempt(t *testing.T) {
	// GIVEN three attempts on pair 0, two accepted
	m := NewMetrics(4)
	m.RecordAttempt(0, 1.0, true)
	m.RecordAttempt(0, 0.4, false)
	m.RecordAttempt(0, 0.9, true)
	m.RecordAttempt(2, 0.2, false)

	// THEN counters and acceptance rates reflect them
	assert.Equal(t, 3, m.PairAttempts[0])
	assert.Equal(t, 2, m.PairAccepts[0])
	assert.InDelta(t, 2.0/3.0, m.AcceptanceRate(0), 1e-12)
	assert.Equal(t, 0.0, m.AcceptanceRate(2))
	assert.Equal(t, 0.0, m.AcceptanceRate(1), "unattempted pair rates as zero")
	assert.Len(t, m.AcceptProbs, 4)
}

func TestMetrics_RecordStep_SlotVisits(t *testing.T) {
	// GIVEN two recorded steps with a swap between them
	m := NewMetrics(3)
	m.RecordStep([]float64{1, 2, 3}, []int{0, 1, 2})
	m.RecordStep([]float64{1, 2, 3}, []int{1, 0, 2})

	// THEN visit counts track walker occupancy per slot
	assert.Equal(t, []int{1, 1, 0}, m.SlotVisits(0))
	assert.Equal(t, []int{1, 1, 0}, m.SlotVisits(1))
	assert.Equal(t, []int{0, 0, 2}, m.SlotVisits(2))
}
