package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalAttempts   int
	AcceptedCount   int
	RejectedCount   int
	MeanProbability float64
	MaxProbability  float64
	UniquePairs     int
	PairAttempts    map[int]int // lower slot → attempt count
	PairAccepts     map[int]int // lower slot → accepted count
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		PairAttempts: make(map[int]int),
		PairAccepts:  make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalAttempts = len(st.Exchanges)
	totalProb := 0.0
	for _, e := range st.Exchanges {
		summary.PairAttempts[e.LowerSlot]++
		if e.Accepted {
			summary.AcceptedCount++
			summary.PairAccepts[e.LowerSlot]++
		} else {
			summary.RejectedCount++
		}
		totalProb += e.Probability
		if e.Probability > summary.MaxProbability {
			summary.MaxProbability = e.Probability
		}
	}
	if summary.TotalAttempts > 0 {
		summary.MeanProbability = totalProb / float64(summary.TotalAttempts)
	}

	summary.UniquePairs = len(summary.PairAttempts)

	return summary
}
