// Package trace provides decision-trace recording for exchange-sweep
// analysis. This package has no dependencies on sim/ — it stores pure data
// types.
package trace

// ExchangeRecord captures a single neighbor-exchange attempt.
type ExchangeRecord struct {
	Sweep       int     // 1-based sweep counter
	Offset      int     // parity offset of the sweep (0 or 1)
	LowerSlot   int     // lower slot of the attempted pair
	WalkerLow   int     // identity occupying LowerSlot before the attempt
	WalkerHigh  int     // identity occupying LowerSlot+1 before the attempt
	Probability float64 // Metropolis acceptance probability, capped at 1
	Draw        float64 // uniform [0,1) draw compared against Probability
	Accepted    bool
}
