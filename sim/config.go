package sim

import (
	"fmt"

	"github.com/remd-sim/remd-sim/sim/trace"
)

// Config groups the construction parameters of a Simulation.
type Config struct {
	Size            int     // number of walkers/temperature slots
	NSteps          int     // steps to run and log
	Interval        int     // exchange sweep every Interval steps
	StartTemp       float64 // temperature of slot 0
	ScalingExponent float64 // slot i sits at StartTemp * exp(i*ScalingExponent)
	WidthParam      float64 // stub energy spread: stddev = temp / WidthParam
	Seed            int64   // master seed for the partitioned RNG
	TraceLevel      string  // "none" (default) or "decisions"
}

// DefaultConfig returns a small, runnable configuration.
func DefaultConfig() Config {
	return Config{
		Size:            4,
		NSteps:          1000,
		Interval:        10,
		StartTemp:       300.0,
		ScalingExponent: 0.05,
		WidthParam:      5.0,
		Seed:            42,
	}
}

// Validate checks the configuration for contract violations.
func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("size must be at least 2, got %d", c.Size)
	}
	if c.NSteps < 0 {
		return fmt.Errorf("n_steps must be non-negative, got %d", c.NSteps)
	}
	if c.Interval < 1 {
		return fmt.Errorf("interval must be at least 1, got %d", c.Interval)
	}
	if c.StartTemp <= 0 {
		return fmt.Errorf("start_temp must be positive, got %f", c.StartTemp)
	}
	if c.WidthParam <= 0 {
		return fmt.Errorf("width_param must be positive, got %f", c.WidthParam)
	}
	if !trace.IsValidTraceLevel(c.TraceLevel) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return nil
}
