package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/remd-sim/remd-sim/sim"
	"github.com/remd-sim/remd-sim/sim/trace"
)

var (
	// CLI flags for the tempering run
	size            int     // Number of walkers / temperature slots
	nSteps          int     // Number of steps to run and log
	interval        int     // Exchange sweep frequency (in steps)
	startTemp       float64 // Temperature of slot 0
	scalingExponent float64 // Slot i temperature = start-temp * exp(i * exponent)
	widthParam      float64 // Stub energy sampler spread: stddev = temp / width-param
	seed            int64   // Master seed for the partitioned RNG
	logLevel        string  // Log verbosity level
	traceLevel      string  // Exchange decision trace level
	configPath      string  // Optional YAML file with ensemble presets
	ensembleName    string  // Preset name inside the YAML file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "remd",
	Short: "Replica-exchange (parallel tempering) simulation engine",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the replica-exchange simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.Config{
			Size:            size,
			NSteps:          nSteps,
			Interval:        interval,
			StartTemp:       startTemp,
			ScalingExponent: scalingExponent,
			WidthParam:      widthParam,
			Seed:            seed,
			TraceLevel:      traceLevel,
		}

		// Ensemble presets from YAML override the ensemble flags
		if configPath != "" {
			if preset := GetEnsemblePreset(configPath, ensembleName); preset != nil {
				preset.Apply(&cfg)
			} else {
				logrus.Fatalf("Preset %q not found in %s", ensembleName, configPath)
			}
		}

		logrus.Infof("Starting tempering run with %d walkers, %d steps, exchange every %d steps",
			cfg.Size, cfg.NSteps, cfg.Interval)

		startTime := time.Now()

		s, err := sim.NewSimulation(cfg)
		if err != nil {
			logrus.Fatalf("unable to build simulation: %v", err)
		}
		if err := s.Run(); err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		s.Metrics().Print()
		if s.Trace().Enabled() {
			printTraceSummary(trace.Summarize(s.Trace()))
		}
		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// printTraceSummary displays the aggregated exchange-decision trace.
func printTraceSummary(ts *trace.TraceSummary) {
	fmt.Println("=== Exchange Trace ===")
	fmt.Printf("Attempts             : %d\n", ts.TotalAttempts)
	fmt.Printf("Accepted / Rejected  : %d / %d\n", ts.AcceptedCount, ts.RejectedCount)
	fmt.Printf("Mean Accept Prob     : %.4f (max %.4f)\n", ts.MeanProbability, ts.MaxProbability)
	fmt.Printf("Pairs attempted      : %d\n", ts.UniquePairs)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().IntVar(&size, "size", 4, "Number of walkers / temperature slots (>= 2)")
	runCmd.Flags().IntVar(&nSteps, "steps", 1000, "Number of steps to run and log")
	runCmd.Flags().IntVar(&interval, "interval", 10, "Exchange sweep every N steps")
	runCmd.Flags().Float64Var(&startTemp, "start-temp", 300.0, "Temperature of slot 0")
	runCmd.Flags().Float64Var(&scalingExponent, "scaling-exponent", 0.05, "Exponential temperature ladder spacing")
	runCmd.Flags().Float64Var(&widthParam, "width-param", 5.0, "Stub energy spread parameter (stddev = temp/width-param)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for deterministic energy and exchange randomness")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Exchange trace level (none, decisions)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML file with ensemble presets")
	runCmd.Flags().StringVar(&ensembleName, "ensemble", "default", "Preset name to use from --config")

	rootCmd.AddCommand(runCmd)
}
