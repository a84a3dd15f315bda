// Package sim provides the core replica-exchange (parallel tempering)
// simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the tempering kernel:
//   - walker.go: a single replica's identity, slot, and temperature
//   - replicas.go: the ensemble, the temperature ladder, and the slot permutation
//   - system.go: the alternating-parity neighbor-exchange sweep
//
// simulation.go drives the loop: it advances the System step by step,
// records per-slot energies and the slot permutation at every step, and
// triggers an exchange sweep at a configured interval.
//
// # Architecture
//
// The sim package defines the engine and its interfaces; collaborators live
// in sub-packages:
//   - sim/trace/: exchange-decision trace recording
//   - sim/fes/: free-energy surfaces and particle dynamics that can stand in
//     for a walker's energy function
//
// # Key Interfaces
//
// The extension point is a single-method interface:
//   - EnergySource: draw one instantaneous energy sample for a walker at its
//     current temperature. The default GaussianSource is a stub observable;
//     fes.ParticleEnergy substitutes real dynamics without touching the
//     exchange logic.
package sim
