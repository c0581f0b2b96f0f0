// Package sim provides the fixed-step hydraulic simulation engine for pumpsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - hydraulics.go: friction factor, Darcy–Weisbach head loss and pump power
//   - tank.go: the integrator that advances the tank level by one tick
//   - simulator.go: the fixed-step loop, observation lines and real-time pacing
//
// # Architecture
//
// The physical records (Pump, Pipe, Tank) are plain structs owned by the
// Simulator for the duration of a run. The integrator mutates Pipe.Velocity,
// Pump.Power and Tank.WaterLevel in place; nothing else changes.
//
// Host dependencies are injected as small interfaces:
//   - Sink: receives every output line (header, notices, observations)
//   - Sleeper: paces the loop against the wall clock
//
// Abnormal physical regimes (undersized pump, overflow) are reported as
// notices on the sink, never as errors. Only parameter validation and sink
// failures return errors.
//
// Per-tick decision records live in sim/trace/, which has no dependency on
// this package.
package sim
