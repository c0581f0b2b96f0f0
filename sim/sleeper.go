package sim

import "time"

// Sleeper paces the simulation loop against the wall clock.
// Implementations are best-effort: oversleep or undersleep never affects simulated time.
type Sleeper interface {
	Sleep(seconds float64)
}

// SleeperFunc adapts an ordinary function to the Sleeper interface.
type SleeperFunc func(seconds float64)

// Sleep calls f(seconds).
func (f SleeperFunc) Sleep(seconds float64) { f(seconds) }

// RealTimeSleeper blocks the calling goroutine for the requested duration.
type RealTimeSleeper struct{}

// Sleep blocks for seconds of wall-clock time.
func (RealTimeSleeper) Sleep(seconds float64) {
	time.Sleep(time.Duration(seconds * float64(time.Second)))
}

// NoopSleeper returns immediately, running the simulation as fast as possible.
type NoopSleeper struct{}

// Sleep does nothing.
func (NoopSleeper) Sleep(float64) {}
