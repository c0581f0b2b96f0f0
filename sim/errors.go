package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a simulation parameter outside its physical domain.
var ErrInvalidParameter = errors.New("invalid simulation parameter")

// RunError wraps a sink failure with the tick at which it happened.
type RunError struct {
	Tick int     // zero-based tick index; -1 for header lines, TickCount for the closing line
	Time float64 // simulated time when the failure occurred (s)
	Err  error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("simulation aborted at tick %d (t=%.2fs): %v", e.Tick, e.Time, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
