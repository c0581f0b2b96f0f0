// sim/simulator.go
package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/pumpsim/pumpsim/sim/trace"
)

// RunState is the driver lifecycle state.
type RunState string

const (
	StateInitialized RunState = "initialized"
	StateRunning     RunState = "running"
	StateDone        RunState = "done"
)

// Simulator is the core object that holds simulated time, the physical records and the fixed-step loop.
type Simulator struct {
	Clock     float64 // simulated time (s)
	Duration  float64 // run length in simulated seconds
	TimeStep  float64 // Δt (s)
	TickCount int

	// Physical records, exclusively owned by the simulator for the run.
	Pump *Pump
	Pipe *Pipe
	Tank *Tank

	Sink    Sink
	Sleeper Sleeper
	Metrics *Metrics
	// Trace is optional; nil disables per-tick recording.
	Trace *trace.SimulationTrace

	state RunState
}

// NewSimulator validates cfg and builds a Simulator from it.
func NewSimulator(cfg Config, sink Sink, sleeper Sleeper) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pump := cfg.Pump.NewPump()
	pipe := cfg.Pipe.NewPipe()
	tank := cfg.Tank.NewTank()
	return newSimulator(&pump, &pipe, &tank, cfg.Duration, cfg.TimeStep, sink, sleeper), nil
}

func newSimulator(pump *Pump, pipe *Pipe, tank *Tank, duration, timeStep float64, sink Sink, sleeper Sleeper) *Simulator {
	if sleeper == nil {
		sleeper = NoopSleeper{}
	}
	return &Simulator{
		Duration: duration,
		TimeStep: timeStep,
		Pump:     pump,
		Pipe:     pipe,
		Tank:     tank,
		Sink:     sink,
		Sleeper:  sleeper,
		Metrics:  NewMetrics(timeStep, tank.Height),
		state:    StateInitialized,
	}
}

// Run drives pump, pipe and tank for duration simulated seconds in steps of timeStep,
// emitting the output stream to sink and pacing with sleeper. The records are
// mutated in place.
func Run(pump *Pump, pipe *Pipe, tank *Tank, duration, timeStep float64, sink Sink, sleeper Sleeper) error {
	return newSimulator(pump, pipe, tank, duration, timeStep, sink, sleeper).Run()
}

// State returns the driver lifecycle state.
func (sim *Simulator) State() RunState {
	return sim.state
}

// Run executes the fixed-step loop: integrate, emit notices, emit the observation
// line, advance the clock by exactly TimeStep, then sleep. The run ends when the
// clock reaches Duration; overflow never ends it.
//
// The only errors are a non-positive time step (which would never terminate) and
// sink failures, returned as *RunError.
func (sim *Simulator) Run() error {
	if !(sim.TimeStep > 0) || math.IsInf(sim.TimeStep, 0) {
		return fmt.Errorf("%w: time_step must be positive, got %g", ErrInvalidParameter, sim.TimeStep)
	}
	if math.IsNaN(sim.Duration) {
		return fmt.Errorf("%w: duration must be a finite number", ErrInvalidParameter)
	}

	logrus.Infof("Starting simulation: duration=%gs, dt=%gs, Q=%gm³/s, H=%gm, tank=%gm x r%gm",
		sim.Duration, sim.TimeStep, sim.Pump.FlowRate, sim.Pump.Head, sim.Tank.Height, sim.Tank.Radius)

	for _, line := range []string{HeaderLine, SeparatorLine} {
		if err := sim.Sink.EmitLine(line); err != nil {
			return &RunError{Tick: -1, Time: sim.Clock, Err: err}
		}
	}

	noFlow, overflowing := false, false
	for sim.Clock < sim.Duration {
		if sim.state == StateInitialized {
			sim.state = StateRunning
		}
		res := Step(sim.Tank, sim.Pump, sim.Pipe, sim.TimeStep)
		logrus.Debugf("[tick %05d] t=%.2f h_f=%.4f v=%.4f Re=%.0f (%s) level=%.4f",
			sim.TickCount, sim.Clock, res.HeadLoss, res.Velocity, res.Reynolds, res.Regime, sim.Tank.WaterLevel)

		if now := res.HasNotice(NoticeNoFlow); now != noFlow {
			if now {
				logrus.Warnf("[tick %05d] pump head %gm below head loss %.4fm", sim.TickCount, sim.Pump.Head, res.HeadLoss)
			}
			noFlow = now
		}
		if now := res.HasNotice(NoticeOverflow); now && !overflowing {
			logrus.Warnf("[tick %05d] tank full at %gm", sim.TickCount, sim.Tank.Height)
			overflowing = true
		}

		for _, n := range res.Notices {
			if err := sim.Sink.EmitLine(string(n)); err != nil {
				return &RunError{Tick: sim.TickCount, Time: sim.Clock, Err: err}
			}
		}
		line := fmt.Sprintf(ObservationFormat, sim.Clock, sim.Tank.WaterLevel, sim.Pump.FlowRate, sim.Pump.Power)
		if err := sim.Sink.EmitLine(line); err != nil {
			return &RunError{Tick: sim.TickCount, Time: sim.Clock, Err: err}
		}

		sim.Metrics.Record(res, sim.Pump, sim.Tank)
		if sim.Trace != nil {
			sim.Trace.RecordTick(sim.tickRecord(res))
		}

		sim.Clock += sim.TimeStep
		sim.TickCount++
		sim.Sleeper.Sleep(sim.TimeStep)
	}
	sim.state = StateDone

	if err := sim.Sink.EmitLine(CompletionLine); err != nil {
		return &RunError{Tick: sim.TickCount, Time: sim.Clock, Err: err}
	}
	logrus.Infof("[tick %05d] Simulation ended at t=%.2fs, level=%.4fm", sim.TickCount, sim.Clock, sim.Tank.WaterLevel)
	return nil
}

func (sim *Simulator) tickRecord(res StepResult) trace.TickRecord {
	notices := make([]string, 0, len(res.Notices))
	for _, n := range res.Notices {
		notices = append(notices, string(n))
	}
	return trace.TickRecord{
		Tick:       sim.TickCount,
		Time:       sim.Clock,
		WaterLevel: sim.Tank.WaterLevel,
		FlowRate:   sim.Pump.FlowRate,
		Power:      sim.Pump.Power,
		HeadLoss:   res.HeadLoss,
		Velocity:   res.Velocity,
		Reynolds:   res.Reynolds,
		Regime:     string(res.Regime),
		Flowing:    res.Flowing,
		Notices:    notices,
	}
}
