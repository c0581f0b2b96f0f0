package sim

import (
	"fmt"
	"math"
)

// PumpConfig groups the pump's configuration constants.
type PumpConfig struct {
	FlowRate float64 `yaml:"flow_rate"` // m³/s, must be >= 0
	Head     float64 `yaml:"head"`      // m, must be >= 0
}

// PipeConfig groups the supply pipe geometry and fluid density.
type PipeConfig struct {
	Length    float64 `yaml:"length"`    // m, must be > 0
	Diameter  float64 `yaml:"diameter"`  // m, must be > 0
	Roughness float64 `yaml:"roughness"` // informational, must be >= 0
	Density   float64 `yaml:"density"`   // kg/m³, must be > 0
}

// TankConfig groups tank geometry and the initial water level.
type TankConfig struct {
	Height       float64 `yaml:"height"`        // m, must be > 0
	Radius       float64 `yaml:"radius"`        // m, must be > 0
	InitialLevel float64 `yaml:"initial_level"` // m, within [0, height]
}

// Config is the full parameter set for one run.
type Config struct {
	Pump     PumpConfig `yaml:"pump"`
	Pipe     PipeConfig `yaml:"pipe"`
	Tank     TankConfig `yaml:"tank"`
	Duration float64    `yaml:"duration"`  // simulated seconds, must be >= 0
	TimeStep float64    `yaml:"time_step"` // seconds per tick, must be > 0
}

// DefaultConfig returns the compiled-in parameters: a 10 L/s pump with 10 m of head
// filling a 5 m tall, 1 m radius tank through 50 m of 10 cm steel pipe for 60 s.
func DefaultConfig() Config {
	return Config{
		Pump: PumpConfig{FlowRate: 0.01, Head: 10.0},
		Pipe: PipeConfig{Length: 50.0, Diameter: 0.1, Roughness: 0.015, Density: 1000.0},
		Tank: TankConfig{Height: 5.0, Radius: 1.0, InitialLevel: 0.0},

		Duration: 60.0,
		TimeStep: 1.0,
	}
}

// NewPump builds a Pump with zero initial power.
func (c PumpConfig) NewPump() Pump {
	return Pump{FlowRate: c.FlowRate, Head: c.Head}
}

// NewPipe builds a Pipe with zero initial velocity.
func (c PipeConfig) NewPipe() Pipe {
	return Pipe{Length: c.Length, Diameter: c.Diameter, Roughness: c.Roughness, Density: c.Density}
}

// NewTank builds a Tank at its initial level.
func (c TankConfig) NewTank() Tank {
	return Tank{Height: c.Height, Radius: c.Radius, WaterLevel: c.InitialLevel}
}

// Validate checks every parameter against its physical domain.
// All errors wrap ErrInvalidParameter.
func (c Config) Validate() error {
	checks := []struct {
		name string
		val  float64
		ok   func(float64) bool
		want string
	}{
		{"pump.flow_rate", c.Pump.FlowRate, nonNegative, "non-negative"},
		{"pump.head", c.Pump.Head, nonNegative, "non-negative"},
		{"pipe.length", c.Pipe.Length, positive, "positive"},
		{"pipe.diameter", c.Pipe.Diameter, positive, "positive"},
		{"pipe.roughness", c.Pipe.Roughness, nonNegative, "non-negative"},
		{"pipe.density", c.Pipe.Density, positive, "positive"},
		{"tank.height", c.Tank.Height, positive, "positive"},
		{"tank.radius", c.Tank.Radius, positive, "positive"},
		{"tank.initial_level", c.Tank.InitialLevel, nonNegative, "non-negative"},
		{"duration", c.Duration, nonNegative, "non-negative"},
		{"time_step", c.TimeStep, positive, "positive"},
	}
	for _, chk := range checks {
		if math.IsNaN(chk.val) || math.IsInf(chk.val, 0) {
			return fmt.Errorf("%w: %s must be a finite number, got %f", ErrInvalidParameter, chk.name, chk.val)
		}
		if !chk.ok(chk.val) {
			return fmt.Errorf("%w: %s must be %s, got %g", ErrInvalidParameter, chk.name, chk.want, chk.val)
		}
	}
	if c.Tank.InitialLevel > c.Tank.Height {
		return fmt.Errorf("%w: tank.initial_level %g exceeds tank.height %g",
			ErrInvalidParameter, c.Tank.InitialLevel, c.Tank.Height)
	}
	return nil
}

func positive(v float64) bool    { return v > 0 }
func nonNegative(v float64) bool { return v >= 0 }
