package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_NewRecords_FieldEquivalence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tank.InitialLevel = 1.25

	assert.Equal(t, Pump{FlowRate: 0.01, Head: 10}, cfg.Pump.NewPump())
	assert.Equal(t, Pipe{Length: 50, Diameter: 0.1, Roughness: 0.015, Density: 1000}, cfg.Pipe.NewPipe())
	assert.Equal(t, Tank{Height: 5, Radius: 1, WaterLevel: 1.25}, cfg.Tank.NewTank())
}

func TestConfig_Validate_RejectsOutOfDomain(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative flow rate", func(c *Config) { c.Pump.FlowRate = -0.1 }, "pump.flow_rate"},
		{"negative head", func(c *Config) { c.Pump.Head = -1 }, "pump.head"},
		{"zero pipe length", func(c *Config) { c.Pipe.Length = 0 }, "pipe.length"},
		{"zero diameter", func(c *Config) { c.Pipe.Diameter = 0 }, "pipe.diameter"},
		{"negative roughness", func(c *Config) { c.Pipe.Roughness = -0.1 }, "pipe.roughness"},
		{"zero density", func(c *Config) { c.Pipe.Density = 0 }, "pipe.density"},
		{"zero tank height", func(c *Config) { c.Tank.Height = 0 }, "tank.height"},
		{"negative radius", func(c *Config) { c.Tank.Radius = -1 }, "tank.radius"},
		{"negative initial level", func(c *Config) { c.Tank.InitialLevel = -0.5 }, "tank.initial_level"},
		{"initial level above height", func(c *Config) { c.Tank.InitialLevel = 6 }, "tank.initial_level"},
		{"negative duration", func(c *Config) { c.Duration = -1 }, "duration"},
		{"zero time step", func(c *Config) { c.TimeStep = 0 }, "time_step"},
		{"NaN flow rate", func(c *Config) { c.Pump.FlowRate = math.NaN() }, "pump.flow_rate"},
		{"infinite duration", func(c *Config) { c.Duration = math.Inf(1) }, "duration"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()

			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestConfig_Validate_AcceptsBoundaryValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pump.FlowRate = 0
	cfg.Pump.Head = 0
	cfg.Pipe.Roughness = 0
	cfg.Duration = 0
	cfg.Tank.InitialLevel = cfg.Tank.Height

	assert.NoError(t, cfg.Validate())
}
