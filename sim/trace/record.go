// Package trace provides per-tick trace recording for simulation runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// TickRecord captures the state of the system after one integrator step.
type TickRecord struct {
	Tick       int      `yaml:"tick"`
	Time       float64  `yaml:"time"`        // simulated time printed on the observation line (s)
	WaterLevel float64  `yaml:"water_level"` // m
	FlowRate   float64  `yaml:"flow_rate"`   // m³/s
	Power      float64  `yaml:"power"`       // W
	HeadLoss   float64  `yaml:"head_loss"`   // m
	Velocity   float64  `yaml:"velocity"`    // m/s
	Reynolds   float64  `yaml:"reynolds"`
	Regime     string   `yaml:"regime"`
	Flowing    bool     `yaml:"flowing"`
	Notices    []string `yaml:"notices,omitempty"`
}
