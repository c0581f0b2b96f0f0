// Tracks run-wide totals such as pumped volume, energy and notice counts.

package sim

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	Ticks         int     // Number of ticks executed
	FlowingTicks  int     // Ticks where the pump overcame the head loss
	NoFlowTicks   int     // Ticks that raised NoticeNoFlow
	OverflowTicks int     // Ticks that raised NoticeOverflow
	VolumePumped  float64 // Volume added to the tank (m³), after clamping
	FinalLevel    float64 // Water level after the last tick (m)
	TankHeight    float64 // Tank height, used for the fill fraction (m)
	TimeStep      float64 // Δt (s)

	// PowerSamples holds pump power reported on each observation line (W).
	PowerSamples []float64
	// HeadLossSamples holds the friction head loss of each tick (m).
	HeadLossSamples []float64
}

// NewMetrics creates an empty Metrics for a run with the given time step.
func NewMetrics(timeStep, tankHeight float64) *Metrics {
	return &Metrics{
		TimeStep:        timeStep,
		TankHeight:      tankHeight,
		PowerSamples:    make([]float64, 0),
		HeadLossSamples: make([]float64, 0),
	}
}

// Record folds one tick into the totals.
func (m *Metrics) Record(res StepResult, pump *Pump, tank *Tank) {
	m.Ticks++
	if res.Flowing {
		m.FlowingTicks++
	}
	if res.HasNotice(NoticeNoFlow) {
		m.NoFlowTicks++
	}
	if res.HasNotice(NoticeOverflow) {
		m.OverflowTicks++
	}
	m.VolumePumped += res.Inflow
	m.FinalLevel = tank.WaterLevel
	m.PowerSamples = append(m.PowerSamples, pump.Power)
	m.HeadLossSamples = append(m.HeadLossSamples, res.HeadLoss)
}

// Energy returns Σ P·Δt over all ticks (J).
func (m *Metrics) Energy() float64 {
	return floats.Sum(m.PowerSamples) * m.TimeStep
}

// MeanPower returns the mean reported pump power (W); 0 for an empty run.
func (m *Metrics) MeanPower() float64 {
	if len(m.PowerSamples) == 0 {
		return 0
	}
	return stat.Mean(m.PowerSamples, nil)
}

// PeakPower returns the largest reported pump power (W); 0 for an empty run.
func (m *Metrics) PeakPower() float64 {
	if len(m.PowerSamples) == 0 {
		return 0
	}
	return floats.Max(m.PowerSamples)
}

// PeakHeadLoss returns the largest friction head loss seen (m); 0 for an empty run.
func (m *Metrics) PeakHeadLoss() float64 {
	if len(m.HeadLossSamples) == 0 {
		return 0
	}
	return floats.Max(m.HeadLossSamples)
}

// FillFraction returns FinalLevel / TankHeight.
func (m *Metrics) FillFraction() float64 {
	if m.TankHeight == 0 {
		return 0
	}
	return m.FinalLevel / m.TankHeight
}

// MetricsOutput is the JSON form of Metrics written by SaveResults.
type MetricsOutput struct {
	Ticks         int     `json:"ticks"`
	FlowingTicks  int     `json:"flowing_ticks"`
	NoFlowTicks   int     `json:"no_flow_ticks"`
	OverflowTicks int     `json:"overflow_ticks"`
	FinalLevel    float64 `json:"final_level_m"`
	FillFraction  float64 `json:"fill_fraction"`
	VolumePumped  float64 `json:"volume_pumped_m3"`
	Energy        float64 `json:"energy_j"`
	MeanPower     float64 `json:"mean_power_w"`
	PeakPower     float64 `json:"peak_power_w"`
	PeakHeadLoss  float64 `json:"peak_head_loss_m"`
}

// Output builds the serializable summary.
func (m *Metrics) Output() MetricsOutput {
	return MetricsOutput{
		Ticks:         m.Ticks,
		FlowingTicks:  m.FlowingTicks,
		NoFlowTicks:   m.NoFlowTicks,
		OverflowTicks: m.OverflowTicks,
		FinalLevel:    m.FinalLevel,
		FillFraction:  m.FillFraction(),
		VolumePumped:  m.VolumePumped,
		Energy:        m.Energy(),
		MeanPower:     m.MeanPower(),
		PeakPower:     m.PeakPower(),
		PeakHeadLoss:  m.PeakHeadLoss(),
	}
}

// SaveResults logs the run summary and, when outputFilePath is non-empty,
// writes it there as indented JSON.
func (m *Metrics) SaveResults(outputFilePath string) error {
	out := m.Output()
	logrus.Infof("Run summary: ticks=%d flowing=%d no_flow=%d overflow=%d level=%.4fm volume=%.4fm³ energy=%.2fJ",
		out.Ticks, out.FlowingTicks, out.NoFlowTicks, out.OverflowTicks, out.FinalLevel, out.VolumePumped, out.Energy)

	if outputFilePath == "" {
		return nil
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling metrics: %w", err)
	}
	if err := os.WriteFile(outputFilePath, data, 0644); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", outputFilePath, err)
	}
	logrus.Infof("Metrics written to: %s", outputFilePath)
	return nil
}
