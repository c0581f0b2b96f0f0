package sim

import "math"

// Pump is a fixed-flow pump. FlowRate and Head are configuration constants over a run;
// Power is recomputed by the integrator on every tick that has flow.
type Pump struct {
	FlowRate float64 // nominal flow rate Q (m³/s)
	Head     float64 // head capability H (m)
	Power    float64 // instantaneous hydraulic power P (W), derived
}

// Pipe is the single supply pipe between pump and tank.
type Pipe struct {
	Length    float64 // L (m)
	Diameter  float64 // D (m)
	Roughness float64 // ε, informational only
	Velocity  float64 // v (m/s), recomputed each step from Q and cross-section
	Density   float64 // fluid density ρ (kg/m³)
}

// Area returns the pipe cross-sectional area π(D/2)².
func (p *Pipe) Area() float64 {
	return math.Pi * math.Pow(p.Diameter/2.0, 2)
}

// Reynolds returns ρvD/μ for the pipe's current velocity.
func (p *Pipe) Reynolds() float64 {
	return p.Density * p.Velocity * p.Diameter / DynamicViscosity
}

// Tank is an open cylindrical holding tank. WaterLevel never exceeds Height.
type Tank struct {
	Height     float64 // H_t (m)
	Radius     float64 // r (m)
	WaterLevel float64 // h (m)
}

// Area returns the tank cross-section π r².
func (t *Tank) Area() float64 {
	return math.Pi * math.Pow(t.Radius, 2)
}

// Volume returns the volume of water currently held (m³).
func (t *Tank) Volume() float64 {
	return t.Area() * t.WaterLevel
}

// IsFull reports whether the water level has reached the tank height.
func (t *Tank) IsFull() bool {
	return t.WaterLevel >= t.Height
}
