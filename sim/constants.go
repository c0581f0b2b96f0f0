package sim

// Physical model constants. These are part of the model, not configuration.
const (
	Gravity          = 9.81   // gravitational acceleration (m/s²)
	DynamicViscosity = 1.0e-3 // dynamic viscosity of water (Pa·s)

	// LaminarReynoldsLimit is the Reynolds number below which flow is laminar.
	LaminarReynoldsLimit = 2000.0
	// LaminarFrictionCoefficient is the numerator of the laminar friction factor 64/Re.
	LaminarFrictionCoefficient = 64.0
	// TurbulentFrictionFactor is the fixed Darcy friction factor used for Re >= 2000.
	// Colebrook–White is not iterated.
	TurbulentFrictionFactor = 0.02
)

// Output stream lines.
const (
	HeaderLine     = "Time(s)   Water Level(m)   Flow Rate(m³/s)   Pump Power(W)"
	SeparatorLine  = "---------------------------------------------------------"
	CompletionLine = "Simulation complete."
	// ObservationFormat is time (2 dp), water level (4 dp), flow rate (4 dp), power (2 dp).
	ObservationFormat = "%.2f       %.4f          %.4f          %.2f"
)
