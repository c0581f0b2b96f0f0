package sim

// FlowRegime classifies pipe flow by Reynolds number.
type FlowRegime string

const (
	// RegimeStagnant means no flow in the pipe (v = 0).
	RegimeStagnant FlowRegime = "stagnant"
	// RegimeLaminar means Re < LaminarReynoldsLimit.
	RegimeLaminar FlowRegime = "laminar"
	// RegimeTurbulent means Re >= LaminarReynoldsLimit.
	RegimeTurbulent FlowRegime = "turbulent"
)

// ClassifyFlow returns the flow regime for the given Reynolds number.
func ClassifyFlow(re float64) FlowRegime {
	switch {
	case re == 0:
		return RegimeStagnant
	case re < LaminarReynoldsLimit:
		return RegimeLaminar
	default:
		return RegimeTurbulent
	}
}

// FrictionFactor returns the Darcy friction factor for the given Reynolds number:
// 64/Re in the laminar range, the fixed TurbulentFrictionFactor otherwise.
// re must be positive; HeadLoss never calls it for a stagnant pipe.
func FrictionFactor(re float64) float64 {
	if re < LaminarReynoldsLimit {
		return LaminarFrictionCoefficient / re
	}
	return TurbulentFrictionFactor
}

// HeadLoss computes the Darcy–Weisbach friction head loss (m) for flowRate through pipe.
// It sets pipe.Velocity as a side effect. A zero flow yields zero head loss.
func HeadLoss(pipe *Pipe, flowRate float64) float64 {
	pipe.Velocity = flowRate / pipe.Area()
	if pipe.Velocity == 0 {
		return 0
	}
	f := FrictionFactor(pipe.Reynolds())
	return f * (pipe.Length / pipe.Diameter) * pipe.Velocity * pipe.Velocity / (2 * Gravity)
}

// PumpPower returns the ideal hydraulic power ρ·g·Q·H (W) delivered at the configured head.
// It does not consider whether the pump can overcome the pipe losses.
func PumpPower(pump *Pump, pipe *Pipe) float64 {
	return pipe.Density * Gravity * pump.FlowRate * pump.Head
}
