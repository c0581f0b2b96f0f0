package sim

// Notice is an in-band message about an abnormal physical regime during a tick.
type Notice string

const (
	// NoticeNoFlow is emitted when the pump head is below the pipe head loss.
	NoticeNoFlow Notice = "Pump cannot overcome the head loss. No flow occurs."
	// NoticeOverflow is emitted when the tank level is clamped at the tank height.
	NoticeOverflow Notice = "Tank is full! Overflow occurs."
)

// StepResult describes what happened during one integrator step.
// The physical records themselves carry the updated state.
type StepResult struct {
	HeadLoss float64    // friction head loss at the pump's flow rate (m)
	Velocity float64    // pipe velocity (m/s)
	Reynolds float64    // pipe Reynolds number
	Regime   FlowRegime // flow regime derived from Reynolds
	Flowing  bool       // true when the pump overcame the head loss
	Inflow   float64    // volume added to the tank this tick (m³), after clamping
	Notices  []Notice   // in emission order
}

// HasNotice reports whether n was raised during the step.
func (r StepResult) HasNotice(n Notice) bool {
	for _, got := range r.Notices {
		if got == n {
			return true
		}
	}
	return false
}

// Step advances the tank by dt seconds.
//
// Flow is all-or-nothing: if the pump head is below the head loss nothing moves
// and the tank level and pump power keep their previous values; otherwise the
// full nominal flow rate enters the tank. The level is clamped at the tank height.
// Only tank.WaterLevel, pump.Power and pipe.Velocity are modified.
func Step(tank *Tank, pump *Pump, pipe *Pipe, dt float64) StepResult {
	headLoss := HeadLoss(pipe, pump.FlowRate)
	re := pipe.Reynolds()
	result := StepResult{
		HeadLoss: headLoss,
		Velocity: pipe.Velocity,
		Reynolds: re,
		Regime:   ClassifyFlow(re),
	}

	if pump.Head < headLoss {
		result.Notices = append(result.Notices, NoticeNoFlow)
		return result
	}
	result.Flowing = true

	before := tank.WaterLevel
	tank.WaterLevel += (pump.FlowRate / tank.Area()) * dt
	if tank.WaterLevel > tank.Height {
		tank.WaterLevel = tank.Height
		result.Notices = append(result.Notices, NoticeOverflow)
	}
	result.Inflow = (tank.WaterLevel - before) * tank.Area()

	pump.Power = PumpPower(pump, pipe)
	return result
}
