package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTicks         int
	FlowingTicks       int
	NoFlowTicks        int
	MaxHeadLoss        float64
	FirstOverflowTick  int            // -1 if the tank never overflowed
	NoticeCounts       map[string]int // notice text → number of ticks raising it
	RegimeDistribution map[string]int // flow regime → tick count
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace, overflowNotice string) *TraceSummary {
	summary := &TraceSummary{
		FirstOverflowTick:  -1,
		NoticeCounts:       make(map[string]int),
		RegimeDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalTicks = len(st.Ticks)
	for _, r := range st.Ticks {
		if r.Flowing {
			summary.FlowingTicks++
		} else {
			summary.NoFlowTicks++
		}
		if r.HeadLoss > summary.MaxHeadLoss {
			summary.MaxHeadLoss = r.HeadLoss
		}
		summary.RegimeDistribution[r.Regime]++
		for _, n := range r.Notices {
			summary.NoticeCounts[n]++
			if n == overflowNotice && summary.FirstOverflowTick < 0 {
				summary.FirstOverflowTick = r.Tick
			}
		}
	}

	return summary
}
