package trace

// TraceLevel controls the verbosity of tick tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTicks captures one record per tick.
	TraceLevelTicks TraceLevel = "ticks"
	// TraceLevelNotices captures only ticks that raised a notice.
	TraceLevelNotices TraceLevel = "notices"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:    true,
	TraceLevelTicks:   true,
	TraceLevelNotices: true,
	"":                true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects tick records during a simulation.
type SimulationTrace struct {
	Config TraceConfig  `yaml:"-"`
	Ticks  []TickRecord `yaml:"ticks"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Ticks:  make([]TickRecord, 0),
	}
}

// RecordTick appends a tick record, subject to the trace level.
func (st *SimulationTrace) RecordTick(record TickRecord) {
	switch st.Config.Level {
	case TraceLevelTicks:
		st.Ticks = append(st.Ticks, record)
	case TraceLevelNotices:
		if len(record.Notices) > 0 {
			st.Ticks = append(st.Ticks, record)
		}
	}
}
