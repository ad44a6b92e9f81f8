package trace

// TraceLevel controls the verbosity of event tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents captures jam boundaries, penalties, releases, lead and call-off decisions.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	"":               true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects engine decisions during a bout, in tick order.
type SimulationTrace struct {
	Config TraceConfig
	Events []EventRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Events: make([]EventRecord, 0),
	}
}

// Enabled reports whether records should be collected. Safe on a nil trace.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelEvents
}

// Record appends an event record when tracing is enabled.
func (st *SimulationTrace) Record(record EventRecord) {
	if !st.Enabled() {
		return
	}
	st.Events = append(st.Events, record)
}

// Filter returns the records of the given kind, preserving order.
func (st *SimulationTrace) Filter(kind EventKind) []EventRecord {
	if st == nil {
		return nil
	}
	var out []EventRecord
	for _, e := range st.Events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
