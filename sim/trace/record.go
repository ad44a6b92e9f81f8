// Package trace provides event-trace recording for bout analysis.
// It has no dependencies on sim/ and stores pure data types.
package trace

// EventKind names the engine decision an EventRecord captures.
type EventKind string

const (
	KindJamStart   EventKind = "jam_start"
	KindJamEnd     EventKind = "jam_end"
	KindPenalty    EventKind = "penalty"
	KindBoxRelease EventKind = "box_release"
	KindLead       EventKind = "lead"
	KindCallOff    EventKind = "call_off"
	KindPeriodEnd  EventKind = "period_end"
)

// EventRecord captures a single engine decision.
type EventRecord struct {
	Tick     int64
	Kind     EventKind
	Jam      int    // 1-based jam number within the bout (0 outside jams)
	Team     string // "home", "away", or empty for bout-level events
	SkaterID string // empty for jam/period events
	Skater   string // display name
	Detail   string // penalty code, "called"/"expired", sit duration, ...
	Duration int64  // ms; box sit length for releases, jam length for jam ends
}
