package sim

// Activity is what a JamSkater is doing during a tick. It is a closed set:
// the unexported marker keeps new variants inside this package so every type
// switch over Activity can be kept exhaustive.
type Activity interface {
	activity()
}

// OnTrack is a skater skating the track loop.
type OnTrack struct {
	Location float64
}

// SkatingToBox is a penalized skater on the way to the penalty box.
type SkatingToBox struct {
	DistanceRemaining float64
	PenaltiesToSit    int
}

// SatInBox is a skater serving time.
type SatInBox struct {
	StartTick    int64
	PenaltyCount int
}

// ReturningFromBox is a released skater re-entering play.
type ReturningFromBox struct {
	DistanceRemaining float64
}

// HeldInBox bridges a sit across a jam boundary: the jam ended while the
// skater still owed time.
type HeldInBox struct {
	TicksExpired int64
	PenaltyCount int
}

func (OnTrack) activity()          {}
func (SkatingToBox) activity()     {}
func (SatInBox) activity()         {}
func (ReturningFromBox) activity() {}
func (HeldInBox) activity()        {}

// InBox reports whether the activity places the skater in the penalty box set.
func InBox(a Activity) bool {
	switch a.(type) {
	case SkatingToBox, SatInBox, HeldInBox:
		return true
	default:
		return false
	}
}

// ActivityName returns a short label for logs and tests.
func ActivityName(a Activity) string {
	switch a.(type) {
	case OnTrack:
		return "on_track"
	case SkatingToBox:
		return "skating_to_box"
	case SatInBox:
		return "sat_in_box"
	case ReturningFromBox:
		return "returning_from_box"
	case HeldInBox:
		return "held_in_box"
	default:
		return "unknown"
	}
}
