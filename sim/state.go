package sim

import "github.com/derbysim/derbysim/sim/playbyplay"

// MatchState is the top-level state of a bout. Exactly one variant is active
// at any tick; the unexported marker closes the set to this package.
type MatchState interface {
	matchState()
	// Name returns a stable label for logs and transition histories.
	Name() string
}

// PreGame is the state before the first jam.
type PreGame struct{}

// JamInProgress is a running jam with both teams' on-track skaters.
type JamInProgress struct {
	StartTick int64
	Home      []JamSkater
	Away      []JamSkater
	// LeadJammerTeam is empty while no jammer holds lead.
	LeadJammerTeam playbyplay.Side
}

// Skaters returns the on-track skaters for side.
func (j JamInProgress) Skaters(side playbyplay.Side) []JamSkater {
	if side == playbyplay.Away {
		return j.Away
	}
	return j.Home
}

// LineupInProgress is the gap between jams.
type LineupInProgress struct {
	StartTick int64
}

// TimeoutKind distinguishes who stopped play.
type TimeoutKind string

const (
	TimeoutOfficial TimeoutKind = "official"
	TimeoutTeam     TimeoutKind = "team"
	TimeoutReview   TimeoutKind = "review"
)

// TimeoutInProgress is modeled for completeness; the engine never enters it.
type TimeoutInProgress struct {
	StartTick int64
	Kind      TimeoutKind
}

// IntervalInProgress follows a period whose clock has run out.
type IntervalInProgress struct {
	StartTick int64
}

// PostGame is terminal.
type PostGame struct {
	StartTick int64
}

func (PreGame) matchState()            {}
func (JamInProgress) matchState()      {}
func (LineupInProgress) matchState()   {}
func (TimeoutInProgress) matchState()  {}
func (IntervalInProgress) matchState() {}
func (PostGame) matchState()           {}

func (PreGame) Name() string            { return "pre_game" }
func (JamInProgress) Name() string      { return "jam" }
func (LineupInProgress) Name() string   { return "lineup" }
func (TimeoutInProgress) Name() string  { return "timeout" }
func (IntervalInProgress) Name() string { return "interval" }
func (PostGame) Name() string           { return "post_game" }

// Transition records a change of state variant.
type Transition struct {
	Tick int64
	From string
	To   string
}
