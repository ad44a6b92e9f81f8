package sim

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/derbysim/derbysim/sim/playbyplay"
)

// Position is a skater's role in a jam.
type Position int

const (
	Jammer Position = iota
	Pivot
	Blocker
)

func (p Position) String() string {
	switch p {
	case Jammer:
		return "jammer"
	case Pivot:
		return "pivot"
	case Blocker:
		return "blocker"
	default:
		return fmt.Sprintf("position(%d)", int(p))
	}
}

// Skater is the static description of a rostered skater.
type Skater struct {
	ID              uuid.UUID
	Name            string
	Number          string
	FavoredPosition Position
	BaseSpeed       float64 // track units per tick
	PenaltyChance   float64 // per-roll probability of committing a penalty
}

// Team is a roster as produced by the roster generator.
type Team struct {
	ID     uuid.UUID
	Name   string
	Color  string
	Roster []Skater
}

// OfficialRole is the job an official performs during the bout.
type OfficialRole string

const (
	RolePenaltyLineupTracker OfficialRole = "Penalty Lineup Tracker"
	RolePenaltyWrangler      OfficialRole = "Penalty Wrangler"
	RoleInsideWhiteboard     OfficialRole = "Inside Whiteboard"
	RoleJamTimer             OfficialRole = "Jam Timer"
	RoleScorekeeper          OfficialRole = "Scorekeeper"
	RoleScoreboardOperator   OfficialRole = "Scoreboard Operator"
	RolePenaltyBoxManager    OfficialRole = "Penalty Box Manager"
	RolePenaltyBoxTimer      OfficialRole = "Penalty Box Timer"
	RoleInsidePackReferee    OfficialRole = "Inside Pack Referee"
	RoleOutsidePackReferee   OfficialRole = "Outside Pack Referee"
	RoleJammerReferee        OfficialRole = "Jammer Referee"
)

// IsReferee reports whether the role is a skating referee rather than an NSO.
func (r OfficialRole) IsReferee() bool {
	return r == RoleInsidePackReferee || r == RoleOutsidePackReferee || r == RoleJammerReferee
}

// Official is one member of the officiating crew.
type Official struct {
	ID     uuid.UUID
	Name   string
	Role   OfficialRole
	IsHead bool
}

// Penalty is one infraction on a skater's persistent record.
type Penalty struct {
	Code string
	Tick int64
}

// GameSkater is the persistent per-bout record of a rostered skater. It
// outlives the JamSkater instances created for each jam.
type GameSkater struct {
	Details     Skater
	Penalties   []Penalty
	LastJamTick int64
}

// GameTeam is a team's bout-scoped state.
type GameTeam struct {
	Details                Team
	Side                   playbyplay.Side
	TimeoutsRemaining      int
	HasOfficialReview      bool
	OfficialReviewRetained bool
	Roster                 []*GameSkater

	byID map[uuid.UUID]*GameSkater
}

func newGameTeam(team Team, side playbyplay.Side) *GameTeam {
	gt := &GameTeam{
		Details:           team,
		Side:              side,
		TimeoutsRemaining: 3,
		HasOfficialReview: true,
		Roster:            make([]*GameSkater, 0, len(team.Roster)),
		byID:              make(map[uuid.UUID]*GameSkater, len(team.Roster)),
	}
	for _, s := range team.Roster {
		gs := &GameSkater{Details: s}
		gt.Roster = append(gt.Roster, gs)
		gt.byID[s.ID] = gs
	}
	return gt
}

// Skater looks up a rostered skater by identity.
func (t *GameTeam) Skater(id uuid.UUID) (*GameSkater, bool) {
	gs, ok := t.byID[id]
	return gs, ok
}

// Has reports whether id is on this team's roster.
func (t *GameTeam) Has(id uuid.UUID) bool {
	_, ok := t.byID[id]
	return ok
}

// PenaltyCount sums penalties across the roster.
func (t *GameTeam) PenaltyCount() int {
	n := 0
	for _, s := range t.Roster {
		n += len(s.Penalties)
	}
	return n
}

// JamSkater is the ephemeral record of a skater fielded for one jam.
type JamSkater struct {
	Details        Skater
	Side           playbyplay.Side
	Position       Position
	Activity       Activity
	CanReceiveLead bool
	IsLead         bool
}

// ID is the stable identity key shared with GameSkater and the penalty box.
func (s JamSkater) ID() uuid.UUID {
	return s.Details.ID
}

func (s JamSkater) fieldingEntry() playbyplay.FieldingSkater {
	return playbyplay.FieldingSkater{
		SkaterID: s.Details.ID,
		Name:     s.Details.Name,
		Number:   s.Details.Number,
	}
}

// fieldingOf freezes a lineup into the play-by-play fielding snapshot.
func fieldingOf(skaters []JamSkater) playbyplay.Fielding {
	var f playbyplay.Fielding
	for _, s := range skaters {
		switch s.Position {
		case Jammer:
			f.Jammer = s.fieldingEntry()
		case Pivot:
			entry := s.fieldingEntry()
			f.Pivot = &entry
		case Blocker:
			f.Blockers = append(f.Blockers, s.fieldingEntry())
		}
	}
	return f
}
