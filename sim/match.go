// sim/match.go
package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/derbysim/derbysim/sim/playbyplay"
	"github.com/derbysim/derbysim/sim/trace"
)

// MatchSetup groups everything a Match is built from.
type MatchSetup struct {
	Config    Config
	Home      Team
	Away      Team
	Officials []Official
	// Engine is consumed by every transition; its draw order is part of the model.
	Engine Stream
	// PenaltyCodes picks infraction codes. Optional: nil records "?" codes.
	PenaltyCodes Stream
	// Record receives the play-by-play. Optional: nil creates a fresh record.
	Record *playbyplay.Record
	// Trace receives engine decisions. Optional.
	Trace *trace.SimulationTrace
}

// jamContext is the jam-scoped state the activity engine reads and writes.
type jamContext struct {
	number      int
	leadOpen    bool
	leadSide    playbyplay.Side
	called      bool
	callingSide playbyplay.Side
	trips       map[playbyplay.Side]*tripState
}

// tripState mirrors the open trip of each team so the engine never reads the sink.
type tripState struct {
	count  int
	start  int64
	closed bool
}

// Match is the root of a bout: it owns both rosters, the crew, the random
// streams, the state machine, the clocks and the persistent penalty box.
type Match struct {
	Config    Config
	Home      *GameTeam
	Away      *GameTeam
	Officials []Official
	Record    *playbyplay.Record
	Trace     *trace.SimulationTrace

	// OnTransition, when set, is called each time the state variant changes.
	OnTransition func(Transition)

	rng   Stream
	codes Stream

	state       MatchState
	tick        int64
	periodClock int64
	periodOpen  bool
	periodStart int64
	box         *PenaltyBox
	jam         jamContext
	jamCount    int
}

// NewMatch validates the rosters and configuration and returns a match in PreGame.
func NewMatch(setup MatchSetup) (*Match, error) {
	if err := setup.Config.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if setup.Engine == nil {
		return nil, errors.New("engine stream is required")
	}
	seen := make(map[uuid.UUID]string)
	for _, team := range []Team{setup.Home, setup.Away} {
		if err := validateRoster(team, seen); err != nil {
			return nil, err
		}
	}

	record := setup.Record
	if record == nil {
		record = playbyplay.NewRecord(nil)
	}

	m := &Match{
		Config:    setup.Config,
		Home:      newGameTeam(setup.Home, playbyplay.Home),
		Away:      newGameTeam(setup.Away, playbyplay.Away),
		Officials: setup.Officials,
		Record:    record,
		Trace:     setup.Trace,
		rng:       setup.Engine,
		codes:     setup.PenaltyCodes,
		state:     PreGame{},
		box:       NewPenaltyBox(),
	}

	record.HomeTeam = teamInfo(setup.Home)
	record.AwayTeam = teamInfo(setup.Away)
	for _, o := range setup.Officials {
		record.AddOfficial(playbyplay.Official{ID: o.ID, Name: o.Name, Role: string(o.Role), IsHead: o.IsHead})
	}
	return m, nil
}

func validateRoster(team Team, seen map[uuid.UUID]string) error {
	if len(team.Roster) < MinFieldedSkaters {
		return fmt.Errorf("team %q has %d skaters, need at least %d to field a lineup",
			team.Name, len(team.Roster), MinFieldedSkaters)
	}
	for _, s := range team.Roster {
		if other, dup := seen[s.ID]; dup {
			return fmt.Errorf("skater %s (%q) appears on both %q and %q", s.ID, s.Name, other, team.Name)
		}
		seen[s.ID] = team.Name
		if s.PenaltyChance < 0 || s.PenaltyChance > 1 {
			return fmt.Errorf("skater %q penalty chance %v outside [0, 1]", s.Name, s.PenaltyChance)
		}
		if s.BaseSpeed <= 0 {
			return fmt.Errorf("skater %q base speed must be positive, got %v", s.Name, s.BaseSpeed)
		}
	}
	return nil
}

func teamInfo(t Team) playbyplay.TeamInfo {
	info := playbyplay.TeamInfo{ID: t.ID, Name: t.Name, Color: t.Color}
	for _, s := range t.Roster {
		info.Skaters = append(info.Skaters, playbyplay.FieldingSkater{SkaterID: s.ID, Name: s.Name, Number: s.Number})
	}
	return info
}

// State returns the active state.
func (m *Match) State() MatchState { return m.state }

// CurrentTick returns simulated time in ms.
func (m *Match) CurrentTick() int64 { return m.tick }

// PeriodClock returns the time left in the current period, in ms.
func (m *Match) PeriodClock() int64 { return m.periodClock }

// PenaltyBox exposes the persistent box for inspection.
func (m *Match) PenaltyBox() *PenaltyBox { return m.box }

// JamCount returns the number of jams started so far.
func (m *Match) JamCount() int { return m.jamCount }

// Team returns the team playing on side.
func (m *Match) Team(side playbyplay.Side) *GameTeam {
	if side == playbyplay.Away {
		return m.Away
	}
	return m.Home
}

// Finished reports whether the bout has reached PostGame.
func (m *Match) Finished() bool {
	_, done := m.state.(PostGame)
	return done
}

// Run ticks until PostGame. It returns ctx.Err() if the context is cancelled first.
func (m *Match) Run(ctx context.Context) error {
	for !m.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.Tick()
	}
	logrus.Infof("[tick %07d] Bout ended after %d jams", m.tick, m.jamCount)
	return nil
}

// Tick advances the bout by one TickDuration.
func (m *Match) Tick() {
	if m.Finished() {
		return
	}
	m.tick += TickDuration

	var next MatchState
	switch s := m.state.(type) {
	case PreGame:
		next = m.startJam()
	case JamInProgress:
		next = m.tickJam(s)
	case LineupInProgress:
		next = m.tickLineup(s)
	case TimeoutInProgress, IntervalInProgress:
		// No resumption logic exists for timeouts or intervals.
		next = m.endGame()
	case PostGame:
		next = s
	}

	if next.Name() != m.state.Name() && m.OnTransition != nil {
		m.OnTransition(Transition{Tick: m.tick, From: m.state.Name(), To: next.Name()})
	}
	m.state = next
}

func (m *Match) tickLineup(lineup LineupInProgress) MatchState {
	m.decrementPeriodClock()
	if m.periodClock == 0 {
		return m.startInterval(m.stampTick())
	}
	if m.tick-lineup.StartTick >= m.Config.LineupDuration {
		return m.startJam()
	}
	return lineup
}

func (m *Match) startInterval(start int64) MatchState {
	m.Record.ClosePeriod(start - m.periodStart)
	m.periodOpen = false
	m.Trace.Record(trace.EventRecord{
		Tick:     start,
		Kind:     trace.KindPeriodEnd,
		Duration: start - m.periodStart,
	})
	logrus.Infof("[tick %07d] Period ended", m.tick)
	return IntervalInProgress{StartTick: start}
}

func (m *Match) endGame() MatchState {
	return PostGame{StartTick: m.tick}
}

func (m *Match) decrementPeriodClock() {
	m.periodClock = max(m.periodClock-TickDuration, 0)
}

// stampTick places an event somewhere inside the current tick.
func (m *Match) stampTick() int64 {
	return m.tick - int64(m.rng.IntN(int(TickDuration)))
}
