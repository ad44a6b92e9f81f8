package sim

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/derbysim/derbysim/sim/internal/testutil"
	"github.com/derbysim/derbysim/sim/playbyplay"
	"github.com/derbysim/derbysim/sim/trace"
)

// testTeam builds a team of n skaters with stable identities derived from
// name. Favored positions cycle jammer, pivot, blocker; nobody commits
// penalties unless penaltyChance says otherwise.
func testTeam(name string, n int, penaltyChance float64) Team {
	team := Team{
		ID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)),
		Name:  name,
		Color: "Black",
	}
	for i := 0; i < n; i++ {
		team.Roster = append(team.Roster, Skater{
			ID:              uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s/%d", name, i))),
			Name:            fmt.Sprintf("%s Skater %d", name, i),
			Number:          fmt.Sprintf("%d", 10+i),
			FavoredPosition: Position(i % 3),
			BaseSpeed:       16,
			PenaltyChance:   penaltyChance,
		})
	}
	return team
}

// newTestMatch builds a match between two ten-skater teams driven by a
// seeded engine stream, with tracing on.
func newTestMatch(t *testing.T, seed int64, penaltyChance float64) *Match {
	t.Helper()
	return newTestMatchWith(t, seed, testTeam("Home", 10, penaltyChance), testTeam("Away", 10, penaltyChance))
}

func newTestMatchWith(t *testing.T, seed int64, home, away Team) *Match {
	t.Helper()
	m, err := NewMatch(MatchSetup{
		Config:       DefaultConfig(),
		Home:         home,
		Away:         away,
		Engine:       NewRandStream(rand.New(rand.NewSource(seed))),
		PenaltyCodes: NewRandStream(rand.New(rand.NewSource(seed + 1))),
		Record:       playbyplay.NewRecord(rand.New(rand.NewSource(seed + 2))),
		Trace:        trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelEvents}),
	})
	require.NoError(t, err)
	return m
}

// tickUntil ticks m until done reports true or the bout finishes.
func tickUntil(m *Match, done func(*Match) bool) {
	for !m.Finished() && !done(m) {
		m.Tick()
	}
}

func inJam(m *Match) bool {
	_, ok := m.State().(JamInProgress)
	return ok
}

// firstWith returns the index of the first skater in position pos.
func firstWith(skaters []JamSkater, pos Position) int {
	for i, s := range skaters {
		if s.Position == pos {
			return i
		}
	}
	return -1
}

// newScriptedMatch builds a match whose engine and code streams are scripted.
// Unscripted draws fall back to an uneventful bout: no penalties, no lead
// changes, stamps on the tick boundary and first-candidate picks.
func newScriptedMatch(t *testing.T, engine, codes *testutil.ScriptedStream) *Match {
	t.Helper()
	setup := MatchSetup{
		Config: DefaultConfig(),
		Home:   testTeam("Home", 10, 0),
		Away:   testTeam("Away", 10, 0),
		Engine: engine,
		Record: playbyplay.NewRecord(rand.New(rand.NewSource(1))),
		Trace:  trace.NewSimulationTrace(trace.TraceConfig{Level: trace.TraceLevelEvents}),
	}
	if codes != nil {
		setup.PenaltyCodes = codes
	}
	m, err := NewMatch(setup)
	require.NoError(t, err)
	return m
}
