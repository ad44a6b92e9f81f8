package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derbysim/derbysim/sim/internal/testutil"
	"github.com/derbysim/derbysim/sim/playbyplay"
	"github.com/derbysim/derbysim/sim/trace"
)

// startedJam ticks a scripted match into its first jam and returns the home
// jammer for direct manipulation.
func startedJam(t *testing.T, engine, codes *testutil.ScriptedStream) (*Match, *JamSkater) {
	t.Helper()
	m := newScriptedMatch(t, engine, codes)
	m.Tick()
	jam, ok := m.State().(JamInProgress)
	require.True(t, ok)
	i := firstWith(jam.Home, Jammer)
	require.GreaterOrEqual(t, i, 0)
	return m, &jam.Home[i]
}

func TestTickOnTrack_JammerWrapsAndOpensTrip(t *testing.T) {
	// GIVEN a jammer at the start position outside the pack
	m, jammer := startedJam(t, &testutil.ScriptedStream{}, nil)
	require.Equal(t, OnTrack{Location: 95}, jammer.Activity)

	// WHEN it skates past the end of the loop
	m.tickSkater(jammer)

	// THEN it wraps to 0 and a second trip is open
	assert.Equal(t, OnTrack{Location: 0}, jammer.Activity)
	assert.Len(t, m.Record.CurrentJam().Home.Trips, 2)
}

func TestTickOnTrack_PackExit_ScoresAndAwardsLead(t *testing.T) {
	engine := &testutil.ScriptedStream{}
	m, jammer := startedJam(t, engine, nil)
	m.tickSkater(jammer) // wrap, second trip open

	// GIVEN the jammer just behind the pack exit
	jammer.Activity = OnTrack{Location: 18}
	engine.Floats = []float64{3}

	// WHEN it walks out of the pack
	m.tickSkater(jammer)

	// THEN the pass scores, lead is awarded and eligibility is spent
	assert.Equal(t, OnTrack{Location: 21}, jammer.Activity)
	tj := m.Record.CurrentJam().Home
	assert.Equal(t, 4, tj.CurrentTrip().Score)
	assert.True(t, tj.Lead)
	assert.True(t, jammer.IsLead)
	assert.False(t, jammer.CanReceiveLead)
	assert.False(t, m.jam.leadOpen)
	assert.Equal(t, playbyplay.Home, m.jam.leadSide)
	assert.Len(t, m.Trace.Filter(trace.KindLead), 1)
}

func TestTickOnTrack_InitialTripNeverScores(t *testing.T) {
	engine := &testutil.ScriptedStream{Floats: []float64{25}}
	m, jammer := startedJam(t, engine, nil)

	// GIVEN a jammer still on the jam's initial trip
	jammer.Activity = OnTrack{Location: 0}

	// WHEN it exits the pack
	m.tickSkater(jammer)

	// THEN the trip closes with no points
	trips := m.Record.CurrentJam().Home.Trips
	require.Len(t, trips, 1)
	assert.Equal(t, 0, trips[0].Score)
	assert.True(t, m.jam.trips[playbyplay.Home].closed)
}

func TestTickOnTrack_PackExit_ClosedTripNotRescored(t *testing.T) {
	engine := &testutil.ScriptedStream{}
	m, jammer := startedJam(t, engine, nil)
	m.tickSkater(jammer) // wrap, second trip open

	// GIVEN a pass already scored on the current trip
	jammer.Activity = OnTrack{Location: 18}
	engine.Floats = []float64{3}
	m.tickSkater(jammer)
	trip := m.Record.CurrentJam().Home.CurrentTrip()
	duration := trip.Duration
	require.Equal(t, 4, trip.Score)

	// WHEN the jammer comes back from the box behind the pack and exits again
	m.tick += 40 * TickDuration
	jammer.Activity = OnTrack{Location: 0}
	engine.Floats = []float64{25}
	m.tickSkater(jammer)

	// THEN the closed trip keeps its duration and score and no trip is added
	trips := m.Record.CurrentJam().Home.Trips
	require.Len(t, trips, 2)
	assert.Equal(t, duration, trips[1].Duration)
	assert.Equal(t, 4, trips[1].Score)
	assert.Equal(t, OnTrack{Location: 25}, jammer.Activity)
}

func TestTickOnTrack_PackExit_NoPass(t *testing.T) {
	// GIVEN the 1/50 no-pass roll succeeds
	engine := &testutil.ScriptedStream{}
	m, jammer := startedJam(t, engine, nil)
	jammer.Activity = OnTrack{Location: 19}
	engine.Floats = []float64{2}
	engine.Bools = []bool{false, true}

	m.tickSkater(jammer)

	// THEN lead stays open but this jammer can no longer earn it
	assert.False(t, jammer.IsLead)
	assert.False(t, jammer.CanReceiveLead)
	assert.True(t, m.jam.leadOpen)
	assert.False(t, m.Record.CurrentJam().Home.Lead)
}

func TestTickOnTrack_LeadJammerCallsJam(t *testing.T) {
	engine := &testutil.ScriptedStream{}
	m, jammer := startedJam(t, engine, nil)
	jammer.IsLead = true
	jammer.CanReceiveLead = false
	m.jam.leadOpen = false
	m.jam.leadSide = playbyplay.Home

	// GIVEN the lead jammer exits the pack and the call roll succeeds
	jammer.Activity = OnTrack{Location: 19}
	engine.Floats = []float64{2}
	engine.Bools = []bool{false, true}

	m.tickSkater(jammer)

	assert.True(t, m.jam.called)
	assert.Equal(t, playbyplay.Home, m.jam.callingSide)
	assert.Len(t, m.Trace.Filter(trace.KindCallOff), 1)
}

func TestTickOnTrack_Blocker_PenaltyRolledTwice(t *testing.T) {
	// A non-jammer rolls the shared check and its own check every tick.
	engine := &testutil.ScriptedStream{}
	m, _ := startedJam(t, engine, nil)
	jam := m.State().(JamInProgress)
	blocker := &jam.Home[firstWith(jam.Home, Blocker)]
	before := engine.Draws

	m.tickSkater(blocker)

	assert.Equal(t, 2, engine.Draws-before)
	assert.Equal(t, OnTrack{Location: 0}, blocker.Activity)
}

func TestGiveSkaterPenalty_LeadJammerLosesLead(t *testing.T) {
	// GIVEN a lead jammer whose first penalty roll succeeds
	engine := &testutil.ScriptedStream{}
	codes := &testutil.ScriptedStream{Ints: []int{1}}
	m, jammer := startedJam(t, engine, codes)
	jammer.IsLead = true
	m.Record.SetLead(playbyplay.Home, true)
	m.jam.leadSide = playbyplay.Home
	engine.Bools = []bool{true}
	engine.Floats = []float64{40}

	// WHEN it ticks
	m.tickSkater(jammer)

	// THEN it heads to the box and the team's lead is cleared
	assert.Equal(t, SkatingToBox{DistanceRemaining: 40, PenaltiesToSit: 1}, jammer.Activity)
	assert.False(t, jammer.IsLead)
	assert.False(t, m.Record.CurrentJam().Home.Lead)
	assert.Empty(t, m.jam.leadSide)
	assert.True(t, m.PenaltyBox().Contains(jammer.ID()))

	boxed, _ := m.PenaltyBox().Get(jammer.ID())
	assert.Equal(t, jammer.Activity, boxed.Activity)

	gs, _ := m.Home.Skater(jammer.ID())
	require.Len(t, gs.Penalties, 1)
	assert.Equal(t, "B", gs.Penalties[0].Code)
	assert.Equal(t, m.CurrentTick(), gs.Penalties[0].Tick)
}

func TestTickSkatingToBox(t *testing.T) {
	tests := []struct {
		name   string
		start  SkatingToBox
		floats []float64
		bools  []bool
		want   Activity
		extra  int // penalties recorded by escalation
	}{
		{"still skating", SkatingToBox{50, 1}, []float64{0}, nil, SkatingToBox{34, 1}, 0},
		{"escalates to two", SkatingToBox{50, 1}, []float64{0}, []bool{true}, SkatingToBox{34, 2}, 1},
		{"two owed never escalates again", SkatingToBox{50, 2}, []float64{0}, []bool{true}, SkatingToBox{34, 2}, 0},
		{"arrives", SkatingToBox{10, 2}, []float64{0}, nil, SatInBox{StartTick: 1000, PenaltyCount: 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &testutil.ScriptedStream{}
			m, jammer := startedJam(t, engine, nil)
			jammer.Activity = tt.start
			m.box.Add(*jammer)
			engine.Floats = tt.floats
			engine.Bools = tt.bools

			m.tickSkater(jammer)

			assert.Equal(t, tt.want, jammer.Activity)
			gs, _ := m.Home.Skater(jammer.ID())
			assert.Len(t, gs.Penalties, tt.extra)
			boxed, ok := m.PenaltyBox().Get(jammer.ID())
			require.True(t, ok)
			assert.Equal(t, tt.want, boxed.Activity)
		})
	}
}

func TestTickSatInBox_ReleaseBoundary(t *testing.T) {
	tests := []struct {
		name     string
		served   int64
		count    int
		released bool
	}{
		{"one short of one penalty", 29000, 1, false},
		{"exactly one penalty", 30000, 1, true},
		{"one penalty served of two", 30000, 2, false},
		{"exactly two penalties", 60000, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &testutil.ScriptedStream{}
			m, jammer := startedJam(t, engine, nil)
			jammer.Activity = SatInBox{StartTick: m.CurrentTick() - tt.served, PenaltyCount: tt.count}
			m.box.Add(*jammer)
			engine.Floats = []float64{12}

			m.tickSkater(jammer)

			if tt.released {
				assert.Equal(t, ReturningFromBox{DistanceRemaining: 12}, jammer.Activity)
				assert.False(t, m.PenaltyBox().Contains(jammer.ID()))
				releases := m.Trace.Filter(trace.KindBoxRelease)
				require.Len(t, releases, 1)
				assert.Equal(t, tt.served, releases[0].Duration)
			} else {
				assert.IsType(t, SatInBox{}, jammer.Activity)
				assert.True(t, m.PenaltyBox().Contains(jammer.ID()))
			}
		})
	}
}

func TestTickReturningFromBox(t *testing.T) {
	t.Run("still returning", func(t *testing.T) {
		engine := &testutil.ScriptedStream{Floats: []float64{0}}
		m, jammer := startedJam(t, &testutil.ScriptedStream{}, nil)
		m.rng = engine
		jammer.Activity = ReturningFromBox{DistanceRemaining: 40}

		m.tickSkater(jammer)

		assert.Equal(t, ReturningFromBox{DistanceRemaining: 24}, jammer.Activity)
	})

	t.Run("re-enters at position zero", func(t *testing.T) {
		engine := &testutil.ScriptedStream{Floats: []float64{0}}
		m, jammer := startedJam(t, &testutil.ScriptedStream{}, nil)
		m.rng = engine
		jammer.Activity = ReturningFromBox{DistanceRemaining: 5}

		m.tickSkater(jammer)

		assert.Equal(t, OnTrack{Location: 0}, jammer.Activity)
		assert.False(t, m.PenaltyBox().Contains(jammer.ID()))
	})

	t.Run("cut sends skater back", func(t *testing.T) {
		engine := &testutil.ScriptedStream{Floats: []float64{0, 30}, Bools: []bool{true}}
		m, jammer := startedJam(t, &testutil.ScriptedStream{}, nil)
		m.rng = engine
		jammer.Activity = ReturningFromBox{DistanceRemaining: 5}

		m.tickSkater(jammer)

		assert.Equal(t, SkatingToBox{DistanceRemaining: 30, PenaltiesToSit: 1}, jammer.Activity)
		assert.True(t, m.PenaltyBox().Contains(jammer.ID()))
		gs, _ := m.Home.Skater(jammer.ID())
		require.Len(t, gs.Penalties, 1)
		assert.Equal(t, CutPenaltyCode, gs.Penalties[0].Code)
	})
}

func TestTickHeldInBox_ResumesWithoutDraws(t *testing.T) {
	engine := &testutil.ScriptedStream{}
	m, jammer := startedJam(t, engine, nil)
	jammer.Activity = HeldInBox{TicksExpired: 5000, PenaltyCount: 2}
	m.box.Add(*jammer)
	before := engine.Draws

	m.tickSkater(jammer)

	assert.Equal(t, SatInBox{StartTick: m.CurrentTick() - 5000, PenaltyCount: 2}, jammer.Activity)
	assert.Equal(t, before, engine.Draws)
	boxed, _ := m.PenaltyBox().Get(jammer.ID())
	assert.Equal(t, jammer.Activity, boxed.Activity)
}

func TestDrawPenaltyCode(t *testing.T) {
	t.Run("without a code stream", func(t *testing.T) {
		m := newScriptedMatch(t, &testutil.ScriptedStream{}, nil)
		assert.Equal(t, UnknownPenaltyCode, m.drawPenaltyCode())
	})

	t.Run("never draws the cut code", func(t *testing.T) {
		codes := &testutil.ScriptedStream{Ints: []int{0, 12, 99}}
		m := newScriptedMatch(t, &testutil.ScriptedStream{}, codes)

		assert.Equal(t, "A", m.drawPenaltyCode())
		assert.Equal(t, "P", m.drawPenaltyCode())
		// Out-of-range scripts clamp to the last drawable code.
		assert.Equal(t, "P", m.drawPenaltyCode())
	})
}
