package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchState_Names(t *testing.T) {
	tests := []struct {
		state MatchState
		want  string
	}{
		{PreGame{}, "pre_game"},
		{JamInProgress{}, "jam"},
		{LineupInProgress{}, "lineup"},
		{TimeoutInProgress{Kind: TimeoutTeam}, "timeout"},
		{IntervalInProgress{}, "interval"},
		{PostGame{}, "post_game"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.state.Name())
	}
}

func TestMatch_TimeoutAndIntervalEndTheBout(t *testing.T) {
	// Neither state has resumption logic, so the next tick is terminal.
	for _, s := range []MatchState{TimeoutInProgress{Kind: TimeoutOfficial}, IntervalInProgress{}} {
		m := newTestMatch(t, 1, 0)
		m.state = s

		m.Tick()

		assert.True(t, m.Finished(), "from %s", s.Name())
		assert.Equal(t, PostGame{StartTick: TickDuration}, m.State())
	}
}

func TestActivity_InBox(t *testing.T) {
	tests := []struct {
		activity Activity
		inBox    bool
		name     string
	}{
		{OnTrack{}, false, "on_track"},
		{SkatingToBox{}, true, "skating_to_box"},
		{SatInBox{}, true, "sat_in_box"},
		{ReturningFromBox{}, false, "returning_from_box"},
		{HeldInBox{}, true, "held_in_box"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inBox, InBox(tt.activity))
			assert.Equal(t, tt.name, ActivityName(tt.activity))
		})
	}
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "jammer", Jammer.String())
	assert.Equal(t, "pivot", Pivot.String())
	assert.Equal(t, "blocker", Blocker.String())
	assert.Equal(t, "position(7)", Position(7).String())
}
