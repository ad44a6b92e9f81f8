package bout

import (
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derbysim/derbysim/sim"
	"github.com/derbysim/derbysim/sim/trace"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	}
	os.Exit(m.Run())
}

func TestNew_SameSeed_IdenticalBout(t *testing.T) {
	// GIVEN two bouts assembled from the same seed
	opts := Options{Seed: 2024, Config: sim.DefaultConfig(), TraceLevel: trace.TraceLevelEvents}
	a, err := New(opts)
	require.NoError(t, err)
	b, err := New(opts)
	require.NoError(t, err)

	// THEN rosters, crew and record identity match before play
	assert.Equal(t, a.Home.Details, b.Home.Details)
	assert.Equal(t, a.Away.Details, b.Away.Details)
	assert.Equal(t, a.Officials, b.Officials)
	assert.Equal(t, a.Record.ID, b.Record.ID)

	// AND after play the record and trace match
	require.NoError(t, a.Run(context.Background()))
	require.NoError(t, b.Run(context.Background()))
	assert.Equal(t, a.Record.Periods, b.Record.Periods)
	assert.Equal(t, a.Trace.Events, b.Trace.Events)
}

func TestNew_DifferentSeeds_DifferentRosters(t *testing.T) {
	a, err := New(Options{Seed: 1, Config: sim.DefaultConfig()})
	require.NoError(t, err)
	b, err := New(Options{Seed: 2, Config: sim.DefaultConfig()})
	require.NoError(t, err)

	assert.NotEqual(t, a.Home.Details.ID, b.Home.Details.ID)
}

func TestNew_TraceLevel(t *testing.T) {
	none, err := New(Options{Seed: 1, Config: sim.DefaultConfig(), TraceLevel: trace.TraceLevelNone})
	require.NoError(t, err)
	assert.Nil(t, none.Trace)

	events, err := New(Options{Seed: 1, Config: sim.DefaultConfig(), TraceLevel: trace.TraceLevelEvents})
	require.NoError(t, err)
	require.NotNil(t, events.Trace)
	assert.True(t, events.Trace.Enabled())

	_, err = New(Options{Seed: 1, Config: sim.DefaultConfig(), TraceLevel: "verbose"})
	assert.Error(t, err)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.PeriodDuration = -1

	_, err := New(Options{Seed: 1, Config: cfg})

	assert.Error(t, err)
}

func TestNew_FullBout_Completes(t *testing.T) {
	m, err := New(Options{Seed: 99, Config: sim.DefaultConfig(), TraceLevel: trace.TraceLevelEvents})
	require.NoError(t, err)

	require.NoError(t, m.Run(context.Background()))

	assert.True(t, m.Finished())
	summary := trace.Summarize(m.Trace)
	assert.Equal(t, m.JamCount(), summary.Jams)
	assert.Equal(t, summary.Jams, summary.CalledJams+summary.ExpiredJams)
	assert.Len(t, m.Trace.Filter(trace.KindPeriodEnd), 1)
	assert.Len(t, m.Record.Officials, 18)
}
