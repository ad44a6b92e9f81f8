package sim

import (
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/derbysim/derbysim/sim/playbyplay"
	"github.com/derbysim/derbysim/sim/trace"
)

// startJam fields both teams and opens the jam and its first trips.
func (m *Match) startJam() MatchState {
	start := m.stampTick()

	if !m.periodOpen {
		m.Record.OpenPeriod(start)
		m.periodOpen = true
		m.periodStart = start
		m.periodClock = m.Config.PeriodDuration
	}

	home := m.fieldTeam(m.Home)
	away := m.fieldTeam(m.Away)

	m.jamCount++
	m.jam = jamContext{
		number:   m.jamCount,
		leadOpen: true,
		trips:    make(map[playbyplay.Side]*tripState, 2),
	}
	m.Record.OpenJam(start, fieldingOf(home), fieldingOf(away))
	for _, side := range playbyplay.Sides {
		m.openTrip(side, start)
	}

	m.Trace.Record(trace.EventRecord{Tick: start, Kind: trace.KindJamStart, Jam: m.jam.number})
	logrus.Infof("[tick %07d] Jam %d started", m.tick, m.jam.number)

	return JamInProgress{
		StartTick: start,
		Home:      home,
		Away:      away,
	}
}

// tickJam advances every on-track skater, or ends the jam on expiry or call.
func (m *Match) tickJam(jam JamInProgress) MatchState {
	expired := m.tick-jam.StartTick >= m.Config.JamDuration
	m.decrementPeriodClock()

	if expired {
		logrus.Debugf("[tick %07d] Jam %d expired", m.tick, m.jam.number)
		return m.endJam(jam, jam.StartTick+m.Config.JamDuration, false)
	}

	next := JamInProgress{
		StartTick: jam.StartTick,
		Home:      slices.Clone(jam.Home),
		Away:      slices.Clone(jam.Away),
	}
	for i := range next.Home {
		m.tickSkater(&next.Home[i])
	}
	for i := range next.Away {
		m.tickSkater(&next.Away[i])
	}
	next.LeadJammerTeam = m.jam.leadSide

	if m.jam.called {
		logrus.Debugf("[tick %07d] Jam %d called by %s", m.tick, m.jam.number, m.jam.callingSide)
		return m.endJam(next, m.stampTick(), true)
	}
	return next
}

// endJam closes the open trips, freezes the penalty box across the boundary
// and chooses between lineup and interval.
func (m *Match) endJam(jam JamInProgress, end int64, called bool) MatchState {
	m.Record.CloseJam(end)
	for _, side := range playbyplay.Sides {
		m.finishTrip(side, end)
	}
	if called {
		m.Record.SetCalledOff(m.jam.callingSide, true)
	}

	onTrack := make(map[uuid.UUID]JamSkater, len(jam.Home)+len(jam.Away))
	for _, s := range slices.Concat(jam.Home, jam.Away) {
		onTrack[s.ID()] = s
	}
	for _, boxed := range m.box.Skaters() {
		current, ok := onTrack[boxed.ID()]
		if !ok {
			continue
		}
		current.Activity = holdAcrossBoundary(current.Activity, end)
		m.box.Update(current)
	}

	if m.Config.TrackRotation {
		for _, s := range slices.Concat(jam.Home, jam.Away) {
			if gs, ok := m.Team(s.Side).Skater(s.ID()); ok {
				gs.LastJamTick = jam.StartTick
			}
		}
	}

	detail := "expired"
	if called {
		detail = "called"
	}
	m.Trace.Record(trace.EventRecord{
		Tick:     end,
		Kind:     trace.KindJamEnd,
		Jam:      m.jam.number,
		Team:     string(m.jam.callingSide),
		Detail:   detail,
		Duration: end - jam.StartTick,
	})
	logrus.Infof("[tick %07d] Jam %d ended (%s) after %d ms", m.tick, m.jam.number, detail, end-jam.StartTick)

	if m.periodClock == 0 {
		return m.startInterval(end)
	}
	return LineupInProgress{StartTick: end}
}

// holdAcrossBoundary converts a box activity into HeldInBox so the sit
// survives into the next jam. Other activities pass through.
func holdAcrossBoundary(a Activity, end int64) Activity {
	switch act := a.(type) {
	case SkatingToBox:
		return HeldInBox{TicksExpired: 0, PenaltyCount: act.PenaltiesToSit}
	case SatInBox:
		return HeldInBox{TicksExpired: max(end-act.StartTick, 0), PenaltyCount: act.PenaltyCount}
	default:
		return a
	}
}

func (m *Match) openTrip(side playbyplay.Side, start int64) {
	ts, ok := m.jam.trips[side]
	if !ok {
		ts = &tripState{}
		m.jam.trips[side] = ts
	}
	ts.count++
	ts.start = start
	ts.closed = false
	m.Record.OpenTrip(side, start)
}

// scorePass closes side's open trip at a pack exit. The initial trip never
// scores, and a trip already closed by an earlier exit is left alone.
func (m *Match) scorePass(side playbyplay.Side, at int64) {
	ts := m.jam.trips[side]
	if ts.closed {
		return
	}
	score := m.Config.PassScore
	if ts.count <= 1 {
		score = 0
	}
	m.Record.CloseTrip(side, max(at-ts.start, 0), score)
	ts.closed = true
}

// finishTrip closes a trip still open at jam end with a partial-pass score.
func (m *Match) finishTrip(side playbyplay.Side, end int64) {
	ts := m.jam.trips[side]
	if ts == nil || ts.closed {
		return
	}
	score := 0
	if ts.count > 1 {
		score = m.rng.IntN(m.Config.PassScore + 1)
	}
	m.Record.CloseTrip(side, max(end-ts.start, 0), score)
	ts.closed = true
}
