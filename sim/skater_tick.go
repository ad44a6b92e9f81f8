package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/derbysim/derbysim/sim/trace"
)

// tickSkater advances one skater by one tick and keeps the penalty box
// snapshot in step with the skater's new activity.
func (m *Match) tickSkater(s *JamSkater) {
	var next Activity
	switch act := s.Activity.(type) {
	case OnTrack:
		next = m.tickOnTrack(act, s)
	case SkatingToBox:
		next = m.tickSkatingToBox(act, s)
	case SatInBox:
		next = m.tickSatInBox(act, s)
	case ReturningFromBox:
		next = m.tickReturningFromBox(act, s)
	case HeldInBox:
		next = m.tickHeldInBox(act)
	default:
		next = s.Activity
	}
	s.Activity = next
	if InBox(next) {
		m.box.Update(*s)
	}
}

func (m *Match) tickOnTrack(on OnTrack, s *JamSkater) Activity {
	if m.rng.Bool(s.Details.PenaltyChance) {
		return m.giveSkaterPenalty(s, m.drawPenaltyCode())
	}

	if s.Position != Jammer {
		// Blockers and pivots do not model movement relative to the pack.
		if m.rng.Bool(s.Details.PenaltyChance) {
			return m.giveSkaterPenalty(s, m.drawPenaltyCode())
		}
		return on
	}

	if on.Location < m.Config.PackExitPosition {
		location := on.Location + m.rng.Float64Range(-2.0, s.Details.BaseSpeed/4.0)
		if location >= m.Config.PackExitPosition {
			m.exitPack(s)
		}
		if m.rng.Bool(s.Details.PenaltyChance) {
			return m.giveSkaterPenalty(s, m.drawPenaltyCode())
		}
		return OnTrack{Location: location}
	}

	location := on.Location + s.Details.BaseSpeed
	if location > m.Config.TrackLength {
		location = 0
		m.openTrip(s.Side, m.stampTick())
	}
	return OnTrack{Location: location}
}

// exitPack scores the jammer's pass and settles lead and call-off.
func (m *Match) exitPack(s *JamSkater) {
	m.scorePass(s.Side, m.stampTick())

	if s.IsLead && m.rng.Bool(m.Config.ExitPackCallChance) {
		m.jam.called = true
		m.jam.callingSide = s.Side
		m.Trace.Record(trace.EventRecord{
			Tick:     m.tick,
			Kind:     trace.KindCallOff,
			Jam:      m.jam.number,
			Team:     string(s.Side),
			SkaterID: s.ID().String(),
			Skater:   s.Details.Name,
		})
	}

	if m.jam.leadOpen && s.CanReceiveLead {
		if !m.rng.Bool(m.Config.ExitPackNoPassChance) {
			m.Record.SetLead(s.Side, true)
			m.jam.leadOpen = false
			m.jam.leadSide = s.Side
			s.IsLead = true
			m.Trace.Record(trace.EventRecord{
				Tick:     m.tick,
				Kind:     trace.KindLead,
				Jam:      m.jam.number,
				Team:     string(s.Side),
				SkaterID: s.ID().String(),
				Skater:   s.Details.Name,
			})
			logrus.Debugf("[tick %07d] Lead jammer %s (%s)", m.tick, s.Details.Name, s.Side)
		}
		s.CanReceiveLead = false
	}
}

func (m *Match) tickSkatingToBox(toBox SkatingToBox, s *JamSkater) Activity {
	covered := s.Details.BaseSpeed + m.rng.Float64Range(-1.0, 1.0)
	if toBox.DistanceRemaining > covered {
		owed := toBox.PenaltiesToSit
		if owed == 1 && m.rng.Bool(m.Config.SecondPenaltyChance) {
			owed = 2
			m.recordPenalty(s, m.drawPenaltyCode())
		}
		return SkatingToBox{
			DistanceRemaining: toBox.DistanceRemaining - covered,
			PenaltiesToSit:    owed,
		}
	}
	return SatInBox{
		StartTick:    m.stampTick(),
		PenaltyCount: toBox.PenaltiesToSit,
	}
}

func (m *Match) tickSatInBox(sat SatInBox, s *JamSkater) Activity {
	served := m.tick - sat.StartTick
	if served < m.Config.PenaltySitDuration*int64(sat.PenaltyCount) {
		return sat
	}

	m.box.Remove(s.ID())
	m.Trace.Record(trace.EventRecord{
		Tick:     m.tick,
		Kind:     trace.KindBoxRelease,
		Jam:      m.jam.number,
		Team:     string(s.Side),
		SkaterID: s.ID().String(),
		Skater:   s.Details.Name,
		Duration: served,
	})
	logrus.Debugf("[tick %07d] Releasing %s", m.tick, s.Details.Name)

	return ReturningFromBox{
		DistanceRemaining: m.rng.Float64Range(m.Config.BoxDistanceMin, m.Config.BoxDistanceMax),
	}
}

func (m *Match) tickReturningFromBox(returning ReturningFromBox, s *JamSkater) Activity {
	covered := s.Details.BaseSpeed + m.rng.Float64Range(-1.0, 1.0)
	if returning.DistanceRemaining > covered {
		return ReturningFromBox{DistanceRemaining: returning.DistanceRemaining - covered}
	}
	if m.rng.Bool(m.Config.ReturnCutPenaltyChance) {
		return m.giveSkaterPenalty(s, CutPenaltyCode)
	}
	return OnTrack{Location: 0}
}

// tickHeldInBox resumes a sit carried over from the previous jam.
func (m *Match) tickHeldInBox(held HeldInBox) Activity {
	return SatInBox{
		StartTick:    m.tick - held.TicksExpired,
		PenaltyCount: held.PenaltyCount,
	}
}

// giveSkaterPenalty sends s to the box. A lead jammer loses lead.
func (m *Match) giveSkaterPenalty(s *JamSkater, code string) Activity {
	if s.IsLead {
		m.Record.SetLead(s.Side, false)
		m.jam.leadSide = ""
	}
	s.IsLead = false
	s.CanReceiveLead = false

	m.recordPenalty(s, code)
	m.box.Add(*s)
	logrus.Debugf("[tick %07d] Penalty %s for %s", m.tick, code, s.Details.Name)

	return SkatingToBox{
		DistanceRemaining: m.rng.Float64Range(m.Config.BoxDistanceMin, m.Config.BoxDistanceMax),
		PenaltiesToSit:    1,
	}
}

// recordPenalty appends to the skater's persistent record and the trace.
func (m *Match) recordPenalty(s *JamSkater, code string) {
	if gs, ok := m.Team(s.Side).Skater(s.ID()); ok {
		gs.Penalties = append(gs.Penalties, Penalty{Code: code, Tick: m.tick})
	}
	m.Trace.Record(trace.EventRecord{
		Tick:     m.tick,
		Kind:     trace.KindPenalty,
		Jam:      m.jam.number,
		Team:     string(s.Side),
		SkaterID: s.ID().String(),
		Skater:   s.Details.Name,
		Detail:   code,
	})
}
