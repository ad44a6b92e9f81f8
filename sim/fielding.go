package sim

import (
	"cmp"
	"slices"
)

// preference scores how well a favored position fits the slot being filled.
type preference func(favored Position) int

func jammerPreference(favored Position) int {
	switch favored {
	case Jammer:
		return 2
	case Blocker:
		return 1
	default:
		return 0
	}
}

func pivotPreference(favored Position) int {
	switch favored {
	case Pivot:
		return 2
	case Blocker:
		return 1
	default:
		return 0
	}
}

func blockerPreference(favored Position) int {
	switch favored {
	case Blocker:
		return 2
	case Pivot:
		return 1
	default:
		return 0
	}
}

// fieldTeam chooses the skaters who start the next jam for team.
//
// Skaters still owing box time keep their previous position. The rest of the
// lineup is drawn from the most-rested skaters, sorted by fit for each slot,
// with a uniform pick among the top CandidateWindow candidates.
func (m *Match) fieldTeam(team *GameTeam) []JamSkater {
	onTrack := make([]JamSkater, 0, MinFieldedSkaters)
	for _, boxed := range m.box.Skaters() {
		if !team.Has(boxed.ID()) {
			continue
		}
		boxed.IsLead = false
		if boxed.Position == Jammer {
			boxed.CanReceiveLead = true
		}
		onTrack = append(onTrack, boxed)
	}

	pool := make([]*GameSkater, 0, len(team.Roster))
	for _, gs := range team.Roster {
		if !containsSkater(onTrack, gs) {
			pool = append(pool, gs)
		}
	}
	slices.SortStableFunc(pool, func(a, b *GameSkater) int {
		return cmp.Compare(a.LastJamTick, b.LastJamTick)
	})

	if !hasPosition(onTrack, Jammer) && len(pool) > 0 {
		var jammer *GameSkater
		jammer, pool = m.pickCandidate(pool, jammerPreference)
		onTrack = append(onTrack, m.newJamSkater(team, jammer, Jammer))
	}

	if !hasPosition(onTrack, Pivot) && len(onTrack) < MinFieldedSkaters && len(pool) > 0 {
		var pivot *GameSkater
		pivot, pool = m.pickCandidate(pool, pivotPreference)
		onTrack = append(onTrack, m.newJamSkater(team, pivot, Pivot))
	}

	blockers := sortedByPreference(pool, blockerPreference)
	for len(onTrack) < MinFieldedSkaters && len(blockers) > 0 {
		i := m.rng.IntN(min(m.Config.CandidateWindow, len(blockers)))
		onTrack = append(onTrack, m.newJamSkater(team, blockers[i], Blocker))
		blockers = slices.Delete(blockers, i, i+1)
	}

	return onTrack
}

// pickCandidate draws one skater from the best-fitting candidates and returns
// it with the pool minus that skater (pool order is preserved).
func (m *Match) pickCandidate(pool []*GameSkater, pref preference) (*GameSkater, []*GameSkater) {
	ranked := sortedByPreference(pool, pref)
	chosen := ranked[m.rng.IntN(min(m.Config.CandidateWindow, len(ranked)))]
	rest := slices.DeleteFunc(slices.Clone(pool), func(gs *GameSkater) bool {
		return gs == chosen
	})
	return chosen, rest
}

// sortedByPreference returns a copy of pool ordered by descending fit. The
// sort is stable so the rest-based order breaks ties.
func sortedByPreference(pool []*GameSkater, pref preference) []*GameSkater {
	ranked := slices.Clone(pool)
	slices.SortStableFunc(ranked, func(a, b *GameSkater) int {
		return cmp.Compare(pref(b.Details.FavoredPosition), pref(a.Details.FavoredPosition))
	})
	return ranked
}

func (m *Match) newJamSkater(team *GameTeam, gs *GameSkater, pos Position) JamSkater {
	js := JamSkater{
		Details:  gs.Details,
		Side:     team.Side,
		Position: pos,
		Activity: OnTrack{Location: 0},
	}
	if pos == Jammer {
		js.Activity = OnTrack{Location: m.Config.JammerStartPosition}
		js.CanReceiveLead = true
	}
	return js
}

func hasPosition(skaters []JamSkater, pos Position) bool {
	return slices.ContainsFunc(skaters, func(s JamSkater) bool { return s.Position == pos })
}

func containsSkater(skaters []JamSkater, gs *GameSkater) bool {
	return slices.ContainsFunc(skaters, func(s JamSkater) bool { return s.ID() == gs.Details.ID })
}
