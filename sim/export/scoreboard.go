// Package export writes a finished bout's play-by-play in external formats:
// the scoreboard's key/value game JSON and a YAML event log.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/derbysim/derbysim/sim"
	"github.com/derbysim/derbysim/sim/playbyplay"
)

// ScoreboardVersion is the scoreboard release the export targets.
const ScoreboardVersion = "v2023.3"

// ScoreboardOptions carries the values the record itself does not know.
type ScoreboardOptions struct {
	Date           string // event date, YYYY-MM-DD
	PeriodDuration int64
	JamDuration    int64
}

// DefaultScoreboardOptions matches sim.DefaultConfig.
func DefaultScoreboardOptions(date string) ScoreboardOptions {
	cfg := sim.DefaultConfig()
	return ScoreboardOptions{
		Date:           date,
		PeriodDuration: cfg.PeriodDuration,
		JamDuration:    cfg.JamDuration,
	}
}

type scoreboardJSON struct {
	State map[string]any `json:"state"`
}

// scoreboard accumulates flattened keys under a common game prefix.
type scoreboard struct {
	state  map[string]any
	prefix string
}

func (s *scoreboard) set(key string, value any) {
	s.state[s.prefix+"."+key] = value
}

// with returns a writer scoped under an extra key segment.
func (s *scoreboard) with(segment string) *scoreboard {
	return &scoreboard{state: s.state, prefix: s.prefix + "." + segment}
}

// WriteScoreboard writes rec as scoreboard game JSON. Identifiers the
// scoreboard needs beyond those in the record are drawn from rec.NewID, so a
// seeded record exports identically every time.
func WriteScoreboard(w io.Writer, rec *playbyplay.Record, opts ScoreboardOptions) error {
	if len(rec.Periods) == 0 {
		return fmt.Errorf("record %s has no periods to export", rec.ID)
	}
	out := scoreboardJSON{State: make(map[string]any)}
	out.State["ScoreBoard.Version(release)"] = ScoreboardVersion

	game := &scoreboard{state: out.State, prefix: fmt.Sprintf("ScoreBoard.Game(%s)", rec.NewID())}
	writeGame(game, rec, opts)
	writeClocks(game, rec, opts)
	for i, team := range []playbyplay.TeamInfo{rec.HomeTeam, rec.AwayTeam} {
		writeTeam(game.with(fmt.Sprintf("Team(%d)", i+1)), team)
	}
	writePeriods(game, rec, opts)

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding scoreboard json: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing scoreboard json: %w", err)
	}
	return nil
}

func writeGame(game *scoreboard, rec *playbyplay.Record, opts ScoreboardOptions) {
	current := rec.CurrentPeriod()
	game.set("AbortReason", "")
	game.set("ClockDuringFinalScore", false)
	game.set("CurrentPeriod", current.ID.String())
	game.set("CurrentPeriodNumber", len(rec.Periods))
	game.set("CurrentTimeout", "noTimeout")
	game.set("EventInfo(City)", "Testville")
	game.set("EventInfo(Date)", opts.Date)
	game.set("EventInfo(GameNo)", "1")
	game.set("EventInfo(HostLeague)", "Test Roller Derby")
	game.set("EventInfo(StartTime)", "12pm")
	game.set("EventInfo(State)", "Testshire")
	game.set("EventInfo(Tournament)", "")
	game.set("EventInfo(Venue)", "Example Sports Center")
	game.set("ExportBlockedBy", "")
	game.set("Filename", "STATS-Test")
	for _, o := range rec.Officials {
		if !o.IsHead {
			continue
		}
		if o.Role == string(sim.RoleInsidePackReferee) {
			game.set("HR", o.Name)
		} else {
			game.set("HNSO", o.Name)
		}
	}
	game.set("Id", rec.ID.String())
	game.set("InJam", false)
	game.set("InOvertime", false)
	game.set("InPeriod", false)
	game.set("InSuddenScoring", false)
	game.set("InjuryContinuationUpcoming", false)
	game.set("JsonExists", true)
	game.set("Label(Replaced)", "---")
	game.set("Label(Start)", "Start Jam")
	game.set("Label(Stop)", "Lineup")
	game.set("Label(Timeout)", "Timeout")
	game.set("Label(Undo)", "---")
	game.set("LastFileUpdate", "Never")
	game.set("Name", fmt.Sprintf("%s vs %s", rec.HomeTeam.Name, rec.AwayTeam.Name))
	game.set("NameFormat", "%t1 vs %t2")
	game.set("NoMoreJam", false)
	game.set("OfficialReview", false)
	game.set("OfficialScore", true)
	game.set("PenaltyCode(?)", "Unknown")
	for _, pc := range sim.PenaltyCodes {
		game.set(fmt.Sprintf("PenaltyCode(%s)", pc.Code), pc.Description)
	}
	game.set("Readonly", false)
	game.set("State", "Finished")
	game.set("StatsbookExists", false)
	game.set("SuspensionsServed", "")
}

func writeClocks(game *scoreboard, rec *playbyplay.Record, opts ScoreboardOptions) {
	clocks := []struct {
		name      string
		countDown bool
		max       int64
	}{
		{"Intermission", true, 60 * 60 * 1000},
		{"Jam", true, opts.JamDuration},
		{"Lineup", false, 24 * 60 * 60 * 1000},
		{"Period", true, opts.PeriodDuration},
		{"Timeout", false, 24 * 60 * 60 * 1000},
	}
	for _, c := range clocks {
		clock := game.with(fmt.Sprintf("Clock(%s)", c.name))
		clock.set("Direction", c.countDown)
		clock.set("Id", rec.NewID().String())
		clock.set("InvertedTime", c.max)
		clock.set("MaximumTime", c.max)
		clock.set("Name", c.name)
		clock.set("Number", 0)
		clock.set("Readonly", true)
		clock.set("Running", false)
		clock.set("Time", 0)
	}
}

func writeTeam(team *scoreboard, info playbyplay.TeamInfo) {
	team.set("Id", info.ID.String())
	team.set("Name", info.Name)
	team.set("UniformColor", info.Color)
	for _, s := range info.Skaters {
		skater := team.with(fmt.Sprintf("Skater(%s)", s.SkaterID))
		skater.set("Id", s.SkaterID.String())
		skater.set("Name", s.Name)
		skater.set("RosterNumber", s.Number)
	}
}

func writePeriods(game *scoreboard, rec *playbyplay.Record, opts ScoreboardOptions) {
	// Jams are linked in a list that runs across period boundaries; the ends
	// point at placeholder jams that do not exist in the record.
	var jams []*playbyplay.Jam
	for _, p := range rec.Periods {
		jams = append(jams, p.Jams...)
	}
	firstID, upcomingID := rec.NewID(), rec.NewID()
	linked := func(i int) uuid.UUID {
		switch {
		case i < 0:
			return firstID
		case i >= len(jams):
			return upcomingID
		default:
			return jams[i].ID
		}
	}

	index := 0
	for pn, p := range rec.Periods {
		period := game.with(fmt.Sprintf("Period(%d)", pn+1))
		if last := p.CurrentJam(); last != nil {
			period.set("CurrentJam", last.ID.String())
			period.set("FirstJam", p.Jams[0].ID.String())
		}
		period.set("CurrentJamNumber", len(p.Jams))
		period.set("Duration", p.Duration)
		period.set("FirstJamNumber", 1)
		period.set("Id", p.ID.String())
		period.set("Number", pn+1)

		for jn, j := range p.Jams {
			writeJam(period.with(fmt.Sprintf("Jam(%d)", jn+1)), p, j, pn+1, jn+1,
				linked(index-1), linked(index+1), opts)
			index++
		}
	}
}

func writeJam(jam *scoreboard, p *playbyplay.Period, j *playbyplay.Jam, periodNumber, jamNumber int,
	previous, next uuid.UUID, opts ScoreboardOptions) {
	jam.set("Duration", j.Duration())
	jam.set("Id", j.ID.String())
	jam.set("InjuryContinuation", false)
	jam.set("Next", next.String())
	jam.set("Number", jamNumber)
	jam.set("Overtime", false)
	jam.set("PeriodClockDisplayEnd", max(opts.PeriodDuration-(j.EndTick-p.StartTick), 0))
	jam.set("PeriodClockElapsedEnd", j.EndTick-p.StartTick)
	jam.set("PeriodClockElapsedStart", j.StartTick-p.StartTick)
	jam.set("PeriodNumber", periodNumber)
	jam.set("Previous", previous.String())
	jam.set("Readonly", false)
	jam.set("StarPass", false)

	for i, side := range playbyplay.Sides {
		writeTeamJam(jam.with(fmt.Sprintf("TeamJam(%d)", i+1)), j, j.Team(side), i+1, jamNumber, previous, next)
	}
}

func writeTeamJam(teamJam *scoreboard, j *playbyplay.Jam, tj *playbyplay.TeamJam, teamNumber, jamNumber int, previous, next uuid.UUID) {
	teamJam.set("AfterSPScore", 0)
	teamJam.set("Calloff", tj.CalledOff)
	teamJam.set("CurrentTripNumber", len(tj.Trips))
	if trip := tj.CurrentTrip(); trip != nil {
		teamJam.set("CurrentTrip", trip.ID.String())
	}
	teamJam.set("DisplayLead", tj.Lead)
	teamJam.set("JamScore", tj.Score())
	teamJam.set("Lead", tj.Lead)

	for _, slot := range fieldingSlots(tj.Fielding) {
		writeFielding(teamJam.with(fmt.Sprintf("Fielding(%s)", slot.name)), j, slot, teamNumber, jamNumber, previous, next)
	}

	for i, trip := range tj.Trips {
		t := teamJam.with(fmt.Sprintf("ScoringTrip(%d)", i+1))
		t.set("Current", false)
		t.set("Duration", trip.Duration)
		t.set("Id", trip.ID.String())
		t.set("JamClockStart", max(trip.StartTick-j.StartTick, 0))
		t.set("JamClockEnd", max(trip.StartTick+trip.Duration-j.StartTick, 0))
		t.set("Number", i+1)
		t.set("Readonly", false)
		t.set("Score", trip.Score)
	}
}

type fieldingSlot struct {
	name     string // key segment, e.g. "Blocker1"
	position string // position id suffix, e.g. "blocker1"
	skater   playbyplay.FieldingSkater
}

// fieldingSlots maps a lineup onto the scoreboard's five fixed slots. A
// fourth blocker fills the pivot slot when no pivot was fielded.
func fieldingSlots(f playbyplay.Fielding) []fieldingSlot {
	slots := []fieldingSlot{{"Jammer", "jammer", f.Jammer}}
	blockers := f.Blockers
	switch {
	case f.Pivot != nil:
		slots = append(slots, fieldingSlot{"Pivot", "pivot", *f.Pivot})
	case len(blockers) > 3:
		slots = append(slots, fieldingSlot{"Pivot", "pivot", blockers[3]})
		blockers = blockers[:3]
	}
	for i, b := range blockers {
		if i >= 3 {
			break
		}
		slots = append(slots, fieldingSlot{fmt.Sprintf("Blocker%d", i+1), fmt.Sprintf("blocker%d", i+1), b})
	}
	return slots
}

// writeFielding writes one slot. Fielding ids are "<jam>_<team>_<position>".
func writeFielding(fielding *scoreboard, j *playbyplay.Jam, slot fieldingSlot, teamNumber, jamNumber int, previous, next uuid.UUID) {
	fielding.set("Annotation", "")
	fielding.set("BoxTripSymbols", "")
	fielding.set("BoxTripSymbolsAfterSP", "")
	fielding.set("BoxTripSymbolsBeforeSP", "")
	fielding.set("CurrentBoxTrip", "")
	fielding.set("Id", fmt.Sprintf("%s_%d_%s", j.ID, teamNumber, slot.position))
	fielding.set("Next", fmt.Sprintf("%s_%d_%s", next, teamNumber, slot.position))
	fielding.set("NotFielded", false)
	fielding.set("Number", jamNumber)
	fielding.set("PenaltyBox", false)
	fielding.set("Position", fmt.Sprintf("%s_%d_%s", uuid.Nil, teamNumber, slot.position))
	fielding.set("Previous", fmt.Sprintf("%s_%d_%s", previous, teamNumber, slot.position))
	fielding.set("Readonly", false)
	fielding.set("SitFor3", false)
	fielding.set("Skater", slot.skater.SkaterID.String())
	fielding.set("SkaterNumber", slot.skater.Number)
}
