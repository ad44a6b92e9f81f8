// Package playbyplay holds the append-only play-by-play tree produced by a bout:
// periods contain jams, jams contain one TeamJam per side, and each TeamJam holds
// its ordered scoring trips. Only the tail entry of each level is ever mutated.
// This package has no dependencies on sim/; it stores pure data types.
package playbyplay

import (
	"io"

	"github.com/google/uuid"
)

// Side identifies which team a TeamJam or trip belongs to.
type Side string

const (
	Home Side = "home"
	Away Side = "away"
)

// Sides lists both sides in recording order (home first).
var Sides = [2]Side{Home, Away}

// FieldingSkater is one skater's entry in a jam fielding snapshot.
type FieldingSkater struct {
	SkaterID uuid.UUID
	Name     string
	Number   string
}

// Fielding is the frozen lineup a team started the jam with.
// Pivot is nil when the team fielded four blockers instead.
type Fielding struct {
	Jammer   FieldingSkater
	Pivot    *FieldingSkater
	Blockers []FieldingSkater
}

// Trip is one scoring pass of a jammer.
type Trip struct {
	ID        uuid.UUID
	StartTick int64
	Duration  int64
	Score     int
}

// TeamJam is one team's side of a jam.
type TeamJam struct {
	Fielding  Fielding
	Lead      bool
	CalledOff bool
	Trips     []*Trip
}

// CurrentTrip returns the open (last) trip, or nil if none was opened.
func (tj *TeamJam) CurrentTrip() *Trip {
	if len(tj.Trips) == 0 {
		return nil
	}
	return tj.Trips[len(tj.Trips)-1]
}

// Score sums the team's trip scores for the jam.
func (tj *TeamJam) Score() int {
	total := 0
	for _, trip := range tj.Trips {
		total += trip.Score
	}
	return total
}

// Jam is a single jam with both teams' records.
type Jam struct {
	ID        uuid.UUID
	StartTick int64
	EndTick   int64
	Home      *TeamJam
	Away      *TeamJam
}

// Team returns the TeamJam for the given side.
func (j *Jam) Team(side Side) *TeamJam {
	if side == Away {
		return j.Away
	}
	return j.Home
}

// Duration is the jam length in ms; zero until the jam is closed.
func (j *Jam) Duration() int64 {
	if j.EndTick < j.StartTick {
		return 0
	}
	return j.EndTick - j.StartTick
}

// Period groups the jams played under one period clock.
type Period struct {
	ID        uuid.UUID
	StartTick int64
	Duration  int64
	Jams      []*Jam
}

// CurrentJam returns the last jam of the period, or nil.
func (p *Period) CurrentJam() *Jam {
	if len(p.Jams) == 0 {
		return nil
	}
	return p.Jams[len(p.Jams)-1]
}

// Official is one member of the officiating crew.
type Official struct {
	ID     uuid.UUID
	Name   string
	Role   string
	IsHead bool
}

// TeamInfo describes a team for export purposes.
type TeamInfo struct {
	ID      uuid.UUID
	Name    string
	Color   string
	Skaters []FieldingSkater
}

// Record is the root of the play-by-play tree.
type Record struct {
	ID        uuid.UUID
	HomeTeam  TeamInfo
	AwayTeam  TeamInfo
	Officials []Official
	Periods   []*Period

	ids io.Reader
}

// NewRecord creates an empty record. Identifiers are drawn from ids so that a
// seeded reader yields a reproducible record; a nil reader falls back to crypto/rand.
func NewRecord(ids io.Reader) *Record {
	r := &Record{ids: ids}
	r.ID = r.newID()
	return r
}

func (r *Record) newID() uuid.UUID {
	if r.ids == nil {
		return uuid.New()
	}
	id, err := uuid.NewRandomFromReader(r.ids)
	if err != nil {
		return uuid.New()
	}
	return id
}

// NewID draws an identifier from the record's id source.
func (r *Record) NewID() uuid.UUID {
	return r.newID()
}

// AddOfficial appends an official to the crew.
func (r *Record) AddOfficial(o Official) {
	r.Officials = append(r.Officials, o)
}

// CurrentPeriod returns the last period, or nil before the first jam.
func (r *Record) CurrentPeriod() *Period {
	if len(r.Periods) == 0 {
		return nil
	}
	return r.Periods[len(r.Periods)-1]
}

// CurrentJam returns the last jam of the last period, or nil.
func (r *Record) CurrentJam() *Jam {
	p := r.CurrentPeriod()
	if p == nil {
		return nil
	}
	return p.CurrentJam()
}

// JamCount returns the total number of jams across all periods.
func (r *Record) JamCount() int {
	n := 0
	for _, p := range r.Periods {
		n += len(p.Jams)
	}
	return n
}

// TotalScore sums every trip score for the side across the bout.
func (r *Record) TotalScore(side Side) int {
	total := 0
	for _, p := range r.Periods {
		for _, j := range p.Jams {
			total += j.Team(side).Score()
		}
	}
	return total
}
