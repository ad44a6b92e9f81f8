// Tracks bout-wide statistics for final reporting: score, jams, lead and penalties.

package sim

import (
	"fmt"
	"io"

	"github.com/derbysim/derbysim/sim/playbyplay"
)

// TeamMetrics aggregates one team's bout.
type TeamMetrics struct {
	Name      string
	Score     int
	Leads     int
	CallOffs  int
	Penalties int
	Trips     int
}

// Metrics aggregates statistics about the bout for final reporting.
type Metrics struct {
	Jams        int
	Periods     int
	BoutLength  int64 // ms from first jam start to the last recorded jam end
	LongestJam  int64
	ShortestJam int64
	Home        TeamMetrics
	Away        TeamMetrics
}

// NewMetrics computes metrics from the match's record and persistent rosters.
func NewMetrics(m *Match) *Metrics {
	metrics := &Metrics{
		Home: TeamMetrics{Name: m.Home.Details.Name, Penalties: m.Home.PenaltyCount()},
		Away: TeamMetrics{Name: m.Away.Details.Name, Penalties: m.Away.PenaltyCount()},
	}
	record := m.Record
	metrics.Periods = len(record.Periods)

	var first, last int64 = -1, 0
	for _, p := range record.Periods {
		for _, j := range p.Jams {
			metrics.Jams++
			if first < 0 {
				first = j.StartTick
			}
			last = max(last, j.EndTick)
			d := j.Duration()
			metrics.LongestJam = max(metrics.LongestJam, d)
			if metrics.ShortestJam == 0 || d < metrics.ShortestJam {
				metrics.ShortestJam = d
			}
			for _, side := range playbyplay.Sides {
				tm := metrics.team(side)
				tj := j.Team(side)
				tm.Score += tj.Score()
				tm.Trips += len(tj.Trips)
				if tj.Lead {
					tm.Leads++
				}
				if tj.CalledOff {
					tm.CallOffs++
				}
			}
		}
	}
	if first >= 0 {
		metrics.BoutLength = last - first
	}
	return metrics
}

func (m *Metrics) team(side playbyplay.Side) *TeamMetrics {
	if side == playbyplay.Away {
		return &m.Away
	}
	return &m.Home
}

// Print writes the box score.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Bout Metrics ===")
	fmt.Fprintf(w, "Periods              : %d\n", m.Periods)
	fmt.Fprintf(w, "Jams                 : %d\n", m.Jams)
	fmt.Fprintf(w, "Bout Length          : %.1f s\n", float64(m.BoutLength)/1000)
	if m.Jams > 0 {
		fmt.Fprintf(w, "Longest Jam          : %.1f s\n", float64(m.LongestJam)/1000)
		fmt.Fprintf(w, "Shortest Jam         : %.1f s\n", float64(m.ShortestJam)/1000)
	}
	for _, tm := range []TeamMetrics{m.Home, m.Away} {
		fmt.Fprintf(w, "--- %s ---\n", tm.Name)
		fmt.Fprintf(w, "Score                : %d\n", tm.Score)
		fmt.Fprintf(w, "Lead Jammer          : %d\n", tm.Leads)
		fmt.Fprintf(w, "Calloffs             : %d\n", tm.CallOffs)
		fmt.Fprintf(w, "Scoring Trips        : %d\n", tm.Trips)
		fmt.Fprintf(w, "Penalties            : %d\n", tm.Penalties)
	}
}
