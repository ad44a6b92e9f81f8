package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/derbysim/derbysim/sim"
	"github.com/derbysim/derbysim/sim/roster"
	"github.com/derbysim/derbysim/sim/trace"
)

// printTeams writes both rosters in number order.
func printTeams(w io.Writer, m *sim.Match) {
	for _, team := range []*sim.GameTeam{m.Home, m.Away} {
		fmt.Fprintf(w, "=== %s (%s, %s) ===\n", team.Details.Name, team.Side, team.Details.Color)
		for _, gs := range team.Roster {
			s := gs.Details
			fmt.Fprintf(w, "  #%-4s %-28s %s\n", s.Number, s.Name, s.FavoredPosition)
		}
	}
}

// printOfficials writes the crew, marking the heads.
func printOfficials(w io.Writer, crew []sim.Official) {
	fmt.Fprintln(w, "=== Officials ===")
	for _, o := range crew {
		head := ""
		if o.IsHead {
			head = " (head)"
		}
		fmt.Fprintf(w, "  %-24s %s%s\n", o.Role, o.Name, head)
	}
	if hnso, ok := roster.HeadNSO(crew); ok {
		fmt.Fprintf(w, "Head NSO             : %s\n", hnso.Name)
	}
	if hr, ok := roster.HeadReferee(crew); ok {
		fmt.Fprintf(w, "Head Referee         : %s\n", hr.Name)
	}
}

// printTraceSummary writes aggregate decision counts.
func printTraceSummary(w io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(w, "=== Trace Summary ===")
	fmt.Fprintf(w, "Jams Traced          : %d (%d called, %d expired)\n", s.Jams, s.CalledJams, s.ExpiredJams)
	if s.LongestSitBy != "" {
		fmt.Fprintf(w, "Longest Box Sit      : %.1f s (%s)\n", float64(s.LongestSit)/1000, s.LongestSitBy)
	}

	teams := make([]string, 0, len(s.Teams))
	for name := range s.Teams {
		teams = append(teams, name)
	}
	slices.Sort(teams)
	title := cases.Title(language.English)
	for _, name := range teams {
		ts := s.Teams[name]
		fmt.Fprintf(w, "%-21s: %d penalties, %d leads, %d calloffs\n", title.String(name), ts.Penalties, ts.Leads, ts.CallOffs)
	}

	if len(s.PenaltiesByCode) > 0 {
		codes := make([]string, 0, len(s.PenaltiesByCode))
		for code := range s.PenaltiesByCode {
			codes = append(codes, code)
		}
		slices.Sort(codes)
		parts := make([]string, 0, len(codes))
		for _, code := range codes {
			parts = append(parts, fmt.Sprintf("%s=%d", code, s.PenaltiesByCode[code]))
		}
		fmt.Fprintf(w, "Penalties By Code    : %s\n", strings.Join(parts, " "))
	}
}
