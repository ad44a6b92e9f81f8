package trace

// TeamSummary aggregates one team's decisions.
type TeamSummary struct {
	Penalties int
	Leads     int
	CallOffs  int
}

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	Jams            int
	CalledJams      int
	ExpiredJams     int
	LongestSit      int64
	LongestSitBy    string
	Teams           map[string]*TeamSummary // "home"/"away" → counts
	PenaltiesByCode map[string]int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		Teams:           make(map[string]*TeamSummary),
		PenaltiesByCode: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	team := func(name string) *TeamSummary {
		ts, ok := summary.Teams[name]
		if !ok {
			ts = &TeamSummary{}
			summary.Teams[name] = ts
		}
		return ts
	}

	for _, e := range st.Events {
		switch e.Kind {
		case KindJamStart:
			summary.Jams++
		case KindJamEnd:
			if e.Detail == "called" {
				summary.CalledJams++
			} else {
				summary.ExpiredJams++
			}
		case KindPenalty:
			team(e.Team).Penalties++
			summary.PenaltiesByCode[e.Detail]++
		case KindLead:
			team(e.Team).Leads++
		case KindCallOff:
			team(e.Team).CallOffs++
		case KindBoxRelease:
			if e.Duration > summary.LongestSit {
				summary.LongestSit = e.Duration
				summary.LongestSitBy = e.Skater
			}
		}
	}

	return summary
}
