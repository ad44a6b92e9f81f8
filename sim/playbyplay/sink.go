package playbyplay

// The methods below are the write surface the engine drives. Each one only
// touches the tail entry of its level; calls with no open parent are ignored.

// OpenPeriod appends a new period starting at start.
func (r *Record) OpenPeriod(start int64) {
	r.Periods = append(r.Periods, &Period{
		ID:        r.newID(),
		StartTick: start,
	})
}

// ClosePeriod records the current period's duration.
func (r *Record) ClosePeriod(duration int64) {
	if p := r.CurrentPeriod(); p != nil {
		p.Duration = duration
	}
}

// OpenJam appends a jam to the current period with both fieldings frozen.
func (r *Record) OpenJam(start int64, home, away Fielding) {
	p := r.CurrentPeriod()
	if p == nil {
		return
	}
	p.Jams = append(p.Jams, &Jam{
		ID:        r.newID(),
		StartTick: start,
		Home:      &TeamJam{Fielding: home},
		Away:      &TeamJam{Fielding: away},
	})
}

// CloseJam stamps the current jam's end tick.
func (r *Record) CloseJam(end int64) {
	if j := r.CurrentJam(); j != nil {
		j.EndTick = end
	}
}

// OpenTrip starts a new scoring trip for side.
func (r *Record) OpenTrip(side Side, start int64) {
	j := r.CurrentJam()
	if j == nil {
		return
	}
	tj := j.Team(side)
	tj.Trips = append(tj.Trips, &Trip{
		ID:        r.newID(),
		StartTick: start,
	})
}

// CloseTrip sets the duration and score of side's open trip.
func (r *Record) CloseTrip(side Side, duration int64, score int) {
	j := r.CurrentJam()
	if j == nil {
		return
	}
	if trip := j.Team(side).CurrentTrip(); trip != nil {
		trip.Duration = duration
		trip.Score = score
	}
}

// SetLead marks or clears lead jammer status for side in the current jam.
func (r *Record) SetLead(side Side, lead bool) {
	if j := r.CurrentJam(); j != nil {
		j.Team(side).Lead = lead
	}
}

// SetCalledOff marks whether side's jammer called the current jam off.
func (r *Record) SetCalledOff(side Side, calledOff bool) {
	if j := r.CurrentJam(); j != nil {
		j.Team(side).CalledOff = calledOff
	}
}
