// Package bout assembles a complete, reproducible bout from a seed: it derives
// the random streams, generates both rosters and the crew, and returns a
// match ready to run.
package bout

import (
	"fmt"

	"github.com/derbysim/derbysim/sim"
	"github.com/derbysim/derbysim/sim/playbyplay"
	"github.com/derbysim/derbysim/sim/roster"
	"github.com/derbysim/derbysim/sim/trace"
)

// Options controls bout assembly.
type Options struct {
	Seed       int64
	Config     sim.Config
	TraceLevel trace.TraceLevel
}

// New builds a match for opts. The same options always build the same match.
func New(opts Options) (*sim.Match, error) {
	if !trace.IsValidTraceLevel(string(opts.TraceLevel)) {
		return nil, fmt.Errorf("unknown trace level %q", opts.TraceLevel)
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(opts.Seed))
	ids := rng.ForSubsystem(sim.SubsystemIDs)

	gen := roster.NewGenerator(rng.StreamFor(sim.SubsystemRoster), ids)
	home := gen.Team()
	away := gen.Team()
	crew := gen.Crew()

	var tr *trace.SimulationTrace
	if opts.TraceLevel == trace.TraceLevelEvents {
		tr = trace.NewSimulationTrace(trace.TraceConfig{Level: opts.TraceLevel})
	}

	match, err := sim.NewMatch(sim.MatchSetup{
		Config:       opts.Config,
		Home:         home,
		Away:         away,
		Officials:    crew,
		Engine:       rng.StreamFor(sim.SubsystemEngine),
		PenaltyCodes: rng.StreamFor(sim.SubsystemPenaltyCodes),
		Record:       playbyplay.NewRecord(ids),
		Trace:        tr,
	})
	if err != nil {
		return nil, fmt.Errorf("building bout for seed %d: %w", opts.Seed, err)
	}
	return match, nil
}
