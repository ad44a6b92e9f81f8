package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/derbysim/derbysim/sim/trace"
)

// EventLog is the YAML document written for a traced bout.
type EventLog struct {
	Seed   int64        `yaml:"seed"`
	Home   string       `yaml:"home"`
	Away   string       `yaml:"away"`
	Events []EventEntry `yaml:"events"`
}

// EventEntry is one trace event in the log.
type EventEntry struct {
	Tick       int64  `yaml:"tick"`
	Kind       string `yaml:"kind"`
	Jam        int    `yaml:"jam,omitempty"`
	Team       string `yaml:"team,omitempty"`
	SkaterID   string `yaml:"skater_id,omitempty"`
	Skater     string `yaml:"skater,omitempty"`
	Detail     string `yaml:"detail,omitempty"`
	DurationMs int64  `yaml:"duration_ms,omitempty"`
}

// NewEventLog flattens a trace into an EventLog. A nil trace yields an empty
// event list.
func NewEventLog(seed int64, home, away string, st *trace.SimulationTrace) EventLog {
	log := EventLog{Seed: seed, Home: home, Away: away, Events: []EventEntry{}}
	if st == nil {
		return log
	}
	for _, ev := range st.Events {
		entry := EventEntry{
			Tick:       ev.Tick,
			Kind:       string(ev.Kind),
			Jam:        ev.Jam,
			Team:       ev.Team,
			SkaterID:   ev.SkaterID,
			Skater:     ev.Skater,
			Detail:     ev.Detail,
			DurationMs: ev.Duration,
		}
		log.Events = append(log.Events, entry)
	}
	return log
}

// WriteEvents encodes log as YAML with two-space indentation.
func WriteEvents(w io.Writer, log EventLog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(log); err != nil {
		return fmt.Errorf("encoding event log: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing event log: %w", err)
	}
	return nil
}
