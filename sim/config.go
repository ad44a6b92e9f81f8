package sim

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TickDuration is the simulated time consumed by one call to Match.Tick, in ms.
const TickDuration int64 = 1000

// MinFieldedSkaters is the lineup size a team must be able to field: a jammer,
// a pivot and three blockers.
const MinFieldedSkaters = 5

// Config groups the tunables of the bout model. All durations are in
// milliseconds; positions are on the 0–100 track scale.
// Zero values are not meaningful; start from DefaultConfig.
type Config struct {
	PenaltySitDuration int64 `yaml:"penalty_sit_duration_ms"` // per penalty served
	PeriodDuration     int64 `yaml:"period_duration_ms"`
	JamDuration        int64 `yaml:"jam_duration_ms"`
	LineupDuration     int64 `yaml:"lineup_duration_ms"`

	PackExitPosition    float64 `yaml:"pack_exit_position"`    // jammers below this are inside the pack
	JammerStartPosition float64 `yaml:"jammer_start_position"` // jammers line up behind the pack
	TrackLength         float64 `yaml:"track_length"`          // wrap point of the track loop
	PassScore           int     `yaml:"pass_score"`            // points for a full scoring pass

	ExitPackCallChance     float64 `yaml:"exit_pack_call_chance"`     // lead jammer calls the jam on a pack exit
	ExitPackNoPassChance   float64 `yaml:"exit_pack_no_pass_chance"`  // an eligible pack exit does not earn lead
	ReturnCutPenaltyChance float64 `yaml:"return_cut_penalty_chance"` // re-entry from the box is a cut
	SecondPenaltyChance    float64 `yaml:"second_penalty_chance"`     // per tick while skating to the box

	BoxDistanceMin float64 `yaml:"box_distance_min"`
	BoxDistanceMax float64 `yaml:"box_distance_max"`

	CandidateWindow int `yaml:"candidate_window"` // fielding picks uniformly among the top N

	// TrackRotation writes each fielded skater's last-jam tick at jam end so the
	// selector rests skaters fairly. Off by default: every skater is treated as
	// equally rested.
	TrackRotation bool `yaml:"track_rotation"`
}

// DefaultConfig returns the standard bout model.
func DefaultConfig() Config {
	return Config{
		PenaltySitDuration: 30 * 1000,
		PeriodDuration:     30 * 60 * 1000,
		JamDuration:        2 * 60 * 1000,
		LineupDuration:     30 * 1000,

		PackExitPosition:    20,
		JammerStartPosition: 95,
		TrackLength:         100,
		PassScore:           4,

		ExitPackCallChance:     1.0 / 2.0,
		ExitPackNoPassChance:   1.0 / 50.0,
		ReturnCutPenaltyChance: 1.0 / 100.0,
		SecondPenaltyChance:    1.0 / 20.0,

		BoxDistanceMin: 1,
		BoxDistanceMax: 60,

		CandidateWindow: 3,
	}
}

// LoadConfig reads YAML overrides from path on top of DefaultConfig.
// Unknown keys are rejected so typos surface as errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading bout config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing bout config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid bout config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every duration, position and probability is in range.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v int64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positive("penalty_sit_duration_ms", c.PenaltySitDuration)
	positive("period_duration_ms", c.PeriodDuration)
	positive("jam_duration_ms", c.JamDuration)
	positive("lineup_duration_ms", c.LineupDuration)

	if c.TrackLength <= 0 {
		errs = append(errs, fmt.Errorf("track_length must be positive, got %v", c.TrackLength))
	}
	if c.PackExitPosition <= 0 || c.PackExitPosition >= c.TrackLength {
		errs = append(errs, fmt.Errorf("pack_exit_position must be in (0, track_length), got %v", c.PackExitPosition))
	}
	if c.JammerStartPosition < 0 || c.JammerStartPosition > c.TrackLength {
		errs = append(errs, fmt.Errorf("jammer_start_position must be in [0, track_length], got %v", c.JammerStartPosition))
	}
	if c.PassScore < 0 {
		errs = append(errs, fmt.Errorf("pass_score must be non-negative, got %d", c.PassScore))
	}

	probability := func(name string, p float64) {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be in [0, 1], got %v", name, p))
		}
	}
	probability("exit_pack_call_chance", c.ExitPackCallChance)
	probability("exit_pack_no_pass_chance", c.ExitPackNoPassChance)
	probability("return_cut_penalty_chance", c.ReturnCutPenaltyChance)
	probability("second_penalty_chance", c.SecondPenaltyChance)

	if c.BoxDistanceMin <= 0 || c.BoxDistanceMax <= c.BoxDistanceMin {
		errs = append(errs, fmt.Errorf("box distance range must satisfy 0 < min < max, got [%v, %v)", c.BoxDistanceMin, c.BoxDistanceMax))
	}
	if c.CandidateWindow < 1 {
		errs = append(errs, fmt.Errorf("candidate_window must be at least 1, got %d", c.CandidateWindow))
	}
	return errors.Join(errs...)
}
