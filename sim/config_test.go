package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, int64(30000), cfg.PenaltySitDuration)
	assert.Equal(t, int64(1800000), cfg.PeriodDuration)
	assert.Equal(t, int64(120000), cfg.JamDuration)
	assert.Equal(t, int64(30000), cfg.LineupDuration)
	assert.False(t, cfg.TrackRotation)
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	// GIVEN a file overriding two fields
	path := writeConfigFile(t, "jam_duration_ms: 60000\ntrack_rotation: true\n")

	// WHEN loaded
	cfg, err := LoadConfig(path)

	// THEN the overrides apply and everything else keeps its default
	require.NoError(t, err)
	assert.Equal(t, int64(60000), cfg.JamDuration)
	assert.True(t, cfg.TrackRotation)
	assert.Equal(t, DefaultConfig().PeriodDuration, cfg.PeriodDuration)
	assert.Equal(t, DefaultConfig().ExitPackCallChance, cfg.ExitPackCallChance)
}

func TestLoadConfig_EmptyFile_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, "\n"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_UnknownKey_Rejected(t *testing.T) {
	// A typo must fail loudly rather than silently keep the default
	_, err := LoadConfig(writeConfigFile(t, "jam_duraton_ms: 60000\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "jam_duraton_ms")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_InvalidValue_Rejected(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, "second_penalty_chance: 1.5\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "second_penalty_chance")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero jam duration", func(c *Config) { c.JamDuration = 0 }, "jam_duration_ms"},
		{"negative sit", func(c *Config) { c.PenaltySitDuration = -1 }, "penalty_sit_duration_ms"},
		{"pack exit past track", func(c *Config) { c.PackExitPosition = 150 }, "pack_exit_position"},
		{"jammer off track", func(c *Config) { c.JammerStartPosition = -5 }, "jammer_start_position"},
		{"negative pass score", func(c *Config) { c.PassScore = -1 }, "pass_score"},
		{"call chance above one", func(c *Config) { c.ExitPackCallChance = 2 }, "exit_pack_call_chance"},
		{"inverted box range", func(c *Config) { c.BoxDistanceMin, c.BoxDistanceMax = 10, 5 }, "box distance"},
		{"empty candidate window", func(c *Config) { c.CandidateWindow = 0 }, "candidate_window"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestConfig_Validate_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.JamDuration = 0
	cfg.LineupDuration = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "jam_duration_ms")
	assert.Contains(t, err.Error(), "lineup_duration_ms")
}
