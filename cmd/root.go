package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/derbysim/derbysim/sim"
	"github.com/derbysim/derbysim/sim/bout"
	"github.com/derbysim/derbysim/sim/export"
	"github.com/derbysim/derbysim/sim/trace"
)

var (
	seed          int64  // Seed for roster generation and the bout itself
	logLevel      string // Log verbosity level
	configPath    string // Optional YAML file overriding the default tunables
	gameJSONPath  string // Scoreboard game JSON output
	eventsPath    string // YAML event log output
	trackRotation bool   // Rotate lineups by last-played jam
	traceLevel    string // Decision trace level
	envFile       string // Optional dotenv file with DERBYSIM_* defaults
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "derbysim",
	Short: "Tick-based roller derby bout simulator",
}

// runCmd simulates one bout using parameters from CLI flags and the environment
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Simulate a single bout",
	Run: func(cmd *cobra.Command, args []string) {
		envs, err := loadEnvDefaults(envFile)
		if err != nil {
			logrus.Fatalf("Invalid environment: %v", err)
		}
		if !cmd.Flags().Changed("seed") && envs.Seed != nil {
			seed = *envs.Seed
		}
		if !cmd.Flags().Changed("log") && envs.LogLevel != "" {
			logLevel = envs.LogLevel
		}

		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := sim.DefaultConfig()
		if configPath != "" {
			cfg, err = sim.LoadConfig(configPath)
			if err != nil {
				logrus.Fatalf("Failed to load config: %v", err)
			}
		}
		if cmd.Flags().Changed("track-rotation") {
			cfg.TrackRotation = trackRotation
		}

		opts := runOptions{
			Bout: bout.Options{
				Seed:       seed,
				Config:     cfg,
				TraceLevel: trace.TraceLevel(traceLevel),
			},
			GameJSONPath: outputPath(envs.OutputDir, gameJSONPath),
			EventsPath:   outputPath(envs.OutputDir, eventsPath),
			Date:         time.Now().Format(time.DateOnly),
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runBout(ctx, opts, os.Stdout); err != nil {
			logrus.Fatalf("Bout failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// runOptions is everything runBout needs, resolved from flags and environment.
type runOptions struct {
	Bout         bout.Options
	GameJSONPath string
	EventsPath   string
	Date         string
}

// runBout builds, runs and reports one bout. Reports go to out; exports go
// to the configured paths.
func runBout(ctx context.Context, opts runOptions, out io.Writer) error {
	if opts.EventsPath != "" && opts.Bout.TraceLevel != trace.TraceLevelEvents {
		// The event log is built from the decision trace.
		opts.Bout.TraceLevel = trace.TraceLevelEvents
	}

	match, err := bout.New(opts.Bout)
	if err != nil {
		return err
	}
	printTeams(out, match)
	printOfficials(out, match.Officials)

	logrus.Infof("Starting bout with seed=%d", opts.Bout.Seed)
	startTime := time.Now()
	if err := match.Run(ctx); err != nil {
		return fmt.Errorf("bout interrupted at tick %d: %w", match.CurrentTick(), err)
	}
	logrus.Debugf("Bout simulated in %s", time.Since(startTime))

	sim.NewMetrics(match).Print(out)
	if match.Trace != nil {
		printTraceSummary(out, trace.Summarize(match.Trace))
	}

	if opts.GameJSONPath != "" {
		if err := writeFile(opts.GameJSONPath, func(w io.Writer) error {
			return export.WriteScoreboard(w, match.Record, scoreboardOptions(match.Config, opts.Date))
		}); err != nil {
			return err
		}
		logrus.Infof("Wrote scoreboard JSON to %s", opts.GameJSONPath)
	}
	if opts.EventsPath != "" {
		log := export.NewEventLog(opts.Bout.Seed, match.Home.Details.Name, match.Away.Details.Name, match.Trace)
		if err := writeFile(opts.EventsPath, func(w io.Writer) error {
			return export.WriteEvents(w, log)
		}); err != nil {
			return err
		}
		logrus.Infof("Wrote event log to %s", opts.EventsPath)
	}
	return nil
}

func scoreboardOptions(cfg sim.Config, date string) export.ScoreboardOptions {
	return export.ScoreboardOptions{
		Date:           date,
		PeriodDuration: cfg.PeriodDuration,
		JamDuration:    cfg.JamDuration,
	}
}

// writeFile creates path (and its directory) and hands it to write.
func writeFile(path string, write func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return write(f)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for roster generation and the bout (env DERBYSIM_SEED)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic) (env DERBYSIM_LOG)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML file overriding the default bout tunables")
	runCmd.Flags().StringVar(&gameJSONPath, "game-json", "", "Write the scoreboard game JSON to this path (relative to DERBYSIM_OUTPUT_DIR if set)")
	runCmd.Flags().StringVar(&eventsPath, "events-yaml", "", "Write the YAML event log to this path (relative to DERBYSIM_OUTPUT_DIR if set)")
	runCmd.Flags().BoolVar(&trackRotation, "track-rotation", false, "Rotate lineups by the jam each skater last played")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Decision trace level (none, events)")
	runCmd.Flags().StringVar(&envFile, "env-file", ".env", "Dotenv file read for DERBYSIM_* defaults when present")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
