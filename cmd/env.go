package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envDefaults are defaults read from the environment. Flags set explicitly on
// the command line take precedence.
type envDefaults struct {
	Seed      *int64 `env:"DERBYSIM_SEED"`
	LogLevel  string `env:"DERBYSIM_LOG"`
	OutputDir string `env:"DERBYSIM_OUTPUT_DIR"`
}

// loadEnvDefaults reads DERBYSIM_* variables. When dotenv names an existing
// file its assignments are loaded first; variables already set in the
// process environment are not overwritten.
func loadEnvDefaults(dotenv string) (envDefaults, error) {
	if dotenv != "" {
		if _, err := os.Stat(dotenv); err == nil {
			if err := godotenv.Load(dotenv); err != nil {
				return envDefaults{}, fmt.Errorf("loading %s: %w", dotenv, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return envDefaults{}, fmt.Errorf("checking %s: %w", dotenv, err)
		}
	}
	var d envDefaults
	if err := env.Parse(&d); err != nil {
		return envDefaults{}, fmt.Errorf("parsing DERBYSIM_* environment: %w", err)
	}
	return d, nil
}

// outputPath places a relative export path under dir. Empty and absolute
// paths are returned unchanged.
func outputPath(dir, path string) string {
	if path == "" || dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
