// Package config loads the CLI's runtime knobs — worker count, heuristic
// seed, output format — from an optional YAML file plus environment
// overrides, trimmed from the teacher corpus's pkg/config to a handful of
// settings. cmd/balas reads the worker count and heuristic seed; it does
// not read the output format.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every setting the CLI can source from a file or the
// environment rather than an explicit flag.
type Config struct {
	Solver SolverConfig `mapstructure:"solver"`
	Output OutputConfig `mapstructure:"output"`
}

// SolverConfig holds defaults for the search itself.
type SolverConfig struct {
	Workers   int     `mapstructure:"workers"`
	Heuristic float64 `mapstructure:"heuristic"` // 0 means "no seed"
}

// OutputConfig holds the output.format setting. It is loaded but not
// used by cmd/balas, which always prints text and writes JSON only via
// --outfile.
type OutputConfig struct {
	Format string `mapstructure:"format"` // "text" or "json"
}

// Load reads configuration from configPath if given, or from the
// standard search locations otherwise, falling back to defaults when no
// file is found. Environment variables (BALAS_SOLVER_WORKERS, etc.)
// override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("balas")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/balas")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file anywhere: defaults and env only.
		} else if os.IsNotExist(err) {
			// An explicit --config path that doesn't exist: defaults and env only.
		} else {
			return nil, fmt.Errorf("config: failed to read %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix("balas")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("solver.workers", 0) // 0 means "use hardware parallelism"
	v.SetDefault("solver.heuristic", 0.0)
	v.SetDefault("output.format", "text")
}
