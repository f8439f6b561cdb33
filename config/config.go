// Package config loads the run configuration of the valve solver from YAML
// or JSON and validates it before any search starts.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/adrianroos/advent-of-code-2022/explore"
	"github.com/adrianroos/advent-of-code-2022/logging"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults for the valve puzzle.
const (
	DefaultStart     = "AA"
	DefaultHorizon   = 30
	DefaultHeadStart = 4
)

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Config holds every tunable of a solver run.
type Config struct {
	// Start is the node both agents begin at.
	Start string `yaml:"start" json:"start"`

	// Horizon is the single-agent time budget.
	Horizon int `yaml:"horizon" json:"horizon"`

	// HeadStart is subtracted from Horizon for the two-agent part.
	HeadStart int `yaml:"head_start" json:"head_start"`

	// Dedup is "keep-best" or "first-seen".
	Dedup string `yaml:"dedup" json:"dedup"`

	// Frontier is "fifo" or "lifo".
	Frontier string `yaml:"frontier" json:"frontier"`

	Log Log `yaml:"log" json:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Start:     DefaultStart,
		Horizon:   DefaultHorizon,
		HeadStart: DefaultHeadStart,
		Dedup:     explore.DedupKeepBest.String(),
		Frontier:  explore.FrontierFIFO.String(),
		Log:       Log{Level: "info", Format: "text"},
	}
}

// Load reads a config file (YAML or JSON) on top of Default.
// Format is detected by extension (.yaml/.yml → YAML, .json → JSON) or by content.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data on top of Default. ext is the file extension used as a
// format hint; empty means detect from content.
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" && strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		ext = ".json"
	}

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges and enumerations.
// A horizon of zero is allowed: the search then only records its seed.
func (c Config) Validate() error {
	var errs []error
	if c.Start == "" {
		errs = append(errs, errors.New("start must not be empty"))
	}
	if c.Horizon < 0 {
		errs = append(errs, fmt.Errorf("horizon must be >= 0 (got %d)", c.Horizon))
	}
	if c.HeadStart < 0 {
		errs = append(errs, fmt.Errorf("head_start must be >= 0 (got %d)", c.HeadStart))
	}
	if _, err := explore.ParseDedupPolicy(c.Dedup); err != nil {
		errs = append(errs, err)
	}
	if _, err := explore.ParseFrontierOrder(c.Frontier); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// ExploreOptions translates the search settings into explore options.
// Call Validate first; unknown names fall back to the defaults.
func (c Config) ExploreOptions() []explore.Option {
	dedup, _ := explore.ParseDedupPolicy(c.Dedup)
	frontier, _ := explore.ParseFrontierOrder(c.Frontier)
	return []explore.Option{
		explore.WithDedup(dedup),
		explore.WithFrontier(frontier),
	}
}
