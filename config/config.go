// Package config aggregates the per-component configuration structs
// (preprocess, scoring, cluster, and the shared grid/library-load
// parameters) into one place with documented defaults, following the
// teacher's fingerprint/config package: plain structs plus
// DefaultXConfig()/XConfigForContent()-style constructors rather than a
// single monolithic options bag.
package config

import (
	"math"

	"github.com/astrosnid/snid/cluster"
	"github.com/astrosnid/snid/grid"
	"github.com/astrosnid/snid/preprocess"
	"github.com/astrosnid/snid/scoring"
)

// GridConfig parameterizes the shared log-wavelength grid every spectrum
// and template is resampled onto.
type GridConfig struct {
	N       int     `json:"n"`
	WaveMin float64 `json:"wave_min"`
	WaveMax float64 `json:"wave_max"`
}

// Grid builds the grid.Grid described by c.
func (c GridConfig) Grid() grid.Grid {
	dlnw := math.Log(c.WaveMax/c.WaveMin) / float64(c.N)
	return grid.New(c.N, c.WaveMin, dlnw)
}

// DefaultGridConfig returns the documented default grid: 1024 points
// spanning 2500-10000 Angstrom, the historical SNID working range.
func DefaultGridConfig() GridConfig {
	return GridConfig{N: 1024, WaveMin: 2500, WaveMax: 10000}
}

// LibraryConfig locates the on-disk template library.
type LibraryConfig struct {
	BaseDir string `json:"base_dir"`
	UserDir string `json:"user_dir,omitempty"`
	PadTo   int    `json:"pad_to"`
}

// Config aggregates every component's configuration for one analysis run.
type Config struct {
	Grid       GridConfig
	Library    LibraryConfig
	Preprocess preprocess.Config
	Scoring    scoring.Config
	Cluster    cluster.Config
}

// DefaultConfig returns the full default configuration, following the
// documented defaults of each component package.
func DefaultConfig() Config {
	return Config{
		Grid:       DefaultGridConfig(),
		Preprocess: preprocess.DefaultConfig(),
		Scoring:    scoring.DefaultConfig(),
		Cluster:    cluster.DefaultConfig(),
	}
}

// ConfigForQuality mirrors the teacher's content-aware preset pattern
// (AlignmentConfigForContent/ComparisonConfigForContent), applied here to
// a signal-quality axis instead of a content-type axis: "low" relaxes
// thresholds for noisy input, "high" tightens them for clean input.
func ConfigForQuality(level string) Config {
	cfg := DefaultConfig()
	cfg.Preprocess = preprocess.ConfigForQuality(level)
	switch level {
	case "low":
		cfg.Scoring.RlapMin = 3.0
		cfg.Scoring.LapMin = 0.2
		cfg.Cluster.RlapCCCThreshold = 1.2
	case "high":
		cfg.Scoring.RlapMin = 5.0
		cfg.Scoring.LapMin = 0.4
		cfg.Cluster.RlapCCCThreshold = 2.5
	}
	return cfg
}
