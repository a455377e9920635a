// Package driftconfig provides the Config struct and loader for
// .driftscan.yaml configuration files.
package driftconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/modelwatch/driftscan/internal/drift"
)

// Default data source paths. Threshold and window defaults live in the
// drift package alongside the scoring policy they belong to.
const (
	DefaultReferencePath  = "data/reference_data.csv"
	DefaultProductionPath = "data/production_requests.csv"
)

// DataConfig holds the data source paths and the production window.
type DataConfig struct {
	Reference  string `yaml:"reference,omitempty"`
	Production string `yaml:"production,omitempty"`
	Window     int    `yaml:"window,omitempty"`
}

// AnalysisConfig holds the feature list and scoring thresholds.
type AnalysisConfig struct {
	Features           []string `yaml:"features,omitempty"`
	SignificanceLevel  float64  `yaml:"significance_level,omitempty"`
	DetectionThreshold float64  `yaml:"detection_threshold,omitempty"`
	AttentionThreshold float64  `yaml:"attention_threshold,omitempty"`
	StableThreshold    float64  `yaml:"stable_threshold,omitempty"`
}

// Config is the top-level configuration loaded from .driftscan.yaml.
type Config struct {
	Data     DataConfig     `yaml:"data,omitempty"`
	Analysis AnalysisConfig `yaml:"analysis,omitempty"`
}

// New returns a Config with all defaults populated.
func New() *Config {
	return &Config{
		Data: DataConfig{
			Reference:  DefaultReferencePath,
			Production: DefaultProductionPath,
			Window:     drift.DefaultWindowSize,
		},
		Analysis: AnalysisConfig{
			Features:           append([]string(nil), drift.DefaultFeatures...),
			SignificanceLevel:  drift.DefaultSignificanceLevel,
			DetectionThreshold: drift.DefaultDetectionThreshold,
			AttentionThreshold: drift.DefaultAttentionThreshold,
			StableThreshold:    drift.DefaultStableThreshold,
		},
	}
}

// Load finds .driftscan.yaml by walking up from startDir (max 10
// levels), unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error. Real
// I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*Config, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading .driftscan.yaml: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .driftscan.yaml: %w", err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .driftscan.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".driftscan.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst. A threshold
// cannot be set to exactly zero via the file; none of the policy knobs
// have a meaningful zero value.
func mergeConfig(dst, src *Config) {
	if src.Data.Reference != "" {
		dst.Data.Reference = src.Data.Reference
	}
	if src.Data.Production != "" {
		dst.Data.Production = src.Data.Production
	}
	if src.Data.Window > 0 {
		dst.Data.Window = src.Data.Window
	}

	if len(src.Analysis.Features) > 0 {
		dst.Analysis.Features = src.Analysis.Features
	}
	if src.Analysis.SignificanceLevel > 0 {
		dst.Analysis.SignificanceLevel = src.Analysis.SignificanceLevel
	}
	if src.Analysis.DetectionThreshold > 0 {
		dst.Analysis.DetectionThreshold = src.Analysis.DetectionThreshold
	}
	if src.Analysis.AttentionThreshold > 0 {
		dst.Analysis.AttentionThreshold = src.Analysis.AttentionThreshold
	}
	if src.Analysis.StableThreshold > 0 {
		dst.Analysis.StableThreshold = src.Analysis.StableThreshold
	}
}

// Analyzer constructs a drift.Analyzer wired from this configuration.
func (c *Config) Analyzer() *drift.Analyzer {
	a := drift.NewAnalyzer(c.Analysis.Features)
	a.WindowSize = c.Data.Window
	a.AttentionThreshold = c.Analysis.AttentionThreshold
	a.Scorer.SignificanceLevel = c.Analysis.SignificanceLevel
	a.Scorer.DetectionThreshold = c.Analysis.DetectionThreshold
	a.Recommender.AttentionThreshold = c.Analysis.AttentionThreshold
	a.Recommender.StableThreshold = c.Analysis.StableThreshold
	return a
}
