// Package drift scores distributional shift between a reference dataset
// and a window of recent production data, one two-sample
// Kolmogorov–Smirnov test per configured feature, and aggregates the
// per-feature results into an overall severity and monitoring status.
package drift

import (
	"fmt"
	"math"

	"github.com/modelwatch/driftscan/internal/dataset"
	"github.com/modelwatch/driftscan/internal/statistics"
)

// Policy defaults. The significance, detection, and attention thresholds
// are independent knobs, not derived from one another. These are the
// single source of truth — driftconfig.New() references them and no
// other code should duplicate the values.
const (
	DefaultWindowSize         = 100
	DefaultSignificanceLevel  = 0.05
	DefaultDetectionThreshold = 0.1
	DefaultAttentionThreshold = 0.3
	DefaultStableThreshold    = 0.1

	// Severity tier boundaries shared by drift_severity and
	// monitoring_status.level. A score exactly on a boundary falls
	// into the upper tier.
	SeverityMediumBound = 0.2
	SeverityHighBound   = 0.5
)

// DefaultFeatures is the feature set analyzed when no explicit list is
// configured.
var DefaultFeatures = []string{"sepal_length", "sepal_width", "petal_length", "petal_width"}

// FeatureDrift holds the drift test outcome for a single feature. The
// mean/std pairs are descriptive only and do not feed the score.
type FeatureDrift struct {
	KSStatistic    float64 `json:"ks_statistic"`
	PValue         float64 `json:"p_value"`
	DriftScore     float64 `json:"drift_score"`
	IsSignificant  bool    `json:"is_significant"`
	DriftDetected  bool    `json:"drift_detected"`
	ReferenceMean  float64 `json:"reference_mean"`
	ProductionMean float64 `json:"production_mean"`
	ReferenceStd   float64 `json:"reference_std"`
	ProductionStd  float64 `json:"production_std"`
}

// FeatureResult pairs a feature name with its drift outcome, preserving
// the configured feature order.
type FeatureResult struct {
	Feature string
	Drift   FeatureDrift
}

// Scorer runs the per-feature drift test. The feature list is injected
// at construction so the scorer works across schemas; it is never
// inferred from the data.
type Scorer struct {
	Features           []string
	SignificanceLevel  float64
	DetectionThreshold float64
}

// NewScorer returns a scorer over the given features with default
// thresholds. A nil or empty feature list selects DefaultFeatures.
func NewScorer(features []string) *Scorer {
	if len(features) == 0 {
		features = DefaultFeatures
	}
	return &Scorer{
		Features:           features,
		SignificanceLevel:  DefaultSignificanceLevel,
		DetectionThreshold: DefaultDetectionThreshold,
	}
}

// ScoreFeature runs the KS test for one feature and derives the
// normalized drift score and flags. The score doubles the KS statistic
// so the moderate KS range maps onto the full [0,1] reporting scale,
// saturating beyond D=0.5. The drift_detected flag uses a coarser
// threshold than significance so visible shift is still flagged at
// sample sizes too small to reach p<0.05.
func (s *Scorer) ScoreFeature(name string, ref, prod []float64) (FeatureDrift, error) {
	res, err := statistics.KolmogorovSmirnov(ref, prod)
	if err != nil {
		return FeatureDrift{}, Errorf(KindComputation, "feature %q: %w", name, err)
	}

	return FeatureDrift{
		KSStatistic:    res.Statistic,
		PValue:         res.PValue,
		DriftScore:     math.Min(res.Statistic*2, 1.0),
		IsSignificant:  res.PValue < s.SignificanceLevel,
		DriftDetected:  res.Statistic > s.DetectionThreshold,
		ReferenceMean:  statistics.Mean(ref),
		ProductionMean: statistics.Mean(prod),
		ReferenceStd:   statistics.PopStdDev(ref),
		ProductionStd:  statistics.PopStdDev(prod),
	}, nil
}

// ScoreTables scores every configured feature across the two tables, in
// configured order. A feature absent from either table is a schema
// error, never a silent skip.
func (s *Scorer) ScoreTables(ref, prod *dataset.Table) ([]FeatureResult, error) {
	results := make([]FeatureResult, 0, len(s.Features))
	for _, name := range s.Features {
		refCol, err := ref.Column(name)
		if err != nil {
			return nil, NewError(KindSchema, fmt.Errorf("reference dataset: %w", err))
		}
		prodCol, err := prod.Column(name)
		if err != nil {
			return nil, NewError(KindSchema, fmt.Errorf("production dataset: %w", err))
		}

		fd, err := s.ScoreFeature(name, refCol, prodCol)
		if err != nil {
			return nil, err
		}
		results = append(results, FeatureResult{Feature: name, Drift: fd})
	}
	return results, nil
}
