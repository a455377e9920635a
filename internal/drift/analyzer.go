package drift

import (
	"log/slog"

	"github.com/modelwatch/driftscan/internal/dataset"
	"github.com/modelwatch/driftscan/internal/recommend"
)

// Report is the full analysis document. Constructed once per run and
// immutable once built.
type Report struct {
	DriftAnalysis    DriftAnalysis    `json:"drift_analysis"`
	DataSummary      DataSummary      `json:"data_summary"`
	Recommendations  []string         `json:"recommendations"`
	MonitoringStatus MonitoringStatus `json:"monitoring_status"`
}

// DriftAnalysis aggregates the per-feature results.
type DriftAnalysis struct {
	OverallDriftScore float64                 `json:"overall_drift_score"`
	DriftSeverity     Severity                `json:"drift_severity"`
	SignificantDrifts int                     `json:"significant_drifts"`
	TotalFeatures     int                     `json:"total_features"`
	FeatureAnalysis   map[string]FeatureDrift `json:"feature_analysis"`
}

// DataSummary records the sample sizes that fed the analysis.
// ProductionSamples counts rows after windowing.
type DataSummary struct {
	ReferenceSamples  int `json:"reference_samples"`
	ProductionSamples int `json:"production_samples"`
	AnalysisLimit     int `json:"analysis_limit"`
}

// MonitoringStatus is the operational classification of the run.
type MonitoringStatus struct {
	Level             MonitoringLevel `json:"level"`
	RequiresAttention bool            `json:"requires_attention"`
}

// Analyzer runs the full pipeline over two loaded tables: windowing,
// per-feature scoring, aggregation, recommendations. Loading stays with
// the caller.
type Analyzer struct {
	Scorer             *Scorer
	WindowSize         int
	AttentionThreshold float64
	Recommender        *recommend.Engine
}

// NewAnalyzer returns an analyzer over the given features with default
// window size and thresholds.
func NewAnalyzer(features []string) *Analyzer {
	return &Analyzer{
		Scorer:             NewScorer(features),
		WindowSize:         DefaultWindowSize,
		AttentionThreshold: DefaultAttentionThreshold,
		Recommender:        recommend.NewEngine(DefaultAttentionThreshold, DefaultStableThreshold),
	}
}

// Run windows the production table to its most recent rows, scores
// every configured feature, and assembles the report. Any failure
// surfaces as an *AnalysisError; there is no partial report.
func (a *Analyzer) Run(ref, prod *dataset.Table) (*Report, error) {
	windowed := prod.Tail(a.WindowSize)
	slog.Debug("windowed production data",
		"total_rows", prod.Len(),
		"analyzed_rows", windowed.Len(),
		"window", a.WindowSize)

	results, err := a.Scorer.ScoreTables(ref, windowed)
	if err != nil {
		return nil, err
	}

	summary := Aggregate(results, a.AttentionThreshold)
	slog.Debug("aggregated drift results",
		"overall_score", summary.OverallScore,
		"severity", summary.Severity,
		"significant", summary.SignificantDrifts)

	analysis := make(map[string]FeatureDrift, len(results))
	for _, r := range results {
		analysis[r.Feature] = r.Drift
	}

	return &Report{
		DriftAnalysis: DriftAnalysis{
			OverallDriftScore: summary.OverallScore,
			DriftSeverity:     summary.Severity,
			SignificantDrifts: summary.SignificantDrifts,
			TotalFeatures:     len(results),
			FeatureAnalysis:   analysis,
		},
		DataSummary: DataSummary{
			ReferenceSamples:  ref.Len(),
			ProductionSamples: windowed.Len(),
			AnalysisLimit:     a.WindowSize,
		},
		Recommendations: a.Recommender.Recommend(summary.SignificantDrifts, summary.OverallScore),
		MonitoringStatus: MonitoringStatus{
			Level:             summary.Level,
			RequiresAttention: summary.RequiresAttention,
		},
	}, nil
}
