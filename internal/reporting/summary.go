package reporting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/modelwatch/driftscan/internal/drift"
)

// InterpretScore returns a plain-language label for a drift score (0–1).
func InterpretScore(score float64) string {
	switch {
	case score < 0.1:
		return "stable"
	case score < 0.2:
		return "minor shift"
	case score < 0.5:
		return "moderate drift"
	default:
		return "severe drift"
	}
}

// FormatSummary produces a plain-language rendering of the report for
// terminal reading. The JSON document remains the canonical output.
func FormatSummary(report *drift.Report) string {
	var b strings.Builder

	da := report.DriftAnalysis

	b.WriteString("=== Drift Analysis ===\n\n")
	b.WriteString(fmt.Sprintf("Overall Score: %.4f — %s\n", da.OverallDriftScore, InterpretScore(da.OverallDriftScore)))
	b.WriteString(fmt.Sprintf("Severity:      %s\n", da.DriftSeverity))
	b.WriteString(fmt.Sprintf("Monitoring:    %s", report.MonitoringStatus.Level))
	if report.MonitoringStatus.RequiresAttention {
		b.WriteString(" (requires attention)")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Significant:   %d of %d feature(s)\n", da.SignificantDrifts, da.TotalFeatures))
	b.WriteString(fmt.Sprintf("Samples:       %d reference, %d production (window %d)\n",
		report.DataSummary.ReferenceSamples,
		report.DataSummary.ProductionSamples,
		report.DataSummary.AnalysisLimit))

	if len(da.FeatureAnalysis) > 0 {
		b.WriteString("\nPer-Feature Results:\n")

		names := make([]string, 0, len(da.FeatureAnalysis))
		for name := range da.FeatureAnalysis {
			names = append(names, name)
		}
		// Map iteration order is random; sort for stable output.
		sort.Strings(names)

		for _, name := range names {
			fd := da.FeatureAnalysis[name]
			icon := "✓"
			if fd.DriftDetected {
				icon = "✗"
			}
			b.WriteString(fmt.Sprintf("  %s %s: D=%.4f p=%.4f score=%.4f (mean %.3f→%.3f)\n",
				icon, name, fd.KSStatistic, fd.PValue, fd.DriftScore,
				fd.ReferenceMean, fd.ProductionMean))
		}
	}

	if len(report.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range report.Recommendations {
			b.WriteString(fmt.Sprintf("  - %s\n", rec))
		}
	}

	return b.String()
}
