// Package recommend turns aggregate drift metrics into ordered,
// human-readable recommendations.
package recommend

import "fmt"

// Engine evaluates the recommendation rules. The thresholds are
// independent of the severity tiers.
type Engine struct {
	// AttentionThreshold triggers the performance-monitoring
	// suggestion when the overall score exceeds it.
	AttentionThreshold float64
	// StableThreshold emits the stable confirmation when the overall
	// score is below it.
	StableThreshold float64
}

// NewEngine creates a recommendation engine with the given thresholds.
func NewEngine(attentionThreshold, stableThreshold float64) *Engine {
	return &Engine{
		AttentionThreshold: attentionThreshold,
		StableThreshold:    stableThreshold,
	}
}

// Recommend evaluates the rules in order. The rules are independent:
// any subset may fire, including none.
func (e *Engine) Recommend(significantDrifts int, overallScore float64) []string {
	recs := []string{}

	if significantDrifts > 0 {
		recs = append(recs,
			fmt.Sprintf("🚨 Detected significant drift in %d feature(s)", significantDrifts),
			"Consider retraining the model with recent data")
	}
	if overallScore > e.AttentionThreshold {
		recs = append(recs, "Monitor model performance metrics closely")
	}
	if overallScore < e.StableThreshold {
		recs = append(recs, "✅ Data distribution is stable")
	}

	return recs
}
