package drift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resultsWithScores(scores ...float64) []FeatureResult {
	results := make([]FeatureResult, len(scores))
	for i, s := range scores {
		results[i] = FeatureResult{
			Feature: "f",
			Drift:   FeatureDrift{DriftScore: s},
		}
	}
	return results
}

func TestAggregate_OverallIsMeanOfScores(t *testing.T) {
	summary := Aggregate(resultsWithScores(0.0, 0.2, 0.4, 0.6), DefaultAttentionThreshold)
	assert.InDelta(t, 0.3, summary.OverallScore, 1e-12)
}

func TestAggregate_EmptyResults(t *testing.T) {
	summary := Aggregate(nil, DefaultAttentionThreshold)

	assert.Equal(t, 0.0, summary.OverallScore)
	assert.Equal(t, SeverityLow, summary.Severity)
	assert.Equal(t, LevelNormal, summary.Level)
	assert.Equal(t, 0, summary.SignificantDrifts)
	assert.False(t, summary.RequiresAttention)
}

func TestAggregate_SeverityTiers(t *testing.T) {
	tests := []struct {
		name     string
		overall  float64
		severity Severity
		level    MonitoringLevel
	}{
		{"zero", 0.0, SeverityLow, LevelNormal},
		{"just below medium", 0.19, SeverityLow, LevelNormal},
		{"exactly medium bound", 0.2, SeverityMedium, LevelWarning},
		{"mid medium", 0.35, SeverityMedium, LevelWarning},
		{"exactly high bound", 0.5, SeverityHigh, LevelCritical},
		{"max", 1.0, SeverityHigh, LevelCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Aggregate(resultsWithScores(tt.overall), DefaultAttentionThreshold)
			assert.Equal(t, tt.severity, summary.Severity)
			assert.Equal(t, tt.level, summary.Level)
		})
	}
}

func TestAggregate_SignificantCount(t *testing.T) {
	results := []FeatureResult{
		{Feature: "a", Drift: FeatureDrift{DriftScore: 0.1, IsSignificant: true}},
		{Feature: "b", Drift: FeatureDrift{DriftScore: 0.1, IsSignificant: false}},
		{Feature: "c", Drift: FeatureDrift{DriftScore: 0.1, IsSignificant: true}},
	}

	summary := Aggregate(results, DefaultAttentionThreshold)
	assert.Equal(t, 2, summary.SignificantDrifts)
}

func TestAggregate_RequiresAttention(t *testing.T) {
	tests := []struct {
		name        string
		results     []FeatureResult
		wantAttends bool
	}{
		{
			"no drift",
			resultsWithScores(0.0, 0.0),
			false,
		},
		{
			"significant count alone",
			[]FeatureResult{{Drift: FeatureDrift{DriftScore: 0.05, IsSignificant: true}}},
			true,
		},
		{
			"overall above threshold alone",
			resultsWithScores(0.4, 0.4),
			true,
		},
		{
			"overall exactly at threshold is not attention",
			resultsWithScores(0.3, 0.3),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Aggregate(tt.results, DefaultAttentionThreshold)
			assert.Equal(t, tt.wantAttends, summary.RequiresAttention)
		})
	}
}
