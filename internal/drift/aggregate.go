package drift

// Severity buckets the overall drift score for reporting.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// MonitoringLevel mirrors the severity tiers under operational names,
// using the same boundaries.
type MonitoringLevel string

const (
	LevelNormal   MonitoringLevel = "normal"
	LevelWarning  MonitoringLevel = "warning"
	LevelCritical MonitoringLevel = "critical"
)

// Summary is the aggregate view over all per-feature results.
type Summary struct {
	OverallScore      float64
	Severity          Severity
	SignificantDrifts int
	Level             MonitoringLevel
	RequiresAttention bool
}

// Aggregate combines per-feature results into an overall score and
// classification. Pure function of its inputs. The overall score is the
// unweighted mean of the per-feature drift scores; every feature
// contributes equally. An empty result list yields an overall score of
// zero (and therefore low/normal), a deliberate choice so a run over an
// empty feature configuration still produces a well-formed report.
func Aggregate(results []FeatureResult, attentionThreshold float64) Summary {
	var sum float64
	significant := 0
	for _, r := range results {
		sum += r.Drift.DriftScore
		if r.Drift.IsSignificant {
			significant++
		}
	}

	overall := 0.0
	if len(results) > 0 {
		overall = sum / float64(len(results))
	}

	return Summary{
		OverallScore:      overall,
		Severity:          classifySeverity(overall),
		SignificantDrifts: significant,
		Level:             classifyLevel(overall),
		RequiresAttention: significant > 0 || overall > attentionThreshold,
	}
}

// classifySeverity places a score on a boundary into the upper tier:
// exactly 0.2 is medium, exactly 0.5 is high.
func classifySeverity(overall float64) Severity {
	switch {
	case overall < SeverityMediumBound:
		return SeverityLow
	case overall < SeverityHighBound:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

func classifyLevel(overall float64) MonitoringLevel {
	switch {
	case overall < SeverityMediumBound:
		return LevelNormal
	case overall < SeverityHighBound:
		return LevelWarning
	default:
		return LevelCritical
	}
}
