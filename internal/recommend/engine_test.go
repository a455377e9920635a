package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newEngine() *Engine {
	return NewEngine(0.3, 0.1)
}

func TestRecommend_AllRulesIndependent(t *testing.T) {
	tests := []struct {
		name        string
		significant int
		overall     float64
		want        []string
	}{
		{
			"stable",
			0, 0.0,
			[]string{"✅ Data distribution is stable"},
		},
		{
			"nothing fires in the quiet middle",
			0, 0.2,
			[]string{},
		},
		{
			"significant drift only",
			2, 0.15,
			[]string{
				"🚨 Detected significant drift in 2 feature(s)",
				"Consider retraining the model with recent data",
			},
		},
		{
			"high overall only",
			0, 0.45,
			[]string{"Monitor model performance metrics closely"},
		},
		{
			"significant and high overall",
			1, 0.5,
			[]string{
				"🚨 Detected significant drift in 1 feature(s)",
				"Consider retraining the model with recent data",
				"Monitor model performance metrics closely",
			},
		},
		{
			// Significant at small samples can coexist with a low
			// overall score; both the warning and the stable note fire.
			"significant with stable overall",
			1, 0.05,
			[]string{
				"🚨 Detected significant drift in 1 feature(s)",
				"Consider retraining the model with recent data",
				"✅ Data distribution is stable",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newEngine().Recommend(tt.significant, tt.overall)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecommend_ThresholdsAreStrict(t *testing.T) {
	e := newEngine()

	// Exactly at the attention threshold: no monitoring suggestion.
	assert.Empty(t, e.Recommend(0, 0.3))

	// Exactly at the stable threshold: no stable confirmation.
	assert.Empty(t, e.Recommend(0, 0.1))
}
