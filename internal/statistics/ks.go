// Package statistics provides the two-sample Kolmogorov–Smirnov test
// and the descriptive statistics used by the drift scorer.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// KSResult holds the outcome of a two-sample Kolmogorov–Smirnov test.
type KSResult struct {
	Statistic float64 `json:"statistic"`
	PValue    float64 `json:"p_value"`
}

// KolmogorovSmirnov runs a two-sample KS test. The statistic D is the
// maximum distance between the two samples' empirical CDFs, in [0,1].
// The p-value is the asymptotic probability of observing a gap at least
// this large under the null hypothesis that both samples come from the
// same distribution. Identical samples yield D=0 and p=1; constant or
// single-valued samples are valid inputs.
func KolmogorovSmirnov(ref, prod []float64) (KSResult, error) {
	if len(ref) == 0 {
		return KSResult{}, fmt.Errorf("ks: reference sample is empty")
	}
	if len(prod) == 0 {
		return KSResult{}, fmt.Errorf("ks: production sample is empty")
	}

	x := sortedCopy(ref)
	y := sortedCopy(prod)

	d := stat.KolmogorovSmirnov(x, nil, y, nil)

	n1 := float64(len(x))
	n2 := float64(len(y))
	ne := n1 * n2 / (n1 + n2) // effective sample size
	lambda := math.Sqrt(ne) * d

	return KSResult{
		Statistic: d,
		PValue:    kolmogorovPValue(lambda),
	}, nil
}

// kolmogorovPValue evaluates the asymptotic Kolmogorov distribution
// survival function:
//
//	Q(λ) = 2 · Σ_{k=1..∞} (-1)^{k-1} · exp(-2k²λ²)
//
// The alternating series converges slowly for small λ, where Q is 1 to
// within rounding anyway, so small arguments short-circuit.
func kolmogorovPValue(lambda float64) float64 {
	if lambda <= 0.05 {
		return 1.0
	}

	sum := 0.0
	sign := 1.0
	for k := 1; k <= 100; k++ {
		term := sign * math.Exp(-2*float64(k*k)*lambda*lambda)
		sum += term
		if math.Abs(term) < 1e-12 {
			break
		}
		sign = -sign
	}

	p := 2 * sum
	return math.Min(1, math.Max(0, p))
}

// Mean returns the arithmetic mean, or 0 for an empty sample.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	return stat.Mean(values, nil)
}

// PopStdDev returns the population standard deviation (normalized by N,
// not N-1; gonum's StdDev is the unbiased sample estimator). Returns 0
// for samples of fewer than two values.
func PopStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0.0
	}
	m := stat.Mean(values, nil)
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(n))
}

func sortedCopy(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}
