// Package statistics summarises sampled category frequencies.
package statistics

import (
	"fmt"
	"math"
)

// z95 is the two-sided 95% normal quantile.
const z95 = 1.96

// Proportion is a binomial estimate: Hits successes out of Trials.
type Proportion struct {
	Hits   int
	Trials int
}

// Estimate returns the observed fraction.
func (p Proportion) Estimate() float64 {
	if p.Trials == 0 {
		return 0
	}
	return float64(p.Hits) / float64(p.Trials)
}

// Variance returns the per-trial Bernoulli variance p(1-p).
func (p Proportion) Variance() float64 {
	f := p.Estimate()
	return f * (1 - f)
}

// StdError returns the standard error of the estimate.
func (p Proportion) StdError() float64 {
	if p.Trials == 0 {
		return 0
	}
	return math.Sqrt(p.Variance() / float64(p.Trials))
}

// Margin95 returns the half-width of the normal 95% interval.
func (p Proportion) Margin95() float64 {
	return z95 * p.StdError()
}

// ConfidenceInterval95 returns the Wilson score interval, which stays inside
// [0, 1] and behaves for rare categories where the normal interval collapses.
func (p Proportion) ConfidenceInterval95() (float64, float64) {
	if p.Trials == 0 {
		return 0, 1
	}
	n := float64(p.Trials)
	f := p.Estimate()
	z2 := z95 * z95

	denom := 1 + z2/n
	centre := (f + z2/(2*n)) / denom
	half := z95 * math.Sqrt(f*(1-f)/n+z2/(4*n*n)) / denom
	return math.Max(0, centre-half), math.Min(1, centre+half)
}

// Contains reports whether x lies in the 95% Wilson interval.
func (p Proportion) Contains(x float64) bool {
	low, high := p.ConfidenceInterval95()
	return x >= low && x <= high
}

// Validate checks internal consistency.
func (p Proportion) Validate() error {
	if p.Trials < 0 || p.Hits < 0 {
		return fmt.Errorf("negative counts: %d/%d", p.Hits, p.Trials)
	}
	if p.Hits > p.Trials {
		return fmt.Errorf("hits %d exceed trials %d", p.Hits, p.Trials)
	}
	return nil
}

// String formats the estimate as a percentage with its margin.
func (p Proportion) String() string {
	return fmt.Sprintf("%.3f%% ±%.3f", 100*p.Estimate(), 100*p.Margin95())
}
