package statistics

import (
	"math"
	"testing"
)

func TestProportion_Empty(t *testing.T) {
	var p Proportion

	if p.Estimate() != 0 {
		t.Errorf("Expected estimate 0, got %f", p.Estimate())
	}
	if p.StdError() != 0 {
		t.Errorf("Expected std error 0, got %f", p.StdError())
	}
	low, high := p.ConfidenceInterval95()
	if low != 0 || high != 1 {
		t.Errorf("Expected [0, 1] for no trials, got [%f, %f]", low, high)
	}
}

func TestProportion_Estimate(t *testing.T) {
	p := Proportion{Hits: 25, Trials: 100}

	if math.Abs(p.Estimate()-0.25) > 1e-12 {
		t.Errorf("Expected 0.25, got %f", p.Estimate())
	}
	if math.Abs(p.Variance()-0.1875) > 1e-12 {
		t.Errorf("Expected variance 0.1875, got %f", p.Variance())
	}
	wantSE := math.Sqrt(0.1875 / 100)
	if math.Abs(p.StdError()-wantSE) > 1e-12 {
		t.Errorf("Expected std error %f, got %f", wantSE, p.StdError())
	}
	if math.Abs(p.Margin95()-1.96*wantSE) > 1e-12 {
		t.Errorf("Expected margin %f, got %f", 1.96*wantSE, p.Margin95())
	}
}

func TestProportion_ConfidenceInterval(t *testing.T) {
	p := Proportion{Hits: 50, Trials: 100}

	low, high := p.ConfidenceInterval95()
	if math.Abs((low+high)/2-0.5) > 1e-9 {
		t.Errorf("Interval not symmetric around 0.5: [%f, %f]", low, high)
	}
	if high-low <= 0 {
		t.Errorf("Interval should have positive width, got %f", high-low)
	}
	if !p.Contains(0.45) || p.Contains(0.7) {
		t.Errorf("Unexpected containment for [%f, %f]", low, high)
	}
}

func TestProportion_RareCategoryInterval(t *testing.T) {
	// No straight flushes in a small sample still leaves room for them.
	p := Proportion{Hits: 0, Trials: 1000}

	low, high := p.ConfidenceInterval95()
	if low > 1e-12 {
		t.Errorf("Expected lower bound near 0, got %g", low)
	}
	if high <= 0 || high > 0.01 {
		t.Errorf("Expected small positive upper bound, got %f", high)
	}
	if p.Margin95() != 0 {
		t.Errorf("Normal margin should collapse to 0, got %f", p.Margin95())
	}
}

func TestProportion_Validate(t *testing.T) {
	if err := (Proportion{Hits: 3, Trials: 10}).Validate(); err != nil {
		t.Errorf("Expected valid, got %v", err)
	}
	if err := (Proportion{Hits: 11, Trials: 10}).Validate(); err == nil {
		t.Error("Expected error for hits above trials")
	}
	if err := (Proportion{Hits: -1, Trials: 10}).Validate(); err == nil {
		t.Error("Expected error for negative hits")
	}
}

func TestProportion_String(t *testing.T) {
	got := Proportion{Hits: 1, Trials: 4}.String()
	want := "25.000% ±42.435"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
