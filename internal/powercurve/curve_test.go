package powercurve

import (
	"math"
	"testing"
)

func TestCurve_Validate(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
		valid bool
	}{
		{"ascending", Curve{{1, 0}, {2, 100}, {3, 200}}, true},
		{"single sample", Curve{{5, 100}}, true},
		{"empty", Curve{}, false},
		{"duplicate wind speed", Curve{{1, 0}, {1, 100}}, false},
		{"descending", Curve{{2, 0}, {1, 100}}, false},
		{"negative power", Curve{{1, 0}, {2, -5}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.curve.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid curve, got error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestCurve_InterpolatePower(t *testing.T) {
	curve := Curve{{2, 0}, {4, 100}, {6, 400}, {8, 400}}

	tests := []struct {
		windSpeed float64
		expected  float64
	}{
		{2, 0},     // exact sample
		{4, 100},   // exact sample
		{3, 50},    // midpoint
		{5, 250},   // midpoint
		{7, 400},   // flat segment
		{1, 0},     // below range
		{9, 0},     // above range, no extrapolation
		{8, 400},   // upper boundary
		{4.5, 175}, // quarter point
	}

	for _, tt := range tests {
		if got := curve.InterpolatePower(tt.windSpeed); math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("InterpolatePower(%g) = %g, want %g", tt.windSpeed, got, tt.expected)
		}
	}
}

func TestCurve_CloneIsIndependent(t *testing.T) {
	curve := Curve{{1, 10}, {2, 20}}
	clone := curve.Clone()

	clone[0].Power = 999
	if curve[0].Power != 10 {
		t.Error("Mutating the clone changed the source curve")
	}
}

func TestEfficiencyCurve_Validate(t *testing.T) {
	tests := []struct {
		name  string
		curve EfficiencyCurve
		valid bool
	}{
		{"valid", EfficiencyCurve{{3, 0.5}, {5, 1.0}}, true},
		{"empty", EfficiencyCurve{}, false},
		{"above one", EfficiencyCurve{{3, 1.5}}, false},
		{"negative", EfficiencyCurve{{3, -0.1}}, false},
		{"duplicate wind speed", EfficiencyCurve{{3, 0.5}, {3, 0.6}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.curve.Validate()
			if tt.valid && err != nil {
				t.Errorf("Expected valid curve, got error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestGaussian(t *testing.T) {
	// Standard normal density at 0 is 1/sqrt(2*pi).
	got := gaussian(0, 1, 0)
	want := 1 / math.Sqrt(2*math.Pi)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("gaussian(0, 1, 0) = %g, want %g", got, want)
	}

	// Symmetric around the mean.
	if math.Abs(gaussian(1.5, 2, 0.5)-gaussian(-0.5, 2, 0.5)) > 1e-12 {
		t.Error("Gaussian density not symmetric around its mean")
	}

	// Zero standard deviation is degenerate.
	if !math.IsNaN(gaussian(0, 0, 0)) {
		t.Error("Expected NaN for zero standard deviation at the mean")
	}
}
