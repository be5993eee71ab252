// Package powercurve transforms discretized wind turbine power curves.
// It provides Gaussian smoothing, which accounts for wind speed variability
// not captured by test bench measurements, and wake loss application, which
// reduces output to reflect aerodynamic interference within a wind farm.
// All transformations are pure: they return newly built curves and never
// mutate their input.
package powercurve

import (
	"math"
)

// MinSmoothSamples is the minimum number of samples a curve needs before it
// can be smoothed. The tail step estimator reads the 5th and 6th sample from
// the end of the curve.
const MinSmoothSamples = 6

// Point is a single power curve sample.
type Point struct {
	WindSpeed float64 `json:"wind_speed"` // m/s
	Power     float64 `json:"power"`      // W
}

// Curve is an ordered sequence of power curve samples with strictly
// increasing wind speeds and non-negative power values.
type Curve []Point

// Validate checks the curve invariants: strictly ascending wind speeds
// (no duplicates) and non-negative power.
func (c Curve) Validate() error {
	if len(c) == 0 {
		return newConfigError("power curve is empty")
	}

	for i, p := range c {
		if p.Power < 0 {
			return newConfigError("power curve value at wind speed %g is negative", p.WindSpeed)
		}
		if i > 0 && p.WindSpeed <= c[i-1].WindSpeed {
			return newConfigError("power curve wind speeds must be strictly increasing (sample %d: %g after %g)",
				i, p.WindSpeed, c[i-1].WindSpeed)
		}
	}

	return nil
}

// Clone returns an independent copy of the curve.
func (c Curve) Clone() Curve {
	out := make(Curve, len(c))
	copy(out, c)
	return out
}

// WindSpeeds returns the wind speed values of the curve in order.
func (c Curve) WindSpeeds() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.WindSpeed
	}
	return out
}

// Powers returns the power values of the curve in order.
func (c Curve) Powers() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Power
	}
	return out
}

// InterpolatePower returns the power at the given wind speed by linear
// interpolation between the two surrounding samples. Wind speeds outside the
// sampled range yield 0; there is no extrapolation.
func (c Curve) InterpolatePower(windSpeed float64) float64 {
	n := len(c)
	if n == 0 || windSpeed < c[0].WindSpeed || windSpeed > c[n-1].WindSpeed {
		return 0
	}

	// Binary search for the first sample at or above windSpeed.
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if c[mid].WindSpeed < windSpeed {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if c[lo].WindSpeed == windSpeed {
		return c[lo].Power
	}

	left, right := c[lo-1], c[lo]
	frac := (windSpeed - left.WindSpeed) / (right.WindSpeed - left.WindSpeed)
	return left.Power + frac*(right.Power-left.Power)
}

// EfficiencyPoint is a single wind farm efficiency sample.
type EfficiencyPoint struct {
	WindSpeed  float64 `json:"wind_speed"` // m/s
	Efficiency float64 `json:"efficiency"` // dimensionless, in [0, 1]
}

// EfficiencyCurve maps wind speed to wind farm efficiency. It may be sampled
// more sparsely than the power curve it is applied to.
type EfficiencyCurve []EfficiencyPoint

// Validate checks for strictly ascending wind speeds and efficiencies
// within [0, 1].
func (c EfficiencyCurve) Validate() error {
	if len(c) == 0 {
		return newConfigError("efficiency curve is empty")
	}

	for i, p := range c {
		if p.Efficiency < 0 || p.Efficiency > 1 {
			return newConfigError("efficiency at wind speed %g is %g, must be within [0, 1]", p.WindSpeed, p.Efficiency)
		}
		if i > 0 && p.WindSpeed <= c[i-1].WindSpeed {
			return newConfigError("efficiency curve wind speeds must be strictly increasing (sample %d: %g after %g)",
				i, p.WindSpeed, c[i-1].WindSpeed)
		}
	}

	return nil
}

// gaussian evaluates the normal probability density at x for the given
// standard deviation and mean. A zero standard deviation yields NaN, which
// callers recover by substituting a zero contribution.
func gaussian(x, standardDeviation, mean float64) float64 {
	return 1 / (standardDeviation * math.Sqrt(2*math.Pi)) *
		math.Exp(-math.Pow(x-mean, 2)/(2*math.Pow(standardDeviation, 2)))
}
