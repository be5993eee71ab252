package powercurve

import (
	"math"
	"sort"
)

// WakeLossMethod selects how wake losses are applied to a power curve.
type WakeLossMethod string

const (
	// WakeLossConstantEfficiency scales every power value by a single
	// wind farm efficiency factor.
	WakeLossConstantEfficiency WakeLossMethod = "constant_efficiency"
	// WakeLossWindEfficiencyCurve scales power values by a wind speed
	// dependent efficiency curve.
	WakeLossWindEfficiencyCurve WakeLossMethod = "wind_efficiency_curve"
)

// ValidWakeLossMethods returns all recognized wake loss methods.
func ValidWakeLossMethods() []WakeLossMethod {
	return []WakeLossMethod{WakeLossConstantEfficiency, WakeLossWindEfficiencyCurve}
}

// WakeLossConfig configures ApplyWakeLosses. Exactly one of Efficiency and
// EfficiencyCurve must be populated, matching the selected method.
type WakeLossConfig struct {
	Method WakeLossMethod
	// Efficiency is the constant wind farm efficiency factor, required by
	// WakeLossConstantEfficiency.
	Efficiency float64
	// EfficiencyCurve is the wind speed dependent efficiency, required by
	// WakeLossWindEfficiencyCurve.
	EfficiencyCurve EfficiencyCurve
}

// ApplyWakeLosses scales a power curve by the configured wind farm
// efficiency and returns the reduced curve sorted by wind speed. The input
// curve is never modified.
func ApplyWakeLosses(curve Curve, cfg WakeLossConfig) (Curve, error) {
	switch cfg.Method {
	case WakeLossConstantEfficiency:
		if len(cfg.EfficiencyCurve) != 0 {
			return nil, newInvalidConfigError("efficiency must be a single factor when the wake loss method is %q, not a curve",
				WakeLossConstantEfficiency)
		}
		if cfg.Efficiency <= 0 {
			return nil, newInvalidConfigError("efficiency factor must be set when the wake loss method is %q",
				WakeLossConstantEfficiency)
		}

		reduced := make(Curve, len(curve))
		for i, p := range curve {
			reduced[i] = Point{WindSpeed: p.WindSpeed, Power: p.Power * cfg.Efficiency}
		}
		return reduced, nil

	case WakeLossWindEfficiencyCurve:
		if cfg.Efficiency != 0 {
			return nil, newInvalidConfigError("efficiency must be a curve when the wake loss method is %q, not a single factor",
				WakeLossWindEfficiencyCurve)
		}
		if len(cfg.EfficiencyCurve) == 0 {
			return nil, newInvalidConfigError("efficiency curve must be set when the wake loss method is %q",
				WakeLossWindEfficiencyCurve)
		}
		return applyEfficiencyCurve(curve, cfg.EfficiencyCurve), nil

	default:
		return nil, newInvalidConfigError("wake loss method is %q but should be %q or %q",
			cfg.Method, WakeLossConstantEfficiency, WakeLossWindEfficiencyCurve)
	}
}

// applyEfficiencyCurve aligns the power curve and the efficiency curve on
// the union of their wind speeds, fills efficiency gaps, multiplies, and
// drops rows where either side stays undefined.
func applyEfficiencyCurve(curve Curve, efficiency EfficiencyCurve) Curve {
	powerAt := make(map[float64]float64, len(curve))
	for _, p := range curve {
		powerAt[p.WindSpeed] = p.Power
	}
	efficiencyAt := make(map[float64]float64, len(efficiency))
	for _, p := range efficiency {
		efficiencyAt[p.WindSpeed] = p.Efficiency
	}

	// Union of both curves' wind speed keys, ascending.
	union := make([]float64, 0, len(curve)+len(efficiency))
	seen := make(map[float64]bool, len(curve)+len(efficiency))
	for ws := range powerAt {
		if !seen[ws] {
			seen[ws] = true
			union = append(union, ws)
		}
	}
	for ws := range efficiencyAt {
		if !seen[ws] {
			seen[ws] = true
			union = append(union, ws)
		}
	}
	sort.Float64s(union)

	// Efficiency gaps between two defined samples are filled by position
	// among the aligned rows, not by wind speed distance. Unevenly spaced
	// efficiency curves rely on this positional fill, so keep it that way.
	aligned := make([]float64, len(union))
	for i, ws := range union {
		if e, ok := efficiencyAt[ws]; ok {
			aligned[i] = e
		} else {
			aligned[i] = math.NaN()
		}
	}
	interpolateByPosition(aligned)

	// Rows with no power sample (efficiency-only wind speeds) or no filled
	// efficiency (leading/trailing gaps beyond the efficiency curve's
	// support) are dropped.
	reduced := make(Curve, 0, len(union))
	for i, ws := range union {
		power, ok := powerAt[ws]
		if !ok || math.IsNaN(aligned[i]) {
			continue
		}
		reduced = append(reduced, Point{WindSpeed: ws, Power: power * aligned[i]})
	}

	return reduced
}

// interpolateByPosition fills NaN runs between two defined values linearly
// by slice position. Leading and trailing NaN runs stay NaN.
func interpolateByPosition(values []float64) {
	lastDefined := -1
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if lastDefined >= 0 && i-lastDefined > 1 {
			span := float64(i - lastDefined)
			delta := v - values[lastDefined]
			for j := lastDefined + 1; j < i; j++ {
				values[j] = values[lastDefined] + delta*float64(j-lastDefined)/span
			}
		}
		lastDefined = i
	}
}
