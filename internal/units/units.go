// Package units converts wind speed and power values into the SI units the
// curve transformations work in (m/s and W).
package units

import (
	"fmt"

	"github.com/fsonmez/windpowerlib/internal/powercurve"
)

// Conversion factors to m/s and W.
const (
	kmhToMS   = 1.0 / 3.6
	mphToMS   = 0.44704
	knotsToMS = 0.514444
	kwToW     = 1e3
	mwToW     = 1e6
)

// WindSpeedToMS converts a wind speed value to m/s. An empty unit means the
// value is already in m/s.
func WindSpeedToMS(value float64, unit string) (float64, error) {
	switch unit {
	case "", "m/s":
		return value, nil
	case "km/h":
		return value * kmhToMS, nil
	case "mph":
		return value * mphToMS, nil
	case "knots":
		return value * knotsToMS, nil
	default:
		return 0, fmt.Errorf("unknown wind speed unit: %s (supported: m/s, km/h, mph, knots)", unit)
	}
}

// PowerToWatts converts a power value to W. An empty unit means the value is
// already in W.
func PowerToWatts(value float64, unit string) (float64, error) {
	switch unit {
	case "", "W":
		return value, nil
	case "kW":
		return value * kwToW, nil
	case "MW":
		return value * mwToW, nil
	default:
		return 0, fmt.Errorf("unknown power unit: %s (supported: W, kW, MW)", unit)
	}
}

// ConvertCurve returns a copy of the curve with wind speeds in m/s and power
// in W. Empty units leave the respective axis untouched.
func ConvertCurve(curve powercurve.Curve, windSpeedUnit, powerUnit string) (powercurve.Curve, error) {
	out := make(powercurve.Curve, len(curve))
	for i, p := range curve {
		ws, err := WindSpeedToMS(p.WindSpeed, windSpeedUnit)
		if err != nil {
			return nil, err
		}
		power, err := PowerToWatts(p.Power, powerUnit)
		if err != nil {
			return nil, err
		}
		out[i] = powercurve.Point{WindSpeed: ws, Power: power}
	}
	return out, nil
}
