package powercurve

import (
	"math"
)

// SigmaMethod selects how the normalized standard deviation of the Gaussian
// smoothing kernel is determined.
type SigmaMethod string

const (
	// SigmaTurbulenceIntensity uses the turbulence intensity at hub height
	// supplied in the config.
	SigmaTurbulenceIntensity SigmaMethod = "turbulence_intensity"
	// SigmaStaffell uses the fixed normalized deviation 0.2 with an additive
	// floor of 0.6 on the per-point deviation.
	SigmaStaffell SigmaMethod = "Staffell"
	// SigmaNorgaard is accepted as a name but rejected at smoothing time;
	// no formula is wired in for it.
	SigmaNorgaard SigmaMethod = "Norgaard"
)

// ValidSigmaMethods returns all recognized sigma methods.
func ValidSigmaMethods() []SigmaMethod {
	return []SigmaMethod{SigmaTurbulenceIntensity, SigmaStaffell, SigmaNorgaard}
}

const (
	// DefaultBlockWidth is the default width of the moving block used to
	// sample the smoothing window.
	DefaultBlockWidth = 0.5

	// windowHalfWidth is the half width in m/s of the convolution window
	// around each wind speed.
	windowHalfWidth = 15.0

	// tailExtensionLimit is the wind speed in m/s the curve is extended to
	// with zero power. Power is zero well above cut-out speed, and the
	// extension gives the kernel enough support near the original tail.
	tailExtensionLimit = 40.0

	staffellNormalizedSigma = 0.2
	staffellSigmaFloor      = 0.6
)

// SmoothConfig configures Smooth.
type SmoothConfig struct {
	// BlockWidth is the sampling step of the convolution window. Values
	// <= 0 fall back to DefaultBlockWidth.
	BlockWidth float64
	// Method selects the normalized standard deviation of the kernel.
	Method SigmaMethod
	// Mean shifts the Gaussian kernel; normally 0.
	Mean float64
	// TurbulenceIntensity is the turbulence intensity at hub height.
	// Required (> 0) when Method is SigmaTurbulenceIntensity.
	TurbulenceIntensity float64
}

// DefaultSmoothConfig returns a config with the default block width and the
// turbulence intensity method selected. The caller still has to set
// TurbulenceIntensity.
func DefaultSmoothConfig() SmoothConfig {
	return SmoothConfig{
		BlockWidth: DefaultBlockWidth,
		Method:     SigmaTurbulenceIntensity,
	}
}

// Smooth convolves the power curve with a wind speed dependent Gaussian
// kernel and returns the smoothed curve. The input curve is extended at its
// upper tail with zero power samples up to tailExtensionLimit, so the result
// is at least as long as the input. The input itself is never modified.
func Smooth(curve Curve, cfg SmoothConfig) (Curve, error) {
	if len(curve) < MinSmoothSamples {
		return nil, newConfigError("power curve has %d samples, smoothing needs at least %d", len(curve), MinSmoothSamples)
	}

	if cfg.BlockWidth <= 0 {
		cfg.BlockWidth = DefaultBlockWidth
	}

	normalizedSigma, err := normalizedSigmaFor(cfg)
	if err != nil {
		return nil, err
	}

	// Tail spacing of the input curve, assumed uniform near the end.
	n := len(curve)
	step := curve[n-5].WindSpeed - curve[n-6].WindSpeed
	if step <= 0 {
		return nil, newConfigError("power curve tail step is %g, must be positive", step)
	}

	// Extend the upper tail with zero power until the curve reaches the
	// extension limit. step > 0 guarantees termination.
	extended := curve.Clone()
	for extended[len(extended)-1].WindSpeed < tailExtensionLimit {
		extended = append(extended, Point{
			WindSpeed: extended[len(extended)-1].WindSpeed + step,
			Power:     0,
		})
	}

	// Number of window samples matching an arange over
	// [-windowHalfWidth, windowHalfWidth] with step BlockWidth. A small
	// tolerance keeps the endpoint included for block widths that tile the
	// window exactly.
	windowSamples := int(math.Floor(2*windowHalfWidth/cfg.BlockWidth+1e-9)) + 1

	smoothed := make(Curve, len(extended))
	for i, p := range extended {
		sigma := p.WindSpeed * normalizedSigma
		if cfg.Method == SigmaStaffell {
			sigma += staffellSigmaFloor
		}

		sum := 0.0
		for k := 0; k < windowSamples; k++ {
			w := p.WindSpeed - windowHalfWidth + float64(k)*cfg.BlockWidth
			sum += cfg.BlockWidth * extended.InterpolatePower(w) * gaussian(p.WindSpeed-w, sigma, cfg.Mean)
		}

		// sigma == 0 (wind speed 0 under the turbulence intensity method)
		// makes the kernel degenerate and the sum NaN. A zero deviation
		// point contributes no spread, so the smoothed power is 0.
		if math.IsNaN(sum) {
			sum = 0
		}

		smoothed[i] = Point{WindSpeed: p.WindSpeed, Power: sum}
	}

	return smoothed, nil
}

// normalizedSigmaFor resolves the normalized standard deviation scalar for
// the configured method.
func normalizedSigmaFor(cfg SmoothConfig) (float64, error) {
	switch cfg.Method {
	case SigmaTurbulenceIntensity:
		if cfg.TurbulenceIntensity <= 0 {
			return 0, newConfigError("turbulence intensity must be set when the sigma method is %q", SigmaTurbulenceIntensity)
		}
		return cfg.TurbulenceIntensity, nil

	case SigmaStaffell:
		return staffellNormalizedSigma, nil

	case SigmaNorgaard:
		return 0, newConfigError("sigma method %q is not supported, use %q or %q",
			SigmaNorgaard, SigmaTurbulenceIntensity, SigmaStaffell)

	default:
		return 0, newInvalidConfigError("unknown sigma method %q, valid methods: %q, %q",
			cfg.Method, SigmaTurbulenceIntensity, SigmaStaffell)
	}
}
