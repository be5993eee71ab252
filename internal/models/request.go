package models

// CurvePoint represents a single power curve sample in API payloads
type CurvePoint struct {
	WindSpeed float64 `json:"wind_speed"`
	Power     float64 `json:"power"`
}

// EfficiencyCurvePoint represents a single wind farm efficiency sample
type EfficiencyCurvePoint struct {
	WindSpeed  float64 `json:"wind_speed"`
	Efficiency float64 `json:"efficiency"`
}

// SmoothingOptions represents the smoothing parameters of a request
type SmoothingOptions struct {
	BlockWidth          float64 `json:"block_width,omitempty"`          // default 0.5
	Method              string  `json:"method,omitempty"`               // turbulence_intensity (default), Staffell
	Mean                float64 `json:"mean,omitempty"`                 // Gaussian mean, default 0
	TurbulenceIntensity float64 `json:"turbulence_intensity,omitempty"` // required for turbulence_intensity
}

// WakeLossOptions represents the wake loss parameters of a request
type WakeLossOptions struct {
	Method          string                 `json:"method"` // constant_efficiency, wind_efficiency_curve
	Efficiency      float64                `json:"efficiency,omitempty"`
	EfficiencyCurve []EfficiencyCurvePoint `json:"efficiency_curve,omitempty"`
}

// SmoothRequest represents a smoothing request
type SmoothRequest struct {
	Curve         []CurvePoint     `json:"curve"`
	Smoothing     SmoothingOptions `json:"smoothing"`
	WindSpeedUnit string           `json:"wind_speed_unit,omitempty"` // m/s (default), km/h, mph, knots
	PowerUnit     string           `json:"power_unit,omitempty"`      // W (default), kW, MW
}

// WakeLossRequest represents a wake loss application request
type WakeLossRequest struct {
	Curve         []CurvePoint    `json:"curve"`
	WakeLosses    WakeLossOptions `json:"wake_losses"`
	WindSpeedUnit string          `json:"wind_speed_unit,omitempty"`
	PowerUnit     string          `json:"power_unit,omitempty"`
}

// PipelineRequest represents a combined smooth-then-wake-losses request
type PipelineRequest struct {
	Curve         []CurvePoint     `json:"curve"`
	Smoothing     SmoothingOptions `json:"smoothing"`
	WakeLosses    WakeLossOptions  `json:"wake_losses"`
	WindSpeedUnit string           `json:"wind_speed_unit,omitempty"`
	PowerUnit     string           `json:"power_unit,omitempty"`
}

// BatchCurve represents one named curve inside a batch request
type BatchCurve struct {
	Name  string       `json:"name"`
	Curve []CurvePoint `json:"curve"`
}

// BatchSmoothRequest represents a batch smoothing request; all curves share
// one smoothing config and are processed concurrently
type BatchSmoothRequest struct {
	Curves    []BatchCurve     `json:"curves"`
	Smoothing SmoothingOptions `json:"smoothing"`
}

// SaveTurbineRequest represents a request to store a turbine power curve
type SaveTurbineRequest struct {
	Name          string       `json:"name"`
	Curve         []CurvePoint `json:"curve"`
	WindSpeedUnit string       `json:"wind_speed_unit,omitempty"`
	PowerUnit     string       `json:"power_unit,omitempty"`
}
