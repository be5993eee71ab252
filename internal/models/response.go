package models

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// CurveResponse represents a transformed power curve response
type CurveResponse struct {
	Operation string       `json:"operation"`
	Curve     []CurvePoint `json:"curve"`
	Count     int          `json:"count"`
	RequestID string       `json:"request_id,omitempty"`
}

// BatchCurveResult represents the outcome for one curve of a batch request
type BatchCurveResult struct {
	Name  string       `json:"name"`
	Curve []CurvePoint `json:"curve,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// BatchSmoothResponse represents a batch smoothing response
type BatchSmoothResponse struct {
	JobID     string             `json:"job_id"`
	Results   []BatchCurveResult `json:"results"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
}

// TurbineResponse represents a stored turbine power curve
type TurbineResponse struct {
	Name      string       `json:"name"`
	Curve     []CurvePoint `json:"curve"`
	UpdatedAt string       `json:"updated_at"`
}

// TurbineListResponse represents a list of stored turbine names
type TurbineListResponse struct {
	Turbines []string `json:"turbines"`
	Count    int      `json:"count"`
}

// ErrorResponse represents error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail represents error details
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Path    string                 `json:"path,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}
