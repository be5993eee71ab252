package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsonmez/windpowerlib/internal/config"
	"github.com/fsonmez/windpowerlib/internal/events"
	"github.com/fsonmez/windpowerlib/internal/logging"
	"github.com/fsonmez/windpowerlib/internal/models"
	"github.com/fsonmez/windpowerlib/internal/powercurve"
	"github.com/fsonmez/windpowerlib/internal/store"
	"github.com/fsonmez/windpowerlib/internal/units"
)

// CurveService handles power curve transformation business logic
type CurveService struct {
	logger    *logging.Logger
	store     store.Store
	publisher events.Publisher
	eventsCfg config.EventsConfig
	limits    config.LimitsConfig
}

// NewCurveService creates a new CurveService
func NewCurveService(
	logger *logging.Logger,
	st store.Store,
	publisher events.Publisher,
	eventsCfg config.EventsConfig,
	limits config.LimitsConfig,
) *CurveService {
	return &CurveService{
		logger:    logger,
		store:     st,
		publisher: publisher,
		eventsCfg: eventsCfg,
		limits:    limits,
	}
}

// PointsToCurve converts API payload points to a power curve
func PointsToCurve(points []models.CurvePoint) powercurve.Curve {
	curve := make(powercurve.Curve, len(points))
	for i, p := range points {
		curve[i] = powercurve.Point{WindSpeed: p.WindSpeed, Power: p.Power}
	}
	return curve
}

// CurveToPoints converts a power curve to API payload points
func CurveToPoints(curve powercurve.Curve) []models.CurvePoint {
	points := make([]models.CurvePoint, len(curve))
	for i, p := range curve {
		points[i] = models.CurvePoint{WindSpeed: p.WindSpeed, Power: p.Power}
	}
	return points
}

func smoothConfigFrom(opts models.SmoothingOptions) powercurve.SmoothConfig {
	cfg := powercurve.DefaultSmoothConfig()
	if opts.BlockWidth > 0 {
		cfg.BlockWidth = opts.BlockWidth
	}
	if opts.Method != "" {
		cfg.Method = powercurve.SigmaMethod(opts.Method)
	}
	cfg.Mean = opts.Mean
	cfg.TurbulenceIntensity = opts.TurbulenceIntensity
	return cfg
}

func wakeLossConfigFrom(opts models.WakeLossOptions) powercurve.WakeLossConfig {
	efficiency := make(powercurve.EfficiencyCurve, len(opts.EfficiencyCurve))
	for i, p := range opts.EfficiencyCurve {
		efficiency[i] = powercurve.EfficiencyPoint{WindSpeed: p.WindSpeed, Efficiency: p.Efficiency}
	}
	return powercurve.WakeLossConfig{
		Method:          powercurve.WakeLossMethod(opts.Method),
		Efficiency:      opts.Efficiency,
		EfficiencyCurve: efficiency,
	}
}

// prepareCurve converts units, enforces size limits and validates the curve
func (s *CurveService) prepareCurve(points []models.CurvePoint, windSpeedUnit, powerUnit string) (powercurve.Curve, error) {
	if len(points) == 0 {
		return nil, NewServiceError(CodeInvalidCurve, "curve must not be empty")
	}
	if s.limits.MaxCurvePoints > 0 && len(points) > s.limits.MaxCurvePoints {
		return nil, NewServiceErrorWithDetails(CodeCurveTooLarge,
			fmt.Sprintf("curve has %d points, maximum is %d", len(points), s.limits.MaxCurvePoints),
			map[string]interface{}{
				"points": len(points),
				"limit":  s.limits.MaxCurvePoints,
			})
	}

	curve, err := units.ConvertCurve(PointsToCurve(points), windSpeedUnit, powerUnit)
	if err != nil {
		return nil, NewServiceError(CodeInvalidUnit, err.Error())
	}

	if err := curve.Validate(); err != nil {
		return nil, wrapCurveError(err)
	}

	return curve, nil
}

// Smooth applies Gaussian smoothing to a power curve
func (s *CurveService) Smooth(ctx context.Context, req *models.SmoothRequest) (*models.CurveResponse, error) {
	curve, err := s.prepareCurve(req.Curve, req.WindSpeedUnit, req.PowerUnit)
	if err != nil {
		return nil, err
	}

	smoothed, err := powercurve.Smooth(curve, smoothConfigFrom(req.Smoothing))
	if err != nil {
		return nil, wrapCurveError(err)
	}

	s.publishProcessed(ctx, "smooth", "", len(smoothed))

	return &models.CurveResponse{
		Operation: "smooth",
		Curve:     CurveToPoints(smoothed),
		Count:     len(smoothed),
		RequestID: logging.RequestIDFromContext(ctx),
	}, nil
}

// ApplyWakeLosses reduces a power curve by a wind farm efficiency
func (s *CurveService) ApplyWakeLosses(ctx context.Context, req *models.WakeLossRequest) (*models.CurveResponse, error) {
	curve, err := s.prepareCurve(req.Curve, req.WindSpeedUnit, req.PowerUnit)
	if err != nil {
		return nil, err
	}

	reduced, err := powercurve.ApplyWakeLosses(curve, wakeLossConfigFrom(req.WakeLosses))
	if err != nil {
		return nil, wrapCurveError(err)
	}

	s.publishProcessed(ctx, "wake_losses", "", len(reduced))

	return &models.CurveResponse{
		Operation: "wake_losses",
		Curve:     CurveToPoints(reduced),
		Count:     len(reduced),
		RequestID: logging.RequestIDFromContext(ctx),
	}, nil
}

// Pipeline smooths a power curve and then applies wake losses to the result
func (s *CurveService) Pipeline(ctx context.Context, req *models.PipelineRequest) (*models.CurveResponse, error) {
	curve, err := s.prepareCurve(req.Curve, req.WindSpeedUnit, req.PowerUnit)
	if err != nil {
		return nil, err
	}

	smoothed, err := powercurve.Smooth(curve, smoothConfigFrom(req.Smoothing))
	if err != nil {
		return nil, wrapCurveError(err)
	}

	reduced, err := powercurve.ApplyWakeLosses(smoothed, wakeLossConfigFrom(req.WakeLosses))
	if err != nil {
		return nil, wrapCurveError(err)
	}

	s.publishProcessed(ctx, "pipeline", "", len(reduced))

	return &models.CurveResponse{
		Operation: "pipeline",
		Curve:     CurveToPoints(reduced),
		Count:     len(reduced),
		RequestID: logging.RequestIDFromContext(ctx),
	}, nil
}

// SaveTurbine stores a named turbine power curve in SI units
func (s *CurveService) SaveTurbine(ctx context.Context, req *models.SaveTurbineRequest) (*models.TurbineResponse, error) {
	if req.Name == "" {
		return nil, NewServiceError(CodeInvalidCurve, "turbine name must not be empty")
	}

	curve, err := s.prepareCurve(req.Curve, req.WindSpeedUnit, req.PowerUnit)
	if err != nil {
		return nil, err
	}

	tc := store.TurbineCurve{
		Name:      req.Name,
		Curve:     curve,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, tc); err != nil {
		return nil, NewServiceError(CodeStoreError, err.Error())
	}

	s.logger.Info("Turbine curve saved",
		"turbine", req.Name,
		"points", len(curve),
	)

	return &models.TurbineResponse{
		Name:      tc.Name,
		Curve:     CurveToPoints(tc.Curve),
		UpdatedAt: tc.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// GetTurbine returns a stored turbine power curve
func (s *CurveService) GetTurbine(ctx context.Context, name string) (*models.TurbineResponse, error) {
	tc, err := s.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewServiceError(CodeNotFound, fmt.Sprintf("turbine %q not found", name))
		}
		return nil, NewServiceError(CodeStoreError, err.Error())
	}

	return &models.TurbineResponse{
		Name:      tc.Name,
		Curve:     CurveToPoints(tc.Curve),
		UpdatedAt: tc.UpdatedAt.Format(time.RFC3339),
	}, nil
}

// ListTurbines returns the names of all stored turbine curves
func (s *CurveService) ListTurbines(ctx context.Context) (*models.TurbineListResponse, error) {
	names, err := s.store.List(ctx)
	if err != nil {
		return nil, NewServiceError(CodeStoreError, err.Error())
	}

	return &models.TurbineListResponse{
		Turbines: names,
		Count:    len(names),
	}, nil
}

// DeleteTurbine removes a stored turbine power curve
func (s *CurveService) DeleteTurbine(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NewServiceError(CodeNotFound, fmt.Sprintf("turbine %q not found", name))
		}
		return NewServiceError(CodeStoreError, err.Error())
	}
	return nil
}

// SmoothStored smooths a stored turbine curve without resubmitting its points
func (s *CurveService) SmoothStored(ctx context.Context, name string, opts models.SmoothingOptions) (*models.CurveResponse, error) {
	tc, err := s.store.Get(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, NewServiceError(CodeNotFound, fmt.Sprintf("turbine %q not found", name))
		}
		return nil, NewServiceError(CodeStoreError, err.Error())
	}

	smoothed, err := powercurve.Smooth(tc.Curve, smoothConfigFrom(opts))
	if err != nil {
		return nil, wrapCurveError(err)
	}

	s.publishProcessed(ctx, "smooth", name, len(smoothed))

	return &models.CurveResponse{
		Operation: "smooth",
		Curve:     CurveToPoints(smoothed),
		Count:     len(smoothed),
		RequestID: logging.RequestIDFromContext(ctx),
	}, nil
}

// publishProcessed emits a processed-curve event. Publish failures are
// logged, never surfaced to the caller.
func (s *CurveService) publishProcessed(ctx context.Context, operation, turbineName string, pointCount int) {
	if !s.eventsCfg.Enabled || s.publisher == nil {
		return
	}

	event := events.ProcessedEvent{
		RequestID:   logging.RequestIDFromContext(ctx),
		Operation:   operation,
		TurbineName: turbineName,
		PointCount:  pointCount,
		ProcessedAt: time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, s.eventsCfg.Subject, event); err != nil {
		s.logger.Warn("Failed to publish processed event",
			"operation", operation,
			"subject", s.eventsCfg.Subject,
			"error", err,
		)
	}
}
