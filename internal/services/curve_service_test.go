package services

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsonmez/windpowerlib/internal/config"
	"github.com/fsonmez/windpowerlib/internal/events"
	"github.com/fsonmez/windpowerlib/internal/logging"
	"github.com/fsonmez/windpowerlib/internal/models"
	"github.com/fsonmez/windpowerlib/internal/store"
)

const testEventSubject = "windpower.curves.processed"

func newTestCurveService() (*CurveService, *events.MemoryPublisher) {
	logger := logging.NewWithWriter(io.Discard, zerolog.Disabled)
	publisher := events.NewMemoryPublisher()

	svc := NewCurveService(
		logger,
		store.NewMemoryStore(),
		publisher,
		config.EventsConfig{Enabled: true, Backend: "memory", Subject: testEventSubject},
		config.LimitsConfig{MaxCurvePoints: 1000, MaxBatchCurves: 10, BatchWorkers: 4},
	)
	return svc, publisher
}

func smoothableCurve() []models.CurvePoint {
	return []models.CurvePoint{
		{WindSpeed: 3, Power: 25000},
		{WindSpeed: 4, Power: 82000},
		{WindSpeed: 5, Power: 174000},
		{WindSpeed: 6, Power: 321000},
		{WindSpeed: 7, Power: 532000},
		{WindSpeed: 8, Power: 815000},
		{WindSpeed: 9, Power: 1180000},
		{WindSpeed: 10, Power: 1580000},
	}
}

func TestCurveService_Smooth(t *testing.T) {
	svc, publisher := newTestCurveService()

	resp, err := svc.Smooth(context.Background(), &models.SmoothRequest{
		Curve:     smoothableCurve(),
		Smoothing: models.SmoothingOptions{Method: "Staffell"},
	})
	require.NoError(t, err)

	assert.Equal(t, "smooth", resp.Operation)
	assert.Equal(t, len(resp.Curve), resp.Count)
	assert.GreaterOrEqual(t, resp.Count, len(smoothableCurve()), "tail extension should not shrink the curve")

	published := publisher.Events(testEventSubject)
	require.Len(t, published, 1)
	assert.Equal(t, "smooth", published[0].Operation)
	assert.Equal(t, resp.Count, published[0].PointCount)
}

func TestCurveService_Smooth_TurbulenceIntensity(t *testing.T) {
	svc, _ := newTestCurveService()

	resp, err := svc.Smooth(context.Background(), &models.SmoothRequest{
		Curve:     smoothableCurve(),
		Smoothing: models.SmoothingOptions{TurbulenceIntensity: 0.12},
	})
	require.NoError(t, err)
	assert.Equal(t, "smooth", resp.Operation)
}

func TestCurveService_Smooth_EmptyCurve(t *testing.T) {
	svc, _ := newTestCurveService()

	_, err := svc.Smooth(context.Background(), &models.SmoothRequest{})
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidCurve, svcErr.Code)
}

func TestCurveService_Smooth_TooManyPoints(t *testing.T) {
	svc, _ := newTestCurveService()

	points := make([]models.CurvePoint, 1001)
	for i := range points {
		points[i] = models.CurvePoint{WindSpeed: float64(i), Power: float64(i)}
	}

	_, err := svc.Smooth(context.Background(), &models.SmoothRequest{
		Curve:     points,
		Smoothing: models.SmoothingOptions{Method: "Staffell"},
	})
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeCurveTooLarge, svcErr.Code)
	assert.Equal(t, 1000, svcErr.Details["limit"])
}

func TestCurveService_Smooth_MissingTurbulenceIntensity(t *testing.T) {
	svc, _ := newTestCurveService()

	_, err := svc.Smooth(context.Background(), &models.SmoothRequest{
		Curve: smoothableCurve(),
	})
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeConfigError, svcErr.Code)
}

func TestCurveService_Smooth_UnknownMethod(t *testing.T) {
	svc, _ := newTestCurveService()

	_, err := svc.Smooth(context.Background(), &models.SmoothRequest{
		Curve:     smoothableCurve(),
		Smoothing: models.SmoothingOptions{Method: "bogus"},
	})
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidConfig, svcErr.Code)
}

func TestCurveService_Smooth_UnknownUnit(t *testing.T) {
	svc, _ := newTestCurveService()

	_, err := svc.Smooth(context.Background(), &models.SmoothRequest{
		Curve:         smoothableCurve(),
		Smoothing:     models.SmoothingOptions{Method: "Staffell"},
		WindSpeedUnit: "furlongs/fortnight",
	})
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidUnit, svcErr.Code)
}

func TestCurveService_ApplyWakeLosses_Constant(t *testing.T) {
	svc, publisher := newTestCurveService()

	resp, err := svc.ApplyWakeLosses(context.Background(), &models.WakeLossRequest{
		Curve: []models.CurvePoint{
			{WindSpeed: 3, Power: 100},
			{WindSpeed: 4, Power: 200},
		},
		WakeLosses: models.WakeLossOptions{Method: "constant_efficiency", Efficiency: 0.9},
	})
	require.NoError(t, err)

	assert.Equal(t, "wake_losses", resp.Operation)
	require.Len(t, resp.Curve, 2)
	assert.InDelta(t, 90.0, resp.Curve[0].Power, 1e-9)
	assert.InDelta(t, 180.0, resp.Curve[1].Power, 1e-9)

	require.Len(t, publisher.Events(testEventSubject), 1)
}

func TestCurveService_ApplyWakeLosses_MethodMismatch(t *testing.T) {
	svc, _ := newTestCurveService()

	_, err := svc.ApplyWakeLosses(context.Background(), &models.WakeLossRequest{
		Curve: []models.CurvePoint{
			{WindSpeed: 3, Power: 100},
			{WindSpeed: 4, Power: 200},
		},
		WakeLosses: models.WakeLossOptions{
			Method:          "constant_efficiency",
			Efficiency:      0.9,
			EfficiencyCurve: []models.EfficiencyCurvePoint{{WindSpeed: 3, Efficiency: 0.9}},
		},
	})
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidConfig, svcErr.Code)
}

func TestCurveService_Pipeline(t *testing.T) {
	svc, publisher := newTestCurveService()

	resp, err := svc.Pipeline(context.Background(), &models.PipelineRequest{
		Curve:      smoothableCurve(),
		Smoothing:  models.SmoothingOptions{Method: "Staffell"},
		WakeLosses: models.WakeLossOptions{Method: "constant_efficiency", Efficiency: 0.8},
	})
	require.NoError(t, err)

	assert.Equal(t, "pipeline", resp.Operation)
	assert.GreaterOrEqual(t, resp.Count, len(smoothableCurve()))

	published := publisher.Events(testEventSubject)
	require.Len(t, published, 1)
	assert.Equal(t, "pipeline", published[0].Operation)
}

func TestCurveService_TurbineLifecycle(t *testing.T) {
	svc, _ := newTestCurveService()
	ctx := context.Background()

	saved, err := svc.SaveTurbine(ctx, &models.SaveTurbineRequest{
		Name:  "E-126/4200",
		Curve: smoothableCurve(),
	})
	require.NoError(t, err)
	assert.Equal(t, "E-126/4200", saved.Name)
	assert.NotEmpty(t, saved.UpdatedAt)

	got, err := svc.GetTurbine(ctx, "E-126/4200")
	require.NoError(t, err)
	assert.Len(t, got.Curve, len(smoothableCurve()))

	list, err := svc.ListTurbines(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, []string{"E-126/4200"}, list.Turbines)

	require.NoError(t, svc.DeleteTurbine(ctx, "E-126/4200"))

	_, err = svc.GetTurbine(ctx, "E-126/4200")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeNotFound, svcErr.Code)
}

func TestCurveService_SaveTurbine_ConvertsUnits(t *testing.T) {
	svc, _ := newTestCurveService()
	ctx := context.Background()

	_, err := svc.SaveTurbine(ctx, &models.SaveTurbineRequest{
		Name: "small",
		Curve: []models.CurvePoint{
			{WindSpeed: 3, Power: 25},
			{WindSpeed: 4, Power: 82},
		},
		PowerUnit: "kW",
	})
	require.NoError(t, err)

	got, err := svc.GetTurbine(ctx, "small")
	require.NoError(t, err)
	assert.InDelta(t, 25000.0, got.Curve[0].Power, 1e-9)
	assert.InDelta(t, 82000.0, got.Curve[1].Power, 1e-9)
}

func TestCurveService_SaveTurbine_EmptyName(t *testing.T) {
	svc, _ := newTestCurveService()

	_, err := svc.SaveTurbine(context.Background(), &models.SaveTurbineRequest{
		Curve: smoothableCurve(),
	})
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeInvalidCurve, svcErr.Code)
}

func TestCurveService_SmoothStored(t *testing.T) {
	svc, publisher := newTestCurveService()
	ctx := context.Background()

	_, err := svc.SaveTurbine(ctx, &models.SaveTurbineRequest{
		Name:  "E-126/4200",
		Curve: smoothableCurve(),
	})
	require.NoError(t, err)

	resp, err := svc.SmoothStored(ctx, "E-126/4200", models.SmoothingOptions{Method: "Staffell"})
	require.NoError(t, err)
	assert.Equal(t, "smooth", resp.Operation)
	assert.GreaterOrEqual(t, resp.Count, len(smoothableCurve()))

	published := publisher.Events(testEventSubject)
	require.Len(t, published, 1)
	assert.Equal(t, "E-126/4200", published[0].TurbineName)
}

func TestCurveService_SmoothStored_NotFound(t *testing.T) {
	svc, _ := newTestCurveService()

	_, err := svc.SmoothStored(context.Background(), "missing", models.SmoothingOptions{Method: "Staffell"})
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeNotFound, svcErr.Code)
}

func TestCurveService_EventsDisabled(t *testing.T) {
	logger := logging.NewWithWriter(io.Discard, zerolog.Disabled)
	publisher := events.NewMemoryPublisher()
	svc := NewCurveService(
		logger,
		store.NewMemoryStore(),
		publisher,
		config.EventsConfig{Enabled: false, Subject: testEventSubject},
		config.LimitsConfig{},
	)

	_, err := svc.Smooth(context.Background(), &models.SmoothRequest{
		Curve:     smoothableCurve(),
		Smoothing: models.SmoothingOptions{Method: "Staffell"},
	})
	require.NoError(t, err)

	assert.Empty(t, publisher.Events(testEventSubject))
}
