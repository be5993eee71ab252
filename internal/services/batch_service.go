package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/fsonmez/windpowerlib/internal/config"
	"github.com/fsonmez/windpowerlib/internal/logging"
	"github.com/fsonmez/windpowerlib/internal/models"
	"github.com/fsonmez/windpowerlib/internal/powercurve"
)

// defaultBatchWorkers bounds concurrency when the limit is not configured
const defaultBatchWorkers = 8

// BatchService smooths many power curves concurrently with one shared config
type BatchService struct {
	logger *logging.Logger
	limits config.LimitsConfig
}

// NewBatchService creates a new BatchService
func NewBatchService(logger *logging.Logger, limits config.LimitsConfig) *BatchService {
	return &BatchService{
		logger: logger,
		limits: limits,
	}
}

// Execute smooths every curve of the request using a bounded worker pool.
// Per-curve failures are reported in the result, they never abort the batch.
func (s *BatchService) Execute(ctx context.Context, req *models.BatchSmoothRequest) (*models.BatchSmoothResponse, error) {
	if len(req.Curves) == 0 {
		return nil, NewServiceError(CodeInvalidCurve, "batch must contain at least one curve")
	}
	if s.limits.MaxBatchCurves > 0 && len(req.Curves) > s.limits.MaxBatchCurves {
		return nil, NewServiceErrorWithDetails(CodeBatchTooLarge,
			fmt.Sprintf("batch has %d curves, maximum is %d", len(req.Curves), s.limits.MaxBatchCurves),
			map[string]interface{}{
				"curves": len(req.Curves),
				"limit":  s.limits.MaxBatchCurves,
			})
	}

	workers := s.limits.BatchWorkers
	if workers <= 0 {
		workers = defaultBatchWorkers
	}

	jobID := uuid.New().String()
	cfg := smoothConfigFrom(req.Smoothing)
	results := make([]models.BatchCurveResult, len(req.Curves))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for i, bc := range req.Curves {
		wg.Add(1)
		go func(i int, bc models.BatchCurve) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = s.smoothOne(bc, cfg)
		}(i, bc)
	}

	wg.Wait()

	succeeded := 0
	for _, r := range results {
		if r.Error == nil {
			succeeded++
		}
	}

	s.logger.Info("Batch smoothing completed",
		"job_id", jobID,
		"curves", len(req.Curves),
		"succeeded", succeeded,
		"failed", len(req.Curves)-succeeded,
	)

	return &models.BatchSmoothResponse{
		JobID:     jobID,
		Results:   results,
		Succeeded: succeeded,
		Failed:    len(req.Curves) - succeeded,
	}, nil
}

func (s *BatchService) smoothOne(bc models.BatchCurve, cfg powercurve.SmoothConfig) models.BatchCurveResult {
	result := models.BatchCurveResult{Name: bc.Name}

	curve := PointsToCurve(bc.Curve)
	if err := curve.Validate(); err != nil {
		svcErr := wrapCurveError(err)
		result.Error = &models.ErrorDetail{Code: svcErr.Code, Message: svcErr.Message}
		return result
	}

	smoothed, err := powercurve.Smooth(curve, cfg)
	if err != nil {
		svcErr := wrapCurveError(err)
		result.Error = &models.ErrorDetail{Code: svcErr.Code, Message: svcErr.Message}
		return result
	}

	result.Curve = CurveToPoints(smoothed)
	return result
}
