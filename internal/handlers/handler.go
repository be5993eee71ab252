package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fsonmez/windpowerlib/internal/config"
	"github.com/fsonmez/windpowerlib/internal/events"
	"github.com/fsonmez/windpowerlib/internal/logging"
	"github.com/fsonmez/windpowerlib/internal/models"
	"github.com/fsonmez/windpowerlib/internal/services"
	"github.com/fsonmez/windpowerlib/internal/store"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger       *logging.Logger
	curveService *services.CurveService
	batchService *services.BatchService
}

// New creates a new handler instance
func New(logger *logging.Logger, st store.Store, publisher events.Publisher, cfg config.Config) *Handler {
	return &Handler{
		logger:       logger,
		curveService: services.NewCurveService(logger, st, publisher, cfg.Events, cfg.Limits),
		batchService: services.NewBatchService(logger, cfg.Limits),
	}
}

// serviceErrorStatus maps service error codes to HTTP status codes
func serviceErrorStatus(code string) int {
	switch code {
	case services.CodeNotFound:
		return fiber.StatusNotFound
	case services.CodeCurveTooLarge, services.CodeBatchTooLarge:
		return fiber.StatusRequestEntityTooLarge
	case services.CodeConfigError, services.CodeInvalidConfig,
		services.CodeInvalidCurve, services.CodeInvalidUnit:
		return fiber.StatusBadRequest
	case services.CodeStoreError:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes an error response for a service layer failure
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	if svcErr, ok := err.(*services.ServiceError); ok {
		return c.Status(serviceErrorStatus(svcErr.Code)).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    svcErr.Code,
				Message: svcErr.Message,
				Details: svcErr.Details,
			},
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: err.Error(),
		},
	})
}

// invalidBody writes a 400 response for an unparseable request body
func (h *Handler) invalidBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_BODY",
			Message: "Invalid request body: " + err.Error(),
		},
	})
}
