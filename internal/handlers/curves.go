package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fsonmez/windpowerlib/internal/models"
)

// SmoothCurve handles power curve smoothing requests
// POST /v1/curves/smooth
func (h *Handler) SmoothCurve(c *fiber.Ctx) error {
	var req models.SmoothRequest
	if err := c.BodyParser(&req); err != nil {
		return h.invalidBody(c, err)
	}

	resp, err := h.curveService.Smooth(c.UserContext(), &req)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(resp)
}

// ApplyWakeLosses handles wake loss application requests
// POST /v1/curves/wake-losses
func (h *Handler) ApplyWakeLosses(c *fiber.Ctx) error {
	var req models.WakeLossRequest
	if err := c.BodyParser(&req); err != nil {
		return h.invalidBody(c, err)
	}

	resp, err := h.curveService.ApplyWakeLosses(c.UserContext(), &req)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(resp)
}

// PipelineCurve handles combined smooth-then-wake-losses requests
// POST /v1/curves/pipeline
func (h *Handler) PipelineCurve(c *fiber.Ctx) error {
	var req models.PipelineRequest
	if err := c.BodyParser(&req); err != nil {
		return h.invalidBody(c, err)
	}

	resp, err := h.curveService.Pipeline(c.UserContext(), &req)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(resp)
}
