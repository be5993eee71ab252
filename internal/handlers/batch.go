package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fsonmez/windpowerlib/internal/models"
)

// BatchSmooth handles batch smoothing requests
// POST /v1/curves/batch/smooth
func (h *Handler) BatchSmooth(c *fiber.Ctx) error {
	var req models.BatchSmoothRequest
	if err := c.BodyParser(&req); err != nil {
		return h.invalidBody(c, err)
	}

	resp, err := h.batchService.Execute(c.UserContext(), &req)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(resp)
}
