package handlers

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/fsonmez/windpowerlib/internal/models"
)

// SaveTurbine handles turbine curve storage requests
// POST /v1/turbines
func (h *Handler) SaveTurbine(c *fiber.Ctx) error {
	var req models.SaveTurbineRequest
	if err := c.BodyParser(&req); err != nil {
		return h.invalidBody(c, err)
	}

	resp, err := h.curveService.SaveTurbine(c.UserContext(), &req)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListTurbines handles turbine listing requests
// GET /v1/turbines
func (h *Handler) ListTurbines(c *fiber.Ctx) error {
	resp, err := h.curveService.ListTurbines(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(resp)
}

// GetTurbine handles turbine retrieval requests
// GET /v1/turbines/:name
func (h *Handler) GetTurbine(c *fiber.Ctx) error {
	name, err := paramName(c)
	if err != nil {
		return h.invalidBody(c, err)
	}

	resp, err := h.curveService.GetTurbine(c.UserContext(), name)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(resp)
}

// DeleteTurbine handles turbine deletion requests
// DELETE /v1/turbines/:name
func (h *Handler) DeleteTurbine(c *fiber.Ctx) error {
	name, err := paramName(c)
	if err != nil {
		return h.invalidBody(c, err)
	}

	if err := h.curveService.DeleteTurbine(c.UserContext(), name); err != nil {
		return h.respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// SmoothTurbine smooths a stored turbine curve
// GET /v1/turbines/:name/smooth
func (h *Handler) SmoothTurbine(c *fiber.Ctx) error {
	name, err := paramName(c)
	if err != nil {
		return h.invalidBody(c, err)
	}

	opts := models.SmoothingOptions{
		Method:              c.Query("method"),
		BlockWidth:          queryFloat(c, "block_width"),
		Mean:                queryFloat(c, "mean"),
		TurbulenceIntensity: queryFloat(c, "turbulence_intensity"),
	}

	resp, err := h.curveService.SmoothStored(c.UserContext(), name, opts)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(resp)
}

// paramName returns the decoded :name route parameter. Turbine names may
// contain slashes (e.g. E-126/4200), clients URL-encode them.
func paramName(c *fiber.Ctx) (string, error) {
	return url.PathUnescape(c.Params("name"))
}

// queryFloat parses a float query parameter, 0 when absent or invalid
func queryFloat(c *fiber.Ctx, key string) float64 {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
