package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tubetools/tubetools-go/internal/middleware"
	"github.com/tubetools/tubetools-go/internal/service"
)

type UsageHandler struct {
	svc *service.QuotaService
}

func NewUsageHandler(svc *service.QuotaService) *UsageHandler {
	return &UsageHandler{svc: svc}
}

// Get handles GET /api/usage: today's consumption against the daily
// ceiling, without consuming a unit.
func (h *UsageHandler) Get(c fiber.Ctx) error {
	usage, err := h.svc.Usage(c.Context())
	if err != nil {
		return middleware.Err(c, fiber.StatusInternalServerError, "Failed to fetch API usage")
	}
	return c.JSON(usage)
}
