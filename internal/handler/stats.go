package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/tubetools/tubetools-go/internal/middleware"
	"github.com/tubetools/tubetools-go/internal/model"
	"github.com/tubetools/tubetools-go/internal/service"
	"github.com/tubetools/tubetools-go/internal/youtube"
)

type StatsHandler struct {
	svc *service.ToolService
}

func NewStatsHandler(svc *service.ToolService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Fetch handles POST /api/channel-stats
func (h *StatsHandler) Fetch(c fiber.Ctx) error {
	var req model.URLRequest
	if err := c.Bind().JSON(&req); err != nil || req.URL == "" {
		return middleware.Err(c, fiber.StatusBadRequest, "URL is required")
	}

	resp, err := h.svc.ChannelStats(c.Context(), req.URL)
	switch {
	case err == nil:
		return c.JSON(resp)
	case errors.Is(err, youtube.ErrUnrecognizedIdentifier):
		return middleware.Err(c, fiber.StatusBadRequest, "Invalid YouTube channel URL")
	case errors.Is(err, youtube.ErrNotFound):
		return middleware.Err(c, fiber.StatusNotFound, "YouTube channel not found")
	default:
		return middleware.Err(c, fiber.StatusInternalServerError, "Failed to fetch channel statistics")
	}
}
