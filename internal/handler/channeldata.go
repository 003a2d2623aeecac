package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/tubetools/tubetools-go/internal/middleware"
	"github.com/tubetools/tubetools-go/internal/model"
	"github.com/tubetools/tubetools-go/internal/service"
	"github.com/tubetools/tubetools-go/internal/youtube"
)

type ChannelDataHandler struct {
	svc *service.ChannelDataService
}

func NewChannelDataHandler(svc *service.ChannelDataService) *ChannelDataHandler {
	return &ChannelDataHandler{svc: svc}
}

// Fetch handles POST /api/channel-data
func (h *ChannelDataHandler) Fetch(c fiber.Ctx) error {
	var req model.IdentifierRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.Err(c, fiber.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.svc.Fetch(c.Context(), req.Identifier)
	switch {
	case err == nil:
		return c.JSON(resp)
	case errors.Is(err, service.ErrQuotaExceeded):
		quotaDenials.Inc()
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": fmt.Sprintf("Daily API limit reached (%d requests). Please try again tomorrow.",
				h.svc.Ceiling()),
			"remainingQuota": 0,
		})
	case errors.Is(err, service.ErrIdentifierRequired):
		return middleware.Err(c, fiber.StatusBadRequest, "Channel identifier is required")
	case errors.Is(err, youtube.ErrUnrecognizedIdentifier):
		return middleware.Err(c, fiber.StatusBadRequest, "Could not extract channel ID from the provided identifier")
	case errors.Is(err, youtube.ErrChannelNotFound):
		return middleware.Err(c, fiber.StatusNotFound, "Channel not found")
	default:
		return middleware.Err(c, fiber.StatusInternalServerError, err.Error())
	}
}
