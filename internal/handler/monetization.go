package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/tubetools/tubetools-go/internal/middleware"
	"github.com/tubetools/tubetools-go/internal/model"
	"github.com/tubetools/tubetools-go/internal/service"
	"github.com/tubetools/tubetools-go/internal/youtube"
)

type MonetizationHandler struct {
	svc *service.ToolService
}

func NewMonetizationHandler(svc *service.ToolService) *MonetizationHandler {
	return &MonetizationHandler{svc: svc}
}

// Check handles POST /api/check-monetization
func (h *MonetizationHandler) Check(c fiber.Ctx) error {
	var req model.URLRequest
	if err := c.Bind().JSON(&req); err != nil || req.URL == "" {
		return middleware.Err(c, fiber.StatusBadRequest, "URL is required")
	}

	resp, err := h.svc.CheckMonetization(c.Context(), req.URL)
	switch {
	case err == nil:
		return c.JSON(resp)
	case errors.Is(err, youtube.ErrUnrecognizedIdentifier):
		return middleware.Err(c, fiber.StatusBadRequest,
			"Invalid YouTube URL. Please provide a valid video or channel URL.")
	case errors.Is(err, youtube.ErrNotFound):
		return middleware.ErrDetails(c, fiber.StatusNotFound, "Channel or video not found",
			"The provided YouTube URL does not exist or is not accessible. Please check the URL and try again.")
	default:
		return middleware.ErrDetails(c, fiber.StatusInternalServerError, "Failed to check monetization", err.Error())
	}
}
