package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/tubetools/tubetools-go/internal/middleware"
	"github.com/tubetools/tubetools-go/internal/model"
	"github.com/tubetools/tubetools-go/internal/service"
	"github.com/tubetools/tubetools-go/internal/youtube"
)

type TagsHandler struct {
	svc *service.ToolService
}

func NewTagsHandler(svc *service.ToolService) *TagsHandler {
	return &TagsHandler{svc: svc}
}

// Extract handles POST /api/extract-tags
func (h *TagsHandler) Extract(c fiber.Ctx) error {
	var req model.URLRequest
	if err := c.Bind().JSON(&req); err != nil || req.URL == "" {
		return middleware.Err(c, fiber.StatusBadRequest, "URL is required")
	}

	resp, err := h.svc.ExtractTags(c.Context(), req.URL)
	switch {
	case err == nil:
		return c.JSON(resp)
	case errors.Is(err, youtube.ErrUnrecognizedIdentifier):
		return middleware.Err(c, fiber.StatusBadRequest, "Invalid YouTube URL")
	case errors.Is(err, youtube.ErrNotFound):
		return middleware.Err(c, fiber.StatusNotFound, "YouTube page not found")
	default:
		return middleware.Err(c, fiber.StatusInternalServerError, "Failed to extract tags")
	}
}
