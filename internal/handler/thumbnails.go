package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tubetools/tubetools-go/internal/middleware"
	"github.com/tubetools/tubetools-go/internal/model"
	"github.com/tubetools/tubetools-go/internal/youtube"
)

type ThumbnailsHandler struct{}

func NewThumbnailsHandler() *ThumbnailsHandler {
	return &ThumbnailsHandler{}
}

// List handles POST /api/thumbnails. The URL list is deterministic, so no
// upstream call is made.
func (h *ThumbnailsHandler) List(c fiber.Ctx) error {
	var req model.URLRequest
	if err := c.Bind().JSON(&req); err != nil || req.URL == "" {
		return middleware.Err(c, fiber.StatusBadRequest, "URL is required")
	}

	id, err := youtube.Parse(req.URL)
	if err != nil || id.Kind != youtube.KindVideoID {
		return middleware.Err(c, fiber.StatusBadRequest,
			"Invalid YouTube URL. Please provide a valid video URL.")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"videoId":    id.Value,
		"thumbnails": youtube.ThumbnailURLs(id.Value),
	})
}
