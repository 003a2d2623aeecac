package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/tubetools/tubetools-go/internal/middleware"
	"github.com/tubetools/tubetools-go/internal/model"
	"github.com/tubetools/tubetools-go/internal/revenue"
)

type RevenueHandler struct{}

func NewRevenueHandler() *RevenueHandler {
	return &RevenueHandler{}
}

// Estimate handles POST /api/revenue/estimate. The projection itself never
// validates; this boundary does, since the inputs arrive from free-form
// JSON rather than UI sliders.
func (h *RevenueHandler) Estimate(c fiber.Ctx) error {
	var req model.RevenueEstimateRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.Err(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Views < 0 {
		return middleware.Err(c, fiber.StatusBadRequest, "views must be non-negative")
	}
	if req.CPM < 0 {
		return middleware.Err(c, fiber.StatusBadRequest, "cpm must be non-negative")
	}
	if req.SponsorshipMin < 0 || req.SponsorshipMax < 0 {
		return middleware.Err(c, fiber.StatusBadRequest, "sponsorship rates must be non-negative")
	}
	if req.SponsorshipMin > req.SponsorshipMax {
		return middleware.Err(c, fiber.StatusBadRequest, "sponsorshipMin must not exceed sponsorshipMax")
	}

	cpm := req.CPM
	if cpm == 0 && req.Niche != "" {
		country := revenue.Country(req.Country)
		if req.Country == "" {
			country = revenue.USA
		}
		table, ok := revenue.LookupCPM(country, revenue.Niche(req.Niche), req.IsShorts)
		if !ok {
			return middleware.Err(c, fiber.StatusBadRequest, "Unknown country or niche")
		}
		cpm = table
	}

	sponMin, sponMax := req.SponsorshipMin, req.SponsorshipMax
	if req.IncludeSponsorship && sponMin == 0 && sponMax == 0 && req.Niche != "" {
		if rate, ok := revenue.LookupSponsorshipRate(revenue.Niche(req.Niche)); ok {
			sponMin, sponMax = rate.Min, rate.Max
		}
	}

	est := revenue.Calculate(req.Views, cpm, req.IncludeSponsorship, sponMin, sponMax)

	return c.JSON(fiber.Map{
		"success":  true,
		"cpm":      cpm,
		"estimate": est,
	})
}
