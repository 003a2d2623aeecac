// Package revenue holds the pure revenue projection math used by the
// calculator endpoint. No network calls, no persistence; everything is
// recomputed from caller inputs and static lookup tables.
package revenue

// RevenueShare is the creator's cut of AdSense revenue after the platform
// takes 45%.
const RevenueShare = 0.55

// ShortsCPMMultiplier discounts CPM for Shorts inventory.
const ShortsCPMMultiplier = 0.30

// Estimate projects earnings over standard periods. Periods are plain
// multiples of the daily figure, not calendar-aware.
type Estimate struct {
	Daily          float64 `json:"daily"`
	Weekly         float64 `json:"weekly"`
	Monthly        float64 `json:"monthly"`
	Yearly         float64 `json:"yearly"`
	SponsorshipMin float64 `json:"sponsorshipMin"`
	SponsorshipMax float64 `json:"sponsorshipMax"`
}

// Calculate projects revenue from daily views and a CPM. Sponsorship
// figures are flat per-view rates, zeroed when not requested. Inputs are
// assumed sanitized by the caller boundary.
func Calculate(views int64, cpm float64, includeSponsorship bool, sponsorshipMin, sponsorshipMax float64) Estimate {
	adSense := float64(views) * cpm * RevenueShare / 1000

	var sponMin, sponMax float64
	if includeSponsorship {
		sponMin = float64(views) * sponsorshipMin
		sponMax = float64(views) * sponsorshipMax
	}

	return Estimate{
		Daily:          adSense,
		Weekly:         adSense * 7,
		Monthly:        adSense * 30,
		Yearly:         adSense * 365,
		SponsorshipMin: sponMin,
		SponsorshipMax: sponMax,
	}
}

// AdjustedViews scales a channel's daily views by the average watched and
// engaged percentages, flooring the result.
func AdjustedViews(views int64, viewPct, engagementPct float64) int64 {
	return int64(float64(views) * (viewPct / 100) * (engagementPct / 100))
}
