package revenue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate_AdSenseOnly(t *testing.T) {
	est := Calculate(10000, 10, false, 0.01, 0.05)

	// 10000 * 10 * 0.55 / 1000 = 55 per day, scaled by plain multiples.
	assert.Equal(t, 55.0, est.Daily)
	assert.Equal(t, 385.0, est.Weekly)
	assert.Equal(t, 1650.0, est.Monthly)
	assert.Equal(t, 20075.0, est.Yearly)

	// Sponsorship zeroed when not requested, regardless of the rates given.
	assert.Equal(t, 0.0, est.SponsorshipMin)
	assert.Equal(t, 0.0, est.SponsorshipMax)
}

func TestCalculate_WithSponsorship(t *testing.T) {
	est := Calculate(10000, 10, true, 0.01, 0.05)

	assert.Equal(t, 100.0, est.SponsorshipMin)
	assert.Equal(t, 500.0, est.SponsorshipMax)
	// AdSense figures are independent of the sponsorship flag.
	assert.Equal(t, 55.0, est.Daily)
}

func TestCalculate_SponsorshipIgnoresCPM(t *testing.T) {
	low := Calculate(10000, 1, true, 0.01, 0.05)
	high := Calculate(10000, 50, true, 0.01, 0.05)

	assert.Equal(t, low.SponsorshipMin, high.SponsorshipMin)
	assert.Equal(t, low.SponsorshipMax, high.SponsorshipMax)
}

func TestCalculate_ZeroViews(t *testing.T) {
	est := Calculate(0, 10, true, 0.01, 0.05)

	assert.Equal(t, 0.0, est.Daily)
	assert.Equal(t, 0.0, est.Yearly)
	assert.Equal(t, 0.0, est.SponsorshipMax)
}

func TestAdjustedViews(t *testing.T) {
	// 100000 * 0.68 * 0.45 = 30600, floored.
	assert.Equal(t, int64(30600), AdjustedViews(100000, 68, 45))
	assert.Equal(t, int64(0), AdjustedViews(0, 68, 45))

	// Flooring, not rounding.
	assert.Equal(t, int64(4), AdjustedViews(9, 70, 70)) // 9*0.7*0.7 = 4.41
}

func TestLookupCPM(t *testing.T) {
	usa, ok := LookupCPM(USA, ScienceTech, false)
	assert.True(t, ok)
	assert.InDelta(t, 20.8, usa, 1e-9)

	// Creator-side RPM is the CPM after the revenue share.
	assert.InDelta(t, 11.44, usa*RevenueShare, 1e-9)

	// Other markets scale the US baseline down.
	india, ok := LookupCPM(India, ScienceTech, false)
	assert.True(t, ok)
	assert.Less(t, india, usa)

	// Shorts inventory pays a fraction of long-form CPM.
	shorts, ok := LookupCPM(USA, ScienceTech, true)
	assert.True(t, ok)
	assert.InDelta(t, usa*ShortsCPMMultiplier, shorts, 1e-9)
}

func TestLookupCPM_UnknownKeys(t *testing.T) {
	if _, ok := LookupCPM("Atlantis", ScienceTech, false); ok {
		t.Error("expected unknown country to miss")
	}
	if _, ok := LookupCPM(USA, "underwater-basket-weaving", false); ok {
		t.Error("expected unknown niche to miss")
	}
}

func TestLookupSponsorshipRate(t *testing.T) {
	rate, ok := LookupSponsorshipRate(Gaming)
	assert.True(t, ok)
	assert.Greater(t, rate.Max, rate.Min)

	_, ok = LookupSponsorshipRate("nope")
	assert.False(t, ok)
}
