package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeMonetization_DirectFlag(t *testing.T) {
	result := AnalyzeMonetization(`{"isMonetized":true}`)

	assert.True(t, result.IsMonetized)
	assert.Equal(t, ConfidenceHigh, result.Confidence)
	assert.Contains(t, result.Indicators, "Direct monetization flag detected")
}

func TestAnalyzeMonetization_NoIndicators(t *testing.T) {
	result := AnalyzeMonetization("<html><body>plain page</body></html>")

	assert.False(t, result.IsMonetized)
	assert.Equal(t, ConfidenceLow, result.Confidence)
	assert.Equal(t, []string{NoIndicatorsMessage}, result.Indicators)
}

func TestAnalyzeMonetization_WeakSignalsGiveMedium(t *testing.T) {
	tests := []struct {
		name string
		html string
		msg  string
	}{
		{"ad slots", `<script>adSlot</script>`, "Ad slots detected"},
		{"ad module", `<script>adModule</script>`, "Ad slots detected"},
		{"ad placements", `{"adPlacements":[]}`, "Ad placements detected"},
		{"companion ads", `<script>companionAd</script>`, "Companion ads or ad breaks detected"},
		{"ad break params", `{"adBreakParams":"x"}`, "Companion ads or ad breaks detected"},
		{"ads engagement panel", `{"adsEngagementPanelContentRenderer":{}}`, "Ads engagement panel detected"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeMonetization(tt.html)
			assert.True(t, result.IsMonetized)
			assert.Equal(t, ConfidenceMedium, result.Confidence)
			assert.Contains(t, result.Indicators, tt.msg)
		})
	}
}

func TestAnalyzeMonetization_StrongSignalsGiveHigh(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"paid content overlay", `{"paidContentOverlay":{}}`},
		{"player ads", `{"playerAds":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeMonetization(tt.html)
			assert.True(t, result.IsMonetized)
			assert.Equal(t, ConfidenceHigh, result.Confidence)
		})
	}
}

func TestAnalyzeMonetization_HighSticks(t *testing.T) {
	// A strong signal followed by weak ones must stay high.
	html := `{"isMonetized":true,"adPlacements":[],"adsEngagementPanelContentRenderer":{}}`
	result := AnalyzeMonetization(html)

	assert.Equal(t, ConfidenceHigh, result.Confidence)
	assert.Len(t, result.Indicators, 3)
}

func TestAnalyzeMonetization_AdSafetyNeedsPlayerConfig(t *testing.T) {
	// The adSafetyReason rule only fires inside a PLAYER_CONFIG payload.
	without := AnalyzeMonetization(`{"adSafetyReason":{"foo":1}}`)
	assert.False(t, without.IsMonetized)

	with := AnalyzeMonetization(`yt.config_.PLAYER_CONFIG = {"adSafetyReason":{"foo":1}}`)
	assert.True(t, with.IsMonetized)
	assert.Equal(t, ConfidenceMedium, with.Confidence)
	assert.Contains(t, with.Indicators, "Ad safety configuration present")
}

func TestAnalyzeMonetization_ChannelInfo(t *testing.T) {
	html := `<meta property="og:title" content="Some Channel">` +
		`{"subscriberCountText":{"simpleText":"42K subscribers"}}`
	result := AnalyzeMonetization(html)

	if assert.NotNil(t, result.ChannelInfo) {
		assert.Equal(t, "Some Channel", result.ChannelInfo.Title)
		assert.Equal(t, "42K subscribers", result.ChannelInfo.SubscriberCount)
	}
}

func TestAnalyzeMonetization_NoChannelInfoWhenAbsent(t *testing.T) {
	result := AnalyzeMonetization("nothing here")
	assert.Nil(t, result.ChannelInfo)
}
