package youtube

import (
	"regexp"
	"strings"
)

// Confidence rates the strength of monetization evidence found on a page.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// MonetizationChannelInfo carries the page context shown alongside the verdict.
type MonetizationChannelInfo struct {
	Title           string `json:"title,omitempty"`
	SubscriberCount string `json:"subscriberCount,omitempty"`
}

// MonetizationResult is the outcome of the indicator scan.
type MonetizationResult struct {
	IsMonetized bool                     `json:"isMonetized"`
	Confidence  Confidence               `json:"confidence"`
	Indicators  []string                 `json:"indicators"`
	ChannelInfo *MonetizationChannelInfo `json:"channelInfo,omitempty"`
}

// NoIndicatorsMessage is the sentinel reported when no indicator matched.
const NoIndicatorsMessage = "No monetization indicators found"

// indicatorRule is one monetization heuristic. Strong rules pin confidence
// to high; weak rules only ever lift it from low to medium.
type indicatorRule struct {
	message string
	strong  bool
	match   func(html string) bool
}

func containsAny(substrs ...string) func(string) bool {
	return func(html string) bool {
		for _, s := range substrs {
			if strings.Contains(html, s) {
				return true
			}
		}
		return false
	}
}

var adSafetyReasonRe = regexp.MustCompile(`"adSafetyReason":(\{[^}]+\})`)

// The indicator set mirrors what YouTube's page payload carries when ads or
// paid-content overlays are configured. Order is stable so the indicator
// list reads the same across runs.
var indicatorRules = []indicatorRule{
	{
		message: "Direct monetization flag detected",
		strong:  true,
		match:   containsAny(`"isMonetized":true`),
	},
	{
		message: "Paid content overlay found",
		strong:  true,
		match:   containsAny(`"paidContentOverlay"`),
	},
	{
		message: "Ad slots detected",
		match:   containsAny("adSlot", "adModule"),
	},
	{
		message: "Player ads configuration found",
		strong:  true,
		match:   containsAny(`"playerAds"`),
	},
	{
		message: "Ad placements detected",
		match:   containsAny(`"adPlacements"`),
	},
	{
		message: "Ad safety configuration present",
		match: func(html string) bool {
			return strings.Contains(html, "yt.config_.PLAYER_CONFIG") &&
				adSafetyReasonRe.MatchString(html)
		},
	},
	{
		message: "Companion ads or ad breaks detected",
		match:   containsAny("companionAd", `"adBreakParams"`),
	},
	{
		message: "Ads engagement panel detected",
		match:   containsAny(`"adsEngagementPanelContentRenderer"`),
	},
}

var subscriberSimpleTextRe = regexp.MustCompile(`"subscriberCountText":\{"simpleText":"([^"]+)"`)

// AnalyzeMonetization scans the raw page for the known indicator set and
// applies the confidence policy: any strong match sets high and sticks,
// weak matches lift low to medium only.
func AnalyzeMonetization(html string) MonetizationResult {
	result := MonetizationResult{Confidence: ConfidenceLow}

	for _, rule := range indicatorRules {
		if !rule.match(html) {
			continue
		}
		result.Indicators = append(result.Indicators, rule.message)
		result.IsMonetized = true
		if rule.strong {
			result.Confidence = ConfidenceHigh
		} else if result.Confidence != ConfidenceHigh {
			result.Confidence = ConfidenceMedium
		}
	}

	if len(result.Indicators) == 0 {
		result.Indicators = []string{NoIndicatorsMessage}
	}

	info := &MonetizationChannelInfo{}
	info.Title = extractMetaTags(html).ogTitle
	if m := subscriberSimpleTextRe.FindStringSubmatch(html); m != nil {
		info.SubscriberCount = m[1]
	}
	if info.Title != "" || info.SubscriberCount != "" {
		result.ChannelInfo = info
	}

	return result
}
