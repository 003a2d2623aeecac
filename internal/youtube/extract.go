package youtube

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FieldRule is one best-effort extraction over the raw page text. Rules are
// independent: a rule that fails to match never blocks the others. YouTube's
// page format is undocumented and unversioned, so every rule here is a
// heuristic that must fail soft.
type FieldRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// firstMatch runs rules in order and returns the first capture group that hits.
func firstMatch(html string, rules []FieldRule) (string, bool) {
	for _, r := range rules {
		if m := r.Pattern.FindStringSubmatch(html); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Channel identity rules, in priority order: the embedded JSON payload
// first, the canonical-URL meta tag as a fallback.
var channelIDRules = []FieldRule{
	{"channelId", regexp.MustCompile(`"channelId":"(UC[\w-]{22})"`)},
	{"externalId", regexp.MustCompile(`"externalId":"(UC[\w-]{22})"`)},
	{"og:url", regexp.MustCompile(`property="og:url" content="https://www\.youtube\.com/channel/(UC[\w-]{22})`)},
}

var (
	channelNameJSONRule = []FieldRule{
		{"channelName", regexp.MustCompile(`"channelName":"([^"]+)"`)},
	}
	handleRule = []FieldRule{
		{"canonicalChannelUrl", regexp.MustCompile(`"canonicalChannelUrl":"https://www\.youtube\.com/@([^"]+)"`)},
	}

	// Stats fields from the channel About payload. Subscriber counts only
	// appear as display strings; view and video counts carry a parseable
	// comma-separated number.
	statsTitleRule = []FieldRule{
		{"title", regexp.MustCompile(`"title":"([^"]+)","description"`)},
	}
	subscriberRules = []FieldRule{
		{"accessibilityLabel", regexp.MustCompile(`"subscriberCountText":\{"accessibility":\{"accessibilityData":\{"label":"([^"]+)"`)},
		{"simpleText", regexp.MustCompile(`"subscriberCountText":\{"simpleText":"([^"]+)"`)},
	}
	viewCountRule = []FieldRule{
		{"viewCountText", regexp.MustCompile(`"viewCountText":\{"simpleText":"([^"]+) views"`)},
	}
	videoCountRule = []FieldRule{
		{"videosCountText", regexp.MustCompile(`"videosCountText":\{"runs":\[\{"text":"([^"]+)"`)},
	}
	joinedDateRule = []FieldRule{
		{"joinedDateText", regexp.MustCompile(`"joinedDateText":\{"runs":\[\{"text":"Joined "\},\{"text":"([^"]+)"`)},
	}
)

// ChannelPage holds everything the extractor could recover from one fetched
// page. Any field may be zero; absence of one field never aborts extraction
// of the rest.
type ChannelPage struct {
	ChannelID       string
	Name            string
	Handle          string
	Title           string
	SubscriberCount DisplayCount
	ViewCount       DisplayCount
	VideoCount      DisplayCount
	JoinedDate      string
	Tags            []string
}

// ExtractChannelPage applies all field rules to the raw HTML.
func ExtractChannelPage(html string) ChannelPage {
	var page ChannelPage

	page.ChannelID, _ = firstMatch(html, channelIDRules)
	page.Handle, _ = firstMatch(html, handleRule)

	if v, ok := firstMatch(html, subscriberRules); ok {
		page.SubscriberCount = DisplayCount(v)
	}
	if v, ok := firstMatch(html, viewCountRule); ok {
		page.ViewCount = DisplayCount(v)
	}
	if v, ok := firstMatch(html, videoCountRule); ok {
		page.VideoCount = DisplayCount(v)
	}
	page.JoinedDate, _ = firstMatch(html, joinedDateRule)

	meta := extractMetaTags(html)
	page.Title = meta.title
	page.Tags = meta.keywords

	// og:title first, the embedded channelName field as fallback.
	page.Name = meta.ogTitle
	if page.Name == "" {
		page.Name, _ = firstMatch(html, channelNameJSONRule)
	}
	if page.Name == "" {
		page.Name, _ = firstMatch(html, statsTitleRule)
	}

	return page
}

type metaTags struct {
	ogTitle  string
	title    string
	keywords []string
}

// extractMetaTags pulls the <meta> fields out of the document head. Markup
// parsing is delegated to goquery; a page that fails to parse simply yields
// no meta fields.
func extractMetaTags(html string) metaTags {
	var m metaTags

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return m
	}

	m.ogTitle, _ = doc.Find(`meta[property="og:title"]`).Attr("content")
	m.title, _ = doc.Find(`meta[name="title"]`).Attr("content")

	if keywords, ok := doc.Find(`meta[name="keywords"]`).Attr("content"); ok {
		for _, tag := range strings.Split(keywords, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				m.keywords = append(m.keywords, tag)
			}
		}
	}

	return m
}
