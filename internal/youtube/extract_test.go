package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const samplePage = `<!DOCTYPE html><html><head>
<meta property="og:title" content="Sample Creator">
<meta name="title" content="Sample Creator - YouTube">
<meta name="keywords" content="go, programming , , tutorials">
<meta property="og:url" content="https://www.youtube.com/channel/UCzzzzzzzzzzzzzzzzzzzzzz">
</head><body>
<script>
var ytInitialData = {"channelId":"UCuAXFkgsw1L7xaCfnd5JJOw","channelName":"Sample Creator",
"canonicalChannelUrl":"https://www.youtube.com/@samplecreator",
"title":"Sample Creator","description":"stuff",
"subscriberCountText":{"accessibility":{"accessibilityData":{"label":"1.2 million subscribers"}}},
"viewCountText":{"simpleText":"123,456,789 views"},
"videosCountText":{"runs":[{"text":"1,234"}]},
"joinedDateText":{"runs":[{"text":"Joined "},{"text":"Mar 15, 2015"}]}};
</script>
</body></html>`

func TestExtractChannelPage_AllFields(t *testing.T) {
	page := ExtractChannelPage(samplePage)

	assert.Equal(t, "UCuAXFkgsw1L7xaCfnd5JJOw", page.ChannelID)
	assert.Equal(t, "Sample Creator", page.Name)
	assert.Equal(t, "samplecreator", page.Handle)
	assert.Equal(t, "Sample Creator - YouTube", page.Title)
	assert.Equal(t, DisplayCount("1.2 million subscribers"), page.SubscriberCount)
	assert.Equal(t, DisplayCount("123,456,789"), page.ViewCount)
	assert.Equal(t, DisplayCount("1,234"), page.VideoCount)
	assert.Equal(t, "Mar 15, 2015", page.JoinedDate)
	assert.Equal(t, []string{"go", "programming", "tutorials"}, page.Tags)
}

func TestExtractChannelPage_ChannelIDPriority(t *testing.T) {
	// channelId beats externalId beats the og:url meta tag.
	both := `{"channelId":"UCaaaaaaaaaaaaaaaaaaaaaa","externalId":"UCbbbbbbbbbbbbbbbbbbbbbb"}`
	page := ExtractChannelPage(both)
	assert.Equal(t, "UCaaaaaaaaaaaaaaaaaaaaaa", page.ChannelID)

	externalOnly := `{"externalId":"UCbbbbbbbbbbbbbbbbbbbbbb"}`
	page = ExtractChannelPage(externalOnly)
	assert.Equal(t, "UCbbbbbbbbbbbbbbbbbbbbbb", page.ChannelID)

	metaOnly := `<meta property="og:url" content="https://www.youtube.com/channel/UCcccccccccccccccccccccc">`
	page = ExtractChannelPage(metaOnly)
	assert.Equal(t, "UCcccccccccccccccccccccc", page.ChannelID)
}

func TestExtractChannelPage_NameFallback(t *testing.T) {
	// No og:title: fall back to the embedded channelName field.
	page := ExtractChannelPage(`{"channelName":"Fallback Name"}`)
	assert.Equal(t, "Fallback Name", page.Name)

	// Neither: fall back to the About payload title.
	page = ExtractChannelPage(`{"title":"About Title","description":"x"}`)
	assert.Equal(t, "About Title", page.Name)
}

func TestExtractChannelPage_MissingFieldsFailSoft(t *testing.T) {
	page := ExtractChannelPage("<html><body>nothing useful here</body></html>")

	assert.Empty(t, page.ChannelID)
	assert.Empty(t, page.Name)
	assert.Empty(t, page.Handle)
	assert.Empty(t, page.Tags)
	assert.Empty(t, string(page.SubscriberCount))
}

func TestExtractChannelPage_SubscriberSimpleTextFallback(t *testing.T) {
	page := ExtractChannelPage(`{"subscriberCountText":{"simpleText":"1.2M subscribers"}}`)
	assert.Equal(t, DisplayCount("1.2M subscribers"), page.SubscriberCount)
}

func TestExtractChannelPage_TagsSplitting(t *testing.T) {
	html := `<meta name="keywords" content="  one,two , ,three,">`
	page := ExtractChannelPage(html)
	assert.Equal(t, []string{"one", "two", "three"}, page.Tags)
}
