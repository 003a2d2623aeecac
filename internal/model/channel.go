package model

// ChannelMetadata is the full channel profile assembled from the official
// Data API. Built fresh per request, never persisted.
type ChannelMetadata struct {
	ChannelID            string   `json:"channelId"`
	ChannelName          string   `json:"channelName"`
	ChannelHandle        string   `json:"channelHandle"`
	Description          string   `json:"description"`
	ThumbnailURL         string   `json:"thumbnailUrl"`
	BannerURL            string   `json:"bannerUrl"`
	SubscriberCount      string   `json:"subscriberCount"`
	VideoCount           string   `json:"videoCount"`
	ViewCount            string   `json:"viewCount"`
	Country              string   `json:"country"`
	CustomURL            string   `json:"customUrl"`
	PublishedAt          string   `json:"publishedAt"`
	IsMonetized          bool     `json:"isMonetized"`
	Tags                 []string `json:"tags"`
	Category             string   `json:"category"`
	AdsEnabled           bool     `json:"adsEnabled"`
	VerificationStatus   string   `json:"verificationStatus"`
	RegionalRestrictions bool     `json:"regionalRestrictions"`
	AgeRestricted        bool     `json:"ageRestricted"`
	MadeForKids          bool     `json:"madeForKids"`
	RemainingQuota       *int     `json:"remainingQuota,omitempty"`
}

// ChannelIDResult is the response for channel-ID lookups.
type ChannelIDResult struct {
	ChannelID     string `json:"channelId"`
	ChannelName   string `json:"channelName"`
	ChannelHandle string `json:"channelHandle,omitempty"`
	ChannelURL    string `json:"channelUrl"`
}

// TagsResult is the response for video/channel tag extraction.
type TagsResult struct {
	Success   bool     `json:"success"`
	Tags      []string `json:"tags"`
	Title     string   `json:"title"`
	TotalTags int      `json:"totalTags"`
}

// ChannelStatsResult is the response for scraped channel statistics.
// SubscriberCount stays a display string; TotalViews and VideoCount are
// genuinely numeric and feed the dailyViews derivation.
type ChannelStatsResult struct {
	Success         bool   `json:"success"`
	ChannelName     string `json:"channelName"`
	SubscriberCount string `json:"subscriberCount"`
	TotalViews      int64  `json:"totalViews"`
	VideoCount      int64  `json:"videoCount"`
	JoinedDate      string `json:"joinedDate"`
	DaysSinceJoined int    `json:"daysSinceJoined"`
	DailyViews      int64  `json:"dailyViews"`
}
