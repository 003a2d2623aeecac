package service

import (
	"context"
	"errors"
	"time"

	"github.com/tubetools/tubetools-go/internal/model"
	"github.com/tubetools/tubetools-go/internal/youtube"
)

// ErrNoChannelID indicates a channel page was fetched but carried no
// recognizable channel ID (format drift or a consent interstitial).
var ErrNoChannelID = errors.New("channel ID not found in page")

// ToolService orchestrates the scraping tools: parse identifier, fetch the
// public page, run the extractor, assemble the endpoint's response shape.
type ToolService struct {
	fetcher *youtube.Fetcher
	now     func() time.Time
}

func NewToolService(fetcher *youtube.Fetcher) *ToolService {
	return &ToolService{fetcher: fetcher, now: time.Now}
}

// FindChannelID resolves any channel URL form to the canonical UC… ID.
func (s *ToolService) FindChannelID(ctx context.Context, rawURL string) (*model.ChannelIDResult, error) {
	id, err := youtube.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if !id.IsChannel() {
		// A video URL is not a channel reference for this tool.
		return nil, youtube.ErrUnrecognizedIdentifier
	}

	html, err := s.fetcher.FetchPage(ctx, id.TargetURL())
	if err != nil {
		return nil, err
	}

	page := youtube.ExtractChannelPage(html)
	if page.ChannelID == "" {
		return nil, ErrNoChannelID
	}

	name := page.Name
	if name == "" {
		name = "YouTube Channel"
	}

	return &model.ChannelIDResult{
		ChannelID:     page.ChannelID,
		ChannelName:   name,
		ChannelHandle: page.Handle,
		ChannelURL:    "https://www.youtube.com/channel/" + page.ChannelID,
	}, nil
}

// CheckMonetization fetches a video or channel page and scans it for the
// known monetization indicators.
func (s *ToolService) CheckMonetization(ctx context.Context, rawURL string) (*youtube.MonetizationResult, error) {
	id, err := youtube.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	html, err := s.fetcher.FetchPage(ctx, id.TargetURL())
	if err != nil {
		return nil, err
	}

	result := youtube.AnalyzeMonetization(html)
	return &result, nil
}

// ExtractTags pulls the keywords meta tag off a video or channel page.
func (s *ToolService) ExtractTags(ctx context.Context, rawURL string) (*model.TagsResult, error) {
	id, err := youtube.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	html, err := s.fetcher.FetchPage(ctx, id.TargetURL())
	if err != nil {
		return nil, err
	}

	page := youtube.ExtractChannelPage(html)
	tags := page.Tags
	if tags == nil {
		tags = []string{}
	}

	return &model.TagsResult{
		Success:   true,
		Tags:      tags,
		Title:     page.Title,
		TotalTags: len(tags),
	}, nil
}

// ChannelStats scrapes the channel About payload and derives daily views
// from the genuinely numeric view count, never from the display string.
func (s *ToolService) ChannelStats(ctx context.Context, rawURL string) (*model.ChannelStatsResult, error) {
	id, err := youtube.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if !id.IsChannel() {
		return nil, youtube.ErrUnrecognizedIdentifier
	}

	html, err := s.fetcher.FetchPage(ctx, id.TargetURL())
	if err != nil {
		return nil, err
	}

	page := youtube.ExtractChannelPage(html)

	totalViews, _ := youtube.ParseCount(string(page.ViewCount))
	videoCount, _ := youtube.ParseCount(string(page.VideoCount))

	// Channels predating the About payload rollout carry no joined date;
	// fall back to one year so dailyViews stays defined.
	daysSinceJoined := 365
	if joined, ok := youtube.ParseJoinedDate(page.JoinedDate); ok {
		daysSinceJoined = youtube.DaysSince(joined, s.now())
	}

	var dailyViews int64
	if totalViews > 0 && daysSinceJoined > 0 {
		dailyViews = totalViews / int64(daysSinceJoined)
	}

	return &model.ChannelStatsResult{
		Success:         true,
		ChannelName:     page.Name,
		SubscriberCount: string(page.SubscriberCount),
		TotalViews:      totalViews,
		VideoCount:      videoCount,
		JoinedDate:      page.JoinedDate,
		DaysSinceJoined: daysSinceJoined,
		DailyViews:      dailyViews,
	}, nil
}
