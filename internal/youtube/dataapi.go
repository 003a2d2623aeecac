package youtube

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/tubetools/tubetools-go/internal/model"
)

// ErrChannelNotFound indicates the Data API returned no items for the
// requested channel.
var ErrChannelNotFound = errors.New("channel not found")

// APIClient wraps the official YouTube Data API v3 for channel profile
// lookups. It is an opaque collaborator: responses are typed JSON, no
// scraping involved.
type APIClient struct {
	svc *ytapi.Service
}

func NewAPIClient(ctx context.Context, apiKey string) (*APIClient, error) {
	if apiKey == "" {
		return nil, errors.New("YouTube API key not configured")
	}
	svc, err := ytapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &APIClient{svc: svc}, nil
}

// ChannelData fetches the channel profile for a channel ID or handle.
func (c *APIClient) ChannelData(ctx context.Context, id Identifier) (*model.ChannelMetadata, error) {
	call := c.svc.Channels.
		List([]string{"snippet", "statistics", "brandingSettings", "status"}).
		Context(ctx)

	switch id.Kind {
	case KindHandle:
		call = call.ForHandle(id.Value)
	case KindChannelID:
		call = call.Id(id.Value)
	default:
		return nil, fmt.Errorf("identifier kind not supported by the Data API: %w", ErrUnrecognizedIdentifier)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("youtube channels.list: %w", err)
	}
	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	ch := resp.Items[0]
	meta := &model.ChannelMetadata{
		ChannelID:          ch.Id,
		ChannelName:        "Unknown Channel",
		Country:            "Unknown",
		Category:           "Unknown",
		VerificationStatus: "Unknown",
		Tags:               []string{},
	}

	if sn := ch.Snippet; sn != nil {
		if sn.Title != "" {
			meta.ChannelName = sn.Title
		}
		meta.ChannelHandle = sn.CustomUrl
		meta.CustomURL = sn.CustomUrl
		meta.Description = sn.Description
		meta.PublishedAt = sn.PublishedAt
		if sn.Country != "" {
			meta.Country = sn.Country
		}
		if th := sn.Thumbnails; th != nil {
			switch {
			case th.High != nil:
				meta.ThumbnailURL = th.High.Url
			case th.Default != nil:
				meta.ThumbnailURL = th.Default.Url
			}
		}
	}

	if st := ch.Statistics; st != nil {
		meta.SubscriberCount = strconv.FormatUint(st.SubscriberCount, 10)
		meta.VideoCount = strconv.FormatUint(st.VideoCount, 10)
		meta.ViewCount = strconv.FormatUint(st.ViewCount, 10)
	} else {
		meta.SubscriberCount, meta.VideoCount, meta.ViewCount = "0", "0", "0"
	}

	if bs := ch.BrandingSettings; bs != nil {
		if bs.Image != nil {
			meta.BannerURL = bs.Image.BannerExternalUrl
		}
		if bs.Channel != nil && bs.Channel.Keywords != "" {
			for _, tag := range strings.Split(bs.Channel.Keywords, ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					meta.Tags = append(meta.Tags, tag)
				}
			}
		}
	}

	if ch.Status != nil {
		meta.MadeForKids = ch.Status.MadeForKids
	}

	return meta, nil
}
