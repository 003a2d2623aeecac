package service

import (
	"context"
	"errors"

	"github.com/tubetools/tubetools-go/internal/model"
	"github.com/tubetools/tubetools-go/internal/youtube"
)

var (
	// ErrQuotaExceeded is returned once the daily ceiling is consumed.
	ErrQuotaExceeded = errors.New("daily API limit reached")

	// ErrAPIDisabled is returned when no Data API key is configured.
	ErrAPIDisabled = errors.New("YouTube API key not configured")

	// ErrIdentifierRequired is returned on an empty identifier.
	ErrIdentifierRequired = errors.New("channel identifier is required")
)

// ChannelDataService serves full channel profiles from the official Data
// API, gated by the daily quota. A unit is consumed before input validation,
// matching the reference behavior: even a malformed request spends quota.
type ChannelDataService struct {
	api   *youtube.APIClient
	quota *QuotaService
}

func NewChannelDataService(api *youtube.APIClient, quota *QuotaService) *ChannelDataService {
	return &ChannelDataService{api: api, quota: quota}
}

// Ceiling exposes the configured daily limit for error messages.
func (s *ChannelDataService) Ceiling() int {
	return s.quota.Ceiling()
}

// Fetch resolves the identifier and returns the channel profile with the
// remaining quota embedded.
func (s *ChannelDataService) Fetch(ctx context.Context, identifier string) (*model.ChannelMetadata, error) {
	dec, err := s.quota.Check(ctx)
	if err != nil {
		return nil, err
	}
	if !dec.Allowed {
		return nil, ErrQuotaExceeded
	}

	if identifier == "" {
		return nil, ErrIdentifierRequired
	}

	id, err := youtube.Parse(identifier)
	if err != nil {
		return nil, err
	}
	// The Data API resolves channel IDs and handles only.
	if id.Kind != youtube.KindChannelID && id.Kind != youtube.KindHandle {
		return nil, youtube.ErrUnrecognizedIdentifier
	}

	if s.api == nil {
		return nil, ErrAPIDisabled
	}

	meta, err := s.api.ChannelData(ctx, id)
	if err != nil {
		return nil, err
	}

	remaining := dec.Remaining
	meta.RemainingQuota = &remaining
	return meta, nil
}
