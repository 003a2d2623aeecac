package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrNotFound indicates the upstream page confirmed the resource is absent (404).
var ErrNotFound = errors.New("channel or video not found")

// UpstreamStatusError is any non-2xx, non-404 response from YouTube.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("YouTube returned status %d", e.StatusCode)
}

var (
	fetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tubetools_youtube_fetch_duration_seconds",
		Help:    "Duration of outbound YouTube page fetches.",
		Buckets: prometheus.DefBuckets,
	})
	fetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tubetools_youtube_fetch_failures_total",
		Help: "Failed YouTube page fetches, by reason.",
	}, []string{"reason"})
)

// Fetcher performs single, non-retried GET requests against public YouTube
// pages with browser-like headers and a uniform timeout.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	transport := &http.Transport{
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     20,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Fetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		userAgent: userAgent,
	}
}

// FetchPage GETs the URL and returns the raw body as text. A 404 maps to
// ErrNotFound, any other non-2xx status to UpstreamStatusError. One attempt
// only; timeouts and network failures surface as wrapped transport errors.
func (f *Fetcher) FetchPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}

	// Header set YouTube expects from a desktop browser. Without these the
	// consent wall or a stripped page is served.
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("DNT", "1")
	req.Header.Set("Connection", "keep-alive")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	start := time.Now()
	resp, err := f.client.Do(req)
	fetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		fetchFailures.WithLabelValues("network").Inc()
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		fetchFailures.WithLabelValues("not_found").Inc()
		return "", ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		fetchFailures.WithLabelValues("upstream_status").Inc()
		return "", &UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fetchFailures.WithLabelValues("read_body").Inc()
		return "", fmt.Errorf("read response body: %w", err)
	}
	return string(body), nil
}
