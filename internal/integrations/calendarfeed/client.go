package calendarfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/uncensored-studios/studio-booking-service/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client fetches the published studio calendar feed.
type Client struct {
	feedURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a feed client for the given URL.
func NewClient(feedURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Fetch retrieves the raw feed body.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrFetch, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read body: %v", ErrFetch, err)
	}

	return string(body), nil
}

// FetchMarkers retrieves and parses the feed, degrading to an empty marker
// set on any fetch failure. Availability must still render without booked-slot
// exclusion when the feed is unreachable, so callers never see an error here.
func (c *Client) FetchMarkers(ctx context.Context) []domain.BookedMarker {
	body, err := c.Fetch(ctx)
	if err != nil {
		c.log.Warn("FetchMarkers: feed unavailable, continuing with empty marker set: %v", err)
		return []domain.BookedMarker{}
	}

	markers := Parse(body)
	c.log.Info("FetchMarkers: parsed %d booked markers from feed", len(markers))
	return markers
}
