package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"drawlab/domain/core"
	"drawlab/domain/draw"
	"drawlab/internal/errors"
)

// Client fetches a remote JSON draw feed.
type Client struct {
	httpClient *http.Client
	url        string
	game       core.GameType
	provider   string
}

// NewClient creates a feed client for one source URL.
func NewClient(url string, game core.GameType, provider string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		url:        url,
		game:       game,
		provider:   provider,
	}
}

// Fetch downloads and parses the feed document.
func (c *Client) Fetch(ctx context.Context) (draw.History, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.WithCode(errors.CodeFeedError, errors.Wrap(err, "building feed request"))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WithCode(errors.CodeFeedError, errors.Wrap(err, "fetching feed"))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.CodeFeedError,
			fmt.Sprintf("feed returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, errors.WithCode(errors.CodeFeedError, errors.Wrap(err, "reading feed body"))
	}
	return ParseJSON(body, c.game, c.provider)
}
