package cfbd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/nextgenscores/ngsapi/internal/config"
)

const maxRetries = 2

type Client struct {
	cfg        config.CfbdConfig
	httpClient *http.Client
}

func NewClient(cfg config.CfbdConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// get performs one authenticated request with bounded retry. Transport
// errors and 5xx responses are retried with exponential backoff; anything
// else fails immediately.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	fullURL := c.cfg.BaseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		if c.cfg.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			slog.Warn("cfbd request failed", "url", fullURL, "error", err)
			return err
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			slog.Warn("cfbd server error", "url", fullURL, "status", resp.StatusCode)
			return fmt.Errorf("cfbd api error: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("cfbd api error: status %d", resp.StatusCode))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return body, nil
}

// GetGames fetches a season's games; week 0 fetches the whole season.
func (c *Client) GetGames(ctx context.Context, year, week int) ([]Game, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))
	if week != 0 {
		params.Set("week", strconv.Itoa(week))
	}

	body, err := c.get(ctx, "/games", params)
	if err != nil {
		return nil, err
	}

	var games []Game
	if err := json.Unmarshal(body, &games); err != nil {
		return nil, fmt.Errorf("unmarshal games: %w", err)
	}
	return games, nil
}

// GetLines fetches betting lines for a season; week 0 fetches the whole season.
func (c *Client) GetLines(ctx context.Context, year, week int) ([]GameLines, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))
	if week != 0 {
		params.Set("week", strconv.Itoa(week))
	}

	body, err := c.get(ctx, "/lines", params)
	if err != nil {
		return nil, err
	}

	var lines []GameLines
	if err := json.Unmarshal(body, &lines); err != nil {
		return nil, fmt.Errorf("unmarshal lines: %w", err)
	}
	return lines, nil
}
