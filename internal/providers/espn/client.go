// Package espn fetches fantasy football league data from ESPN's v3 league
// API, authenticating private leagues with the espn_s2 and SWID cookies.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fantasy-recap-service/internal/domain"
	"fantasy-recap-service/internal/providers"
)

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	BaseURL    string
	LeagueID   int
	ESPNS2     string
	SWID       string
	HTTPClient *http.Client
}

// Client fetches league data from ESPN and maps it to domain models.
type Client struct {
	baseURL    string
	leagueID   int
	espnS2     string
	swid       string
	httpClient httpDoer
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		leagueID:   cfg.LeagueID,
		espnS2:     cfg.ESPNS2,
		swid:       cfg.SWID,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchLeague retrieves league metadata and the current season position.
func (c *Client) FetchLeague(ctx context.Context, year int) (domain.League, error) {
	payload, err := c.fetch(ctx, year, viewSettings, viewStatus)
	if err != nil {
		return domain.League{}, err
	}
	return mapLeague(payload, year), nil
}

// FetchScoreboard retrieves the matchups for one week, in schedule order.
func (c *Client) FetchScoreboard(ctx context.Context, year, week int) ([]domain.Matchup, error) {
	payload, err := c.fetch(ctx, year, viewMatchupScore, viewTeam)
	if err != nil {
		return nil, err
	}
	return mapScoreboard(payload, week), nil
}

func (c *Client) fetch(ctx context.Context, year int, views ...string) (leagueResponse, error) {
	req, err := c.buildRequest(ctx, year, views)
	if err != nil {
		return leagueResponse{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return leagueResponse{}, fmt.Errorf("%s: %w", providerName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return leagueResponse{}, fmt.Errorf("%s: %w", providerName, providers.ErrAuthRejected)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return leagueResponse{}, &providers.UpstreamError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var payload leagueResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return leagueResponse{}, fmt.Errorf("%s: decode response: %w", providerName, err)
	}
	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, year int, views []string) (*http.Request, error) {
	url := fmt.Sprintf("%s/seasons/%d/segments/0/leagues/%d", c.baseURL, year, c.leagueID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for _, view := range views {
		q.Add("view", view)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	if c.espnS2 != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.espnS2})
	}
	if c.swid != "" {
		req.AddCookie(&http.Cookie{Name: "SWID", Value: c.swid})
	}

	return req, nil
}
