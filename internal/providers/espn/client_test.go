package espn

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"fantasy-recap-service/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

const leagueBody = `{
	"id": 123456,
	"seasonId": 2025,
	"settings": { "name": "The Gridiron League" },
	"status": { "currentMatchupPeriod": 6, "isActive": true },
	"teams": [
		{ "id": 1, "name": "Alpha Squad" },
		{ "id": 2, "location": "Beta", "nickname": "Blockers" },
		{ "id": 3, "name": "Gamma Guys" },
		{ "id": 4, "name": "Delta Force" }
	],
	"schedule": [
		{ "matchupPeriodId": 5, "winner": "HOME",
			"home": { "teamId": 1, "totalPoints": 145.67 },
			"away": { "teamId": 2, "totalPoints": 132.45 } },
		{ "matchupPeriodId": 5, "winner": "TIE",
			"home": { "teamId": 3, "totalPoints": 128.9 },
			"away": { "teamId": 4, "totalPoints": 128.9 } },
		{ "matchupPeriodId": 6,
			"home": { "teamId": 1, "totalPoints": 0 },
			"away": { "teamId": 3, "totalPoints": 0 } }
	]
}`

func newTestClient(rt roundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    "http://example.com",
		LeagueID:   123456,
		ESPNS2:     "s2-token",
		SWID:       "{SWID}",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func TestFetchScoreboardSendsCookiesAndViews(t *testing.T) {
	var captured *http.Request
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, leagueBody), nil
	})

	matchups, err := client.FetchScoreboard(context.Background(), 2025, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := captured.URL.Path; got != "/seasons/2025/segments/0/leagues/123456" {
		t.Fatalf("unexpected path %s", got)
	}
	views := captured.URL.Query()["view"]
	if len(views) != 2 || views[0] != "mMatchupScore" || views[1] != "mTeam" {
		t.Fatalf("unexpected views %v", views)
	}

	cookies := captured.Cookies()
	if len(cookies) != 2 || cookies[0].Name != "espn_s2" || cookies[1].Name != "SWID" {
		t.Fatalf("expected espn_s2 and SWID cookies, got %v", cookies)
	}

	if len(matchups) != 2 {
		t.Fatalf("expected 2 matchups for week 5, got %d", len(matchups))
	}
	first := matchups[0]
	if first.HomeTeam.Name != "Alpha Squad" || first.AwayTeam.Name != "Beta Blockers" {
		t.Fatalf("unexpected team names: %s vs %s", first.HomeTeam.Name, first.AwayTeam.Name)
	}
	if first.HomeScore != 145.67 || first.AwayScore != 132.45 {
		t.Fatalf("unexpected scores: %v to %v", first.HomeScore, first.AwayScore)
	}
}

func TestFetchLeague(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		views := req.URL.Query()["view"]
		if len(views) != 2 || views[0] != "mSettings" || views[1] != "mStatus" {
			t.Fatalf("unexpected views %v", views)
		}
		return jsonResponse(http.StatusOK, leagueBody), nil
	})

	league, err := client.FetchLeague(context.Background(), 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if league.Name != "The Gridiron League" {
		t.Fatalf("unexpected league name %q", league.Name)
	}
	if league.CurrentWeek != 6 {
		t.Fatalf("expected current week 6, got %d", league.CurrentWeek)
	}
	if league.Year != 2025 {
		t.Fatalf("expected year 2025, got %d", league.Year)
	}
}

func TestFetchRejectedCredentials(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client := newTestClient(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(status, `{}`), nil
		})

		_, err := client.FetchLeague(context.Background(), 2025)
		if !errors.Is(err, providers.ErrAuthRejected) {
			t.Fatalf("status %d: expected ErrAuthRejected, got %v", status, err)
		}
	}
}

func TestFetchUpstreamError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "upstream broke"), nil
	})

	_, err := client.FetchScoreboard(context.Background(), 2025, 5)
	upErr, ok := providers.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.StatusCode != http.StatusBadGateway || upErr.Message != "upstream broke" {
		t.Fatalf("unexpected upstream error %+v", upErr)
	}
}

func TestFetchMalformedResponse(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "not json"), nil
	})

	if _, err := client.FetchScoreboard(context.Background(), 2025, 5); err == nil {
		t.Fatal("expected decode error")
	}
}
