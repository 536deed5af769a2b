package providers

import (
	"context"

	"fantasy-recap-service/internal/domain"
)

// LeagueProvider defines how upstream fantasy league data is fetched and
// normalized. FetchScoreboard returns the matchups for one week in the
// order the upstream delivers them; an empty slice is a valid result.
type LeagueProvider interface {
	FetchLeague(ctx context.Context, year int) (domain.League, error)
	FetchScoreboard(ctx context.Context, year, week int) ([]domain.Matchup, error)
}
