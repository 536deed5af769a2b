package testutil

import (
	"context"

	"fantasy-recap-service/internal/domain"
)

// StubProvider returns canned league and scoreboard data, or the configured
// errors. Call counts are tracked for retry and caching assertions.
type StubProvider struct {
	League   domain.League
	Matchups []domain.Matchup

	LeagueErr     error
	ScoreboardErr error

	LeagueCalls     int
	ScoreboardCalls int
}

func (p *StubProvider) FetchLeague(ctx context.Context, year int) (domain.League, error) {
	_ = ctx
	_ = year
	p.LeagueCalls++
	if p.LeagueErr != nil {
		return domain.League{}, p.LeagueErr
	}
	return p.League, nil
}

func (p *StubProvider) FetchScoreboard(ctx context.Context, year, week int) ([]domain.Matchup, error) {
	_ = ctx
	_ = year
	_ = week
	p.ScoreboardCalls++
	if p.ScoreboardErr != nil {
		return nil, p.ScoreboardErr
	}
	return p.Matchups, nil
}
