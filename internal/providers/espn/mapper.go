package espn

import (
	"fmt"
	"math"
	"strings"

	"fantasy-recap-service/internal/domain"
)

func mapLeague(payload leagueResponse, year int) domain.League {
	return domain.League{
		ID:          payload.ID,
		Name:        strings.TrimSpace(payload.Settings.Name),
		Year:        year,
		CurrentWeek: payload.Status.CurrentMatchupPeriod,
	}
}

// mapScoreboard filters the full-season schedule down to one matchup period.
// Entries missing a side (bye weeks) are skipped.
func mapScoreboard(payload leagueResponse, week int) []domain.Matchup {
	names := teamNames(payload.Teams)

	matchups := make([]domain.Matchup, 0)
	for _, entry := range payload.Schedule {
		if entry.MatchupPeriodID != week {
			continue
		}
		if entry.Home == nil || entry.Away == nil {
			continue
		}
		matchups = append(matchups, domain.Matchup{
			Week:      week,
			HomeTeam:  teamFor(names, entry.Home.TeamID),
			AwayTeam:  teamFor(names, entry.Away.TeamID),
			HomeScore: round2(entry.Home.TotalPoints),
			AwayScore: round2(entry.Away.TotalPoints),
		})
	}
	return matchups
}

func teamNames(teams []teamResponse) map[int]string {
	names := make(map[int]string, len(teams))
	for _, t := range teams {
		names[t.ID] = teamName(t)
	}
	return names
}

// teamName prefers the flat name field; older seasons only carry
// location and nickname.
func teamName(t teamResponse) string {
	if name := strings.TrimSpace(t.Name); name != "" {
		return name
	}
	name := strings.TrimSpace(strings.TrimSpace(t.Location) + " " + strings.TrimSpace(t.Nickname))
	if name != "" {
		return name
	}
	return fmt.Sprintf("Team %d", t.ID)
}

func teamFor(names map[int]string, id int) domain.Team {
	name, ok := names[id]
	if !ok {
		name = fmt.Sprintf("Team %d", id)
	}
	return domain.Team{ID: id, Name: name}
}

// round2 applies the upstream two-decimal scoring convention at the boundary
// so all downstream comparisons see identical values.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
