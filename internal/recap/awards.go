package recap

import (
	"fmt"

	"fantasy-recap-service/internal/domain"
)

// computeAwards derives the four weekly awards. Ties share an award; the
// margin awards are omitted when no non-tied matchup exists, and Smallest
// Margin is additionally omitted when only one non-tied matchup exists
// (it would trivially repeat Largest Margin).
func computeAwards(matchups []domain.Matchup, w wording) []domain.Award {
	if len(matchups) == 0 {
		return nil
	}

	top := scorerAward(matchups, true, w)
	low := scorerAward(matchups, false, w)
	largest, smallest, contested := marginAwards(matchups, w)

	awards := make([]domain.Award, 0, 4)
	awards = append(awards, top)
	if contested > 0 {
		awards = append(awards, largest)
	}
	if contested > 1 {
		awards = append(awards, smallest)
	}
	awards = append(awards, low)
	return awards
}

// scorerAward scans every team score across all matchups and returns the
// Top Scorer (max=true) or Low Scorer (max=false) award. First appearance
// order is preserved for shared awards.
func scorerAward(matchups []domain.Matchup, max bool, w wording) domain.Award {
	var best float64
	var teams []string
	seen := make(map[string]struct{})

	consider := func(team domain.Team, score float64) {
		score = round2(score)
		better := score > best
		if !max {
			better = score < best
		}
		switch {
		case len(teams) == 0 || better:
			best = score
			teams = teams[:0]
			seen = map[string]struct{}{team.Name: {}}
			teams = append(teams, team.Name)
		case score == best:
			if _, dup := seen[team.Name]; !dup {
				seen[team.Name] = struct{}{}
				teams = append(teams, team.Name)
			}
		}
	}

	for _, m := range matchups {
		consider(m.HomeTeam, m.HomeScore)
		consider(m.AwayTeam, m.AwayScore)
	}

	if max {
		return domain.Award{
			Name:   domain.AwardTopScorer,
			Teams:  teams,
			Points: best,
			Detail: scorerDetail(teams, best, w.topScorerSingle, w.topScorerShared),
		}
	}
	return domain.Award{
		Name:   domain.AwardLowScorer,
		Teams:  teams,
		Points: best,
		Detail: scorerDetail(teams, best, w.lowScorerSingle, w.lowScorerShared),
	}
}

func scorerDetail(teams []string, points float64, single, shared string) string {
	if len(teams) == 1 {
		return fmt.Sprintf(single, teams[0], formatPoints(points))
	}
	return fmt.Sprintf(shared, joinNames(teams), formatPoints(points))
}

// marginAwards finds the largest and smallest positive margins among non-tied
// matchups. contested reports how many non-tied matchups were seen.
func marginAwards(matchups []domain.Matchup, w wording) (largest, smallest domain.Award, contested int) {
	var maxMargin, minMargin float64
	var maxMatchups, minMatchups []domain.Matchup

	for _, m := range matchups {
		if m.IsTie() {
			continue
		}
		margin := round2(m.Margin())
		contested++

		switch {
		case len(maxMatchups) == 0 || margin > maxMargin:
			maxMargin = margin
			maxMatchups = []domain.Matchup{m}
		case margin == maxMargin:
			maxMatchups = append(maxMatchups, m)
		}

		switch {
		case len(minMatchups) == 0 || margin < minMargin:
			minMargin = margin
			minMatchups = []domain.Matchup{m}
		case margin == minMargin:
			minMatchups = append(minMatchups, m)
		}
	}

	if contested == 0 {
		return domain.Award{}, domain.Award{}, 0
	}

	largest = domain.Award{
		Name:   domain.AwardLargestMargin,
		Teams:  winnerNames(maxMatchups),
		Points: maxMargin,
		Detail: largestDetail(maxMatchups, maxMargin, w),
	}
	smallest = domain.Award{
		Name:   domain.AwardSmallestMargin,
		Teams:  winnerNames(minMatchups),
		Points: minMargin,
		Detail: smallestDetail(minMatchups, minMargin, w),
	}
	return largest, smallest, contested
}

func winnerNames(matchups []domain.Matchup) []string {
	names := make([]string, 0, len(matchups))
	for _, m := range matchups {
		winner, _ := m.Winner()
		names = append(names, winner.Name)
	}
	return names
}

func largestDetail(matchups []domain.Matchup, margin float64, w wording) string {
	details := make([]string, 0, len(matchups))
	for _, m := range matchups {
		winner, winScore := m.Winner()
		loser, loseScore := m.Loser()
		details = append(details, fmt.Sprintf(w.largestMargin,
			winner.Name, loser.Name, formatPoints(margin),
			formatPoints(winScore), formatPoints(loseScore)))
	}
	return joinSentences(details)
}

func smallestDetail(matchups []domain.Matchup, margin float64, w wording) string {
	details := make([]string, 0, len(matchups))
	for _, m := range matchups {
		winner, _ := m.Winner()
		loser, _ := m.Loser()
		details = append(details, fmt.Sprintf(w.smallestMargin,
			winner.Name, loser.Name, formatPoints(margin)))
	}
	return joinSentences(details)
}

func joinSentences(details []string) string {
	if len(details) == 1 {
		return details[0]
	}
	out := details[0]
	for _, d := range details[1:] {
		out += " " + d
	}
	return out
}
