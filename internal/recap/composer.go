// Package recap turns a week of matchup scores into a narrative transcript
// with derived awards. Composition is pure: the same matchups and tone always
// produce byte-identical output.
package recap

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fantasy-recap-service/internal/domain"
)

// Compose builds the recap for one week of matchups. Matchup order is
// preserved as delivered by the provider. An empty matchup list yields a
// valid recap with no sentences and no awards.
func Compose(week int, matchups []domain.Matchup, tone Tone) domain.Recap {
	w, ok := wordings[tone]
	if !ok {
		w = wordings[ToneDefault]
	}

	sentences := make([]string, 0, len(matchups))
	for _, m := range matchups {
		sentences = append(sentences, matchupSentence(m, w))
	}

	awards := computeAwards(matchups, w)

	return domain.Recap{
		Week:      week,
		Sentences: sentences,
		Awards:    awards,
		Text:      renderText(week, sentences, awards, w),
	}
}

func matchupSentence(m domain.Matchup, w wording) string {
	if m.IsTie() {
		return fmt.Sprintf(w.tie, m.HomeTeam.Name, m.AwayTeam.Name, formatPoints(m.HomeScore))
	}
	winner, winScore := m.Winner()
	loser, loseScore := m.Loser()
	return fmt.Sprintf(w.victory,
		winner.Name, loser.Name,
		formatPoints(winScore), formatPoints(loseScore),
		formatPoints(m.Margin()))
}

func renderText(week int, sentences []string, awards []domain.Award, w wording) string {
	parts := make([]string, 0, len(sentences)+2)
	parts = append(parts, fmt.Sprintf(w.title, week))
	parts = append(parts, sentences...)

	if len(awards) > 0 {
		lines := make([]string, 0, len(awards)+1)
		lines = append(lines, w.awardsHeading)
		for _, a := range awards {
			lines = append(lines, a.Detail)
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}

	return strings.Join(parts, "\n\n")
}

// round2 applies the two-decimal scoring convention.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatPoints renders a score or margin without trailing zeros.
func formatPoints(v float64) string {
	return strconv.FormatFloat(round2(v), 'f', -1, 64)
}

// joinNames renders a shared-award team list as prose ("A and B", "A, B and C").
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
