package domain

// Team identifies a fantasy team within a league.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Matchup is one scheduled pairing of two teams with their final scores.
// Scores follow the two-decimal convention used by the upstream API.
type Matchup struct {
	Week      int     `json:"week"`
	HomeTeam  Team    `json:"homeTeam"`
	AwayTeam  Team    `json:"awayTeam"`
	HomeScore float64 `json:"homeScore"`
	AwayScore float64 `json:"awayScore"`
}

// IsTie reports whether both teams scored the same.
func (m Matchup) IsTie() bool {
	return m.HomeScore == m.AwayScore
}

// Margin is the absolute score difference between the two teams.
func (m Matchup) Margin() float64 {
	if m.HomeScore >= m.AwayScore {
		return m.HomeScore - m.AwayScore
	}
	return m.AwayScore - m.HomeScore
}

// Winner returns the winning team and its score. Undefined for ties;
// callers check IsTie first.
func (m Matchup) Winner() (Team, float64) {
	if m.HomeScore >= m.AwayScore {
		return m.HomeTeam, m.HomeScore
	}
	return m.AwayTeam, m.AwayScore
}

// Loser returns the losing team and its score.
func (m Matchup) Loser() (Team, float64) {
	if m.HomeScore >= m.AwayScore {
		return m.AwayTeam, m.AwayScore
	}
	return m.HomeTeam, m.HomeScore
}

// Award category names. Wording changes with tone, categories do not.
const (
	AwardTopScorer      = "Top Scorer"
	AwardLargestMargin  = "Largest Margin"
	AwardSmallestMargin = "Smallest Margin"
	AwardLowScorer      = "Low Scorer"
)

// Award names a category, the team(s) sharing it, and the justifying value
// (a score for the scorer awards, a margin for the margin awards).
type Award struct {
	Name   string   `json:"name"`
	Teams  []string `json:"teams"`
	Points float64  `json:"points"`
	Detail string   `json:"detail"`
}

// Recap is the composed narrative plus awards for one week. Sentences holds
// one entry per matchup; Text is the full transcript handed to the renderer.
type Recap struct {
	Week      int      `json:"week"`
	Sentences []string `json:"sentences"`
	Awards    []Award  `json:"awards"`
	Text      string   `json:"text"`
}

// League carries the basic league metadata surfaced by /api/league-info and
// used for week resolution.
type League struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Year        int    `json:"year"`
	CurrentWeek int    `json:"currentWeek"`
}
