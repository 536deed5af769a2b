package espn

import "time"

const (
	defaultBaseURL     = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"
	defaultHTTPTimeout = 15 * time.Second

	viewMatchupScore = "mMatchupScore"
	viewTeam         = "mTeam"
	viewSettings     = "mSettings"
	viewStatus       = "mStatus"
)
