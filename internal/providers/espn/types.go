package espn

const providerName = "espn"

type leagueResponse struct {
	ID       int              `json:"id"`
	SeasonID int              `json:"seasonId"`
	Teams    []teamResponse   `json:"teams"`
	Schedule []scheduleEntry  `json:"schedule"`
	Settings settingsResponse `json:"settings"`
	Status   statusResponse   `json:"status"`
}

type teamResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Nickname string `json:"nickname"`
	Abbrev   string `json:"abbrev"`
}

type scheduleEntry struct {
	ID              int          `json:"id"`
	MatchupPeriodID int          `json:"matchupPeriodId"`
	Winner          string       `json:"winner"`
	Home            *matchupSide `json:"home"`
	Away            *matchupSide `json:"away"`
}

type matchupSide struct {
	TeamID      int     `json:"teamId"`
	TotalPoints float64 `json:"totalPoints"`
}

type settingsResponse struct {
	Name string `json:"name"`
}

type statusResponse struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	IsActive             bool `json:"isActive"`
	LatestScoringPeriod  int  `json:"latestScoringPeriod"`
}
