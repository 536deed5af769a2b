package config

import "strconv"

// ESPNConfig controls how we talk to the ESPN fantasy API. LeagueID stays a
// string until Validate so a malformed value is reported as a credential
// problem rather than silently defaulted.
type ESPNConfig struct {
	BaseURL  string
	LeagueID string
	ESPNS2   string
	SWID     string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		BaseURL:  envOrDefault(envESPNBaseURL, ""),
		LeagueID: envOrDefault(envLeagueID, ""),
		ESPNS2:   envOrDefault(envESPNS2, ""),
		SWID:     envOrDefault(envSWID, ""),
	}
}

// LeagueIDInt parses the league identifier.
func (c ESPNConfig) LeagueIDInt() (int, error) {
	return strconv.Atoi(c.LeagueID)
}
