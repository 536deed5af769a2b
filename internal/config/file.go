package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileCredentials mirrors the optional local credentials file, so the CLI
// can run without exporting anything. Environment values always win.
type fileCredentials struct {
	LeagueID string `yaml:"league_id"`
	ESPNS2   string `yaml:"espn_s2"`
	SWID     string `yaml:"swid"`
}

func applyCredentialsFile(espn *ESPNConfig, path string) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var creds fileCredentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return
	}

	if espn.LeagueID == "" {
		espn.LeagueID = strings.TrimSpace(creds.LeagueID)
	}
	if espn.ESPNS2 == "" {
		espn.ESPNS2 = strings.TrimSpace(creds.ESPNS2)
	}
	if espn.SWID == "" {
		espn.SWID = strings.TrimSpace(creds.SWID)
	}
}
