package config

import (
	"errors"
	"fmt"
)

// Config holds runtime configuration for the service.
type Config struct {
	Port     string
	WebDir   string
	AudioDir string
	Provider ProviderConfig
	ESPN     ESPNConfig
	TTS      TTSConfig
	Metrics  MetricsConfig
	Sentry   SentryConfig
}

// Load reads configuration from environment variables with sensible
// defaults, falling back to a local credentials file (see file.go) for the
// ESPN values when the environment leaves them unset.
func Load() Config {
	cfg := Config{
		Port:     envOrDefault(envPort, defaultPort),
		WebDir:   envOrDefault(envWebDir, defaultWebDir),
		AudioDir: envOrDefault(envAudioDir, defaultAudioDir),
		Provider: loadProvider(),
		ESPN:     loadESPN(),
		TTS:      loadTTS(),
		Metrics:  loadMetrics(),
		Sentry:   loadSentry(),
	}
	applyCredentialsFile(&cfg.ESPN, envOrDefault(envCredentialsFile, defaultCredentialsFile))
	return cfg
}

// Validate enforces the three required credentials. It runs before any
// network call; a missing or malformed value is a startup failure.
func (c Config) Validate() error {
	var missing []string
	if c.ESPN.LeagueID == "" {
		missing = append(missing, envLeagueID)
	}
	if c.ESPN.ESPNS2 == "" {
		missing = append(missing, envESPNS2)
	}
	if c.ESPN.SWID == "" {
		missing = append(missing, envSWID)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required credentials: %v", missing)
	}
	if _, err := c.ESPN.LeagueIDInt(); err != nil {
		return errors.Join(errors.New("invalid "+envLeagueID), err)
	}
	return nil
}
