package config

import "time"

const (
	envPort            = "PORT"
	envWebDir          = "WEB_DIR"
	envAudioDir        = "AUDIO_DIR"
	envCredentialsFile = "RECAP_CONFIG_FILE"

	envLeagueID    = "LEAGUE_ID"
	envESPNS2      = "ESPN_S2"
	envSWID        = "SWID"
	envESPNBaseURL = "ESPN_BASE_URL"

	envTTSBaseURL  = "TTS_BASE_URL"
	envTTSLanguage = "TTS_LANGUAGE"

	envMaxRetries    = "PROVIDER_MAX_RETRIES"
	envRetryInterval = "PROVIDER_RETRY_INTERVAL"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	envSentryDSN = "SENTRY_DSN"
	envSentryEnv = "SENTRY_ENVIRONMENT"

	defaultPort            = "5000"
	defaultWebDir          = "web"
	defaultAudioDir        = "."
	defaultCredentialsFile = "recap.yaml"
	defaultTTSLanguage     = "en"
	defaultMetricsPort     = "9090"
	defaultMaxRetries      = 3
	defaultRetryInterval   = 500 * Duration(time.Millisecond)
)
