package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, "fantasy-recap-service"),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

// SentryConfig controls optional error reporting. An empty DSN disables it.
type SentryConfig struct {
	DSN         string
	Environment string
}

func loadSentry() SentryConfig {
	return SentryConfig{
		DSN:         envOrDefault(envSentryDSN, ""),
		Environment: envOrDefault(envSentryEnv, "production"),
	}
}
