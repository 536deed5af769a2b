package config

// TTSConfig controls the text-to-speech renderer.
type TTSConfig struct {
	BaseURL  string
	Language string
}

func loadTTS() TTSConfig {
	return TTSConfig{
		BaseURL:  envOrDefault(envTTSBaseURL, ""),
		Language: envOrDefault(envTTSLanguage, defaultTTSLanguage),
	}
}

// ProviderConfig controls the retry layer around upstream fetches.
type ProviderConfig struct {
	MaxRetries    int
	RetryInterval Duration
}

func loadProvider() ProviderConfig {
	return ProviderConfig{
		MaxRetries:    intEnvOrDefault(envMaxRetries, defaultMaxRetries),
		RetryInterval: durationEnvOrDefault(envRetryInterval, defaultRetryInterval),
	}
}
