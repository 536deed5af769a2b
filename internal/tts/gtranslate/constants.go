package gtranslate

import "time"

const (
	defaultBaseURL     = "https://translate.google.com/translate_tts"
	defaultLanguage    = "en"
	defaultHTTPTimeout = 30 * time.Second

	// The tw-ob client caps query text length; longer transcripts are
	// split into chunks and the returned MP3 frames concatenated.
	maxChunkRunes = 200
)
