// Package gtranslate renders text to MP3 speech through the Google Translate
// text-to-speech endpoint.
package gtranslate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"fantasy-recap-service/internal/tts"
)

// Config controls how the synthesizer reaches the TTS endpoint.
type Config struct {
	BaseURL    string
	Language   string
	HTTPClient *http.Client
}

// Synthesizer implements tts.Synthesizer against the Translate TTS endpoint.
type Synthesizer struct {
	baseURL    string
	language   string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewSynthesizer constructs a Translate-backed synthesizer.
func NewSynthesizer(cfg Config) *Synthesizer {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	language := cfg.Language
	if language == "" {
		language = defaultLanguage
	}
	var client httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Synthesizer{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		language:   language,
		httpClient: client,
	}
}

// Synthesize renders the text chunk by chunk and returns one MP3 clip.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (tts.Audio, error) {
	chunks := splitChunks(text, maxChunkRunes)
	if len(chunks) == 0 {
		return tts.Audio{}, errors.New("gtranslate: no text to synthesize")
	}

	var buf bytes.Buffer
	for i, chunk := range chunks {
		if err := s.fetchChunk(ctx, &buf, chunk, i, len(chunks)); err != nil {
			return tts.Audio{}, err
		}
	}

	return tts.Audio{Data: buf.Bytes(), Format: "mp3"}, nil
}

func (s *Synthesizer) fetchChunk(ctx context.Context, buf *bytes.Buffer, chunk string, index, total int) error {
	req, err := s.buildRequest(ctx, chunk, index, total)
	if err != nil {
		return err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gtranslate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("gtranslate: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if _, err := io.Copy(buf, resp.Body); err != nil {
		return fmt.Errorf("gtranslate: read audio: %w", err)
	}
	return nil
}

func (s *Synthesizer) buildRequest(ctx context.Context, chunk string, index, total int) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", s.language)
	q.Set("q", chunk)
	q.Set("idx", strconv.Itoa(index))
	q.Set("total", strconv.Itoa(total))
	q.Set("textlen", strconv.Itoa(len([]rune(chunk))))
	req.URL.RawQuery = q.Encode()

	return req, nil
}
