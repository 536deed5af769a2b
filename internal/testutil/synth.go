package testutil

import (
	"context"

	"fantasy-recap-service/internal/tts"
)

// StubSynthesizer returns fixed audio bytes or a configured error and
// remembers the last text it was asked to render.
type StubSynthesizer struct {
	Data []byte
	Err  error

	Calls    int
	LastText string
}

func (s *StubSynthesizer) Synthesize(ctx context.Context, text string) (tts.Audio, error) {
	_ = ctx
	s.Calls++
	s.LastText = text
	if s.Err != nil {
		return tts.Audio{}, s.Err
	}
	data := s.Data
	if data == nil {
		data = []byte("mp3-bytes")
	}
	return tts.Audio{Data: data, Format: "mp3"}, nil
}
