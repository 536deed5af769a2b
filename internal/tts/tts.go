// Package tts defines how recap text becomes audio. Concrete synthesizers
// live in subpackages.
package tts

import "context"

// Audio is a rendered voice clip.
type Audio struct {
	Data   []byte
	Format string // e.g. "mp3"
}

// Synthesizer converts text to Audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (Audio, error)
}
