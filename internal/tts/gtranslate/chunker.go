package gtranslate

import "strings"

// splitChunks breaks text into pieces of at most max runes, preferring
// sentence boundaries, then word boundaries, then a hard rune split for
// pathological unbroken runs.
func splitChunks(text string, max int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var chunks []string
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
			currentLen = 0
		}
	}

	for _, sentence := range splitSentences(text) {
		runes := []rune(sentence)
		if currentLen > 0 && currentLen+1+len(runes) > max {
			flush()
		}
		if len(runes) <= max {
			if currentLen > 0 {
				current.WriteRune(' ')
				currentLen++
			}
			current.WriteString(sentence)
			currentLen += len(runes)
			continue
		}
		// Sentence longer than a chunk: fall back to word packing.
		flush()
		for _, piece := range splitWords(sentence, max) {
			chunks = append(chunks, piece)
		}
	}
	flush()

	return chunks
}

// splitSentences cuts on terminal punctuation and newlines, keeping the
// punctuation with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func splitWords(sentence string, max int) []string {
	var pieces []string
	var current strings.Builder
	currentLen := 0

	for _, word := range strings.Fields(sentence) {
		runes := []rune(word)
		if len(runes) > max {
			// No word boundary to use; hard-split the run.
			if currentLen > 0 {
				pieces = append(pieces, current.String())
				current.Reset()
				currentLen = 0
			}
			for len(runes) > max {
				pieces = append(pieces, string(runes[:max]))
				runes = runes[max:]
			}
			if len(runes) > 0 {
				current.WriteString(string(runes))
				currentLen = len(runes)
			}
			continue
		}
		if currentLen > 0 && currentLen+1+len(runes) > max {
			pieces = append(pieces, current.String())
			current.Reset()
			currentLen = 0
		}
		if currentLen > 0 {
			current.WriteRune(' ')
			currentLen++
		}
		current.WriteString(word)
		currentLen += len(runes)
	}
	if currentLen > 0 {
		pieces = append(pieces, current.String())
	}
	return pieces
}
