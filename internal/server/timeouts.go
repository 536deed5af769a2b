package server

import "time"

// Generation can take a while: an upstream fetch plus one TTS round trip per
// text chunk. The write timeout leaves room for that.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 120 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
