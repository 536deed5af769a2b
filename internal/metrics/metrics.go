package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type synthesisStats struct {
	calls       int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream and
// renderer calls, mirroring them to OpenTelemetry when configured. All
// methods are safe on a nil receiver so call sites never need guards.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*providerStats
	synthesis synthesisStats
	otel      *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for an upstream call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordSynthesis tracks one text-to-speech rendering attempt.
func (r *Recorder) RecordSynthesis(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.synthesis.calls++
	r.synthesis.lastLatency = duration
	if err != nil {
		r.synthesis.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSynthesis(duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderSnapshot is a copy of the stats for one provider.
type ProviderSnapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) ProviderSnapshot(provider string) ProviderSnapshot {
	if r == nil {
		return ProviderSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return ProviderSnapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return ProviderSnapshot{}
}

// SynthesisSnapshot is a copy of the renderer stats.
type SynthesisSnapshot struct {
	Calls       int
	Errors      int
	LastLatency time.Duration
}

func (r *Recorder) SynthesisSnapshot() SynthesisSnapshot {
	if r == nil {
		return SynthesisSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return SynthesisSnapshot{
		Calls:       r.synthesis.calls,
		Errors:      r.synthesis.errors,
		LastLatency: r.synthesis.lastLatency,
	}
}
