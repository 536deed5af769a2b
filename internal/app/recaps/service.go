// Package recaps orchestrates a full recap generation pass: resolve the
// target week, fetch matchups, compose the narrative, render audio, and
// persist the clip.
package recaps

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fantasy-recap-service/internal/audio"
	"fantasy-recap-service/internal/domain"
	"fantasy-recap-service/internal/logging"
	"fantasy-recap-service/internal/metrics"
	"fantasy-recap-service/internal/providers"
	"fantasy-recap-service/internal/recap"
	"fantasy-recap-service/internal/season"
	"fantasy-recap-service/internal/tts"
)

// RenderError marks a failure in the text-to-speech stage so callers can
// distinguish it from upstream fetch failures.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("audio rendering failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Request selects what to generate. Zero values mean "resolve for me":
// Year defaults to the current calendar year and Week to the most recently
// completed week reported by the league.
type Request struct {
	Year int
	Week int
	Tone recap.Tone
}

// Result is a completed generation.
type Result struct {
	Week          int
	Summary       domain.Recap
	AudioFilename string
}

// Service coordinates the provider, synthesizer, and clip store.
type Service struct {
	provider providers.LeagueProvider
	synth    tts.Synthesizer
	store    *audio.Store
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewService constructs a Service. The logger and recorder may be nil.
func NewService(provider providers.LeagueProvider, synth tts.Synthesizer, store *audio.Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider: provider,
		synth:    synth,
		store:    store,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Generate produces the recap for the requested week and stores its audio.
// When no week is given it targets the most recently completed one; if the
// season has no completed week yet it returns season.ErrNotStarted.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	year := req.Year
	if year == 0 {
		year = s.now().Year()
	}

	week := req.Week
	if week == 0 {
		league, err := s.provider.FetchLeague(ctx, year)
		if err != nil {
			return Result{}, fmt.Errorf("fetching league state: %w", err)
		}
		week, err = season.Resolve(season.State{CurrentWeek: league.CurrentWeek})
		if err != nil {
			return Result{}, err
		}
	}

	matchups, err := s.provider.FetchScoreboard(ctx, year, week)
	if err != nil {
		return Result{}, fmt.Errorf("fetching week %d scoreboard: %w", week, err)
	}

	summary := recap.Compose(week, matchups, req.Tone)

	start := s.now()
	clip, err := s.synth.Synthesize(ctx, summary.Text)
	s.recorder.RecordSynthesis(s.now().Sub(start), err)
	if err != nil {
		return Result{}, &RenderError{Err: err}
	}

	filename, err := s.store.Save(week, clip.Data)
	if err != nil {
		return Result{}, &RenderError{Err: err}
	}

	logging.Info(s.logger, "recap generated",
		logging.FieldYear, year,
		logging.FieldWeek, week,
		logging.FieldCount, len(matchups),
	)

	return Result{Week: week, Summary: summary, AudioFilename: filename}, nil
}

// LeagueInfo returns the league's identity and season position.
func (s *Service) LeagueInfo(ctx context.Context, year int) (domain.League, error) {
	if year == 0 {
		year = s.now().Year()
	}
	league, err := s.provider.FetchLeague(ctx, year)
	if err != nil {
		return domain.League{}, fmt.Errorf("fetching league state: %w", err)
	}
	return league, nil
}
