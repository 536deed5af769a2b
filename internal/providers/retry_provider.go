package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"fantasy-recap-service/internal/domain"
	"fantasy-recap-service/internal/logging"
	"fantasy-recap-service/internal/metrics"
)

const (
	defaultMaxRetries    = 3
	defaultRetryInterval = 500 * time.Millisecond
)

// retryingProvider wraps a LeagueProvider with exponential backoff.
// Credential rejections are treated as permanent and surface immediately.
type retryingProvider struct {
	inner      LeagueProvider
	logger     *slog.Logger
	recorder   *metrics.Recorder
	name       string
	maxRetries uint64
	interval   time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxRetries
// or interval are <= 0, defaults are used.
func NewRetryingProvider(inner LeagueProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxRetries int, interval time.Duration) LeagueProvider {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	return &retryingProvider{
		inner:      inner,
		logger:     logger,
		recorder:   recorder,
		name:       name,
		maxRetries: uint64(maxRetries),
		interval:   interval,
	}
}

func (r *retryingProvider) FetchLeague(ctx context.Context, year int) (domain.League, error) {
	var out domain.League
	err := backoff.Retry(func() error {
		start := time.Now()
		league, err := r.inner.FetchLeague(ctx, year)
		if err := r.observe(ctx, "fetch league", start, err); err != nil {
			return err
		}
		out = league
		return nil
	}, r.newBackOff(ctx))
	if err != nil {
		return domain.League{}, err
	}
	return out, nil
}

func (r *retryingProvider) FetchScoreboard(ctx context.Context, year, week int) ([]domain.Matchup, error) {
	var out []domain.Matchup
	err := backoff.Retry(func() error {
		start := time.Now()
		matchups, err := r.inner.FetchScoreboard(ctx, year, week)
		if err := r.observe(ctx, "fetch scoreboard", start, err); err != nil {
			return err
		}
		out = matchups
		return nil
	}, r.newBackOff(ctx))
	if err != nil {
		return nil, err
	}
	return out, nil
}

// observe records the attempt and classifies the error for the backoff loop.
func (r *retryingProvider) observe(ctx context.Context, op string, start time.Time, err error) error {
	r.recorder.RecordProviderAttempt(r.name, time.Since(start), err)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrAuthRejected) {
		return backoff.Permanent(err)
	}
	logger := logging.FromContext(ctx, r.logger)
	logging.Warn(logger, op+" failed, may retry",
		logging.FieldProvider, r.name, "error", err)
	return err
}

func (r *retryingProvider) newBackOff(ctx context.Context) backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.interval
	return backoff.WithContext(backoff.WithMaxRetries(bo, r.maxRetries), ctx)
}
