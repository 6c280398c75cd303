// Package worker runs background maintenance jobs.
//
// The Sweeper periodically reclaims uploads that were never completed:
// expired temporary videos, blobs left behind by interrupted uploads, and
// expired idempotency records. Each pass is independent; a failed or
// panicking pass is logged and the next tick tries again.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/tbourn/go-video-backend/internal/services"
)

// DefaultInterval is used when NewSweeper receives a non-positive interval.
const DefaultInterval = 5 * time.Minute

var (
	sweptTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upload_sweep_reclaimed_total",
			Help: "Uploads reclaimed by the sweeper, by kind.",
		},
		[]string{"kind"},
	)
	sweepFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "upload_sweep_failures_total",
			Help: "Items the sweeper could not reclaim and left for a later pass.",
		},
	)
	sweepRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upload_sweep_runs_total",
			Help: "Sweep passes by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(sweptTotal, sweepFailures, sweepRuns)
}

// SweepFunc performs one reclamation pass.
type SweepFunc func(ctx context.Context) (services.SweepReport, error)

// Sweeper calls a SweepFunc on a fixed interval until stopped.
type Sweeper struct {
	sweep    SweepFunc
	interval time.Duration
	logger   zerolog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewSweeper returns a sweeper for fn. It does nothing until Start.
func NewSweeper(fn SweepFunc, interval time.Duration, logger zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sweeper{
		sweep:    fn,
		interval: interval,
		logger:   logger.With().Str("component", "upload_sweeper").Logger(),
	}
}

// Start runs an immediate pass and then one per interval in a goroutine.
// It returns at once; call Stop to end the loop.
func (s *Sweeper) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Stop cancels the loop and waits for an in-flight pass to return.
func (s *Sweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("starting upload sweeper")
	s.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("upload sweeper stopped")
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single pass, recording metrics. Panics are recovered.
func (s *Sweeper) RunOnce(ctx context.Context) (rep services.SweepReport, err error) {
	defer func() {
		if r := recover(); r != nil {
			sweepRuns.WithLabelValues("panic").Inc()
			s.logger.Error().Interface("panic", r).Msg("sweep panicked; retrying next tick")
		}
	}()

	start := time.Now()
	rep, err = s.sweep(s.logger.WithContext(ctx))
	if err != nil {
		sweepRuns.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Msg("sweep failed")
		return rep, err
	}
	sweepRuns.WithLabelValues("ok").Inc()
	sweptTotal.WithLabelValues("video").Add(float64(rep.Videos))
	sweptTotal.WithLabelValues("orphan").Add(float64(rep.Orphans))
	sweptTotal.WithLabelValues("idempotency").Add(float64(rep.Idempotency))
	sweepFailures.Add(float64(rep.Failed))

	if rep.Videos+rep.Orphans+rep.Failed > 0 || rep.Idempotency > 0 {
		s.logger.Info().
			Int("videos", rep.Videos).
			Int("orphans", rep.Orphans).
			Int("failed", rep.Failed).
			Int64("idempotency", rep.Idempotency).
			Dur("took", time.Since(start)).
			Msg("sweep finished")
	}
	return rep, nil
}
