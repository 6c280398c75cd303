package worker

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tbourn/go-video-backend/internal/services"
)

func TestRunOnce_RecordsMetricsAndLogs(t *testing.T) {
	var buf bytes.Buffer
	s := NewSweeper(func(ctx context.Context) (services.SweepReport, error) {
		zerolog.Ctx(ctx).Info().Msg("inside sweep")
		return services.SweepReport{Videos: 2, Orphans: 1, Failed: 1}, nil
	}, time.Minute, zerolog.New(&buf))

	baseVideos := testutil.ToFloat64(sweptTotal.WithLabelValues("video"))
	baseFailed := testutil.ToFloat64(sweepFailures)
	baseOK := testutil.ToFloat64(sweepRuns.WithLabelValues("ok"))

	rep, err := s.RunOnce(context.Background())
	if err != nil || rep.Videos != 2 {
		t.Fatalf("RunOnce = %+v, %v", rep, err)
	}
	if got := testutil.ToFloat64(sweptTotal.WithLabelValues("video")); got != baseVideos+2 {
		t.Fatalf("video counter = %v, want %v", got, baseVideos+2)
	}
	if got := testutil.ToFloat64(sweepFailures); got != baseFailed+1 {
		t.Fatalf("failure counter = %v", got)
	}
	if got := testutil.ToFloat64(sweepRuns.WithLabelValues("ok")); got != baseOK+1 {
		t.Fatalf("ok runs = %v", got)
	}
	out := buf.String()
	if !strings.Contains(out, `"component":"upload_sweeper"`) || !strings.Contains(out, "inside sweep") || !strings.Contains(out, "sweep finished") {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestRunOnce_ErrorAndPanic(t *testing.T) {
	boom := errors.New("db down")
	s := NewSweeper(func(context.Context) (services.SweepReport, error) {
		return services.SweepReport{}, boom
	}, 0, zerolog.Nop())
	if s.interval != DefaultInterval {
		t.Fatalf("interval = %v, want default", s.interval)
	}
	if _, err := s.RunOnce(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}

	basePanics := testutil.ToFloat64(sweepRuns.WithLabelValues("panic"))
	p := NewSweeper(func(context.Context) (services.SweepReport, error) {
		panic("nil map")
	}, time.Minute, zerolog.Nop())
	if _, err := p.RunOnce(context.Background()); err != nil {
		t.Fatalf("panic should be swallowed, got %v", err)
	}
	if got := testutil.ToFloat64(sweepRuns.WithLabelValues("panic")); got != basePanics+1 {
		t.Fatalf("panic runs = %v", got)
	}
}

func TestStartStop_RunsImmediatelyAndOnTicks(t *testing.T) {
	var calls atomic.Int32
	s := NewSweeper(func(context.Context) (services.SweepReport, error) {
		calls.Add(1)
		return services.SweepReport{}, nil
	}, 10*time.Millisecond, zerolog.Nop())

	s.Start(context.Background())
	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	s.Stop()
	if calls.Load() < 3 {
		t.Fatalf("calls = %d, want >= 3", calls.Load())
	}

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	if calls.Load() != after {
		t.Fatalf("sweeper kept running after Stop")
	}
}
