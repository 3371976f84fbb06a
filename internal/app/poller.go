package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/quartercade/internal/telemetry"
)

const (
	defaultPollInterval = time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the telemetry
// store, backing off while the monitor keeps failing. It returns
// immediately.
func StartPoller(ctx context.Context, store *telemetry.Store, fetcher telemetry.Fetcher, interval time.Duration, log *zap.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if log == nil {
		log = zap.NewNop()
	}
	go func() {
		timer := time.NewTimer(0)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			refresh(ctx, store, fetcher, log)
			timer.Reset(calculateBackoff(store.Snapshot().ConsecutiveFailures, interval))
		}
	}()
}

func refresh(ctx context.Context, store *telemetry.Store, fetcher telemetry.Fetcher, log *zap.Logger) {
	sample, err := fetcher.FetchSample(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		store.Update(telemetry.Sample{}, err)
		log.Debug("stats poll failed", zap.Error(err))
		return
	}
	store.Update(sample, nil)
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	d := base
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
