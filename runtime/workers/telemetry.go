package workers

import (
	"context"
	"log/slog"
	"time"

	"soundbridge/observability"
)

// TelemetryWorker logs a process health sample on a fixed interval so
// resource drift shows up in the logs without an external collector.
type TelemetryWorker struct {
	log      *slog.Logger
	monitor  *observability.Monitor
	interval time.Duration
}

func NewTelemetryWorker(log *slog.Logger, monitor *observability.Monitor,
	interval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{log: log, monitor: monitor, interval: interval}
}

func (w *TelemetryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping telemetry sampling")
			return nil
		case <-ticker.C:
			stats, err := w.monitor.Snapshot()
			if err != nil {
				w.log.Error("Error while sampling process stats", "err", err)
				continue
			}
			w.log.Info("process stats",
				"rss_mb", stats.RSSMb,
				"cpu_percent", stats.CPUPercent,
				"alloc_mb", stats.AllocMb,
				"num_gc", stats.NumGC,
				"goroutines", stats.Goroutines)
		}
	}
}
