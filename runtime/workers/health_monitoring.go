package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"parley/observability"
)

// StatsCollector refreshes the shared monitoring snapshot from live gauges.
type StatsCollector interface {
	CollectStats()
}

// HealthMonitoringWorker samples the gateway's own process (CPU, RSS) plus
// the realtime counters on a fixed interval and logs the combined picture.
type HealthMonitoringWorker struct {
	log            *slog.Logger
	collector      StatsCollector
	monitoring     *observability.MonitoringManager
	metricInterval time.Duration
}

func NewHealthMonitoringWorker(log *slog.Logger, collector StatsCollector,
	monitoring *observability.MonitoringManager, metricInterval time.Duration) *HealthMonitoringWorker {
	return &HealthMonitoringWorker{
		log:            log,
		collector:      collector,
		monitoring:     monitoring,
		metricInterval: metricInterval,
	}
}

func (w *HealthMonitoringWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health monitoring")
			return nil
		case <-ticker.C:
			w.collector.CollectStats()

			rss, cpu, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			stats := w.monitoring.GetLatest()
			w.log.Info("Health",
				"connections", stats.Connections,
				"rooms", stats.Rooms,
				"voice_rooms", stats.VoiceRooms,
				"fanned_events", stats.FannedEvents,
				"dropped_events", stats.DroppedEvents,
				"rate_limited", stats.RateLimited,
				"cpu_percent", cpu,
				"rss_mb", rss/1024/1024,
			)
		}
	}
}

// selfStats retrieves memory and CPU figures for the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
