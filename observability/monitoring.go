package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// MonitoringStats is the snapshot exposed to the debug server and logged by
// the health worker.
type MonitoringStats struct {
	Connections   int    `json:"connections"`
	Rooms         int    `json:"rooms"`
	VoiceRooms    int    `json:"voice_rooms"`
	FannedEvents  uint64 `json:"fanned_events"`
	DroppedEvents uint64 `json:"dropped_events"`
	RateLimited   uint64 `json:"rate_limited"`
	PresenceEdges uint64 `json:"presence_edges"`
	VoiceJoins    uint64 `json:"voice_joins"`
	AllocMemMb    uint64 `json:"alloc_mem_mb"`
	NumGC         uint32 `json:"num_gc"`
	CollectedAt   string `json:"collected_at"`
}

// MonitoringManager aggregates realtime counters. Hot-path increments are
// atomic; the composed snapshot is refreshed by Collect and read under a
// RWMutex.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats MonitoringStats

	fannedEvents  atomic.Uint64
	droppedEvents atomic.Uint64
	rateLimited   atomic.Uint64
	presenceEdges atomic.Uint64
	voiceJoins    atomic.Uint64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log}
}

func (mm *MonitoringManager) IncrFannedEvents()  { mm.fannedEvents.Add(1) }
func (mm *MonitoringManager) IncrDroppedEvents() { mm.droppedEvents.Add(1) }
func (mm *MonitoringManager) IncrRateLimited()   { mm.rateLimited.Add(1) }
func (mm *MonitoringManager) IncrPresenceEdges() { mm.presenceEdges.Add(1) }
func (mm *MonitoringManager) IncrVoiceJoins()    { mm.voiceJoins.Add(1) }

// Collect refreshes the snapshot with the provided gauges plus process
// memory figures.
func (mm *MonitoringManager) Collect(connections, rooms, voiceRooms int) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	stats := MonitoringStats{
		Connections:   connections,
		Rooms:         rooms,
		VoiceRooms:    voiceRooms,
		FannedEvents:  mm.fannedEvents.Load(),
		DroppedEvents: mm.droppedEvents.Load(),
		RateLimited:   mm.rateLimited.Load(),
		PresenceEdges: mm.presenceEdges.Load(),
		VoiceJoins:    mm.voiceJoins.Load(),
		AllocMemMb:    mem.Alloc / 1024 / 1024,
		NumGC:         mem.NumGC,
		CollectedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	mm.mu.Lock()
	mm.latestStats = stats
	mm.mu.Unlock()
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return mm.latestStats
}
