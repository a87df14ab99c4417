// Package observability exposes lightweight process telemetry for the
// admin dashboard and periodic log reporting.
package observability

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/process"
)

// ProcessStats is the self-measured health of this process.
type ProcessStats struct {
	RSSMb      uint64  `json:"rss_mb"`
	CPUPercent float64 `json:"cpu_percent"`
	AllocMb    uint64  `json:"alloc_mb"`
	NumGC      uint32  `json:"num_gc"`
	Goroutines int     `json:"goroutines"`
}

// Monitor samples the running process. One instance per process.
type Monitor struct {
	proc *process.Process
}

func NewMonitor() (*Monitor, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &Monitor{proc: proc}, nil
}

// Snapshot collects current stats. CPU percent is since the previous
// call, so the first sample reads zero.
func (m *Monitor) Snapshot() (ProcessStats, error) {
	memInfo, err := m.proc.MemoryInfo()
	if err != nil {
		return ProcessStats{}, err
	}
	cpu, err := m.proc.Percent(0)
	if err != nil {
		return ProcessStats{}, err
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return ProcessStats{
		RSSMb:      memInfo.RSS / 1024 / 1024,
		CPUPercent: cpu,
		AllocMb:    memStats.Alloc / 1024 / 1024,
		NumGC:      memStats.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}, nil
}
