package status

import (
	"github.com/shirou/gopsutil/cpu"
	"regexlab/pkg/logger"
	"runtime"
	"time"
)

var startApp = time.Now()

type Report struct {
	Uptime     string  `json:"uptime"`
	CPUPercent float64 `json:"cpu_percent"`
	MemoryMB   uint64  `json:"memory_mb"`
	Goroutines int     `json:"goroutines"`
	Sessions   int     `json:"sessions"`
	Engine     string  `json:"engine"`
}

type Status struct {
	log      logger.Logger
	engine   string
	sessions func() int
	cpuLoad  func(interval time.Duration, perCPU bool) ([]float64, error)
}

func New(log logger.Logger, engine string, sessions func() int) *Status {
	return &Status{
		log:      log,
		engine:   engine,
		sessions: sessions,
		cpuLoad:  cpu.Percent,
	}
}

func (s *Status) Report() Report {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	percent, err := s.cpuLoad(0, false)
	if err != nil {
		s.log.Debug("Failed to read CPU load", "error", err.Error())
	}
	if len(percent) == 0 {
		percent = append(percent, 0)
	}

	return Report{
		Uptime:     time.Since(startApp).Truncate(time.Second).String(),
		CPUPercent: percent[0],
		MemoryMB:   m.Sys / 1024 / 1024,
		Goroutines: runtime.NumGoroutine(),
		Sessions:   s.sessions(),
		Engine:     s.engine,
	}
}
