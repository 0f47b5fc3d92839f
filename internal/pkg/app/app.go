package app

import (
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	router "regexlab/internal/app/adapters/http"
	"regexlab/internal/app/adapters/http/handlers"
	"regexlab/internal/app/adapters/metrics"
	"regexlab/internal/app/domain/regex"
	"regexlab/internal/app/domain/session"
	"regexlab/internal/app/domain/status"
	"regexlab/internal/app/domain/validator"
	"regexlab/internal/app/infrastructure/config"
	"regexlab/internal/app/infrastructure/storage"
	"regexlab/internal/app/ports"
	"regexlab/pkg/logger"
	"time"
)

const configPath = "config.json"

func New(ctx context.Context) error {
	manager, err := config.New(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg := manager.Get()
	rotate := cfg.App.LogRotate
	log := logger.New(cfg.App.LogFile, logger.WithRotation(rotate.MaxSizeMB, rotate.MaxBackups, rotate.MaxAgeDays, rotate.Compress))
	log.SetLogLevel(cfg.App.LogLevel)
	gin.SetMode(cfg.App.GinMode)

	if err := prometheus.Register(metrics.EvaluateTime); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return fmt.Errorf("register metrics: %w", err)
		}
	}

	engine, err := regex.New(cfg.Engine.Name, cfg.Engine.MatchTimeout())
	if err != nil {
		return err
	}

	extra := make([]ports.Preset, 0, len(cfg.Presets))
	for _, p := range cfg.Presets {
		extra = append(extra, ports.Preset{Name: p.Name, Pattern: p.Pattern})
	}
	presets := validator.MergePresets(extra)

	opts := []validator.Option{
		validator.WithPresets(presets),
		validator.WithMatchErrorHook(func(error) {
			metrics.MatchErrors.With(prometheus.Labels{"engine": engine.Name()}).Inc()
		}),
	}
	if cfg.Cache.Enabled {
		verdicts := storage.NewCache[bool](cfg.Cache.Capacity, storage.WithIdleTTL[bool](time.Duration(cfg.Cache.TTLSecs)*time.Second))
		opts = append(opts, validator.WithCache(metrics.NewCountingCache[bool](verdicts)))
	}

	sessions := session.NewManager(log, func(l logger.Logger) ports.ValidatorPort {
		return validator.New(engine, append([]validator.Option{validator.WithLogger(l)}, opts...)...)
	}, time.Duration(cfg.Sessions.IdleTTLSecs)*time.Second, session.WithEvaluateObserver(func(d time.Duration) {
		metrics.EvaluateTime.Observe(float64(d.Microseconds()) / 1000)
	}))

	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "regexlab_presets",
		Help: "Number of presets offered to clients",
	}, func() float64 { return float64(len(presets)) })

	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				metrics.SessionsActive.Set(float64(sessions.Len()))
			case <-ctx.Done():
				return
			}
		}
	}()

	log.Info("Regex validator started", "engine", engine.Name(), "presets", len(presets), "cache", cfg.Cache.Enabled)

	h := handlers.New(log, manager, sessions, status.New(log, engine.Name(), sessions.Len), engine.Name(), presets)
	r := router.NewRouter(log, manager, h)
	return r.Run(ctx, cfg.App.ListenAddr)
}
