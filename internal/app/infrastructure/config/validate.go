package config

import (
	"errors"
	"fmt"
	"regexlab/internal/app/domain/regex"
	"slices"
)

func (m *Manager) validate(cfg *Config) error {
	// app
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true}
	if cfg.App.LogLevel != "" && !validLevels[cfg.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of trace, debug, info, warn, error, fatal; got %s", cfg.App.LogLevel)
	}

	if r := cfg.App.LogRotate; r.MaxSizeMB < 0 || r.MaxBackups < 0 || r.MaxAgeDays < 0 {
		return errors.New("app.log_rotate values must be >= 0")
	}

	validGinModes := map[string]bool{"debug": true, "release": true, "test": true}
	if cfg.App.GinMode != "" && !validGinModes[cfg.App.GinMode] {
		return fmt.Errorf("app.gin_mode must be one of debug, release, test; got %s", cfg.App.GinMode)
	}

	if cfg.App.ListenAddr == "" {
		return errors.New("app.listen_addr is required")
	}

	// engine
	if cfg.Engine.Name == "" {
		cfg.Engine.Name = regex.EngineRegexp2
	}
	if !slices.Contains(regex.Names(), cfg.Engine.Name) {
		return fmt.Errorf("engine.name must be one of regexp2, re2; got %s", cfg.Engine.Name)
	}
	if cfg.Engine.Name == regex.EngineRegexp2 && (cfg.Engine.MatchTimeoutMs < 1 || cfg.Engine.MatchTimeoutMs > 60000) {
		return errors.New("engine.match_timeout_ms must be [1,60000]")
	}

	// cache
	if cfg.Cache.Enabled && cfg.Cache.Capacity <= 0 {
		return errors.New("cache.capacity must be > 0 when cache is enabled")
	}
	if cfg.Cache.TTLSecs < 0 {
		return errors.New("cache.ttl_secs must be >= 0")
	}

	// sessions
	if cfg.Sessions.IdleTTLSecs < 60 {
		return errors.New("sessions.idle_ttl_secs must be >= 60")
	}

	// limiter
	if (cfg.Limiter.Requests != 0 && cfg.Limiter.Per == 0) || (cfg.Limiter.Requests == 0 && cfg.Limiter.Per != 0) {
		return errors.New("limiter.requests and limiter.per must both be set or both be zero")
	}
	if cfg.Limiter.Requests < 0 || cfg.Limiter.Per < 0 {
		return errors.New("limiter.requests and limiter.per must be >= 0")
	}

	// presets
	if cfg.Presets == nil {
		cfg.Presets = []Preset{}
	}
	engine, err := regex.New(cfg.Engine.Name, cfg.Engine.MatchTimeout())
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(cfg.Presets))
	for _, p := range cfg.Presets {
		if p.Name == "" {
			return errors.New("presets.name is required")
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("presets.name must be unique; duplicate %s", p.Name)
		}
		seen[p.Name] = struct{}{}

		if p.Pattern == "" {
			return fmt.Errorf("presets.%s.pattern is required", p.Name)
		}
		if _, err := engine.Compile(p.Pattern); err != nil {
			return fmt.Errorf("presets.%s.pattern is invalid: %w", p.Name, err)
		}
	}

	return nil
}
