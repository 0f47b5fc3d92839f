package config

import "time"

func (m *Manager) GetDefault() *Config {
	return &Config{
		App: App{
			LogLevel:   "info",
			LogFile:    "logs/main.log",
			LogRotate: LogRotation{
				MaxSizeMB:  64,
				MaxBackups: 32,
				MaxAgeDays: 30,
				Compress:   true,
			},
			GinMode:    "release",
			ListenAddr: ":8080",
		},
		Engine: Engine{
			Name:           "regexp2",
			MatchTimeoutMs: 250,
		},
		Cache: Cache{
			Enabled:  true,
			Capacity: 10000,
			TTLSecs:  600,
		},
		Sessions: Sessions{
			IdleTTLSecs: 1800,
		},
		Limiter: Limiter{
			Requests: 20,
			Per:      time.Second,
		},
		Presets: []Preset{},
	}
}
