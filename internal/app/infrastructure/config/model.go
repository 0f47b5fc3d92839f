package config

import "time"

type Config struct {
	App      App      `json:"app"`
	Engine   Engine   `json:"engine"`
	Cache    Cache    `json:"cache"`
	Sessions Sessions `json:"sessions"`
	Limiter  Limiter  `json:"limiter"`
	Presets  []Preset `json:"presets"` // добавляются после встроенных
}

type App struct {
	LogLevel   string      `json:"log_level"`
	LogFile    string      `json:"log_file"`
	LogRotate  LogRotation `json:"log_rotate"`
	GinMode    string      `json:"gin_mode"`
	ListenAddr string      `json:"listen_addr"`
	AuthToken  string      `json:"auth_token"`
}

type LogRotation struct {
	MaxSizeMB  int  `json:"max_size_mb"`
	MaxBackups int  `json:"max_backups"`
	MaxAgeDays int  `json:"max_age_days"`
	Compress   bool `json:"compress"`
}

type Engine struct {
	Name           string `json:"name"`
	MatchTimeoutMs int    `json:"match_timeout_ms"`
}

func (e Engine) MatchTimeout() time.Duration {
	return time.Duration(e.MatchTimeoutMs) * time.Millisecond
}

type Cache struct {
	Enabled  bool `json:"enabled"`
	Capacity int  `json:"capacity"`
	TTLSecs  int  `json:"ttl_secs"`
}

type Sessions struct {
	IdleTTLSecs int `json:"idle_ttl_secs"`
}

type Limiter struct {
	Requests int           `json:"requests"`
	Per      time.Duration `json:"per"`
}

type Preset struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}
