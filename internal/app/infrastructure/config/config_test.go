package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesDefaultWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	m, err := New(path)
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, "regexp2", cfg.Engine.Name)
	assert.Equal(t, 250*time.Millisecond, cfg.Engine.MatchTimeout())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var onDisk Config
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Equal(t, cfg.App.ListenAddr, onDisk.App.ListenAddr)
}

func TestNewWithoutPathUsesDefaults(t *testing.T) {
	m, err := New("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", m.Get().App.ListenAddr)
}

func TestNewReadsPartialFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"engine": {"name": "re2"}, "presets": [{"name": "Digits", "pattern": "^\\d+$"}]}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	m, err := New(path)
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, "re2", cfg.Engine.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	require.Len(t, cfg.Presets, 1)
	assert.Equal(t, "Digits", cfg.Presets[0].Name)
}

func TestNewRejectsInvalidFile(t *testing.T) {
	cases := map[string]string{
		"bad json":        `{`,
		"unknown engine":  `{"engine": {"name": "pcre"}}`,
		"bad log level":   `{"app": {"log_level": "loud"}}`,
		"negative rotate": `{"app": {"log_rotate": {"max_size_mb": -1}}}`,
		"invalid preset":  `{"presets": [{"name": "Broken", "pattern": "(unclosed"}]}`,
		"duplicate name":  `{"presets": [{"name": "A", "pattern": "a"}, {"name": "A", "pattern": "b"}]}`,
		"empty preset":    `{"presets": [{"name": "A", "pattern": ""}]}`,
		"half limiter":    `{"limiter": {"requests": 5, "per": 0}}`,
		"short idle ttl":  `{"sessions": {"idle_ttl_secs": 5}}`,
		"zero cache size": `{"cache": {"enabled": true, "capacity": 0}}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

			_, err := New(path)
			assert.Error(t, err)
		})
	}
}

func TestUpdatePersistsValidChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	m, err := New(path)
	require.NoError(t, err)

	require.NoError(t, m.Update(func(cfg *Config) {
		cfg.App.LogLevel = "debug"
	}))
	assert.Equal(t, "debug", m.Get().App.LogLevel)

	reloaded, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", reloaded.Get().App.LogLevel)
}

func TestUpdateRejectsInvalidChange(t *testing.T) {
	m, err := New("")
	require.NoError(t, err)

	err = m.Update(func(cfg *Config) {
		cfg.App.LogLevel = "loud"
		cfg.Presets = append(cfg.Presets, Preset{Name: "x", Pattern: "x"})
	})
	require.Error(t, err)

	cfg := m.Get()
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Empty(t, cfg.Presets)
}
