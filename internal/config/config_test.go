package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("KV_BACKEND", "Memory")
	cfg, err := Parse()
	require.NoError(t, err)
	assert.True(t, cfg.UseMock)
	assert.Equal(t, "http://localhost:8081/api", cfg.BaseURL)
	assert.Equal(t, "demo123", cfg.DemoPassword)
	assert.Equal(t, KVMemory, cfg.KVBackend)
	assert.Equal(t, 3*time.Second, cfg.OCRMinDelay)
	assert.Equal(t, 6*time.Second, cfg.OCRMaxDelay)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 12, cfg.PollAttempts)
	assert.Equal(t, "renttrack.events", cfg.Events.Queue)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.Equal(t, time.Hour, cfg.AccessTTL())
}

func TestParseNested(t *testing.T) {
	t.Setenv("KV_BACKEND", "redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("DB_NAME", "rt")
	t.Setenv("EVENTS_ENABLED", "true")
	t.Setenv("USE_MOCK", "false")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", cfg.Redis.Address())
	assert.Equal(t, "rt", cfg.DB.Name)
	assert.True(t, cfg.Events.Enabled)
	assert.False(t, cfg.UseMock)
}

func TestValidate(t *testing.T) {
	base := Config{KVBackend: KVMemory, TokenScheme: "prefix", OCRMinDelay: time.Second, OCRMaxDelay: 2 * time.Second, PollAttempts: 1}
	require.NoError(t, base.Validate())

	c := base
	c.TokenScheme = "jwt"
	assert.ErrorContains(t, c.Validate(), "JWT_SECRET")

	c = base
	c.OCRMaxDelay = 0
	assert.ErrorContains(t, c.Validate(), "OCR window")

	c = base
	c.KVBackend = "etcd"
	assert.ErrorContains(t, c.Validate(), "KV_BACKEND")
}
