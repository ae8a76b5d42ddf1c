package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.AI.Enabled)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, 0.3, cfg.AI.Temperature)
	assert.Equal(t, "memory", cfg.Session.Backend)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TRIAGE_PORT", "9090")
	t.Setenv("TRIAGE_USE_AI", "true")
	t.Setenv("TRIAGE_AI_PROVIDER", "claude")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "claude", cfg.AI.Provider)
	assert.Equal(t, "test-key", cfg.AI.APIKey)
	assert.True(t, cfg.AI.Active())
}

func TestAIInactiveWithoutKey(t *testing.T) {
	t.Setenv("TRIAGE_USE_AI", "true")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("TRIAGE_AI_API_KEY", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.AI.Enabled)
	assert.False(t, cfg.AI.Active())
}

func TestYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
port: 7070
ai:
  enabled: true
  provider: gemini
  api_key: file-key
  temperature: 0.2
session:
  backend: redis
  redis_addr: localhost:6379
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "file-key", cfg.AI.APIKey)
	assert.Equal(t, 0.2, cfg.AI.Temperature)
	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, "localhost:6379", cfg.Session.RedisAddr)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := Default()
	cfg.AI.Provider = "llama"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsRedisWithoutAddr(t *testing.T) {
	cfg := Default()
	cfg.Session.Backend = "redis"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := Default()
	cfg.Port = -1
	assert.Error(t, cfg.Validate())
}

func TestGetBool(t *testing.T) {
	t.Setenv("TRIAGE_TEST_FLAG", "yes")
	assert.True(t, GetBool("TRIAGE_TEST_FLAG", false))

	t.Setenv("TRIAGE_TEST_FLAG", "0")
	assert.False(t, GetBool("TRIAGE_TEST_FLAG", true))

	assert.True(t, GetBool("TRIAGE_TEST_MISSING", true))
}
