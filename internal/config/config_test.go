package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visitnepal/pkg/utils"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"CONFIG_FILE", "PORT", "GIN_MODE", "CORS_ORIGINS", "LOG_LEVEL", "LOG_FILE",
		"LLM_PROVIDER", "LLM_MODEL", "LLM_IMAGE_MODEL", "LLM_TIMEOUT",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "OPENAI_BASE_URL", "CACHE_ENABLED", "CACHE_TTL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("CACHE_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, utils.ProviderGenAI, cfg.LLM.Provider)
	assert.Equal(t, "gem-key", cfg.LLM.APIKey)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 7000
llm:
  provider: OpenAI
  model: gpt-4o
  api_key: from-file
cache:
  enabled: true
  ttl: 1h
`), 0o600))
	t.Setenv("OPENAI_API_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, utils.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "from-env", cfg.LLM.APIKey)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)

	pc := cfg.ProviderConfig()
	assert.Equal(t, "from-env", pc.APIKey)
	assert.Equal(t, "gpt-4o", pc.Model)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		isolate(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("missing api key", func(t *testing.T) {
		isolate(t)
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api_key")
	})

	t.Run("unknown provider", func(t *testing.T) {
		isolate(t)
		t.Setenv("LLM_PROVIDER", "claude")
		t.Setenv("GEMINI_API_KEY", "k")
		_, err := Load("")
		assert.ErrorIs(t, err, utils.ErrUnsupportedProvider)
	})

	t.Run("negative timeout", func(t *testing.T) {
		isolate(t)
		t.Setenv("GEMINI_API_KEY", "k")
		t.Setenv("LLM_TIMEOUT", "-1s")
		_, err := Load("")
		assert.Error(t, err)
	})
}
