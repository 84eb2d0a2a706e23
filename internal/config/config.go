package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"visitnepal/pkg/utils"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	LLM    LLMConfig    `yaml:"llm"`
	Cache  CacheConfig  `yaml:"cache"`
}

type ServerConfig struct {
	Port        int      `yaml:"port"`
	Mode        string   `yaml:"mode"`
	CORSOrigins []string `yaml:"cors_origins"`
	// MaxBodyMB bounds request bodies; postcard images arrive base64 encoded.
	MaxBodyMB       int           `yaml:"max_body_mb"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type LLMConfig struct {
	Provider   string `yaml:"provider"`
	APIKey     string `yaml:"api_key"`
	Model      string `yaml:"model"`
	ImageModel string `yaml:"image_model"`
	BaseURL    string `yaml:"base_url"`
	// Timeout bounds a single provider call; zero leaves it to the transport.
	Timeout time.Duration `yaml:"timeout"`
}

type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"`
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            9002,
			Mode:            "release",
			CORSOrigins:     []string{"*"},
			MaxBodyMB:       8,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		LLM: LLMConfig{Provider: utils.ProviderGenAI},
		Cache: CacheConfig{
			TTL:             24 * time.Hour,
			CleanupInterval: time.Hour,
		},
	}
}

// Load reads .env, then the YAML file, then environment overrides. A missing
// .env or YAML file is not an error.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load()

	c := Default()

	if configFile == "" {
		configFile = os.Getenv("CONFIG_FILE")
	}
	paths := []string{"etc/config.yaml", "/etc/visitnepal/config.yaml"}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if configFile != "" {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
			continue
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		break
	}

	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() {
	envOverrideInt(&c.Server.Port, "PORT")
	envOverride(&c.Server.Mode, "GIN_MODE")
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.Server.CORSOrigins = splitList(v)
	}
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")

	envOverride(&c.LLM.Provider, "LLM_PROVIDER")
	envOverride(&c.LLM.Model, "LLM_MODEL")
	envOverride(&c.LLM.ImageModel, "LLM_IMAGE_MODEL")
	envOverrideDuration(&c.LLM.Timeout, "LLM_TIMEOUT")

	c.LLM.Provider = strings.ToLower(c.LLM.Provider)
	switch c.LLM.Provider {
	case utils.ProviderOpenAI:
		envOverride(&c.LLM.APIKey, "OPENAI_API_KEY")
		envOverride(&c.LLM.BaseURL, "OPENAI_BASE_URL")
	default:
		envOverride(&c.LLM.APIKey, "GEMINI_API_KEY")
	}

	envOverrideBool(&c.Cache.Enabled, "CACHE_ENABLED")
	envOverrideDuration(&c.Cache.TTL, "CACHE_TTL")
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case utils.ProviderGemini, utils.ProviderGenAI, utils.ProviderOpenAI:
	default:
		return fmt.Errorf("%w: %q", utils.ErrUnsupportedProvider, c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required for provider %q", c.LLM.Provider)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.LLM.Timeout < 0 {
		return fmt.Errorf("llm.timeout must not be negative")
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive when the cache is enabled")
	}
	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) ProviderConfig() utils.LLMProviderConfig {
	return utils.LLMProviderConfig{
		Provider:   c.LLM.Provider,
		APIKey:     c.LLM.APIKey,
		Model:      c.LLM.Model,
		ImageModel: c.LLM.ImageModel,
		BaseURL:    c.LLM.BaseURL,
	}
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envOverrideBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func envOverrideDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
