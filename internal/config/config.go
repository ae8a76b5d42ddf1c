package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AIConfig configures the model-backed analysis path. The path is only
// active when Enabled is true and an API key is present; otherwise the
// engine runs rule-based only.
type AIConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Provider    string        `yaml:"provider"` // openai, claude or gemini
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

// Active reports whether the AI path can actually be used.
func (c AIConfig) Active() bool {
	return c.Enabled && c.APIKey != ""
}

// SessionConfig configures conversation-session persistence.
type SessionConfig struct {
	Backend       string        `yaml:"backend"` // memory or redis
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	TTL           time.Duration `yaml:"ttl"`
}

// Config is the full service configuration.
type Config struct {
	Port    int           `yaml:"port"`
	AI      AIConfig      `yaml:"ai"`
	Session SessionConfig `yaml:"session"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Port: 8080,
		AI: AIConfig{
			Provider:    "openai",
			MaxTokens:   800,
			Temperature: 0.3,
			Timeout:     30 * time.Second,
		},
		Session: SessionConfig{
			Backend: "memory",
			TTL:     time.Hour,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file,
// and environment variable overrides, in that order of precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
func (c *Config) applyEnv() {
	c.Port = GetInt("TRIAGE_PORT", c.Port)

	c.AI.Enabled = GetBool("TRIAGE_USE_AI", c.AI.Enabled)
	c.AI.Provider = Get("TRIAGE_AI_PROVIDER", c.AI.Provider)
	c.AI.Model = Get("TRIAGE_AI_MODEL", c.AI.Model)
	c.AI.APIKey = Get("TRIAGE_AI_API_KEY", c.AI.APIKey)
	if c.AI.APIKey == "" {
		// Fall back to the provider's conventional key variable
		switch c.AI.Provider {
		case "claude":
			c.AI.APIKey = Get("ANTHROPIC_API_KEY", "")
		case "gemini":
			c.AI.APIKey = Get("GEMINI_API_KEY", "")
		default:
			c.AI.APIKey = Get("OPENAI_API_KEY", "")
		}
	}

	c.Session.Backend = Get("TRIAGE_SESSION_BACKEND", c.Session.Backend)
	c.Session.RedisAddr = Get("TRIAGE_REDIS_ADDR", c.Session.RedisAddr)
	c.Session.RedisPassword = Get("TRIAGE_REDIS_PASSWORD", c.Session.RedisPassword)
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.AI.Provider {
	case "openai", "claude", "gemini":
	default:
		return fmt.Errorf("unknown ai provider %q", c.AI.Provider)
	}
	switch c.Session.Backend {
	case "memory":
	case "redis":
		if c.Session.RedisAddr == "" {
			return fmt.Errorf("redis session backend requires an address")
		}
	default:
		return fmt.Errorf("unknown session backend %q", c.Session.Backend)
	}
	return nil
}
