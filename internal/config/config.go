// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Defaults for the document store. The gist id points at the public resume
// bundle the service was built around; deployments override it.
const (
	DefaultGistID  = "dabf368473d41748e9d6051afb67efcf"
	DefaultAPIBase = "https://api.github.com"
	DefaultTTL     = 5 * time.Minute
)

// Config is the full runtime configuration, read once at start from an
// optional YAML file plus environment variables.
type Config struct {
	LogLevel string `mapstructure:"log-level"`
	LogJSON  bool   `mapstructure:"log-json"`

	Gist      GistConfig      `mapstructure:"gist"`
	Gateway   GatewayConfig   `mapstructure:"gateway"`
	Providers ProvidersConfig `mapstructure:"providers"`
}

// GistConfig locates the remote document store.
type GistConfig struct {
	ID       string        `mapstructure:"id"`
	APIBase  string        `mapstructure:"api-base"`
	Token    string        `mapstructure:"token"`
	CacheTTL time.Duration `mapstructure:"cache-ttl"`
}

// GatewayConfig holds the HTTP gateway settings.
type GatewayConfig struct {
	Listen string `mapstructure:"listen"`
}

// ProvidersConfig holds per-provider settings keyed by provider name.
type ProvidersConfig struct {
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	OpenAI     ProviderConfig   `mapstructure:"openai"`
	Ollama     ProviderConfig   `mapstructure:"ollama"`
	Gemini     ProviderConfig   `mapstructure:"gemini"`
}

// ProviderConfig is the common per-provider block.
type ProviderConfig struct {
	APIKey       string `mapstructure:"api-key"`
	BaseURL      string `mapstructure:"base-url"`
	DefaultModel string `mapstructure:"default-model"`
}

// OpenRouterConfig extends ProviderConfig with the attribution headers
// OpenRouter uses for app rankings.
type OpenRouterConfig struct {
	ProviderConfig `mapstructure:",squash"`
	SiteURL        string `mapstructure:"site-url"`
	AppName        string `mapstructure:"app-name"`
}

// Load reads configuration from the given file (or resume-mcp.yaml in the
// current directory when path is empty), applies environment overrides and
// defaults, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("resume-mcp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log-level", "info")
	v.SetDefault("log-json", false)

	v.SetDefault("gist.id", DefaultGistID)
	v.SetDefault("gist.api-base", DefaultAPIBase)
	v.SetDefault("gist.cache-ttl", DefaultTTL)

	v.SetDefault("gateway.listen", ":8080")

	v.SetDefault("providers.openrouter.base-url", "https://openrouter.ai/api/v1")
	v.SetDefault("providers.openrouter.default-model", "mistralai/mistral-7b-instruct:free")
	v.SetDefault("providers.openrouter.site-url", "https://github.com/daniel/resume-mcp")
	v.SetDefault("providers.openrouter.app-name", "resume-mcp")
	v.SetDefault("providers.openai.default-model", "gpt-3.5-turbo")
	v.SetDefault("providers.ollama.base-url", "http://localhost:11434")
	v.SetDefault("providers.ollama.default-model", "llama2")
	v.SetDefault("providers.gemini.default-model", "gemini-2.5-flash-lite")
}

func bindEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"gist.id":                      "RESUME_GIST_ID",
		"gist.token":                   "GITHUB_TOKEN",
		"gist.cache-ttl":               "RESUME_CACHE_TTL",
		"gateway.listen":               "RESUME_GATEWAY_LISTEN",
		"log-level":                    "RESUME_LOG_LEVEL",
		"providers.openrouter.api-key": "OPENROUTER_API_KEY",
		"providers.openai.api-key":     "OPENAI_API_KEY",
		"providers.gemini.api-key":     "GEMINI_API_KEY",
		"providers.ollama.base-url":    "OLLAMA_HOST",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("binding %s environment variable: %w", env, err)
		}
	}
	return nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Gist.ID == "" {
		return fmt.Errorf("config error: 'gist.id' must not be empty")
	}
	if c.Gist.APIBase == "" {
		return fmt.Errorf("config error: 'gist.api-base' must not be empty")
	}
	if c.Gist.CacheTTL <= 0 {
		return fmt.Errorf("config error: 'gist.cache-ttl' must be positive")
	}
	if c.Gateway.Listen == "" {
		return fmt.Errorf("config error: 'gateway.listen' must not be empty")
	}
	if c.Providers.Ollama.BaseURL == "" {
		return fmt.Errorf("config error: 'providers.ollama.base-url' must not be empty")
	}
	return nil
}
