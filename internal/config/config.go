// Package config loads hemepath settings from defaults, the config file and
// HEMEPATH_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/hemepath/internal/llm"
	"github.com/abhisek/hemepath/internal/store"
	"github.com/abhisek/hemepath/internal/tutor"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "HEMEPATH"

// DefaultUpdateRepo is the GitHub repository release assets are fetched from.
const DefaultUpdateRepo = "abhisek/hemepath"

// Config is the effective configuration.
type Config struct {
	DB     string       `mapstructure:"db"`
	Log    LogConfig    `mapstructure:"log"`
	LLM    llm.Config   `mapstructure:"llm"`
	Tutor  TutorConfig  `mapstructure:"tutor"`
	Update UpdateConfig `mapstructure:"update"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type TutorConfig struct {
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	RatePerMinute int           `mapstructure:"rate_per_minute"`
	MaxTokens     int           `mapstructure:"max_tokens"`
}

type UpdateConfig struct {
	Repo string `mapstructure:"repo"`
}

// TutorService returns the tutor settings with unset fields defaulted.
func (c Config) TutorService() tutor.Config {
	tc := tutor.DefaultConfig()
	tc.CacheTTL = c.Tutor.CacheTTL
	tc.RatePerMinute = c.Tutor.RatePerMinute
	if c.Tutor.MaxTokens > 0 {
		tc.MaxTokens = c.Tutor.MaxTokens
	}
	if c.LLM.Timeout > 0 {
		tc.Timeout = c.LLM.Timeout
	}
	return tc
}

// DefaultDir returns $XDG_CONFIG_HOME/hemepath, or ~/.config/hemepath.
func DefaultDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, store.AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+store.AppName)
	}
	return filepath.Join(home, ".config", store.AppName)
}

// SetDefaults registers every key so that env overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	l := llm.DefaultConfig()
	t := tutor.DefaultConfig()

	v.SetDefault("db", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("llm.provider", l.Provider)
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.timeout", l.Timeout)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", l.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", l.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", l.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", l.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.retry.max_attempts", l.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", l.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", l.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", l.Retry.Multiplier)

	v.SetDefault("tutor.cache_ttl", t.CacheTTL)
	v.SetDefault("tutor.rate_per_minute", t.RatePerMinute)
	v.SetDefault("tutor.max_tokens", t.MaxTokens)

	v.SetDefault("update.repo", DefaultUpdateRepo)
}

// Init prepares v to read cfgFile, or config.yaml from DefaultDir when
// cfgFile is empty, plus HEMEPATH_* env vars. A missing default file is not
// an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(DefaultDir())
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load decodes the effective configuration from v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.DB == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return Config{}, fmt.Errorf("resolve db path: %w", err)
		}
		cfg.DB = p
	}
	return cfg, nil
}

// Effective renders every setting as YAML with secrets masked.
func Effective(v *viper.Viper) ([]byte, error) {
	settings := v.AllSettings()
	redact(settings)
	out, err := yaml.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return out, nil
}

func redact(m map[string]any) {
	for k, v := range m {
		switch val := v.(type) {
		case map[string]any:
			redact(val)
		case string:
			if strings.HasSuffix(k, "api_key") && val != "" {
				m[k] = "********"
			}
		}
	}
}
