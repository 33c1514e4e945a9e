package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"port"`
	DatabaseURL string `mapstructure:"database_url"`
	RedisURL    string `mapstructure:"redis_url"`

	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	GeminiModel  string `mapstructure:"gemini_model"`

	OpenMeteoBaseURL string `mapstructure:"open_meteo_base_url"`

	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ExternalTimeout time.Duration `mapstructure:"external_timeout"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`

	DefaultCity string `mapstructure:"default_city"`
}

// Load reads configuration from the environment (and an optional config file)
// using a viper instance scoped to the call. Environment variables use upper
// snake case: DATABASE_URL, etc.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("port", "8080")
	v.SetDefault("redis_url", "redis://localhost:6379")
	v.SetDefault("gemini_model", "gemini-1.5-flash")
	v.SetDefault("open_meteo_base_url", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("allowed_origins", []string{"http://localhost:3000", "http://localhost:5173"})
	v.SetDefault("external_timeout", 10*time.Second)
	v.SetDefault("session_ttl", 7*24*time.Hour)
	v.SetDefault("default_city", "Almaty")

	// AutomaticEnv alone does not populate Unmarshal, so bind explicitly.
	keys := []string{
		"port", "database_url", "redis_url",
		"gemini_api_key", "gemini_model", "open_meteo_base_url",
		"allowed_origins", "external_timeout", "session_ttl", "default_city",
	}
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}

	return &cfg, nil
}
