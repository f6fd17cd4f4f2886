package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variable overrides,
// e.g. PORTICO_SUPABASE_URL maps to the supabase.url key.
const envPrefix = "PORTICO"

// configKeys lists every known configuration key so viper picks up values
// that are supplied only through the environment (viper's AutomaticEnv does
// not surface unbound keys during Unmarshal).
var configKeys = []string{
	"server.port",
	"server.log_level",
	"supabase.url",
	"supabase.key",
	"llm.openai_api_key",
	"llm.gemini_api_key",
	"llm.openai_base_url",
	"llm.default_model",
	"llm.default_max_tokens",
	"frontend.url",
}

// Load reads configuration from an optional config.yaml and the environment,
// with environment variables taking precedence. A .env file in the working
// directory is loaded into the environment first, if present.
// Returns a populated, validated Config or an error.
func Load() (*Config, error) {
	// Ignore the error: a missing .env file is the normal case.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.default_model", "gpt-4o-mini")
	v.SetDefault("llm.default_max_tokens", 1000)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; the environment is the primary source.
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
