package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
	LLM      LLMConfig      `mapstructure:"llm"`
	Frontend FrontendConfig `mapstructure:"frontend"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// SupabaseConfig contains the connection settings for the Supabase project.
//
// URL and Key are deliberately not marked required here: the gateway can
// start without them and reports a configuration error on first use of a
// Supabase-backed endpoint instead of refusing to boot.
type SupabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
	Key string `mapstructure:"key"`
}

// LLMConfig contains settings for the completion providers.
type LLMConfig struct {
	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// OpenAIBaseURL overrides the OpenAI endpoint. Empty means the public API.
	OpenAIBaseURL string `mapstructure:"openai_base_url" validate:"omitempty,url"`

	DefaultModel     string `mapstructure:"default_model"      validate:"required"`
	DefaultMaxTokens int    `mapstructure:"default_max_tokens" validate:"required,gt=0"`
}

// FrontendConfig contains settings for the frontend client this gateway serves.
type FrontendConfig struct {
	// URL is the base URL password-reset emails redirect back to.
	URL string `mapstructure:"url" validate:"omitempty,url"`
}
