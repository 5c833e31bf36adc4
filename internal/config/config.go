package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
	Settings SettingsConfig `mapstructure:"settings" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains the editor authentication settings.
type AuthConfig struct {
	JWTSecret     string        `mapstructure:"jwt_secret"     validate:"required,min=32"`
	TokenLifetime time.Duration `mapstructure:"token_lifetime" validate:"gt=0"`
}

// LLMConfig contains the credentials and request parameters of the chat
// providers. A provider is only offered when its API key is set.
type LLMConfig struct {
	GeminiAPIKey    string  `mapstructure:"gemini_api_key"`
	OpenAIAPIKey    string  `mapstructure:"openai_api_key"`
	OpenAIBaseURL   string  `mapstructure:"openai_base_url"   validate:"omitempty,url"`
	AnthropicAPIKey string  `mapstructure:"anthropic_api_key"`
	MaxTokens       int     `mapstructure:"max_tokens"        validate:"gt=0"`
	Temperature     float64 `mapstructure:"temperature"       validate:"gte=0,lte=2"`
}

// HasAnyProvider reports whether at least one provider key is configured.
func (c LLMConfig) HasAnyProvider() bool {
	return c.GeminiAPIKey != "" || c.OpenAIAPIKey != "" || c.AnthropicAPIKey != ""
}

// SettingsConfig points at the editor-managed generation settings file.
type SettingsConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}
