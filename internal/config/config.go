package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
	Export ExportConfig `mapstructure:"export" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AuthConfig contains settings for signing the session cookie used to carry
// flash messages between requests.
type AuthConfig struct {
	SessionSecret string `mapstructure:"session_secret" validate:"required,min=32"`
}

// LLMConfig contains all settings for the external generation API.
type LLMConfig struct {
	// GeminiAPIKey authenticates requests; it is sent as a query parameter.
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`

	// EndpointURL is the full generateContent endpoint, model included.
	EndpointURL string `mapstructure:"endpoint_url" validate:"required,url"`

	// TimeoutSeconds bounds a single upstream call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0"`

	// MaxInputChars caps the text embedded in the prompt. Longer input is
	// truncated, not chunked.
	MaxInputChars int `mapstructure:"max_input_chars" validate:"required,gt=0"`
}

// ExportConfig contains layout tuning for the export formatters. Wrap widths
// are in characters per line.
type ExportConfig struct {
	QuestionWrapWidth int `mapstructure:"question_wrap_width" validate:"required,gt=0"`
	AnswerWrapWidth   int `mapstructure:"answer_wrap_width" validate:"required,gt=0"`
}
