package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// DefaultGeminiEndpoint is the generateContent endpoint used when no override
// is configured.
const DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-pro:generateContent"

// envPrefix is prepended to every environment variable key,
// e.g. FLASHDECK_SERVER_PORT.
const envPrefix = "FLASHDECK"

// configKeys lists every viper key so each one can be explicitly bound to its
// environment variable. AutomaticEnv alone does not surface unset nested keys
// to Unmarshal.
var configKeys = []string{
	"server.port",
	"server.log_level",
	"auth.session_secret",
	"llm.gemini_api_key",
	"llm.endpoint_url",
	"llm.timeout_seconds",
	"llm.max_input_chars",
	"export.question_wrap_width",
	"export.answer_wrap_width",
}

// Load configuration from environment variables, with a .env file in the
// working directory applied first for local development. Real environment
// variables take precedence over .env values.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// gotenv.Load never overwrites variables that are already set.
	if err := gotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers default values for all optional settings.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.endpoint_url", DefaultGeminiEndpoint)
	v.SetDefault("llm.timeout_seconds", 90)
	v.SetDefault("llm.max_input_chars", 8000)
	v.SetDefault("export.question_wrap_width", 100)
	v.SetDefault("export.answer_wrap_width", 110)
}
