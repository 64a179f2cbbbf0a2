package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	LLM        LLMConfig
	Submission SubmissionConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LLMConfig holds configuration for the hosted chat completions API
type LLMConfig struct {
	APIKey           string        `mapstructure:"api_key"`
	BaseURL          string        `mapstructure:"base_url"`
	Model            string        `mapstructure:"model"`
	Temperature      float64       `mapstructure:"temperature"`
	Timeout          time.Duration `mapstructure:"timeout"`
	EvaluationFormat string        `mapstructure:"evaluation_format"` // "json_object" or "json_schema"
}

// SubmissionConfig holds configuration for overlapping submission handling
type SubmissionConfig struct {
	GuardTTL time.Duration `mapstructure:"guard_ttl"`
}

// Load loads configuration from a .env file, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/copysmith/")

	// Environment variable settings
	v.SetEnvPrefix("COPYSMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The API key has no default, so it is bound explicitly. GROQ_API_KEY is
	// accepted as an alias.
	if err := v.BindEnv("llm.api_key", "COPYSMITH_LLM_API_KEY", "GROQ_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads variables from ./.env without overriding ones already set.
// A missing file is not an error.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(".env")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// LLM defaults (Groq's OpenAI-compatible endpoint)
	v.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.model", "llama-3.3-70b-versatile")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.timeout", "60s")
	v.SetDefault("llm.evaluation_format", "json_object")

	// Submission defaults
	v.SetDefault("submission.guard_ttl", "5m")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.LLM.APIKey == "" {
		return fmt.Errorf("LLM API key is required (set COPYSMITH_LLM_API_KEY or GROQ_API_KEY)")
	}

	if config.LLM.Temperature < 0 || config.LLM.Temperature > 2 {
		return fmt.Errorf("LLM temperature must be between 0 and 2, got: %v", config.LLM.Temperature)
	}

	if config.LLM.EvaluationFormat != "json_object" && config.LLM.EvaluationFormat != "json_schema" {
		return fmt.Errorf("evaluation format must be 'json_object' or 'json_schema', got: %s", config.LLM.EvaluationFormat)
	}

	return nil
}

// MaskedAPIKey returns the API key truncated for logging
func (c *LLMConfig) MaskedAPIKey() string {
	if len(c.APIKey) <= 8 {
		return "****"
	}
	return c.APIKey[:8] + "..."
}
