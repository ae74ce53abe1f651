package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingAPIKey is returned by Validate when GEMINI_API_KEY is not set.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY not found in environment variables")

// Supported model providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// ModelConfig holds settings for the generative model API.
type ModelConfig struct {
	Provider   string
	APIKey     string
	Name       string
	BaseURL    string
	TimeoutSec int
}

// Timeout returns the per-call timeout for model requests.
func (m ModelConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutSec) * time.Second
}

// UploadConfig holds limits for incoming uploads.
type UploadConfig struct {
	MaxFileSizeMB int
}

// MaxBytes returns the request body limit in bytes.
func (u UploadConfig) MaxBytes() int {
	return u.MaxFileSizeMB * 1024 * 1024
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost       string
	Port          string
	LogLevel      string
	Timezone      string
	QuizQuestions int
	Model         ModelConfig
	Upload        UploadConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	port := getEnv("PORT", "3000")
	return &AppConfig{
		AppHost:       getEnv("APP_HOST", "localhost:"+port),
		Port:          port,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Timezone:      getEnv("APP_TIMEZONE", "UTC"),
		QuizQuestions: getEnvInt("QUIZ_QUESTIONS", 5),
		Model: ModelConfig{
			Provider:   strings.ToLower(getEnv("MODEL_PROVIDER", ProviderGemini)),
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			Name:       getEnv("GEMINI_MODEL", "gemini-2.0-flash-001"),
			BaseURL:    getEnv("MODEL_BASE_URL", ""),
			TimeoutSec: getEnvInt("MODEL_TIMEOUT_SEC", 60),
		},
		Upload: UploadConfig{
			MaxFileSizeMB: getEnvInt("UPLOAD_MAX_MB", 20),
		},
	}
}

// Validate reports configuration that must stop the process at startup.
func (c *AppConfig) Validate() error {
	if c.Model.APIKey == "" {
		return ErrMissingAPIKey
	}
	switch c.Model.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderMock:
	default:
		return fmt.Errorf("unsupported MODEL_PROVIDER %q", c.Model.Provider)
	}
	if c.Upload.MaxFileSizeMB <= 0 {
		return fmt.Errorf("UPLOAD_MAX_MB must be positive, got %d", c.Upload.MaxFileSizeMB)
	}
	return nil
}

// Location resolves APP_TIMEZONE, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
