package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("PORT", "4000")
	t.Setenv("APP_HOST", "")
	t.Setenv("MODEL_PROVIDER", "OpenAI")
	t.Setenv("MODEL_TIMEOUT_SEC", "15")
	t.Setenv("UPLOAD_MAX_MB", "not-a-number")

	cfg := Load()

	assert.Equal(t, "test-key", cfg.Model.APIKey)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, "localhost:4000", cfg.AppHost)
	assert.Equal(t, ProviderOpenAI, cfg.Model.Provider)
	assert.Equal(t, 15*time.Second, cfg.Model.Timeout())
	assert.Equal(t, 20, cfg.Upload.MaxFileSizeMB)
	assert.Equal(t, 20*1024*1024, cfg.Upload.MaxBytes())
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "APP_HOST", "GEMINI_MODEL", "MODEL_PROVIDER", "QUIZ_QUESTIONS", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "gemini-2.0-flash-001", cfg.Model.Name)
	assert.Equal(t, ProviderGemini, cfg.Model.Provider)
	assert.Equal(t, 5, cfg.QuizQuestions)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := func() *AppConfig {
		return &AppConfig{
			Model:  ModelConfig{Provider: ProviderGemini, APIKey: "k"},
			Upload: UploadConfig{MaxFileSizeMB: 1},
		}
	}

	t.Run("ok", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := valid()
		cfg.Model.APIKey = ""
		assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)
	})

	t.Run("mock provider still needs api key", func(t *testing.T) {
		cfg := valid()
		cfg.Model.Provider = ProviderMock
		cfg.Model.APIKey = ""
		assert.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := valid()
		cfg.Model.Provider = "claude"
		assert.ErrorContains(t, cfg.Validate(), "unsupported MODEL_PROVIDER")
	})

	t.Run("non-positive upload limit", func(t *testing.T) {
		cfg := valid()
		cfg.Upload.MaxFileSizeMB = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestLocation(t *testing.T) {
	cfg := &AppConfig{Timezone: "UTC"}
	assert.Equal(t, "UTC", cfg.Location().String())

	cfg.Timezone = "Nowhere/Invalid"
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
