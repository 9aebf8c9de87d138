package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-tailor/internal/llm"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"api_key": "key-123",
		"models": {"advanced": "gemini-2.5-pro-exp"},
		"notification_ttl": "8s",
		"max_upload_bytes": 10485760,
		"use_browser": true,
		"output_dir": "out",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "key-123", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro-exp", cfg.Models["advanced"])
	assert.Equal(t, 8*time.Second, cfg.NotificationTTL.Std())
	assert.Equal(t, int64(10485760), cfg.MaxUploadBytes)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
api_key: key-456
fetch_timeout: 45s
page_cache_ttl: 1h
log_file: logs/cv_tailor.log
log_level: debug
models:
  lite: gemini-2.0-flash-lite
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "key-456", cfg.APIKey)
	assert.Equal(t, 45*time.Second, cfg.FetchTimeout.Std())
	assert.Equal(t, time.Hour, cfg.PageCacheTTL.Std())
	assert.Equal(t, "logs/cv_tailor.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "gemini-2.0-flash-lite", cfg.Models["lite"])
}

func TestLoadConfig_DurationAsNanoseconds(t *testing.T) {
	path := writeConfig(t, "config.json", `{"notification_ttl": 2000000000}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.NotificationTTL.Std())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "config.json", `{"fetch_timeout": "soon"}`))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "config.yml", "fetch_timeout: soon\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	notADir := writeConfig(t, "file.txt", "x")

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty is valid", cfg: Config{}},
		{name: "full is valid", cfg: Config{
			Models:          map[string]string{"lite": "a", "advanced": "b"},
			NotificationTTL: Duration(5 * time.Second),
			MaxUploadBytes:  1024,
			LogLevel:        "warn",
		}},
		{name: "negative upload cap", cfg: Config{MaxUploadBytes: -1}, wantErr: "MaxUploadBytes"},
		{name: "negative ttl", cfg: Config{NotificationTTL: Duration(-time.Second)}, wantErr: "NotificationTTL"},
		{name: "unknown tier", cfg: Config{Models: map[string]string{"turbo": "x"}}, wantErr: "Models"},
		{name: "empty model", cfg: Config{Models: map[string]string{"lite": ""}}, wantErr: "Models"},
		{name: "bad log level", cfg: Config{LogLevel: "loud"}, wantErr: "LogLevel"},
		{name: "output dir is a file", cfg: Config{OutputDir: notADir}, wantErr: "not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults_FileWinsOverEnv(t *testing.T) {
	file := Config{
		APIKey: "from-file",
		Models: map[string]string{"advanced": "file-model"},
	}
	env := Config{
		APIKey:    "from-env",
		OutputDir: "env-out",
		Models:    map[string]string{"advanced": "env-model", "lite": "env-lite"},
	}

	merged := file.MergeWithDefaults(env)

	assert.Equal(t, "from-file", merged.APIKey)
	assert.Equal(t, "env-out", merged.OutputDir)
	assert.Equal(t, map[string]string{"advanced": "file-model", "lite": "env-lite"}, merged.Models)
}

func TestMergeWithDefaults_Builtins(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, DefaultNotificationTTL, merged.NotificationTTL.Std())
	assert.Equal(t, DefaultFetchTimeout, merged.FetchTimeout.Std())
	assert.Equal(t, DefaultPageCacheTTL, merged.PageCacheTTL.Std())
	assert.Equal(t, DefaultOutputDir, merged.OutputDir)
	assert.Equal(t, DefaultLogLevel, merged.LogLevel)
	assert.Zero(t, merged.MaxUploadBytes, "uploads are unlimited unless configured")
}

func TestMergeWithDefaults_Bools(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{UseBrowser: true})
	assert.True(t, merged.UseBrowser)
	assert.False(t, merged.Verbose)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "  env-key \n")
	assert.Equal(t, "env-key", FromEnv().APIKey)
}

func TestLLMConfig(t *testing.T) {
	cfg := Config{Models: map[string]string{"advanced": "custom-pro"}}

	llmCfg := cfg.LLMConfig()
	assert.Equal(t, "custom-pro", llmCfg.GetModel(llm.TierAdvanced))
	assert.Equal(t, llm.DefaultConfig().GetModel(llm.TierLite), llmCfg.GetModel(llm.TierLite))
}
