// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/cv-tailor/internal/llm"
)

// Environment variables read by FromEnv
const (
	EnvAPIKey     = "GEMINI_API_KEY"
	EnvConfigPath = "CV_TAILOR_CONFIG"
)

// Defaults applied by MergeWithDefaults when a field is unset
const (
	DefaultNotificationTTL = 5 * time.Second
	DefaultFetchTimeout    = 30 * time.Second
	DefaultPageCacheTTL    = 30 * time.Minute
	DefaultOutputDir       = "."
	DefaultLogLevel        = "info"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Generation service
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	// Tier -> model overrides, e.g. {"advanced": "gemini-2.5-pro"}
	Models map[string]string `json:"models,omitempty" yaml:"models,omitempty" validate:"omitempty,dive,keys,oneof=lite standard advanced,endkeys,required"`

	// Session behavior
	NotificationTTL Duration `json:"notification_ttl,omitempty" yaml:"notification_ttl,omitempty" validate:"gte=0"`
	// Résumé file cap in bytes; 0 means unlimited
	MaxUploadBytes int64 `json:"max_upload_bytes,omitempty" yaml:"max_upload_bytes,omitempty" validate:"gte=0"`

	// Job page fetching
	UseBrowser   bool     `json:"use_browser,omitempty" yaml:"use_browser,omitempty"`
	FetchTimeout Duration `json:"fetch_timeout,omitempty" yaml:"fetch_timeout,omitempty" validate:"gte=0"`
	PageCacheTTL Duration `json:"page_cache_ttl,omitempty" yaml:"page_cache_ttl,omitempty" validate:"gte=0"`

	// Output
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	LogFile   string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	LogLevel  string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Verbose   bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Duration is a time.Duration written as a Go duration string ("5s", "2m30s")
type Duration time.Duration

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalJSON encodes the duration as a string
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a duration string or a number of nanoseconds
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return d.parse(s)
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid duration %s", string(data))
	}
	*d = Duration(n)
	return nil
}

// UnmarshalYAML accepts a duration string
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("invalid duration at line %d: %w", node.Line, err)
	}
	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// FromEnv returns the configuration carried by environment variables
func FromEnv() Config {
	return Config{APIKey: strings.TrimSpace(os.Getenv(EnvAPIKey))}
}

var validate = validator.New()

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed the %q rule (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.OutputDir != "" {
		if info, err := os.Stat(c.OutputDir); err == nil && !info.IsDir() {
			return fmt.Errorf("config error: output_dir is not a directory: %s", c.OutputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults,
// then from the built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.LogFile == "" {
		result.LogFile = defaults.LogFile
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Models: defaults fill missing tiers
	if len(defaults.Models) > 0 {
		merged := make(map[string]string, len(defaults.Models)+len(result.Models))
		for tier, model := range defaults.Models {
			merged[tier] = model
		}
		for tier, model := range result.Models {
			merged[tier] = model
		}
		result.Models = merged
	}

	// Numeric fields: use default if zero
	if result.NotificationTTL == 0 {
		result.NotificationTTL = defaults.NotificationTTL
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.FetchTimeout == 0 {
		result.FetchTimeout = defaults.FetchTimeout
	}
	if result.PageCacheTTL == 0 {
		result.PageCacheTTL = defaults.PageCacheTTL
	}

	// Bool fields: cannot distinguish unset from false, so either source enables them
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.Verbose = result.Verbose || defaults.Verbose

	result.applyBuiltins()
	return result
}

func (c *Config) applyBuiltins() {
	if c.NotificationTTL == 0 {
		c.NotificationTTL = Duration(DefaultNotificationTTL)
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = Duration(DefaultFetchTimeout)
	}
	if c.PageCacheTTL == 0 {
		c.PageCacheTTL = Duration(DefaultPageCacheTTL)
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// LLMConfig returns the generation client configuration with model overrides applied
func (c *Config) LLMConfig() *llm.Config {
	return llm.DefaultConfig().WithOverrides(c.Models)
}
