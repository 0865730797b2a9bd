package models

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"ocr-translator/internal/config"
	internalhttp "ocr-translator/internal/http"
)

// EnvPrefix prefixes environment overrides, e.g. OCR_TRANSLATOR_BACKEND_URL.
// The bare names (BACKEND_URL) are accepted as well.
const EnvPrefix = "OCR_TRANSLATOR"

// Config holds application settings
type Config struct {
	// Remote service
	BackendURL            string `json:"backend_url" yaml:"backend_url" envconfig:"BACKEND_URL"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds" yaml:"request_timeout_seconds" envconfig:"REQUEST_TIMEOUT_SECONDS"` // 0 = no timeout

	// Retry policy around both remote operations
	RetryMaxAttempts    int     `json:"retry_max_attempts" yaml:"retry_max_attempts" envconfig:"RETRY_MAX_ATTEMPTS"`
	RetryInitialDelayMS int     `json:"retry_initial_delay_ms" yaml:"retry_initial_delay_ms" envconfig:"RETRY_INITIAL_DELAY_MS"`
	RetryBackoffFactor  float64 `json:"retry_backoff_factor" yaml:"retry_backoff_factor" envconfig:"RETRY_BACKOFF_FACTOR"`

	// Form defaults
	DefaultOCRLanguage string `json:"default_ocr_language" yaml:"default_ocr_language" envconfig:"DEFAULT_OCR_LANGUAGE"`

	// Logging (debug, info, warn, error) and format (console, json)
	LogLevel  string `json:"log_level" yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat string `json:"log_format" yaml:"log_format" envconfig:"LOG_FORMAT"`

	// Window size
	WindowWidth  int `json:"window_width" yaml:"window_width" envconfig:"WINDOW_WIDTH"`
	WindowHeight int `json:"window_height" yaml:"window_height" envconfig:"WINDOW_HEIGHT"`
}

func DefaultConfig() *Config {
	return &Config{
		BackendURL:            config.DefaultBackendURL,
		RequestTimeoutSeconds: 0,

		RetryMaxAttempts:    config.DefaultMaxAttempts,
		RetryInitialDelayMS: int(config.DefaultRetryDelay / time.Millisecond),
		RetryBackoffFactor:  config.DefaultBackoffFactor,

		DefaultOCRLanguage: config.DefaultOCRLanguage,

		LogLevel:  "info",
		LogFormat: "console",

		WindowWidth:  config.DefaultWindowWidth,
		WindowHeight: config.DefaultWindowHeight,
	}
}

// DefaultConfigPath is ~/.config/ocr-translator/config.json.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", config.AppName, "config.json")
}

// LoadConfig reads the config file at path (DefaultConfigPath when empty),
// falls back to defaults when it does not exist, then applies environment
// overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	u, err := url.Parse(strings.TrimSpace(c.BackendURL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("backend_url must be an absolute http(s) URL, got %q", c.BackendURL)
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("request_timeout_seconds must be >= 0")
	}
	if c.RetryMaxAttempts < 1 {
		return fmt.Errorf("retry_max_attempts must be >= 1")
	}
	if c.RetryInitialDelayMS < 0 {
		return fmt.Errorf("retry_initial_delay_ms must be >= 0")
	}
	if c.RetryBackoffFactor < 1 {
		return fmt.Errorf("retry_backoff_factor must be >= 1")
	}
	if strings.TrimSpace(c.DefaultOCRLanguage) == "" {
		return fmt.Errorf("default_ocr_language is required")
	}
	return nil
}

// BaseURL returns the backend URL without a trailing slash.
func (c *Config) BaseURL() string {
	return strings.TrimRight(strings.TrimSpace(c.BackendURL), "/")
}

// RetryPolicy builds the transport retry policy from the config.
func (c *Config) RetryPolicy() internalhttp.RetryPolicy {
	p := internalhttp.DefaultRetryPolicy()
	p.MaxAttempts = c.RetryMaxAttempts
	p.InitialDelay = time.Duration(c.RetryInitialDelayMS) * time.Millisecond
	p.BackoffFactor = c.RetryBackoffFactor
	return p
}

// ClientConfig builds the pooled HTTP client settings from the config.
func (c *Config) ClientConfig() internalhttp.ClientConfig {
	return internalhttp.DefaultClientConfig().
		WithTimeout(time.Duration(c.RequestTimeoutSeconds) * time.Second)
}

// Save writes the config as JSON to path (DefaultConfigPath when empty).
func (c *Config) Save(path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
