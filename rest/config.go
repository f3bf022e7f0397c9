package rest

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultTimeout          = 30 * time.Second
	defaultLargeFileTimeout = 90 * time.Second
)

// Config configures the REST client.
type Config struct {
	// ServerURL is the chat server base URL. Token lookups are keyed by it.
	ServerURL string `yaml:"server_url" mapstructure:"server_url" validate:"required,url"`

	// Timeout is the default per-call timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// LargeFileTimeout applies to calls made with WithLargeFile.
	// Defaults to 90s.
	LargeFileTimeout time.Duration `yaml:"large_file_timeout" mapstructure:"large_file_timeout"`

	// UserAgent overrides the default User-Agent header.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.LargeFileTimeout <= 0 {
		c.LargeFileTimeout = defaultLargeFileTimeout
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("rest: invalid config: %w", err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("rest: timeout must be positive")
	}
	if c.LargeFileTimeout <= 0 {
		return fmt.Errorf("rest: large file timeout must be positive")
	}
	return nil
}
