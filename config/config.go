package config

import (
	"fmt"

	"github.com/kbukum/chatclient/logger"
	"github.com/kbukum/chatclient/rest"
)

// ClientConfig is the top-level configuration for the chat client.
type ClientConfig struct {
	Rest    rest.Config   `yaml:"rest" mapstructure:"rest"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to all sections.
func (c *ClientConfig) ApplyDefaults() {
	c.Rest.ApplyDefaults()
	c.Logging.ApplyDefaults()
}

// Validate validates all sections.
func (c *ClientConfig) Validate() error {
	if err := c.Rest.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
