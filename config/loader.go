package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOptions holds optional file overrides for Load.
type LoaderOptions struct {
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderOptions)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(o *LoaderOptions) { o.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(o *LoaderOptions) { o.EnvFile = path }
}

// Load populates cfg from config.yml, .env, and the environment. File
// values come first, .env second, and real environment variables win.
func Load(cfg any, opts ...LoaderOption) error {
	var options LoaderOptions
	for _, opt := range opts {
		opt(&options)
	}

	configFile := options.ConfigFile
	if configFile == "" {
		configFile = findFirst("./config.yml", "./config/config.yml", "../config.yml")
	}
	envFile := options.EnvFile
	if envFile == "" {
		envFile = findFirst("./.env", "../.env")
	}

	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}
	return nil
}

// findFirst returns the first path that exists, or "".
func findFirst(paths ...string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// bindEnvVars maps UPPER_CASE_WITH_UNDERSCORES environment variables to
// nested viper keys, e.g. REST_SERVER_URL -> rest.server_url.
func bindEnvVars(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		key := strings.ToLower(pair[0])
		parts := strings.Split(key, "_")
		if len(parts) < 2 {
			continue
		}
		// Section prefix becomes the nesting level, the rest stays joined:
		// rest_server_url -> rest.server_url.
		v.Set(parts[0]+"."+strings.Join(parts[1:], "_"), pair[1])
	}
}
