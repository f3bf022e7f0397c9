// Package config loads chat client configuration from YAML files,
// .env files, and environment variables.
//
// It uses Viper for file and environment binding and godotenv for .env
// loading. Environment variables override file values using
// underscore-separated paths (e.g., REST_SERVER_URL -> rest.server_url).
package config
