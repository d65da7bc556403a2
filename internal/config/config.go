package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Keys the server looks up. Gmail credentials are assumed valid when present;
// token acquisition and refresh happen inside the oauth2 token source.
const (
	KeyGmailClientID     = "gmail_client_id"
	KeyGmailClientSecret = "gmail_client_secret"
	KeyGmailRefreshToken = "gmail_refresh_token"
)

// Config is the configuration lookup boundary: a string key lookup that
// reports whether the key was set.
type Config interface {
	Get(key string) (string, bool)
}

// EnvConfig resolves keys against process environment variables.
// Keys are mapped to uppercase: "gmail_client_id" -> "GMAIL_CLIENT_ID".
type EnvConfig struct{}

// NewEnvConfig returns an environment-backed Config. If envFile is non-empty
// the file is loaded first; a missing explicit file is an error, but the
// default ".env" is allowed to be absent.
func NewEnvConfig(envFile string) (*EnvConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		// Best-effort load of a local .env; absence is fine
		_ = godotenv.Load()
	}
	return &EnvConfig{}, nil
}

// Get looks up the key in the environment.
func (c *EnvConfig) Get(key string) (string, bool) {
	return os.LookupEnv(strings.ToUpper(key))
}

// MapConfig is a fixed-value Config for tests.
type MapConfig map[string]string

// Get looks up the key in the map.
func (c MapConfig) Get(key string) (string, bool) {
	value, ok := c[key]
	return value, ok
}
