package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvConfigMapsKeysToUppercase(t *testing.T) {
	t.Setenv("GMAIL_CLIENT_ID", "client-123")

	cfg, err := NewEnvConfig("")
	require.NoError(t, err)

	value, ok := cfg.Get(KeyGmailClientID)
	assert.True(t, ok)
	assert.Equal(t, "client-123", value)
}

func TestEnvConfigMissingKey(t *testing.T) {
	cfg, err := NewEnvConfig("")
	require.NoError(t, err)

	_, ok := cfg.Get("definitely_not_set_anywhere")
	assert.False(t, ok)
}

func TestEnvConfigLoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("GMAIL_REFRESH_TOKEN=tok-456\n"), 0o600))

	// Make sure a previous test run didn't leave the variable behind
	t.Setenv("GMAIL_REFRESH_TOKEN", "")
	require.NoError(t, os.Unsetenv("GMAIL_REFRESH_TOKEN"))

	cfg, err := NewEnvConfig(envFile)
	require.NoError(t, err)

	value, ok := cfg.Get(KeyGmailRefreshToken)
	assert.True(t, ok)
	assert.Equal(t, "tok-456", value)
}

func TestEnvConfigMissingEnvFile(t *testing.T) {
	_, err := NewEnvConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestMapConfig(t *testing.T) {
	cfg := MapConfig{KeyGmailClientSecret: "secret"}

	value, ok := cfg.Get(KeyGmailClientSecret)
	assert.True(t, ok)
	assert.Equal(t, "secret", value)

	_, ok = cfg.Get(KeyGmailClientID)
	assert.False(t, ok)
}
