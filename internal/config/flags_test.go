package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags_AllFlags tests that every flag lands in its config field
func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-s", "http://api.example.com",
		"-a", "0.0.0.0:9090",
		"-d", "/tmp/tracker.db",
		"-c", "/etc/tracker/config.json",
		"-request-timeout", "30s",
		"-token-sign-key", "super-secret",
		"-token-issuer", "tracker",
		"-token-duration", "12h",
	}

	cfg, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "http://api.example.com", cfg.Client.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, "/tmp/tracker.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/tracker/config.json", cfg.JSONFilePath)
	assert.Equal(t, "super-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "tracker", cfg.Auth.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenDuration)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Client.ServerURL)
	assert.Zero(t, cfg.Client.RequestTimeout)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-config", "/path/to/config.json"})
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := parseFlags([]string{"-request-timeout", "not-a-duration"})
	assert.Error(t, err)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-unknown-flag", "value"})
	assert.Error(t, err)
}
