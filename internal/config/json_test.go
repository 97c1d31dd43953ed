package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", input: `"10s"`, want: 10 * time.Second},
		{name: "hours string", input: `"24h"`, want: 24 * time.Hour},
		{name: "number of nanoseconds", input: `1000000000`, want: time.Second},
		{name: "invalid string", input: `"ten seconds"`, wantErr: true},
		{name: "invalid json", input: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"app": {"version": "1.2.3"},
		"client": {"server_url": "http://localhost:8088", "request_timeout": "15s"},
		"storage": {"db": {"dsn": "tracker.db"}},
		"server": {"http_address": "localhost:8088"},
		"auth": {"token_sign_key": "key", "token_issuer": "tracker", "token_duration": "24h"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "http://localhost:8088", cfg.Client.ServerURL)
	assert.Equal(t, 15*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, "tracker.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8088", cfg.Server.HTTPAddress)
	assert.Equal(t, "key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "tracker", cfg.Auth.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	// путь намеренно не наследуется из файла
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_PartialConfig(t *testing.T) {
	path := writeConfigFile(t, `{"client": {"server_url": "http://api"}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "http://api", cfg.Client.ServerURL)
	assert.Zero(t, cfg.Client.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
