package config

import (
	"fmt"
	"time"
)

// ServerConfig is the configuration view used by the development API server.
type ServerConfig struct {
	// HTTPAddress is the listen address in "host:port" format.
	HTTPAddress string
	// TokenSignKey is the secret used to sign and verify bearer tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim embedded in issued tokens.
	TokenIssuer string
	// TokenDuration is the lifetime of issued tokens.
	TokenDuration time.Duration
	// Version is the application version string.
	Version string
}

// GetServerConfig builds a server-specific config view from the merged
// structured configuration, filling development defaults for unset fields.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		HTTPAddress:   cfg.Server.HTTPAddress,
		TokenSignKey:  cfg.Auth.TokenSignKey,
		TokenIssuer:   cfg.Auth.TokenIssuer,
		TokenDuration: cfg.Auth.TokenDuration,
		Version:       cfg.App.Version,
	}
	serverCfg.applyDefaults()

	return serverCfg, serverCfg.validate()
}

func (cfg *ServerConfig) applyDefaults() {
	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = "localhost:8088"
	}
	if cfg.TokenSignKey == "" {
		// Development fallback only; trackerd is not a production server.
		cfg.TokenSignKey = "dev-insecure-sign-key"
	}
	if cfg.TokenIssuer == "" {
		cfg.TokenIssuer = "go-task-tracker"
	}
	if cfg.TokenDuration <= 0 {
		cfg.TokenDuration = 24 * time.Hour
	}
}
