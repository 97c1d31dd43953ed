// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-task-tracker application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Client holds settings for the interactive client: the remote API base
	// URL and the outbound request timeout.
	Client Client `envPrefix:"CLIENT_"`

	// Storage holds configuration for the client-local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network settings for the development API server.
	Server Server `envPrefix:"SERVER_"`

	// Auth holds token issuing settings used by the development API server.
	Auth Auth `envPrefix:"AUTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Client holds outbound transport settings for the task-tracker client.
type Client struct {
	// ServerURL is the base URL of the task API
	// (e.g. "http://localhost:8088").
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the default timeout applied to every outbound
	// request (e.g. "10s"). A slow request simply delays its caller until
	// this deadline fires.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for client-local persistence.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the client-local SQLite database that
// stores the access token and view preferences.
type DB struct {
	// DSN is the SQLite data source name, either a file path or ":memory:".
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network settings for the development API server (trackerd).
type Server struct {
	// HTTPAddress is the TCP address the server listens on, in "host:port"
	// format (e.g. "0.0.0.0:8088").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// Auth holds JWT issuing settings for the development API server.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify bearer tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token remains valid
	// (e.g. "24h").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
