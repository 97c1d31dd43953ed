package config

import (
	"flag"
	"time"
)

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-s server base URL for the client (e.g. "http://localhost:8088")
//	-a listen address for the development server in format [host]:[port]
//	-d local database DSN (SQLite file path or ":memory:")
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "10s", "1m")
//	-token-sign-key token signing key (development server)
//	-token-issuer token issuer name (development server)
//	-token-duration token duration (e.g., "24h")
//
// A dedicated flag set is used so the function stays reentrant in tests.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-task-tracker", flag.ContinueOnError)

	var serverURL string
	var listenAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration

	fs.StringVar(&serverURL, "s", "", "Task API base URL")
	fs.StringVar(&listenAddress, "a", "", "Dev server listen address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Local database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Client: Client{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress: listenAddress,
		},
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
