// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; per-view validation lives on [ClientConfig]
// and [ServerConfig], which run after defaults have been applied.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.TokenSignKey == "" || cfg.TokenIssuer == "" || cfg.TokenDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
