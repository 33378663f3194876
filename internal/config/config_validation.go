// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Danila Danshin

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the application relies on at startup. Every failure is fatal:
// the server cannot issue tokens without a sign key, reach the employees
// table without a DSN, or delegate authentication without an identity
// endpoint.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Identity.BaseURL == "" {
		return ErrInvalidIdentityConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
