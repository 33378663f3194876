package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or zero token duration).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidIdentityConfigs indicates invalid identity service settings
	// (for example, missing base URL).
	ErrInvalidIdentityConfigs = errors.New("invalid identity configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, empty HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
