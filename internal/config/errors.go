package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid. The ozzo-validation details
// are wrapped behind them.
var (
	// ErrInvalidRealmsConfigs indicates invalid client settings (for
	// example, an unknown platform or a negative retry count).
	ErrInvalidRealmsConfigs = errors.New("invalid realms configuration")
	// ErrInvalidAuthConfigs indicates credentials missing for the chosen
	// platform.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
