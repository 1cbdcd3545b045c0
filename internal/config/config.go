// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-realms/models"
)

// StructuredConfig is the top-level configuration of the realms command. It
// is populated by merging environment variables, command-line flags and an
// optional JSON or TOML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Realms holds the client settings: platform, host and retry schedule.
	Realms Realms `envPrefix:"REALMS_"`

	// Auth holds the credentials served by the static authflow.
	Auth Auth `envPrefix:"AUTH_"`

	// Download holds where world archives are written.
	Download Download `envPrefix:"DOWNLOAD_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or TOML configuration file,
	// chosen by extension. Populated via the CONFIG environment variable or
	// the -c / -config flag.
	FilePath string `env:"CONFIG"`

	// Args are the positional command-line arguments left after flags.
	Args []string `env:"-"`
}

// Realms holds the settings of the Realms API client.
type Realms struct {
	// Platform is "java" (default) or "bedrock".
	// Env: REALMS_PLATFORM
	Platform string `env:"PLATFORM"`

	// Host overrides the platform host (e.g. a local fake backend).
	// Env: REALMS_HOST
	Host string `env:"HOST"`

	// MaxRetries is how many times a 5xx answer is retried. Nil means the
	// default; zero disables retries.
	// Env: REALMS_MAX_RETRIES
	MaxRetries *int `env:"MAX_RETRIES"`

	// RetryBaseDelay is the wait before the first retry (e.g. "1s").
	// Env: REALMS_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`

	// RequestTimeout bounds a single HTTP attempt (e.g. "30s").
	// Env: REALMS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SkipAuth sends requests without authentication headers.
	// Env: REALMS_SKIP_AUTH
	SkipAuth bool `env:"SKIP_AUTH"`
}

// Auth holds tokens obtained out of band.
type Auth struct {
	// Env: AUTH_XBOX_USER_HASH
	XboxUserHash string `env:"XBOX_USER_HASH"`
	// Env: AUTH_XSTS_TOKEN
	XSTSToken string `env:"XSTS_TOKEN"`

	// Env: AUTH_JAVA_ACCESS_TOKEN
	JavaAccessToken string `env:"JAVA_ACCESS_TOKEN"`
	// Env: AUTH_JAVA_PROFILE_ID
	JavaProfileID string `env:"JAVA_PROFILE_ID"`
	// Env: AUTH_JAVA_PROFILE_NAME
	JavaProfileName string `env:"JAVA_PROFILE_NAME"`
}

// Download holds settings of world archive downloads.
type Download struct {
	// Dir is the directory world archives are written to.
	// Env: DOWNLOAD_DIR
	Dir string `env:"DIR"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Commands of the realms binary. Only [CommandVersion] runs without the
// Realms API.
const (
	CommandList    = "list"
	CommandBackup  = "backup"
	CommandVersion = "version"
)

const (
	defaultPlatform       = models.PlatformJava
	defaultMaxRetries     = 4
	defaultRetryBaseDelay = time.Second
	defaultDownloadDir    = "."
	defaultLogLevel       = "info"
)

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags parsed from args
//  3. Config file (path resolved from sources 1 and 2)
//
// Unset fields receive defaults before validation. Platform and credentials
// are only checked for commands that call the Realms API.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}

// Command returns the command named by the first positional argument, or
// [CommandList] when none is given.
func (cfg *StructuredConfig) Command() string {
	if len(cfg.Args) == 0 {
		return CommandList
	}
	return cfg.Args[0]
}

func (cfg *StructuredConfig) usesAPI() bool {
	return cfg.Command() != CommandVersion
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Realms.Platform == "" {
		cfg.Realms.Platform = defaultPlatform.String()
	}
	if cfg.Realms.MaxRetries == nil {
		n := defaultMaxRetries
		cfg.Realms.MaxRetries = &n
	}
	if cfg.Realms.RetryBaseDelay == 0 {
		cfg.Realms.RetryBaseDelay = defaultRetryBaseDelay
	}
	if cfg.Download.Dir == "" {
		cfg.Download.Dir = defaultDownloadDir
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
}
