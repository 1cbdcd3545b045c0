package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// unsetRetries marks -max-retries as not given; zero is a valid value.
const unsetRetries = -1

// ParseFlags parses the configuration flags in args. Positional arguments
// left after the flags end up in [StructuredConfig.Args].
//
// Flags:
//
//	-p/-platform java (default) | bedrock
//	-host realms host override
//	-max-retries retries of 5xx answers
//	-retry-base-delay first retry delay (e.g., "1s", "500ms")
//	-request-timeout single request timeout (e.g., "30s")
//	-skip-auth send requests without authentication
//	-o/-download-dir directory for downloaded worlds
//	-log-level zerolog level name
//	-c/-config JSON or TOML file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		platform       string
		host           string
		maxRetries     int
		retryBaseDelay time.Duration
		requestTimeout time.Duration
		skipAuth       bool
		downloadDir    string
		logLevel       string
		configPath     string
	)

	fs := flag.NewFlagSet("realms", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&platform, "p", "", "Realms platform: java (default) | bedrock")
	fs.StringVar(&platform, "platform", "", "Realms platform (alias)")
	fs.StringVar(&host, "host", "", "Realms host override")
	fs.IntVar(&maxRetries, "max-retries", unsetRetries, "Retries of 5xx answers")
	fs.DurationVar(&retryBaseDelay, "retry-base-delay", 0, "First retry delay (e.g., 1s, 500ms)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&skipAuth, "skip-auth", false, "Send requests without authentication")
	fs.StringVar(&downloadDir, "o", "", "Download directory")
	fs.StringVar(&downloadDir, "download-dir", "", "Download directory (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&configPath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or TOML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		Realms: Realms{
			Platform:       platform,
			Host:           host,
			RetryBaseDelay: retryBaseDelay,
			RequestTimeout: requestTimeout,
			SkipAuth:       skipAuth,
		},
		Download: Download{
			Dir: downloadDir,
		},
		Log: Log{
			Level: logLevel,
		},
		FilePath: configPath,
		Args:     fs.Args(),
	}
	if maxRetries != unsetRetries {
		cfg.Realms.MaxRetries = &maxRetries
	}

	return cfg, nil
}
