// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environ through the `env` and `envPrefix` tags
// of [StructuredConfig]. A nil environ means the process environment.
//
// Only the REALMS_*, AUTH_*, DOWNLOAD_*, LOG_* and CONFIG variables are
// consulted; unset ones leave the field zero so later sources and defaults
// decide.
func parseEnv(cfg *StructuredConfig, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
