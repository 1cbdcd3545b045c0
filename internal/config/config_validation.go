// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-realms/models"
)

// maxRetries mirrors the limit enforced by the client.
const maxRetries = 16

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. It also lowercases the platform
// name. Platform and credentials are skipped for commands that never reach
// the Realms API.
func (cfg *StructuredConfig) validate() error {
	cfg.Realms.Platform = strings.ToLower(strings.TrimSpace(cfg.Realms.Platform))
	usesAPI := cfg.usesAPI()

	if err := cfg.Realms.validate(usesAPI); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRealmsConfigs, err)
	}

	if usesAPI && !cfg.Realms.SkipAuth {
		if err := cfg.Auth.validate(models.Platform(cfg.Realms.Platform)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAuthConfigs, err)
		}
	}

	if err := cfg.Log.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

func (r *Realms) validate(requirePlatform bool) error {
	platforms := make([]any, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		platforms = append(platforms, p.String())
	}

	return validation.ValidateStruct(r,
		validation.Field(&r.Platform, validation.When(requirePlatform, validation.Required, validation.In(platforms...))),
		validation.Field(&r.Host, is.URL),
		validation.Field(&r.MaxRetries, validation.NotNil, validation.Min(0), validation.Max(maxRetries)),
		validation.Field(&r.RetryBaseDelay, validation.Min(time.Duration(0))),
		validation.Field(&r.RequestTimeout, validation.Min(time.Duration(0))),
	)
}

func (a *Auth) validate(platform models.Platform) error {
	bedrock := platform == models.PlatformBedrock
	java := platform == models.PlatformJava

	return validation.ValidateStruct(a,
		validation.Field(&a.XboxUserHash, validation.When(bedrock, validation.Required)),
		validation.Field(&a.XSTSToken, validation.When(bedrock, validation.Required)),
		validation.Field(&a.JavaAccessToken, validation.When(java, validation.Required)),
		validation.Field(&a.JavaProfileID, validation.When(java, validation.Required)),
		validation.Field(&a.JavaProfileName, validation.When(java, validation.Required)),
	)
}

func (l *Log) validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Level, validation.By(func(value any) error {
			if _, err := zerolog.ParseLevel(value.(string)); err != nil {
				return fmt.Errorf("unknown level %q", value)
			}
			return nil
		})),
	)
}
