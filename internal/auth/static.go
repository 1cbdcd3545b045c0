// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-realms/internal/utils"
	"github.com/MKhiriev/go-realms/models"
)

// StaticAuthflow serves tokens obtained out of band, e.g. exported into the
// environment by a launcher. It never refreshes anything.
type StaticAuthflow struct {
	Xbox models.XboxToken
	Java models.JavaToken

	// Now is used for expiry checks; time.Now when nil.
	Now func() time.Time
}

var _ Authflow = (*StaticAuthflow)(nil)

// GetXboxToken implements [Authflow]. The relying party is not checked: a
// static token is assumed to have been issued for the Realms relying party.
func (s *StaticAuthflow) GetXboxToken(_ context.Context, _ string) (models.XboxToken, error) {
	if s.Xbox.UserHash == "" || s.Xbox.XSTSToken == "" {
		return models.XboxToken{}, ErrMissingXboxToken
	}
	return s.Xbox, nil
}

// GetMinecraftJavaToken implements [Authflow]. Minecraft services tokens are
// JWTs, so an expired token is rejected locally instead of producing a 401.
// Opaque tokens and tokens without an exp claim are passed through.
func (s *StaticAuthflow) GetMinecraftJavaToken(_ context.Context, fetchProfile bool) (models.JavaToken, error) {
	if s.Java.Token == "" {
		return models.JavaToken{}, ErrMissingJavaToken
	}

	if exp, err := utils.TokenExpiry(s.Java.Token); err == nil && !exp.After(s.now()) {
		return models.JavaToken{}, fmt.Errorf("%w: expired at %s", ErrTokenExpired, exp.UTC().Format(time.RFC3339))
	}

	token := s.Java
	if !fetchProfile {
		token.Profile = nil
	}
	return token, nil
}

func (s *StaticAuthflow) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
