// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth turns tokens issued by an external authentication flow into
// the request headers each Realms backend expects.
//
// Token acquisition and refresh are not handled here: they belong to the
// [Authflow] implementation the caller supplies (typically an Xbox Live /
// Microsoft account flow). The package ships [StaticAuthflow] for callers that
// already hold tokens, such as the example command.
package auth

import (
	"context"

	"github.com/MKhiriev/go-realms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/authflow_mock.go -package=mock

// Authflow issues the credentials needed to call the Realms API.
type Authflow interface {
	// GetXboxToken returns an XSTS token for relyingParty. Bedrock requests
	// use the Realms relying party.
	GetXboxToken(ctx context.Context, relyingParty string) (models.XboxToken, error)

	// GetMinecraftJavaToken returns a Minecraft: Java Edition access token.
	// With fetchProfile set the token carries the owned game profile.
	GetMinecraftJavaToken(ctx context.Context, fetchProfile bool) (models.JavaToken, error)
}
