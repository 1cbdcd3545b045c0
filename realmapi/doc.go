// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package realmapi is a typed client for the Minecraft Realms service.
//
// [New] returns a [RealmAPI] bound to one platform. The value is either a
// [*BedrockRealmAPI] or a [*JavaRealmAPI]; operations that exist on only one
// backend are reached with a type assertion:
//
//	api, err := realmapi.New(flow, models.PlatformBedrock)
//	if err != nil {
//		return err
//	}
//	bedrock := api.(*realmapi.BedrockRealmAPI)
//	realm, err := bedrock.GetRealmFromInvite(ctx, "https://realms.gg/AB1CD2EFA3B", true)
//
// Realms, backups and downloads returned by the API are snapshots of the
// server answer. Their methods issue new requests and never update the
// snapshot they are called on.
package realmapi
