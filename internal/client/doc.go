// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the realms command runtime.
//
// It builds a [realmapi.RealmAPI] from the structured configuration, serving
// credentials through a static authflow, and dispatches the positional
// command ("list", "backup" or "version") given on the command line.
package client
