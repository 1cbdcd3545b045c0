// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// unknownBuildValue is reported for build metadata not set by the linker.
const unknownBuildValue = "N/A"

// AppBuildInfo is the version metadata linked into the realms binary with
// -ldflags "-X main.buildVersion=...". The zero value reports every field as
// unknown.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the linked build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the release version, or "N/A".
func (a AppBuildInfo) BuildVersion() string {
	return orUnknown(a.buildVersion)
}

// BuildDate returns the build timestamp, or "N/A".
func (a AppBuildInfo) BuildDate() string {
	return orUnknown(a.buildDate)
}

// BuildCommit returns the commit hash the binary was built from, or "N/A".
func (a AppBuildInfo) BuildCommit() string {
	return orUnknown(a.buildCommit)
}

// String renders the metadata as the multi-line block "realms version"
// prints.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

func orUnknown(s string) string {
	if s == "" {
		return unknownBuildValue
	}
	return s
}
