package models

import "strings"

// Platform identifies which Realms backend a client talks to. The two
// platforms use different hosts, different authentication headers and, for
// several operations, different routes.
type Platform string

const (
	// PlatformBedrock is the console/mobile edition backend.
	PlatformBedrock Platform = "bedrock"
	// PlatformJava is the desktop edition backend.
	PlatformJava Platform = "java"
)

// Platforms lists every supported platform in display order.
var Platforms = []Platform{PlatformJava, PlatformBedrock}

// ParsePlatform converts a case-insensitive platform name into a [Platform].
// The second return value is false for unknown names.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// IsValid reports whether p is one of the supported platforms.
func (p Platform) IsValid() bool {
	return p == PlatformBedrock || p == PlatformJava
}

func (p Platform) String() string {
	return string(p)
}

// PlatformNames returns the supported platform names joined with " | ".
func PlatformNames() string {
	names := make([]string, 0, len(Platforms))
	for _, p := range Platforms {
		names = append(names, p.String())
	}
	return strings.Join(names, " | ")
}
