package rest

import (
	"fmt"

	"github.com/MKhiriev/go-realms/models"
)

const (
	BedrockHost      = "https://pocket.realms.minecraft.net"
	BedrockUserAgent = "MCPE/UWP"
	JavaHost         = "https://pc.realms.minecraft.net"
	JavaUserAgent    = "MinecraftLauncher/2.2.10675"

	// ClientVersion is sent as Client-Version on every request.
	ClientVersion = "0.0.0"
)

// PlatformConstants holds the per-platform connection settings.
type PlatformConstants struct {
	Host      string
	UserAgent string
}

// ConstantsFor returns the host and user agent for platform.
func ConstantsFor(platform models.Platform) (PlatformConstants, error) {
	switch platform {
	case models.PlatformBedrock:
		return PlatformConstants{Host: BedrockHost, UserAgent: BedrockUserAgent}, nil
	case models.PlatformJava:
		return PlatformConstants{Host: JavaHost, UserAgent: JavaUserAgent}, nil
	default:
		return PlatformConstants{}, fmt.Errorf("unknown platform %q", platform)
	}
}
