package auth

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-realms/models"
)

// BedrockRelyingParty is the relying party of the XSTS token accepted by the
// bedrock Realms backend.
const BedrockRelyingParty = "https://pocket.realms.minecraft.net/"

// Header is a single authentication header.
type Header struct {
	Key   string
	Value string
}

// HeaderFunc fetches a fresh authentication header for one request.
type HeaderFunc func(ctx context.Context) (Header, error)

// FormatBedrockAuth renders an XSTS token as the XBL3.0 Authorization header.
func FormatBedrockAuth(t models.XboxToken) Header {
	return Header{
		Key:   "Authorization",
		Value: fmt.Sprintf("XBL3.0 x=%s;%s", t.UserHash, t.XSTSToken),
	}
}

// FormatJavaAuth renders a java access token as the session cookie the java
// backend reads. The token must carry a profile with both id and name.
func FormatJavaAuth(t models.JavaToken) (Header, error) {
	if t.Profile == nil || t.Profile.ID == "" || t.Profile.Name == "" {
		return Header{}, ErrMissingProfile
	}
	return Header{
		Key:   "Cookie",
		Value: fmt.Sprintf("sid=token:%s:%s; user=%s; version=0.0.0", t.Token, t.Profile.ID, t.Profile.Name),
	}, nil
}

// HeaderFor returns the HeaderFunc matching platform.
func HeaderFor(flow Authflow, platform models.Platform) (HeaderFunc, error) {
	switch platform {
	case models.PlatformBedrock:
		return func(ctx context.Context) (Header, error) {
			t, err := flow.GetXboxToken(ctx, BedrockRelyingParty)
			if err != nil {
				return Header{}, fmt.Errorf("get xbox token: %w", err)
			}
			return FormatBedrockAuth(t), nil
		}, nil
	case models.PlatformJava:
		return func(ctx context.Context) (Header, error) {
			t, err := flow.GetMinecraftJavaToken(ctx, true)
			if err != nil {
				return Header{}, fmt.Errorf("get java token: %w", err)
			}
			return FormatJavaAuth(t)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlatform, platform)
	}
}
