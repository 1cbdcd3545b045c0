package auth

import "errors"

var (
	ErrMissingProfile   = errors.New("failed to obtain profile data, does the authenticating account own minecraft?")
	ErrInvalidPlatform  = errors.New("invalid platform")
	ErrMissingXboxToken = errors.New("xbox token is not configured")
	ErrMissingJavaToken = errors.New("java access token is not configured")
	ErrTokenExpired     = errors.New("token is expired")
)
