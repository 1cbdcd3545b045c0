package models

// XboxToken is the XSTS token issued for the Bedrock Realms relying party.
// It is produced by the external authentication collaborator.
type XboxToken struct {
	// UserHash is the "uhs" claim of the Xbox Live user token.
	UserHash string `json:"userHash"`

	// XSTSToken is the signed XSTS token.
	XSTSToken string `json:"XSTSToken"`

	// UserXUID is the Xbox user id of the authenticated account, when known.
	UserXUID string `json:"userXUID,omitempty"`
}

// JavaProfile is the Minecraft: Java Edition profile owned by the
// authenticated account.
type JavaProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// JavaToken is a Minecraft: Java Edition access token together with the
// profile it belongs to.
type JavaToken struct {
	// Token is the Minecraft services access token.
	Token string `json:"token"`

	// Profile is nil when the account does not own the game.
	Profile *JavaProfile `json:"profile,omitempty"`
}
