package models

// InviteLink is one entry of GET /links/v1 and the body of POST /links/v1.
type InviteLink struct {
	LinkID      string `json:"linkId"`
	ProfileUUID string `json:"profileUuid"`
	Type        string `json:"type"`
	Ts          int64  `json:"ts"`
	URL         string `json:"url"`
	DeepLinkURL string `json:"deepLinkUrl"`
}

// RealmInvite is the invite code of a bedrock realm.
type RealmInvite struct {
	InviteCode  string `json:"inviteCode"`
	OwnerXUID   string `json:"ownerXUID"`
	Type        string `json:"type"`
	CreatedOn   int64  `json:"createdOn"`
	InviteLink  string `json:"inviteLink"`
	DeepLinkURL string `json:"deepLinkUrl"`
}

// NewRealmInvite projects an [InviteLink] into a [RealmInvite].
func NewRealmInvite(l InviteLink) RealmInvite {
	return RealmInvite{
		InviteCode:  l.LinkID,
		OwnerXUID:   l.ProfileUUID,
		Type:        l.Type,
		CreatedOn:   l.Ts,
		InviteLink:  l.URL,
		DeepLinkURL: l.DeepLinkURL,
	}
}

// RefreshInviteRequest is the body of POST /links/v1.
type RefreshInviteRequest struct {
	Type    string `json:"type"`
	WorldID string `json:"worldId"`
}

// InfiniteInvite is the only invite link type the client creates.
const InfiniteInvite = "INFINITE"

// PendingInvitesResponse is the envelope of GET /invites/pending.
type PendingInvitesResponse struct {
	Invites []PendingInviteResponse `json:"invites"`
}

// PendingInviteResponse is a pending invite in wire format.
type PendingInviteResponse struct {
	InvitationID     string `json:"invitationId"`
	WorldName        string `json:"worldName"`
	WorldDescription string `json:"worldDescription"`
	WorldOwnerName   string `json:"worldOwnerName"`
	WorldOwnerUUID   string `json:"worldOwnerUuid"`
	Date             int64  `json:"date"`
}

// PendingInvite is an invite the account has neither accepted nor rejected.
type PendingInvite struct {
	InvitationID     string `json:"invitationId"`
	WorldName        string `json:"worldName"`
	WorldDescription string `json:"worldDescription"`
	WorldOwnerName   string `json:"worldOwnerName"`
	WorldOwnerXUID   string `json:"worldOwnerXUID"`
	CreatedOn        int64  `json:"createdOn"`
}

// InviteAction is the per-player action of the bedrock invite update endpoint.
type InviteAction string

const (
	InviteActionAdd    InviteAction = "ADD"
	InviteActionRemove InviteAction = "REMOVE"
	InviteActionOp     InviteAction = "OP"
	InviteActionDeop   InviteAction = "DEOP"
)

// InviteUpdateRequest is the body of PUT /invites/{id}/invite/update.
type InviteUpdateRequest struct {
	Invites map[string]InviteAction `json:"invites"`
}

// JavaInviteRequest is the body of POST /invites/{id} on java.
type JavaInviteRequest struct {
	UUID string `json:"uuid"`
	Name string `json:"name"`
}

// PermissionRequest is the body of the bedrock permission endpoints. UUID is
// empty for the default permission.
type PermissionRequest struct {
	Permission Permission `json:"permission"`
	UUID       string     `json:"uuid,omitempty"`
}
