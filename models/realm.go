// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Realm is the server-reported state of a realm at the time it was fetched.
// Field names follow the Realms wire format.
type Realm struct {
	ID                   int64    `json:"id"`
	RemoteSubscriptionID string   `json:"remoteSubscriptionId"`
	Owner                string   `json:"owner"`
	OwnerUUID            string   `json:"ownerUUID"`
	Name                 string   `json:"name"`
	Motd                 string   `json:"motd"`
	DefaultPermission    string   `json:"defaultPermission"`
	State                string   `json:"state"`
	DaysLeft             int      `json:"daysLeft"`
	Expired              bool     `json:"expired"`
	ExpiredTrial         bool     `json:"expiredTrial"`
	GracePeriod          bool     `json:"gracePeriod"`
	WorldType            string   `json:"worldType"`
	Players              []Player `json:"players"`
	MaxPlayers           int      `json:"maxPlayers"`
	MinigameName         string   `json:"minigameName"`
	MinigameID           int64    `json:"minigameId"`
	MinigameImage        string   `json:"minigameImage"`
	ActiveSlot           int      `json:"activeSlot"`
	Slots                []Slot   `json:"slots"`
	Member               bool     `json:"member"`
	ClubID               int64    `json:"clubId"`

	// SubscriptionRefreshStatus is reported as null by both backends today.
	SubscriptionRefreshStatus *string `json:"subscriptionRefreshStatus"`
}

// Player is a member entry of a realm.
type Player struct {
	UUID       string `json:"uuid"`
	Name       string `json:"name,omitempty"`
	Operator   bool   `json:"operator"`
	Accepted   bool   `json:"accepted"`
	Online     bool   `json:"online"`
	Permission string `json:"permission,omitempty"`
}

// Slot is one world-save slot of a realm. Options is a JSON document encoded
// as a string by the server.
type Slot struct {
	Options string `json:"options"`
	SlotID  int    `json:"slotId"`
}

// RealmList is the envelope returned by GET /worlds.
type RealmList struct {
	Servers []Realm `json:"servers"`
}

// RealmState is the target of a realm open/close request.
type RealmState string

const (
	RealmStateOpen  RealmState = "open"
	RealmStateClose RealmState = "close"
)

// Permission is a player permission level on a bedrock realm.
type Permission string

const (
	PermissionVisitor  Permission = "VISITOR"
	PermissionMember   Permission = "MEMBER"
	PermissionOperator Permission = "OPERATOR"
)

// VersionCompatibility is the answer of the client compatibility endpoint.
type VersionCompatibility string

const (
	VersionCompatible VersionCompatibility = "COMPATIBLE"
	VersionOutdated   VersionCompatibility = "OUTDATED"
	VersionOther      VersionCompatibility = "OTHER"
)

// Address is the resolved game server endpoint of a realm.
type Address struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// JoinResponse is the raw payload of the join endpoints. Address has the
// "host:port" form.
type JoinResponse struct {
	Address          string  `json:"address"`
	PendingUpdate    bool    `json:"pendingUpdate,omitempty"`
	ResourcePackURL  *string `json:"resourcePackUrl,omitempty"`
	ResourcePackHash *string `json:"resourcePackHash,omitempty"`
}

// News is the latest Realms news article link.
type News struct {
	NewsLink string `json:"newsLink"`
}
