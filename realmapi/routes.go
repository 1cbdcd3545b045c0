package realmapi

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-realms/models"
)

// Route builders. Caller-supplied segments are path-escaped.

const (
	routeWorlds              = "/worlds"
	routeNews                = "/mco/v1/news"
	routeStageAvailable      = "/mco/stageAvailable"
	routeClientCompatible    = "/mco/client/compatible"
	routeAvailable           = "/mco/available"
	routeJavaTrial           = "/trial"
	routeBedrockTrial        = "/trial/new"
	routeInviteLinks         = "/links/v1"
	routePendingInvites      = "/invites/pending"
	routePendingInviteCount  = "/invites/count/pending"
	texturePacksRequiredPath = "content/texturePacksRequired"
)

func seg(s string) string {
	return url.PathEscape(s)
}

func worldRoute(realmID string) string {
	return routeWorlds + "/" + seg(realmID)
}

func backupsRoute(realmID string) string {
	return worldRoute(realmID) + "/backups"
}

func restoreRoute(realmID, backupID string) string {
	return backupsRoute(realmID) + "?backupId=" + url.QueryEscape(backupID) + "&clientSupportsRetries"
}

func subscriptionRoute(realmID string) string {
	return "/subscriptions/" + seg(realmID)
}

func subscriptionDetailsRoute(realmID string) string {
	return subscriptionRoute(realmID) + "/details"
}

func stateRoute(realmID string, state models.RealmState) string {
	return worldRoute(realmID) + "/" + seg(string(state))
}

func slotRoute(realmID string, slotID int) string {
	return worldRoute(realmID) + "/slot/" + strconv.Itoa(slotID)
}

func resetRoute(realmID string) string {
	return worldRoute(realmID) + "/reset"
}

// java

func javaJoinRoute(realmID string) string {
	return "/worlds/v1/" + seg(realmID) + "/join/pc"
}

func javaInviteRoute(realmID string) string {
	return "/invites/" + seg(realmID)
}

func javaRemoveInviteRoute(realmID, uuid string) string {
	return worldRoute(realmID) + "/invite/" + seg(uuid)
}

func javaOpsRoute(realmID, uuid string) string {
	return "/ops/" + seg(realmID) + "/" + seg(uuid)
}

func javaDownloadRoute(realmID string, slotID int) string {
	return slotRoute(realmID, slotID) + "/download"
}

func javaMinigameRoute(realmID, minigameID string) string {
	return "/worlds/minigames/" + seg(minigameID) + "/" + seg(realmID)
}

// bedrock

func bedrockJoinRoute(realmID string) string {
	return worldRoute(realmID) + "/join"
}

func bedrockInviteUpdateRoute(realmID string) string {
	return "/invites/" + seg(realmID) + "/invite/update"
}

func bedrockConfigurationRoute(realmID string) string {
	return worldRoute(realmID) + "/configuration"
}

func bedrockDownloadRoute(realmID string, slotID int, backupID string) string {
	return fmt.Sprintf("/archive/download/world/%s/%d/%s", seg(realmID), slotID, seg(backupID))
}

func bedrockInviteLinkRoute(code string) string {
	return "/worlds/v1/link/" + seg(code)
}

func bedrockAcceptLinkRoute(code string) string {
	return "/invites/v1/link/accept/" + seg(code)
}

func bedrockInviteLinksByWorldRoute(realmID string) string {
	return routeInviteLinks + "?worldId=" + url.QueryEscape(realmID)
}

func bedrockAcceptInvitationRoute(invitationID string) string {
	return "/invites/accept/" + seg(invitationID)
}

func bedrockRejectInvitationRoute(invitationID string) string {
	return "/invites/reject/" + seg(invitationID)
}

func bedrockJoinedRoute(realmID string) string {
	return "/invites/" + seg(realmID)
}

func bedrockBlocklistRoute(realmID string) string {
	return worldRoute(realmID) + "/blocklist"
}

func bedrockBlockedPlayerRoute(realmID, uuid string) string {
	return bedrockBlocklistRoute(realmID) + "/" + seg(uuid)
}

func bedrockTexturePacksRoute(realmID string) string {
	return worldRoute(realmID) + "/" + texturePacksRequiredPath
}

func bedrockDefaultPermissionRoute(realmID string) string {
	return "/world/" + seg(realmID) + "/defaultPermission"
}

func bedrockUserPermissionRoute(realmID string) string {
	return "/world/" + seg(realmID) + "/userPermission"
}
