// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realmapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-realms/internal/rest"
	"github.com/MKhiriev/go-realms/models"
)

// inviteLinkPrefix is stripped from invite links to get the invite code.
const inviteLinkPrefix = "https://realms.gg/"

// BedrockRealmAPI talks to the bedrock edition backend.
type BedrockRealmAPI struct {
	*api
}

var _ RealmAPI = (*BedrockRealmAPI)(nil)

func (b *BedrockRealmAPI) GetRealmAddress(ctx context.Context, realmID string) (models.Address, error) {
	return b.getAddress(ctx, realmID, bedrockJoinRoute(realmID))
}

// InvitePlayer invites the player with the xuid uuid. Bedrock identifies
// players by xuid only, so name is ignored.
func (b *BedrockRealmAPI) InvitePlayer(ctx context.Context, realmID, uuid, _ string) (*Realm, error) {
	resp, err := b.updateInvite(ctx, realmID, uuid, models.InviteActionAdd)
	if err != nil {
		return nil, fmt.Errorf("invite %s to realm %s: %w", uuid, realmID, err)
	}
	return b.decodeRealm(resp)
}

func (b *BedrockRealmAPI) RemoveRealmInvite(ctx context.Context, realmID, uuid string) error {
	if _, err := b.updateInvite(ctx, realmID, uuid, models.InviteActionRemove); err != nil {
		return fmt.Errorf("remove %s from realm %s: %w", uuid, realmID, err)
	}
	return nil
}

func (b *BedrockRealmAPI) OpRealmPlayer(ctx context.Context, realmID, uuid string) error {
	if _, err := b.updateInvite(ctx, realmID, uuid, models.InviteActionOp); err != nil {
		return fmt.Errorf("op %s on realm %s: %w", uuid, realmID, err)
	}
	return nil
}

func (b *BedrockRealmAPI) DeopRealmPlayer(ctx context.Context, realmID, uuid string) error {
	if _, err := b.updateInvite(ctx, realmID, uuid, models.InviteActionDeop); err != nil {
		return fmt.Errorf("deop %s on realm %s: %w", uuid, realmID, err)
	}
	return nil
}

func (b *BedrockRealmAPI) updateInvite(ctx context.Context, realmID, uuid string, action models.InviteAction) (*rest.Response, error) {
	body := models.InviteUpdateRequest{Invites: map[string]models.InviteAction{uuid: action}}
	return b.rest.Put(ctx, bedrockInviteUpdateRoute(realmID), rest.WithBody(body))
}

func (b *BedrockRealmAPI) ResetRealm(ctx context.Context, realmID string) error {
	if _, err := b.rest.Put(ctx, resetRoute(realmID)); err != nil {
		return fmt.Errorf("reset realm %s: %w", realmID, err)
	}
	return nil
}

// ChangeRealmConfiguration replaces the realm configuration. Bedrock
// configures the realm as a whole, so slotID is ignored. A nil
// configuration is sent as a JSON null.
func (b *BedrockRealmAPI) ChangeRealmConfiguration(ctx context.Context, realmID string, configuration any, _ int) error {
	if _, err := b.rest.Put(ctx, bedrockConfigurationRoute(realmID), rest.WithBody(configuration)); err != nil {
		return fmt.Errorf("configure realm %s: %w", realmID, err)
	}
	return nil
}

// GetRealmWorldDownload returns the download of backupID in slotID. An empty
// backupID or [models.LatestBackupID] downloads the world as it is now.
func (b *BedrockRealmAPI) GetRealmWorldDownload(ctx context.Context, realmID string, slotID int, backupID string) (*Download, error) {
	if backupID == "" {
		backupID = models.LatestBackupID
	}
	d, err := b.getDownload(ctx, bedrockDownloadRoute(realmID, slotID, backupID))
	if err != nil {
		return nil, fmt.Errorf("get world download of realm %s slot %d: %w", realmID, slotID, err)
	}
	return d, nil
}

func (b *BedrockRealmAPI) GetTrialEligibility(ctx context.Context) (bool, error) {
	ok, err := b.getBool(ctx, routeBedrockTrial)
	if err != nil {
		return false, fmt.Errorf("get trial eligibility: %w", err)
	}
	return ok, nil
}

// GetRealmFromInvite resolves an invite code or realms.gg link. When the
// account is not a member yet and accept is set, the invite is accepted
// first.
func (b *BedrockRealmAPI) GetRealmFromInvite(ctx context.Context, invite string, accept bool) (*Realm, error) {
	code, err := inviteCode(invite)
	if err != nil {
		return nil, err
	}

	resp, err := b.rest.Get(ctx, bedrockInviteLinkRoute(code))
	if err != nil {
		return nil, fmt.Errorf("get realm from invite %s: %w", code, err)
	}
	realm, err := b.decodeRealm(resp)
	if err != nil {
		return nil, err
	}

	if !realm.Member && accept {
		if err = b.AcceptRealmInviteFromCode(ctx, code); err != nil {
			return nil, err
		}
	}
	return realm, nil
}

// AcceptRealmInviteFromCode joins the realm behind an invite code or link.
func (b *BedrockRealmAPI) AcceptRealmInviteFromCode(ctx context.Context, invite string) error {
	code, err := inviteCode(invite)
	if err != nil {
		return err
	}
	if _, err = b.rest.Post(ctx, bedrockAcceptLinkRoute(code)); err != nil {
		return fmt.Errorf("accept invite %s: %w", code, err)
	}
	return nil
}

// GetRealmInvite returns the current invite link of the realm.
func (b *BedrockRealmAPI) GetRealmInvite(ctx context.Context, realmID string) (models.RealmInvite, error) {
	var links []models.InviteLink
	if err := b.getJSON(ctx, bedrockInviteLinksByWorldRoute(realmID), &links); err != nil {
		return models.RealmInvite{}, fmt.Errorf("get invite of realm %s: %w", realmID, err)
	}
	if len(links) == 0 {
		return models.RealmInvite{}, fmt.Errorf("get invite of realm %s: %w", realmID, ErrNoInviteLink)
	}
	return models.NewRealmInvite(links[0]), nil
}

// RefreshRealmInvite replaces the invite link of the realm with a new
// non-expiring one.
func (b *BedrockRealmAPI) RefreshRealmInvite(ctx context.Context, realmID string) (models.RealmInvite, error) {
	body := models.RefreshInviteRequest{Type: models.InfiniteInvite, WorldID: realmID}
	resp, err := b.rest.Post(ctx, routeInviteLinks, rest.WithBody(body))
	if err != nil {
		return models.RealmInvite{}, fmt.Errorf("refresh invite of realm %s: %w", realmID, err)
	}

	var link models.InviteLink
	if err = resp.Decode(&link); err != nil {
		return models.RealmInvite{}, fmt.Errorf("refresh invite of realm %s: %w", realmID, err)
	}
	return models.NewRealmInvite(link), nil
}

func (b *BedrockRealmAPI) GetPendingInviteCount(ctx context.Context) (int, error) {
	var count int
	if err := b.getJSON(ctx, routePendingInviteCount, &count); err != nil {
		return 0, fmt.Errorf("get pending invite count: %w", err)
	}
	return count, nil
}

func (b *BedrockRealmAPI) GetPendingInvites(ctx context.Context) ([]models.PendingInvite, error) {
	var resp models.PendingInvitesResponse
	if err := b.getJSON(ctx, routePendingInvites, &resp); err != nil {
		return nil, fmt.Errorf("get pending invites: %w", err)
	}

	invites := make([]models.PendingInvite, 0, len(resp.Invites))
	for _, inv := range resp.Invites {
		invites = append(invites, models.PendingInvite{
			InvitationID:     inv.InvitationID,
			WorldName:        inv.WorldName,
			WorldDescription: inv.WorldDescription,
			WorldOwnerName:   inv.WorldOwnerName,
			WorldOwnerXUID:   inv.WorldOwnerUUID,
			CreatedOn:        inv.Date,
		})
	}
	return invites, nil
}

func (b *BedrockRealmAPI) AcceptRealmInvitation(ctx context.Context, invitationID string) error {
	if _, err := b.rest.Put(ctx, bedrockAcceptInvitationRoute(invitationID)); err != nil {
		return fmt.Errorf("accept invitation %s: %w", invitationID, err)
	}
	return nil
}

func (b *BedrockRealmAPI) RejectRealmInvitation(ctx context.Context, invitationID string) error {
	if _, err := b.rest.Put(ctx, bedrockRejectInvitationRoute(invitationID)); err != nil {
		return fmt.Errorf("reject invitation %s: %w", invitationID, err)
	}
	return nil
}

func (b *BedrockRealmAPI) BanPlayerFromRealm(ctx context.Context, realmID, uuid string) error {
	if _, err := b.rest.Post(ctx, bedrockBlockedPlayerRoute(realmID, uuid)); err != nil {
		return fmt.Errorf("ban %s from realm %s: %w", uuid, realmID, err)
	}
	return nil
}

func (b *BedrockRealmAPI) UnbanPlayerFromRealm(ctx context.Context, realmID, uuid string) error {
	if _, err := b.rest.Delete(ctx, bedrockBlockedPlayerRoute(realmID, uuid)); err != nil {
		return fmt.Errorf("unban %s from realm %s: %w", uuid, realmID, err)
	}
	return nil
}

// GetRealmBannedPlayers returns the xuids on the realm's blocklist.
func (b *BedrockRealmAPI) GetRealmBannedPlayers(ctx context.Context, realmID string) ([]string, error) {
	var xuids []string
	if err := b.getJSON(ctx, bedrockBlocklistRoute(realmID), &xuids); err != nil {
		return nil, fmt.Errorf("get blocklist of realm %s: %w", realmID, err)
	}
	return xuids, nil
}

// RemoveRealmFromJoinedList leaves a realm the account was invited to.
func (b *BedrockRealmAPI) RemoveRealmFromJoinedList(ctx context.Context, realmID string) error {
	if _, err := b.rest.Delete(ctx, bedrockJoinedRoute(realmID)); err != nil {
		return fmt.Errorf("leave realm %s: %w", realmID, err)
	}
	return nil
}

func (b *BedrockRealmAPI) ChangeIsTexturePackRequired(ctx context.Context, realmID string, forced bool) error {
	var err error
	if forced {
		_, err = b.rest.Put(ctx, bedrockTexturePacksRoute(realmID))
	} else {
		_, err = b.rest.Delete(ctx, bedrockTexturePacksRoute(realmID))
	}
	if err != nil {
		return fmt.Errorf("set texture packs required=%t on realm %s: %w", forced, realmID, err)
	}
	return nil
}

// ChangeRealmDefaultPermission sets the permission new members get. The
// answer is the updated realm.
func (b *BedrockRealmAPI) ChangeRealmDefaultPermission(ctx context.Context, realmID string, permission models.Permission) (*Realm, error) {
	body := models.PermissionRequest{Permission: upperPermission(permission)}
	resp, err := b.rest.Put(ctx, bedrockDefaultPermissionRoute(realmID), rest.WithBody(body))
	if err != nil {
		return nil, fmt.Errorf("change default permission of realm %s: %w", realmID, err)
	}
	return b.decodeRealm(resp)
}

func (b *BedrockRealmAPI) ChangeRealmPlayerPermission(ctx context.Context, realmID string, permission models.Permission, uuid string) error {
	body := models.PermissionRequest{Permission: upperPermission(permission), UUID: uuid}
	if _, err := b.rest.Put(ctx, bedrockUserPermissionRoute(realmID), rest.WithBody(body)); err != nil {
		return fmt.Errorf("change permission of %s on realm %s: %w", uuid, realmID, err)
	}
	return nil
}

func upperPermission(p models.Permission) models.Permission {
	return models.Permission(strings.ToUpper(string(p)))
}

// inviteCode strips the realms.gg prefix from an invite link.
func inviteCode(invite string) (string, error) {
	code := strings.ReplaceAll(strings.TrimSpace(invite), inviteLinkPrefix, "")
	if code == "" {
		return "", ErrMissingInviteCode
	}
	return code, nil
}
