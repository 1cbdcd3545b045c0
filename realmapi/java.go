package realmapi

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-realms/internal/rest"
	"github.com/MKhiriev/go-realms/internal/utils"
	"github.com/MKhiriev/go-realms/models"
)

// JavaRealmAPI talks to the java edition backend.
type JavaRealmAPI struct {
	*api
}

var _ RealmAPI = (*JavaRealmAPI)(nil)

func (j *JavaRealmAPI) GetRealmAddress(ctx context.Context, realmID string) (models.Address, error) {
	return j.getAddress(ctx, realmID, javaJoinRoute(realmID))
}

// InvitePlayer invites the player with uuid and name. The answer is the
// updated realm. Player UUIDs may be given dashed or undashed here and in the
// other player methods.
func (j *JavaRealmAPI) InvitePlayer(ctx context.Context, realmID, uuid, name string) (*Realm, error) {
	uuid, _ = utils.CompactUUID(uuid)
	body := models.JavaInviteRequest{UUID: uuid, Name: name}
	resp, err := j.rest.Post(ctx, javaInviteRoute(realmID), rest.WithBody(body))
	if err != nil {
		return nil, fmt.Errorf("invite %s to realm %s: %w", uuid, realmID, err)
	}
	return j.decodeRealm(resp)
}

// RemoveRealmInvite removes the player from the realm's member list and
// kicks them if they are online.
func (j *JavaRealmAPI) RemoveRealmInvite(ctx context.Context, realmID, uuid string) error {
	uuid, _ = utils.CompactUUID(uuid)
	if _, err := j.rest.Delete(ctx, javaRemoveInviteRoute(realmID, uuid)); err != nil {
		return fmt.Errorf("remove %s from realm %s: %w", uuid, realmID, err)
	}
	return nil
}

func (j *JavaRealmAPI) OpRealmPlayer(ctx context.Context, realmID, uuid string) error {
	uuid, _ = utils.CompactUUID(uuid)
	if _, err := j.rest.Put(ctx, javaOpsRoute(realmID, uuid)); err != nil {
		return fmt.Errorf("op %s on realm %s: %w", uuid, realmID, err)
	}
	return nil
}

func (j *JavaRealmAPI) DeopRealmPlayer(ctx context.Context, realmID, uuid string) error {
	uuid, _ = utils.CompactUUID(uuid)
	if _, err := j.rest.Delete(ctx, javaOpsRoute(realmID, uuid)); err != nil {
		return fmt.Errorf("deop %s on realm %s: %w", uuid, realmID, err)
	}
	return nil
}

// ResetRealm replaces the active world with a newly generated one.
func (j *JavaRealmAPI) ResetRealm(ctx context.Context, realmID string) error {
	body := models.DefaultResetWorldRequest()
	if _, err := j.rest.Post(ctx, resetRoute(realmID), rest.WithBody(body)); err != nil {
		return fmt.Errorf("reset realm %s: %w", realmID, err)
	}
	return nil
}

// ChangeRealmConfiguration stores configuration as the options of slotID. A
// nil configuration is sent as a JSON null.
func (j *JavaRealmAPI) ChangeRealmConfiguration(ctx context.Context, realmID string, configuration any, slotID int) error {
	if _, err := j.rest.Put(ctx, slotRoute(realmID, slotID), rest.WithBody(configuration)); err != nil {
		return fmt.Errorf("configure realm %s slot %d: %w", realmID, slotID, err)
	}
	return nil
}

// GetRealmWorldDownload returns the download of the current world of slotID.
// Java cannot download stored backups, so backupID is ignored.
func (j *JavaRealmAPI) GetRealmWorldDownload(ctx context.Context, realmID string, slotID int, _ string) (*Download, error) {
	d, err := j.getDownload(ctx, javaDownloadRoute(realmID, slotID))
	if err != nil {
		return nil, fmt.Errorf("get world download of realm %s slot %d: %w", realmID, slotID, err)
	}
	return d, nil
}

func (j *JavaRealmAPI) GetTrialEligibility(ctx context.Context) (bool, error) {
	ok, err := j.getBool(ctx, routeJavaTrial)
	if err != nil {
		return false, fmt.Errorf("get trial eligibility: %w", err)
	}
	return ok, nil
}

// ChangeRealmToMinigame switches the realm to the minigame template.
func (j *JavaRealmAPI) ChangeRealmToMinigame(ctx context.Context, realmID, minigameID string) error {
	if _, err := j.rest.Put(ctx, javaMinigameRoute(realmID, minigameID)); err != nil {
		return fmt.Errorf("switch realm %s to minigame %s: %w", realmID, minigameID, err)
	}
	return nil
}

// GetRealmStatus reports whether the Realms service accepts this client.
func (j *JavaRealmAPI) GetRealmStatus(ctx context.Context) (bool, error) {
	ok, err := j.getBool(ctx, routeAvailable)
	if err != nil {
		return false, fmt.Errorf("get realms status: %w", err)
	}
	return ok, nil
}
