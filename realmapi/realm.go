package realmapi

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-realms/models"
)

// Realm is a realm as the server reported it, bound to the API that fetched
// it. Methods act on the realm's id and active slot.
type Realm struct {
	models.Realm

	api RealmAPI
}

func newRealm(api RealmAPI, r models.Realm) *Realm {
	return &Realm{Realm: r, api: api}
}

func (r *Realm) realmID() string {
	return strconv.FormatInt(r.ID, 10)
}

func (r *Realm) GetSubscriptionInfo(ctx context.Context) (models.SubscriptionInfo, error) {
	return r.api.GetRealmSubscriptionInfo(ctx, r.realmID())
}

func (r *Realm) GetSubscriptionInfoDetailed(ctx context.Context) (models.DetailedSubscriptionInfo, error) {
	return r.api.GetRealmSubscriptionInfoDetailed(ctx, r.realmID())
}

func (r *Realm) GetAddress(ctx context.Context) (models.Address, error) {
	return r.api.GetRealmAddress(ctx, r.realmID())
}

func (r *Realm) Open(ctx context.Context) (bool, error) {
	return r.api.ChangeRealmState(ctx, r.realmID(), models.RealmStateOpen)
}

func (r *Realm) Close(ctx context.Context) (bool, error) {
	return r.api.ChangeRealmState(ctx, r.realmID(), models.RealmStateClose)
}

func (r *Realm) ChangeActiveSlot(ctx context.Context, slotID int) (bool, error) {
	return r.api.ChangeRealmActiveSlot(ctx, r.realmID(), slotID)
}

func (r *Realm) ChangeNameAndDescription(ctx context.Context, name, description string) error {
	return r.api.ChangeRealmNameAndDescription(ctx, r.realmID(), name, description)
}

func (r *Realm) Delete(ctx context.Context) error {
	return r.api.DeleteRealm(ctx, r.realmID())
}

func (r *Realm) Reset(ctx context.Context) error {
	return r.api.ResetRealm(ctx, r.realmID())
}

// GetBackups lists the backups of the active slot.
func (r *Realm) GetBackups(ctx context.Context) ([]*Backup, error) {
	return r.api.GetRealmBackups(ctx, r.realmID(), r.ActiveSlot)
}

// GetWorldDownload returns the download of the active slot's current world.
func (r *Realm) GetWorldDownload(ctx context.Context) (*Download, error) {
	return r.api.GetRealmWorldDownload(ctx, r.realmID(), r.ActiveSlot, models.LatestBackupID)
}

func (r *Realm) OpPlayer(ctx context.Context, uuid string) error {
	return r.api.OpRealmPlayer(ctx, r.realmID(), uuid)
}

func (r *Realm) DeopPlayer(ctx context.Context, uuid string) error {
	return r.api.DeopRealmPlayer(ctx, r.realmID(), uuid)
}

// InvitePlayer invites a player and returns the updated realm. name is only
// used by java.
func (r *Realm) InvitePlayer(ctx context.Context, uuid, name string) (*Realm, error) {
	return r.api.InvitePlayer(ctx, r.realmID(), uuid, name)
}
