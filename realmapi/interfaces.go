package realmapi

import (
	"context"

	"github.com/MKhiriev/go-realms/internal/auth"
	"github.com/MKhiriev/go-realms/models"
)

// Authflow issues the credentials sent to the Realms backend.
type Authflow = auth.Authflow

// RealmAPI is the set of operations both Realms backends support. Platform
// differences in routes and payloads are handled by the implementations.
type RealmAPI interface {
	Platform() models.Platform

	GetRealm(ctx context.Context, realmID string) (*Realm, error)
	GetRealms(ctx context.Context) ([]*Realm, error)
	GetRealmAddress(ctx context.Context, realmID string) (models.Address, error)

	GetRealmBackups(ctx context.Context, realmID string, slotID int) ([]*Backup, error)
	RestoreRealmFromBackup(ctx context.Context, realmID, backupID string) error
	GetRealmWorldDownload(ctx context.Context, realmID string, slotID int, backupID string) (*Download, error)

	GetRealmSubscriptionInfo(ctx context.Context, realmID string) (models.SubscriptionInfo, error)
	GetRealmSubscriptionInfoDetailed(ctx context.Context, realmID string) (models.DetailedSubscriptionInfo, error)

	ChangeRealmState(ctx context.Context, realmID string, state models.RealmState) (bool, error)
	ChangeRealmActiveSlot(ctx context.Context, realmID string, slotID int) (bool, error)
	ChangeRealmNameAndDescription(ctx context.Context, realmID, name, description string) error
	ChangeRealmConfiguration(ctx context.Context, realmID string, configuration any, slotID int) error
	ResetRealm(ctx context.Context, realmID string) error
	DeleteRealm(ctx context.Context, realmID string) error

	InvitePlayer(ctx context.Context, realmID, uuid, name string) (*Realm, error)
	RemoveRealmInvite(ctx context.Context, realmID, uuid string) error
	OpRealmPlayer(ctx context.Context, realmID, uuid string) error
	DeopRealmPlayer(ctx context.Context, realmID, uuid string) error

	GetRecentRealmNews(ctx context.Context) (models.News, error)
	GetStageCompatibility(ctx context.Context) (string, error)
	GetVersionCompatibility(ctx context.Context) (models.VersionCompatibility, error)
	GetTrialEligibility(ctx context.Context) (bool, error)
}

// fetcher downloads world archives from the storage backend.
type fetcher interface {
	Fetch(ctx context.Context, rawURL, token string) ([]byte, error)
}
