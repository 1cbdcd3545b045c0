package realmapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-realms/models"
)

// Backup is one stored snapshot of a realm slot.
type Backup struct {
	ID               string                `json:"id"`
	LastModifiedDate int64                 `json:"lastModifiedDate"`
	Size             int64                 `json:"size"`
	Metadata         models.BackupMetadata `json:"metadata"`

	api     RealmAPI
	realmID string
	slotID  int
}

func newBackup(api RealmAPI, realmID string, slotID int, b models.BackupResponse) (*Backup, error) {
	packs, err := decodeEnabledPacks(b.Metadata["enabled_packs"])
	if err != nil {
		return nil, fmt.Errorf("%w: backup %s: %w", ErrInvalidBackup, b.BackupID, err)
	}

	return &Backup{
		ID:               b.BackupID,
		LastModifiedDate: b.LastModifiedDate,
		Size:             b.Size,
		Metadata: models.BackupMetadata{
			GameDifficulty:    metadataString(b.Metadata, "game_difficulty"),
			Name:              metadataString(b.Metadata, "name"),
			GameServerVersion: metadataString(b.Metadata, "game_server_version"),
			EnabledPacks:      packs,
			Description:       metadataString(b.Metadata, "description"),
			Gamemode:          metadataString(b.Metadata, "game_mode"),
			WorldType:         metadataString(b.Metadata, "world_type"),
		},
		api:     api,
		realmID: realmID,
		slotID:  slotID,
	}, nil
}

// GetDownload returns the download of this backup. Java only serves the
// current world and returns ErrBackupDownloadUnsupported.
func (b *Backup) GetDownload(ctx context.Context) (*Download, error) {
	if b.api.Platform() == models.PlatformJava {
		return nil, ErrBackupDownloadUnsupported
	}
	return b.api.GetRealmWorldDownload(ctx, b.realmID, b.slotID, b.ID)
}

// Restore restores the realm to this backup.
func (b *Backup) Restore(ctx context.Context) error {
	return b.api.RestoreRealmFromBackup(ctx, b.realmID, b.ID)
}

// decodeEnabledPacks parses the JSON document the server sends as a string.
func decodeEnabledPacks(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	if s == "" {
		return nil, nil
	}

	var packs any
	if err := json.Unmarshal([]byte(s), &packs); err != nil {
		return nil, fmt.Errorf("decode enabled_packs: %w", err)
	}
	return packs, nil
}

func metadataString(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
