package models

// BackupList is the envelope returned by GET /worlds/{id}/backups.
type BackupList struct {
	Backups []BackupResponse `json:"backups"`
}

// BackupResponse is a single backup entry as the server sends it. Metadata
// values are mostly strings; enabled_packs holds a JSON document encoded as a
// string.
type BackupResponse struct {
	BackupID         string         `json:"backupId"`
	LastModifiedDate int64          `json:"lastModifiedDate"`
	Size             int64          `json:"size"`
	Metadata         map[string]any `json:"metadata"`
}

// BackupMetadata is the decoded metadata of a backup.
type BackupMetadata struct {
	GameDifficulty    string `json:"gameDifficulty"`
	Name              string `json:"name"`
	GameServerVersion string `json:"gameServerVersion"`
	EnabledPacks      any    `json:"enabledPacks"`
	Description       string `json:"description"`
	Gamemode          string `json:"gamemode"`
	WorldType         string `json:"worldType"`
}

// LatestBackupID requests the current state of a slot instead of a stored
// backup when downloading a bedrock world.
const LatestBackupID = "latest"
