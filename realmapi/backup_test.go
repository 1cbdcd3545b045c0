package realmapi

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-realms/models"
)

const (
	testBackupID = "1700000000000"

	backupsFixture = `{"backups":[{
		"backupId": "1700000000000",
		"lastModifiedDate": 1700000000000,
		"size": 2048,
		"metadata": {
			"game_difficulty": "2",
			"name": "My World",
			"game_server_version": "1.20.40",
			"enabled_packs": "{\"resourcePacks\":[],\"behaviorPacks\":[]}",
			"description": "",
			"game_mode": "0",
			"world_type": "1"
		}
	}]}`
)

func TestGetRealmBackups(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/worlds/{id}/backups", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, backupsFixture)
	})
	api, _ := newTestAPI(t, models.PlatformBedrock, router)

	backups, err := api.GetRealmBackups(context.Background(), testRealmID, 2)

	require.NoError(t, err)
	require.Len(t, backups, 1)
	b := backups[0]
	assert.Equal(t, testBackupID, b.ID)
	assert.Equal(t, int64(2048), b.Size)
	assert.Equal(t, models.BackupMetadata{
		GameDifficulty:    "2",
		Name:              "My World",
		GameServerVersion: "1.20.40",
		EnabledPacks:      map[string]any{"resourcePacks": []any{}, "behaviorPacks": []any{}},
		Description:       "",
		Gamemode:          "0",
		WorldType:         "1",
	}, b.Metadata)
	assert.Equal(t, testRealmID, b.realmID)
	assert.Equal(t, 2, b.slotID)
}

func TestGetRealmBackups_BadPacks(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/worlds/{id}/backups", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"backups":[{"backupId":"1","metadata":{"enabled_packs":"{not json"}}]}`)
	})
	api, _ := newTestAPI(t, models.PlatformJava, router)

	_, err := api.GetRealmBackups(context.Background(), testRealmID, 1)

	assert.ErrorIs(t, err, ErrInvalidBackup)
}

func TestDecodeEnabledPacks(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "absent", in: nil, want: nil},
		{name: "empty", in: "", want: nil},
		{name: "encoded", in: `["a","b"]`, want: []any{"a", "b"}},
		{name: "already decoded", in: map[string]any{"x": 1.0}, want: map[string]any{"x": 1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeEnabledPacks(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBackup_GetDownload(t *testing.T) {
	t.Run("java is unsupported", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/worlds/{id}/backups", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, backupsFixture)
		})
		api, _ := newTestAPI(t, models.PlatformJava, router)

		backups, err := api.GetRealmBackups(context.Background(), testRealmID, 1)
		require.NoError(t, err)
		_, err = backups[0].GetDownload(context.Background())

		assert.ErrorIs(t, err, ErrBackupDownloadUnsupported)
	})

	t.Run("bedrock downloads the backup", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/worlds/{id}/backups", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, backupsFixture)
		})
		router.Get("/archive/download/world/{id}/{slot}/{backup}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, testRealmID, chi.URLParam(r, "id"))
			assert.Equal(t, "3", chi.URLParam(r, "slot"))
			assert.Equal(t, testBackupID, chi.URLParam(r, "backup"))
			writeJSON(w, `{"downloadUrl":"https://storage.example/world","token":"tok","size":2048}`)
		})
		api, _ := newTestAPI(t, models.PlatformBedrock, router)

		backups, err := api.GetRealmBackups(context.Background(), testRealmID, 3)
		require.NoError(t, err)
		d, err := backups[0].GetDownload(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "https://storage.example/world", d.URL)
		assert.Equal(t, "tok", d.Token)
		assert.Equal(t, int64(2048), d.Size)
		assert.Equal(t, ".mcworld", d.FileExtension)
	})
}

func TestBackup_Restore(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/worlds/{id}/backups", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, backupsFixture)
	})
	router.Put("/worlds/{id}/backups", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testBackupID, r.URL.Query().Get("backupId"))
		writeJSON(w, "true")
	})
	api, _ := newTestAPI(t, models.PlatformJava, router)

	backups, err := api.GetRealmBackups(context.Background(), testRealmID, 1)
	require.NoError(t, err)

	assert.NoError(t, backups[0].Restore(context.Background()))
}

func TestRealm_GetWorldDownload(t *testing.T) {
	tests := []struct {
		platform models.Platform
		route    string
		answer   string
		wantExt  string
	}{
		{
			platform: models.PlatformBedrock,
			route:    "/archive/download/world/{id}/1/latest",
			answer:   `{"downloadUrl":"%s/blob","token":"storage-token","size":5}`,
			wantExt:  ".mcworld",
		},
		{
			platform: models.PlatformJava,
			route:    "/worlds/{id}/slot/1/download",
			answer:   `{"downloadLink":"%s/blob","resourcePackUrl":"https://packs","resourcePackHash":"abc"}`,
			wantExt:  ".tar.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.platform.String(), func(t *testing.T) {
			storage := newStorageServer(t, []byte("world"))

			router := chi.NewRouter()
			router.Get("/worlds/{id}", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, worldFixture)
			})
			router.Get(tt.route, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, fmt.Sprintf(tt.answer, storage.URL))
			})
			api, fs := newTestAPI(t, tt.platform, router)

			realm, err := api.GetRealm(context.Background(), testRealmID)
			require.NoError(t, err)
			d, err := realm.GetWorldDownload(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, d.FileExtension)

			path, err := d.WriteToDirectory(context.Background(), "/backups/realm")
			require.NoError(t, err)
			assert.Equal(t, "/backups/realm/world"+tt.wantExt, path)

			data, err := afero.ReadFile(fs, path)
			require.NoError(t, err)
			assert.Equal(t, "world", string(data))

			if tt.platform == models.PlatformBedrock {
				assert.Equal(t, "Bearer storage-token", storage.lastAuth())
			} else {
				assert.Empty(t, storage.lastAuth())
				assert.Equal(t, "https://packs", d.ResourcePackURL)
				assert.Equal(t, "abc", d.ResourcePackHash)
			}
		})
	}
}
