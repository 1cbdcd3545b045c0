package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-realms/internal/config"
	"github.com/MKhiriev/go-realms/internal/logger"
	"github.com/MKhiriev/go-realms/models"
	"github.com/MKhiriev/go-realms/realmapi"
)

const realmsFixture = `{"servers":[
	{"id": 7, "name": "Alpha", "state": "OPEN", "owner": "Steve", "ownerUUID": "u1", "activeSlot": 2},
	{"id": 8, "name": "Beta", "state": "CLOSED", "owner": "", "ownerUUID": "2535400000000000", "activeSlot": 1}
]}`

const downloadDir = "/worlds"

func newTestApp(t *testing.T, platform models.Platform, router chi.Router) (*App, *bytes.Buffer, afero.Fs) {
	t.Helper()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	fs := afero.NewMemMapFs()
	api, err := realmapi.New(newAuthflow(config.Auth{}), platform,
		realmapi.WithSkipAuth(true),
		realmapi.WithHost(srv.URL),
		realmapi.WithRetryBaseDelay(time.Millisecond),
		realmapi.WithFs(fs),
	)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	build := models.NewAppBuildInfo("v1.2.0", "2026-10-01", "abc1234")
	return newApp(api, out, downloadDir, build, logger.Nop()), out, fs
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, body)
}

// storageURL points at the /storage route of the server handling r.
func storageURL(r *http.Request) string {
	return "http://" + r.Host + "/storage/world"
}

func TestRun_List(t *testing.T) {
	for _, platform := range models.Platforms {
		t.Run(platform.String(), func(t *testing.T) {
			router := chi.NewRouter()
			router.Get("/worlds", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, realmsFixture)
			})
			app, out, _ := newTestApp(t, platform, router)

			require.NoError(t, app.Run(context.Background(), []string{"list"}))

			got := out.String()
			for _, want := range []string{"ID", "NAME", "STATE", "OWNER", "7", "Alpha", "OPEN", "Steve", "Beta", "CLOSED", "2535400000000000"} {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestRun_DefaultsToList(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/worlds", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"servers":[]}`)
	})
	app, out, _ := newTestApp(t, models.PlatformJava, router)

	require.NoError(t, app.Run(context.Background(), nil))
	assert.Contains(t, out.String(), "NAME")
}

func TestRun_ListError(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/worlds", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	app, out, _ := newTestApp(t, models.PlatformJava, router)

	err := app.Run(context.Background(), []string{"list"})

	assert.ErrorIs(t, err, realmapi.ErrUnauthorized)
	assert.Empty(t, out.String())
}

func TestRun_BackupBedrock(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/worlds", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, realmsFixture)
	})
	router.Get("/worlds/7/backups", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, `{"backups":[
			{"backupId": "older", "lastModifiedDate": 100, "size": 4, "metadata": {}},
			{"backupId": "newer", "lastModifiedDate": 200, "size": 4, "metadata": {}}
		]}`)
	})
	router.Get("/archive/download/world/7/2/newer", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, fmt.Sprintf(`{"downloadUrl": %q, "token": "storage-token", "size": 4}`, storageURL(r)))
	})
	router.Get("/storage/world", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer storage-token", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, "mcwd")
	})
	app, out, fs := newTestApp(t, models.PlatformBedrock, router)

	require.NoError(t, app.Run(context.Background(), []string{"backup"}))

	path := filepath.Join(downloadDir, "world.mcworld")
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "mcwd", string(data))
	assert.Equal(t, path+"\n", out.String())
}

func TestRun_BackupJava(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/worlds", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, realmsFixture)
	})
	router.Get("/worlds/7/slot/2/download", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, fmt.Sprintf(`{"downloadLink": %q, "resourcePackUrl": null, "resourcePackHash": null}`, storageURL(r)))
	})
	router.Get("/storage/world", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, "tgz")
	})
	app, out, fs := newTestApp(t, models.PlatformJava, router)

	require.NoError(t, app.Run(context.Background(), []string{"backup"}))

	path := filepath.Join(downloadDir, "world.tar.gz")
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, "tgz", string(data))
	assert.Equal(t, path+"\n", out.String())
}

func TestRun_BackupErrors(t *testing.T) {
	tests := []struct {
		name    string
		realms  string
		backups string
		wantErr error
	}{
		{
			name:    "no realms",
			realms:  `{"servers":[]}`,
			wantErr: ErrNoRealms,
		},
		{
			name:    "no backups",
			realms:  realmsFixture,
			backups: `{"backups":[]}`,
			wantErr: ErrNoBackups,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := chi.NewRouter()
			router.Get("/worlds", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.realms)
			})
			router.Get("/worlds/7/backups", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.backups)
			})
			app, _, fs := newTestApp(t, models.PlatformBedrock, router)

			err := app.Run(context.Background(), []string{"backup"})

			assert.ErrorIs(t, err, tt.wantErr)
			exists, _ := afero.DirExists(fs, downloadDir)
			assert.False(t, exists)
		})
	}
}

func TestRun_Version(t *testing.T) {
	app, out, _ := newTestApp(t, models.PlatformJava, chi.NewRouter())

	require.NoError(t, app.Run(context.Background(), []string{"version"}))

	assert.Equal(t, "Build version: v1.2.0\nBuild date: 2026-10-01\nBuild commit: abc1234\n", out.String())
}

func TestRun_VersionUnknownBuild(t *testing.T) {
	app, out, _ := newTestApp(t, models.PlatformJava, chi.NewRouter())
	app.build = models.AppBuildInfo{}

	require.NoError(t, app.Run(context.Background(), []string{"version"}))

	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", out.String())
}

func TestPrintBuildInfo(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, PrintBuildInfo(out, models.NewAppBuildInfo("v1.2.0", "", "")))

	assert.Equal(t, "Build version: v1.2.0\nBuild date: N/A\nBuild commit: N/A\n", out.String())
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _, _ := newTestApp(t, models.PlatformJava, chi.NewRouter())

	err := app.Run(context.Background(), []string{"restore"})

	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), `"restore"`)
}

func TestNewApp(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/worlds", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, realmsFixture)
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	retries := 0
	cfg := &config.StructuredConfig{
		Realms: config.Realms{
			Platform:       "Bedrock",
			Host:           srv.URL,
			MaxRetries:     &retries,
			RetryBaseDelay: time.Millisecond,
			RequestTimeout: 5 * time.Second,
			SkipAuth:       true,
		},
		Download: config.Download{Dir: t.TempDir()},
	}

	app, err := NewApp(cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, models.PlatformBedrock, app.api.Platform())
	assert.Equal(t, cfg.Download.Dir, app.dir)

	out := &bytes.Buffer{}
	app.out = out
	require.NoError(t, app.Run(context.Background(), []string{"list"}))
	assert.Contains(t, out.String(), "Alpha")
}

func TestNewApp_InvalidPlatform(t *testing.T) {
	cfg := &config.StructuredConfig{Realms: config.Realms{Platform: "pocket"}}

	_, err := NewApp(cfg, models.AppBuildInfo{}, logger.Nop())

	assert.ErrorIs(t, err, realmapi.ErrInvalidPlatform)
}

func TestNewAuthflow(t *testing.T) {
	t.Run("java profile", func(t *testing.T) {
		flow := newAuthflow(config.Auth{
			JavaAccessToken: "access",
			JavaProfileID:   "3333dddd2222cccc1111bbbb0000aaaa",
			JavaProfileName: "Steve",
		})

		require.NotNil(t, flow.Java.Profile)
		assert.Equal(t, models.JavaProfile{ID: "3333dddd2222cccc1111bbbb0000aaaa", Name: "Steve"}, *flow.Java.Profile)
		assert.Equal(t, "access", flow.Java.Token)
	})

	t.Run("no profile", func(t *testing.T) {
		flow := newAuthflow(config.Auth{JavaAccessToken: "access"})
		assert.Nil(t, flow.Java.Profile)
	})

	t.Run("xbox", func(t *testing.T) {
		flow := newAuthflow(config.Auth{XboxUserHash: "uhs", XSTSToken: "xsts"})

		tok, err := flow.GetXboxToken(context.Background(), "https://pocket.realms.minecraft.net/")
		require.NoError(t, err)
		assert.Equal(t, models.XboxToken{UserHash: "uhs", XSTSToken: "xsts"}, tok)
	})
}
