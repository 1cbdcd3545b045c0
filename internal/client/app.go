// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/afero"

	"github.com/MKhiriev/go-realms/internal/auth"
	"github.com/MKhiriev/go-realms/internal/config"
	"github.com/MKhiriev/go-realms/internal/logger"
	"github.com/MKhiriev/go-realms/models"
	"github.com/MKhiriev/go-realms/realmapi"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

type App struct {
	api   realmapi.RealmAPI
	out   io.Writer
	dir   string
	build models.AppBuildInfo
	log   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp builds the Realms API client described by cfg. Tokens are read from
// cfg.Auth and served as-is by [auth.StaticAuthflow].
func NewApp(cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	platform, ok := models.ParsePlatform(cfg.Realms.Platform)
	if !ok {
		return nil, realmapi.ErrInvalidPlatform
	}

	api, err := realmapi.New(newAuthflow(cfg.Auth), platform, apiOptions(cfg, afero.NewOsFs(), log)...)
	if err != nil {
		return nil, fmt.Errorf("create realm api: %w", err)
	}

	return newApp(api, os.Stdout, cfg.Download.Dir, build, log), nil
}

func newApp(api realmapi.RealmAPI, out io.Writer, dir string, build models.AppBuildInfo, log *logger.Logger) *App {
	return &App{
		api:   api,
		out:   out,
		dir:   dir,
		build: build,
		log:   log,
	}
}

func newAuthflow(a config.Auth) *auth.StaticAuthflow {
	flow := &auth.StaticAuthflow{
		Xbox: models.XboxToken{
			UserHash:  a.XboxUserHash,
			XSTSToken: a.XSTSToken,
		},
		Java: models.JavaToken{Token: a.JavaAccessToken},
	}
	if a.JavaProfileID != "" {
		flow.Java.Profile = &models.JavaProfile{ID: a.JavaProfileID, Name: a.JavaProfileName}
	}
	return flow
}

func apiOptions(cfg *config.StructuredConfig, fs afero.Fs, log *logger.Logger) []realmapi.Option {
	opts := []realmapi.Option{
		realmapi.WithSkipAuth(cfg.Realms.SkipAuth),
		realmapi.WithLogger(log.Logger),
		realmapi.WithFs(fs),
	}
	if cfg.Realms.Host != "" {
		opts = append(opts, realmapi.WithHost(cfg.Realms.Host))
	}
	if cfg.Realms.MaxRetries != nil {
		opts = append(opts, realmapi.WithMaxRetries(*cfg.Realms.MaxRetries))
	}
	if cfg.Realms.RetryBaseDelay > 0 {
		opts = append(opts, realmapi.WithRetryBaseDelay(cfg.Realms.RetryBaseDelay))
	}
	if cfg.Realms.RequestTimeout > 0 {
		opts = append(opts, realmapi.WithTimeout(cfg.Realms.RequestTimeout))
	}
	return opts
}

// Run executes the command named by args[0]. No arguments means "list".
func (a *App) Run(ctx context.Context, args []string) error {
	cmd := config.CommandList
	if len(args) > 0 {
		cmd = args[0]
	}

	a.log.Debug().Str("command", cmd).Str("platform", a.api.Platform().String()).Msg("running command")

	switch cmd {
	case config.CommandList:
		return a.list(ctx)
	case config.CommandBackup:
		return a.backup(ctx)
	case config.CommandVersion:
		return PrintBuildInfo(a.out, a.build)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *App) list(ctx context.Context) error {
	realms, err := a.api.GetRealms(ctx)
	if err != nil {
		return fmt.Errorf("list realms: %w", err)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("ID", "NAME", "STATE", "OWNER")

	for _, r := range realms {
		owner := r.Owner
		if owner == "" {
			owner = r.OwnerUUID
		}
		t.Row(strconv.FormatInt(r.ID, 10), r.Name, r.State, owner)
	}

	_, err = fmt.Fprintln(a.out, t.String())
	return err
}

// backup downloads the first realm's world. Bedrock keeps every backup
// downloadable, so the newest one is fetched; java only serves the current
// world of the active slot.
func (a *App) backup(ctx context.Context) error {
	realms, err := a.api.GetRealms(ctx)
	if err != nil {
		return fmt.Errorf("list realms: %w", err)
	}
	if len(realms) == 0 {
		return ErrNoRealms
	}
	realm := realms[0]

	var download *realmapi.Download
	switch a.api.Platform() {
	case models.PlatformBedrock:
		download, err = a.newestBackupDownload(ctx, realm)
	default:
		download, err = realm.GetWorldDownload(ctx)
	}
	if err != nil {
		return err
	}

	path, err := download.WriteToDirectory(ctx, a.dir)
	if err != nil {
		return err
	}

	a.log.Info().Int64("realm_id", realm.ID).Str("path", path).Msg("world downloaded")
	_, err = fmt.Fprintln(a.out, path)
	return err
}

func (a *App) newestBackupDownload(ctx context.Context, realm *realmapi.Realm) (*realmapi.Download, error) {
	backups, err := realm.GetBackups(ctx)
	if err != nil {
		return nil, fmt.Errorf("list backups: %w", err)
	}
	if len(backups) == 0 {
		return nil, ErrNoBackups
	}

	newest := slices.MaxFunc(backups, func(x, y *realmapi.Backup) int {
		return cmp.Compare(x.LastModifiedDate, y.LastModifiedDate)
	})
	a.log.Debug().Str("backup_id", newest.ID).Int64("last_modified", newest.LastModifiedDate).Msg("selected backup")

	return newest.GetDownload(ctx)
}

// PrintBuildInfo writes the build metadata to w, "N/A" for unset values.
func PrintBuildInfo(w io.Writer, build models.AppBuildInfo) error {
	_, err := io.WriteString(w, build.String())
	return err
}
