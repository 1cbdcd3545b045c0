// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realmapi

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-realms/internal/rest"
	"github.com/MKhiriev/go-realms/models"
)

// retryAgainLater is the body the restore endpoint answers with while a
// previous restore is still running.
const retryAgainLater = "Retry again later"

// New builds the [RealmAPI] of platform. The returned value is a
// [*BedrockRealmAPI] or a [*JavaRealmAPI].
func New(flow Authflow, platform models.Platform, opts ...Option) (RealmAPI, error) {
	if flow == nil {
		return nil, ErrMissingAuthflow
	}
	if !platform.IsValid() {
		return nil, ErrInvalidPlatform
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r, err := rest.New(flow, platform, o.rest)
	if err != nil {
		return nil, fmt.Errorf("create realms client: %w", err)
	}

	base := &api{rest: r, platform: platform, fs: o.fs}
	switch platform {
	case models.PlatformBedrock:
		b := &BedrockRealmAPI{api: base}
		base.self = b
		return b, nil
	default:
		j := &JavaRealmAPI{api: base}
		base.self = j
		return j, nil
	}
}

// api holds the operations whose route and payload are identical on both
// platforms. self is the platform value wrapping it, handed to entities so
// their methods reach platform-specific overrides.
type api struct {
	rest     *rest.Rest
	platform models.Platform
	fs       afero.Fs
	self     RealmAPI
}

func (a *api) Platform() models.Platform {
	return a.platform
}

func (a *api) GetRealm(ctx context.Context, realmID string) (*Realm, error) {
	resp, err := a.rest.Get(ctx, worldRoute(realmID))
	if err != nil {
		return nil, fmt.Errorf("get realm %s: %w", realmID, err)
	}
	return a.decodeRealm(resp)
}

func (a *api) GetRealms(ctx context.Context) ([]*Realm, error) {
	resp, err := a.rest.Get(ctx, routeWorlds)
	if err != nil {
		return nil, fmt.Errorf("get realms: %w", err)
	}

	var list models.RealmList
	if err = resp.Decode(&list); err != nil {
		return nil, fmt.Errorf("get realms: %w", err)
	}

	realms := make([]*Realm, 0, len(list.Servers))
	for _, r := range list.Servers {
		realms = append(realms, newRealm(a.self, r))
	}
	return realms, nil
}

func (a *api) GetRealmBackups(ctx context.Context, realmID string, slotID int) ([]*Backup, error) {
	resp, err := a.rest.Get(ctx, backupsRoute(realmID))
	if err != nil {
		return nil, fmt.Errorf("get backups of realm %s: %w", realmID, err)
	}

	var list models.BackupList
	if err = resp.Decode(&list); err != nil {
		return nil, fmt.Errorf("get backups of realm %s: %w", realmID, err)
	}

	backups := make([]*Backup, 0, len(list.Backups))
	for _, b := range list.Backups {
		backup, err := newBackup(a.self, realmID, slotID, b)
		if err != nil {
			return nil, err
		}
		backups = append(backups, backup)
	}
	return backups, nil
}

// RestoreRealmFromBackup restores backupID onto the realm. Bedrock also
// accepts [models.LatestBackupID]. ErrRestoreRetryLater is returned while the
// backend is busy with a previous restore.
func (a *api) RestoreRealmFromBackup(ctx context.Context, realmID, backupID string) error {
	resp, err := a.rest.Put(ctx, restoreRoute(realmID, backupID))
	if err != nil {
		return fmt.Errorf("restore realm %s from backup %s: %w", realmID, backupID, err)
	}
	if resp.Text() == retryAgainLater {
		return ErrRestoreRetryLater
	}
	return nil
}

func (a *api) GetRealmSubscriptionInfo(ctx context.Context, realmID string) (models.SubscriptionInfo, error) {
	var info models.SubscriptionInfo
	if err := a.getJSON(ctx, subscriptionRoute(realmID), &info); err != nil {
		return models.SubscriptionInfo{}, fmt.Errorf("get subscription of realm %s: %w", realmID, err)
	}
	return info, nil
}

func (a *api) GetRealmSubscriptionInfoDetailed(ctx context.Context, realmID string) (models.DetailedSubscriptionInfo, error) {
	var info models.DetailedSubscriptionInfo
	if err := a.getJSON(ctx, subscriptionDetailsRoute(realmID), &info); err != nil {
		return models.DetailedSubscriptionInfo{}, fmt.Errorf("get subscription details of realm %s: %w", realmID, err)
	}
	return info, nil
}

// DeleteRealm deletes the realm and all of its worlds. It cannot be undone.
func (a *api) DeleteRealm(ctx context.Context, realmID string) error {
	if _, err := a.rest.Delete(ctx, worldRoute(realmID)); err != nil {
		return fmt.Errorf("delete realm %s: %w", realmID, err)
	}
	return nil
}

func (a *api) ChangeRealmState(ctx context.Context, realmID string, state models.RealmState) (bool, error) {
	resp, err := a.rest.Put(ctx, stateRoute(realmID, state))
	if err != nil {
		return false, fmt.Errorf("change state of realm %s to %s: %w", realmID, state, err)
	}
	return resp.Bool()
}

func (a *api) ChangeRealmActiveSlot(ctx context.Context, realmID string, slotID int) (bool, error) {
	resp, err := a.rest.Put(ctx, slotRoute(realmID, slotID))
	if err != nil {
		return false, fmt.Errorf("change active slot of realm %s: %w", realmID, err)
	}
	return resp.Bool()
}

func (a *api) ChangeRealmNameAndDescription(ctx context.Context, realmID, name, description string) error {
	body := models.NameAndDescription{Name: name, Description: description}
	if _, err := a.rest.Put(ctx, worldRoute(realmID), rest.WithBody(body)); err != nil {
		return fmt.Errorf("rename realm %s: %w", realmID, err)
	}
	return nil
}

func (a *api) GetRecentRealmNews(ctx context.Context) (models.News, error) {
	var news models.News
	if err := a.getJSON(ctx, routeNews, &news); err != nil {
		return models.News{}, fmt.Errorf("get realm news: %w", err)
	}
	return news, nil
}

func (a *api) GetStageCompatibility(ctx context.Context) (string, error) {
	resp, err := a.rest.Get(ctx, routeStageAvailable)
	if err != nil {
		return "", fmt.Errorf("get stage compatibility: %w", err)
	}
	return resp.Text(), nil
}

func (a *api) GetVersionCompatibility(ctx context.Context) (models.VersionCompatibility, error) {
	resp, err := a.rest.Get(ctx, routeClientCompatible)
	if err != nil {
		return "", fmt.Errorf("get version compatibility: %w", err)
	}
	return models.VersionCompatibility(resp.Text()), nil
}

func (a *api) getJSON(ctx context.Context, route string, v any) error {
	resp, err := a.rest.Get(ctx, route)
	if err != nil {
		return err
	}
	return resp.Decode(v)
}

func (a *api) getBool(ctx context.Context, route string) (bool, error) {
	resp, err := a.rest.Get(ctx, route)
	if err != nil {
		return false, err
	}
	return resp.Bool()
}

func (a *api) decodeRealm(resp *rest.Response) (*Realm, error) {
	var r models.Realm
	if err := resp.Decode(&r); err != nil {
		return nil, fmt.Errorf("decode realm: %w", err)
	}
	return newRealm(a.self, r), nil
}

func (a *api) getAddress(ctx context.Context, realmID, route string) (models.Address, error) {
	var join models.JoinResponse
	if err := a.getJSON(ctx, route, &join); err != nil {
		return models.Address{}, fmt.Errorf("get address of realm %s: %w", realmID, err)
	}
	return parseAddress(join.Address)
}

func (a *api) getDownload(ctx context.Context, route string) (*Download, error) {
	var d models.DownloadResponse
	if err := a.getJSON(ctx, route, &d); err != nil {
		return nil, err
	}
	return newDownload(a.platform, a.rest, a.fs, d), nil
}

// parseAddress splits the "host:port" address of the join endpoints.
func parseAddress(raw string) (models.Address, error) {
	host, port, err := net.SplitHostPort(raw)
	if err != nil {
		return models.Address{}, fmt.Errorf("%w %q: %w", ErrInvalidAddress, raw, err)
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		return models.Address{}, fmt.Errorf("%w %q: %w", ErrInvalidAddress, raw, err)
	}
	return models.Address{Host: host, Port: p}, nil
}
