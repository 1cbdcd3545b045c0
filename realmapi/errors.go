package realmapi

import (
	"errors"

	"github.com/MKhiriev/go-realms/internal/rest"
	"github.com/MKhiriev/go-realms/models"
)

var (
	ErrMissingAuthflow = errors.New("an authflow is required to use the realm api")
	ErrInvalidPlatform = errors.New("platform provided is not valid, must be " + models.PlatformNames())

	ErrMissingInviteCode = errors.New("need to provide a realm invite code or link")
	ErrNoInviteLink      = errors.New("realm has no invite link")

	ErrRestoreRetryLater         = errors.New("backup restore is not ready, retry again later")
	ErrBackupDownloadUnsupported = errors.New("individual backup downloads are not supported by the java realms api, use GetRealmWorldDownload")

	ErrInvalidAddress = errors.New("invalid realm address")
	ErrInvalidBackup  = errors.New("invalid backup metadata")
)

// Errors returned for non-2xx answers. They are re-exported so callers can
// match them with errors.Is without importing internal packages.
var (
	ErrBadRequest          = rest.ErrBadRequest
	ErrUnauthorized        = rest.ErrUnauthorized
	ErrForbidden           = rest.ErrForbidden
	ErrNotFound            = rest.ErrNotFound
	ErrConflict            = rest.ErrConflict
	ErrRetryLater          = rest.ErrRetryLater
	ErrInternalServerError = rest.ErrInternalServerError
	ErrBadGateway          = rest.ErrBadGateway
	ErrServiceUnavailable  = rest.ErrServiceUnavailable
	ErrUnexpectedStatus    = rest.ErrUnexpectedStatus
	ErrDownloadFailed      = rest.ErrDownloadFailed
)

// StatusError carries the status and body of a failed call. Use errors.As to
// reach it.
type StatusError = rest.StatusError
