package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command, must be one of: list | backup | version")
	ErrNoRealms       = errors.New("account has no realms")
	ErrNoBackups      = errors.New("realm has no backups")
)
