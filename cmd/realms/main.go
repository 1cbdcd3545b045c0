// Command realms lists the Minecraft Realms of an account and downloads their
// worlds.
//
//	realms [-platform java|bedrock] [flags] [list|backup|version]
//
// Tokens are read from AUTH_* environment variables; see internal/config.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-realms/internal/client"
	"github.com/MKhiriev/go-realms/internal/config"
	"github.com/MKhiriev/go-realms/internal/logger"
	"github.com/MKhiriev/go-realms/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("realms")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if cfg.Command() == config.CommandVersion {
		if err = client.PrintBuildInfo(os.Stdout, build); err != nil {
			log.Fatal().Err(err).Msg("error printing build info")
		}
		return
	}

	app, err := client.NewApp(cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init realms app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Fatal().Err(err).Msg("realms run error")
	}
}
