package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-sign-keeper/internal/client"
	"github.com/MKhiriev/go-sign-keeper/internal/config"
	"github.com/MKhiriev/go-sign-keeper/internal/logger"
	"github.com/MKhiriev/go-sign-keeper/internal/store"
	"github.com/MKhiriev/go-sign-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	// stdout until the log file is known; the UI takes the terminal later
	bootLog := logger.NewLogger("signer")
	cfg, err := config.GetClientConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, logFile, err := logger.NewClientLogger("signer", cfg.Log.FilePath)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error opening log file")
	}
	defer logFile.Close()
	log = log.WithLevel(cfg.Log.Level)

	vault := store.NewVault(cfg.Storage.Vault, cfg.Crypto, log)

	var app client.Client = client.NewApp(cfg, vault, buildInfo, log)
	if err = app.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("signer run error")
		bootLog.Fatal().Err(err).Msg("signer run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, line := range info.Lines() {
		fmt.Println("Build " + strings.ToLower(line[:1]) + line[1:])
	}
}
