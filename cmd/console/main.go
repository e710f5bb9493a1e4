package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/certdesk/certdesk/internal/action"
	"github.com/certdesk/certdesk/internal/adapter"
	"github.com/certdesk/certdesk/internal/config"
	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/internal/service"
	"github.com/certdesk/certdesk/internal/store"
	"github.com/certdesk/certdesk/internal/toast"
	"github.com/certdesk/certdesk/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewConsoleLogger("certdesk-console")
	cfg, err := config.GetConsoleConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	routerAdapter, err := adapter.NewRouterAdapter(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create router adapter")
	}

	adminAdapter, err := adapter.NewAdminAdapter(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create admin adapter")
	}

	storages, err := store.NewConsoleStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	presenter := toast.NewPresenter(cfg.Toast.AutoClose, log, nil)
	defer presenter.Close()

	services := service.NewServices(
		service.Adapters{
			Router:  routerAdapter,
			Admin:   adminAdapter,
			Fetcher: adapter.NewObjectFetcher(cfg.Backend.RequestTimeout, log),
		},
		storages,
		action.NewDiskSaver(cfg.Downloads.Dir),
		presenter,
		log,
		nil,
	)

	ui := tui.New(services, presenter, log)

	// Signing out restarts the console at the sign-in screen.
	for {
		logout, runErr := ui.Run(context.Background())
		if runErr != nil {
			if errors.Is(runErr, tui.ErrUserQuit) {
				return
			}
			log.Fatal().Err(runErr).Msg("console run error")
		}
		if !logout {
			return
		}
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
