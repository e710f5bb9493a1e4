package main

import (
	"fmt"

	"github.com/certdesk/certdesk/internal/config"
	"github.com/certdesk/certdesk/internal/logger"
	"github.com/certdesk/certdesk/internal/mockrouter"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("certdesk-mockrouter")
	cfg, err := config.GetMockRouterConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	server := mockrouter.NewServer(mockrouter.NewHandler(log), cfg, log)
	if err = server.Run(); err != nil {
		log.Fatal().Err(err).Msg("mock router run error")
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
