package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-catalog/internal/adapter"
	"github.com/MKhiriev/go-course-catalog/internal/client"
	"github.com/MKhiriev/go-course-catalog/internal/config"
	"github.com/MKhiriev/go-course-catalog/internal/logger"
	"github.com/MKhiriev/go-course-catalog/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("course-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("course-client", cfg.LogFile)

	courseAdapter, err := adapter.NewHTTPCourseAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create course adapter")
	}

	ui, err := tui.New(courseAdapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
