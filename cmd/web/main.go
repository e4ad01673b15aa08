package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/team-migration/pkg/runtime/bootstrap"
	"github.com/de-tools/team-migration/pkg/server"
	"github.com/de-tools/team-migration/pkg/services/config"
	"github.com/de-tools/team-migration/pkg/services/warmup"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var settingsPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for team migration offers",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "",
		"Path to the settings file (TEAMMIG_* variables override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	app, err := bootstrap.Build(ctx, settings)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to release resources")
		}
	}()

	logger.Info().Msgf("Profiles found at `%s` successfully loaded.", settings.Profiles)
	profiles, _ := app.Registry.GetProfiles(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Name: `%s`, Environment: `%s`", profile.Name, profile.Environment)
	}

	if settings.Cache.WarmupInterval > 0 && settings.Cache.Backend != config.CacheNone {
		warmupCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		runner := warmup.NewRunner(app.Registry, app.Strings, app.Prices, warmup.RunnerConfig{
			Interval: settings.Cache.WarmupInterval,
		})
		go runner.Run(warmupCtx)
	}

	api := server.NewWebAPI(server.Config{
		Addr:            settings.Server.Addr(),
		ShutdownTimeout: settings.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Registry:  app.Registry,
			Strings:   app.Strings,
			Prices:    app.Prices,
			Migration: app.Migration,
			History:   app.History,
			Logger:    logger,
		},
	})
	return api.Start()
}
