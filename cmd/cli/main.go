package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/team-migration/pkg/runtime/bootstrap"
	"github.com/de-tools/team-migration/pkg/runtime/terminal"
	"github.com/de-tools/team-migration/pkg/services/config"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	cli := terminal.NewCLI(terminal.Options{
		Loader: func(ctx context.Context, settingsPath string) (*bootstrap.App, error) {
			settings, err := config.LoadSettings(settingsPath)
			if err != nil {
				return nil, err
			}
			return bootstrap.Build(ctx, settings)
		},
		Output: os.Stdout,
	})

	if err := cli.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
