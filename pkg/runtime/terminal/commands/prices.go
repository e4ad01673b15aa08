package commands

import (
	"fmt"

	"github.com/de-tools/team-migration/pkg/models/domain"
	"github.com/de-tools/team-migration/pkg/runtime/bootstrap"
	"github.com/de-tools/team-migration/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// AppProvider returns the services once the root command has built them.
type AppProvider func() *bootstrap.App

type PricesCmd struct {
	profile  string
	app      AppProvider
	reporter *export.Reporter
}

func NewPricesCmd(app AppProvider, reporter *export.Reporter) *cobra.Command {
	pc := &PricesCmd{app: app, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Look up the annual promotional and regular prices for a profile",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.profile, "profile", "", "Host profile name")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (pc *PricesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app := pc.app()

	cfg, err := app.Registry.GetConfig(ctx, pc.profile)
	if err != nil {
		return err
	}
	tr, err := app.Strings.For(ctx, cfg.Language, cfg.Country)
	if err != nil {
		return fmt.Errorf("failed to load strings: %w", err)
	}

	var summary domain.PriceSummary
	app.Prices.GetPrices(ctx, cfg, tr, func(s domain.PriceSummary) {
		summary = s
	})
	return pc.reporter.HandlePrices(cfg, summary)
}
