package commands

import (
	"errors"
	"fmt"

	"github.com/de-tools/team-migration/pkg/models/domain"
	"github.com/de-tools/team-migration/pkg/runtime/terminal/export"
	"github.com/de-tools/team-migration/pkg/services/migration"
	"github.com/spf13/cobra"
)

type ModalCmd struct {
	profile  string
	kind     string
	buy      bool
	app      AppProvider
	reporter *export.Reporter
}

func NewModalCmd(app AppProvider, reporter *export.Reporter) *cobra.Command {
	mc := &ModalCmd{app: app, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "modal",
		Short: "Preview the migration modal a profile would see",
		RunE:  mc.run,
	}

	cmd.Flags().StringVar(&mc.profile, "profile", "", "Host profile name")
	cmd.Flags().StringVar(&mc.kind, "kind", "", "Modal to render (purchase, adobe-id, download-csv); default picks one")
	cmd.Flags().BoolVar(&mc.buy, "buy", false, "Simulate pressing the buy now button")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func (mc *ModalCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app := mc.app()

	cfg, err := app.Registry.GetConfig(ctx, mc.profile)
	if err != nil {
		return err
	}

	if mc.buy {
		action, err := app.Migration.BuyNow(ctx, cfg)
		if err != nil {
			return err
		}
		if action.Kind == domain.ActionRedirect {
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "redirect: %s\n", action.RedirectURL)
			return err
		}
		return mc.reporter.HandleModal(*action.Modal)
	}

	var view domain.ModalView
	if mc.kind != "" {
		view, err = app.Migration.Modal(ctx, cfg, domain.ModalKind(mc.kind))
	} else {
		view, err = app.Migration.Start(ctx, cfg)
	}
	if errors.Is(err, migration.ErrNoModal) {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "no modal for profile %s\n", mc.profile)
		return err
	}
	if err != nil {
		return err
	}
	return mc.reporter.HandleModal(view)
}
