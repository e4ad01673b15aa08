package commands

import (
	"github.com/de-tools/team-migration/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

func NewProfilesCmd(app AppProvider, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List configured host profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app().Registry.GetProfiles(cmd.Context())
			if err != nil {
				return err
			}
			return reporter.HandleProfiles(profiles)
		},
	}
}
