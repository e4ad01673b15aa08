package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/team-migration/pkg/runtime/bootstrap"
	"github.com/de-tools/team-migration/pkg/runtime/terminal/commands"
	"github.com/de-tools/team-migration/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// AppLoader builds the services from a settings file path.
type AppLoader func(ctx context.Context, settingsPath string) (*bootstrap.App, error)

// CLI represents the command-line interface
type CLI struct {
	loader   AppLoader
	reporter *export.Reporter
	rootCmd  *cobra.Command

	settingsPath string
	app          *bootstrap.App
}

// Options contain configuration for the CLI
type Options struct {
	Loader AppLoader
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		loader:   opts.Loader,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, used by tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "teammig",
		Short:         "Team migration pricing and modal tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app, err := cli.loader(cmd.Context(), cli.settingsPath)
			if err != nil {
				return err
			}
			cli.app = app
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if cli.app == nil {
				return nil
			}
			return cli.app.Close()
		},
	}

	cmd.PersistentFlags().StringVarP(&cli.settingsPath, "settings", "s", "",
		"Path to the settings file (TEAMMIG_* variables override it)")

	cmd.AddCommand(commands.NewPricesCmd(cli.App, cli.reporter))
	cmd.AddCommand(commands.NewModalCmd(cli.App, cli.reporter))
	cmd.AddCommand(commands.NewProfilesCmd(cli.App, cli.reporter))

	return cmd
}

// App returns the services built before the running command.
func (cli *CLI) App() *bootstrap.App {
	return cli.app
}
