package cmd

import (
	"context"
	"fmt"

	logger "github.com/PolarWolf314/jpas/internal/logging"
	"github.com/PolarWolf314/jpas/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbosity int
	Logger    logger.Logger

	RootCmd = &cobra.Command{
		Use:   "jpas",
		Short: "jpas - GPG encrypted password entries as JSON documents",
		Long: `jpas keeps password entries as JSON files whose "secrets" field is
encrypted and signed with your default GPG key.

Usage:
  jpas open Example.ssh.json > entry.json   # decrypt secrets to stdout
  jpas save < entry.json                    # re-encrypt to the file named by $file
  jpas open Example.ssh.json | jpas save    # round trip through a pipeline

Run 'jpas help <command>' for more details on a specific command.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbosity: verbosity,
				Out:       cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing %s command with verbosity=%d", cmd.Name(), verbosity)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewFigure("jpas", "", true)
			fmt.Fprintln(cmd.OutOrStdout(), banner.String())
			fmt.Fprintln(cmd.OutOrStdout(), ui.Info.Sprint("→")+" Run "+ui.Code.Sprint("jpas --help")+" to see available commands.")
		},
	}
)

func init() {
	RootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase output verbosity (repeat for debug output)")

	RootCmd.AddCommand(openCmd)
	RootCmd.AddCommand(saveCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(queryCmd)
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbosity = 0
	Logger = logger.Logger{}
	resetQueryCommandState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the Changed marker on every flag to prevent test pollution.
func resetCobraFlagState(c *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		flag.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}
