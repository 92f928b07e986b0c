package cmd

import (
	"fmt"

	"github.com/PolarWolf314/jpas/internal/ui"
	"github.com/PolarWolf314/jpas/internal/workflows"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty jpas.json in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")

		result, err := workflows.Init(cmd.Context(), workflows.InitOptions{})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Sprint("✓")+" Created "+ui.Path.Sprint(result.ConfigPath))
		return nil
	},
}
