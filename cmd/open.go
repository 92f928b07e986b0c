package cmd

import (
	"fmt"

	"github.com/PolarWolf314/jpas/internal/workflows"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [FILE]",
	Short: "Open password file entry and output it to stdout",
	Long: `Decrypts the "secrets" field of an entry and prints the entry to stdout.

When FILE is given the entry is read from it and annotated with "$file" so
that 'jpas save' can write it back. Otherwise the entry is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting open command")

		file, err := fileArg(args)
		if err != nil {
			return err
		}

		cipher, err := newCipher()
		if err != nil {
			return err
		}

		if file == "" {
			Logger.Debugf("Reading entry from stdin")
			warnIfTerminal(cmd.InOrStdin())
		} else {
			Logger.Debugf("Reading entry from %s", file)
		}

		result, err := workflows.Open(cmd.Context(), workflows.OpenOptions{
			File:   file,
			Stdin:  cmd.InOrStdin(),
			Cipher: cipher,
		})
		if err != nil {
			return err
		}

		data, err := result.Document.MarshalIndent()
		if err != nil {
			return err
		}

		Logger.Infof("Open command completed successfully")
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}
