package cmd

import (
	"github.com/PolarWolf314/jpas/internal/configs"
	"github.com/PolarWolf314/jpas/internal/workflows"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save [FILE]",
	Short: "Save password entry, requires the result of open in stdin",
	Long: `Reads an opened entry from stdin, encrypts its "secrets" field and writes
it to FILE, or to the file named by the entry's "$file" when FILE is omitted.
The "$file" annotation itself is never written to disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting save command")

		file, err := fileArg(args)
		if err != nil {
			return err
		}

		logIgnoredRecipients()

		cipher, err := newCipher()
		if err != nil {
			return err
		}

		warnIfTerminal(cmd.InOrStdin())

		result, err := workflows.Save(cmd.Context(), workflows.SaveOptions{
			File:   file,
			Stdin:  cmd.InOrStdin(),
			Cipher: cipher,
		})
		if err != nil {
			return err
		}

		Logger.Infof("Saved entry to %s", result.File)
		return nil
	},
}

// logIgnoredRecipients notes a configured save_other_gpg_recipients list, which
// save does not act on.
func logIgnoredRecipients() {
	projectConfig, err := configs.LoadProjectConfig(".")
	if err != nil {
		Logger.Debugf("Ignoring unreadable %s: %v", configs.ProjectConfigName, err)
		return
	}
	if projectConfig == nil || projectConfig.SaveOtherGPGRecipients == nil {
		return
	}
	Logger.Debugf("save_other_gpg_recipients lists %d recipients; entries are encrypted to the default key only",
		len(*projectConfig.SaveOtherGPGRecipients))
}
