package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradelog/config"
	"github.com/rustyeddy/tradelog/tracker"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the persisted settings",
	Long: `Settings live in the journal database and override the defaults from
the config file.

Examples:
  tradelog settings show
  tradelog settings set --commission 0.50`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the settings in force",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			printSettings(cmd.OutOrStdout(), a.tracker.Settings())
			return nil
		})
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one or more settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsSet,
}

var (
	settingsForm   tracker.SettingsForm
	settingsFolder string
)

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)

	f := settingsSetCmd.Flags()
	f.StringVar(&settingsForm.Commission, "commission", "", "commission per contract")
	f.StringVar(&settingsForm.TextSize, "text-size", "", "text size")
	f.StringVar(&settingsForm.DarkMode, "dark-mode", "", "true or false")
	f.StringVar(&settingsFolder, "screenshot-folder", "", "folder for trade screenshots")
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	form := settingsForm
	if cmd.Flags().Changed("screenshot-folder") {
		form.ScreenshotFolder = &settingsFolder
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		s, err := a.tracker.UpdateSettings(ctx, form)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Settings saved.")
		printSettings(cmd.OutOrStdout(), s)
		return nil
	})
}

func printSettings(w io.Writer, s config.Settings) {
	fmt.Fprintf(w, "  Commission per contract: %g\n", s.CommissionPerContract)
	fmt.Fprintf(w, "  Text size:               %d\n", s.TextSize)
	fmt.Fprintf(w, "  Dark mode:               %t\n", s.DarkMode)
	fmt.Fprintf(w, "  Screenshot folder:       %s\n", s.ScreenshotFolder)
}
