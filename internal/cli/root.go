package cli

import (
	"github.com/meera/gstbill/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "gstbill",
	Short: "A terminal tool for building GST tax invoices",
	Long: `Gstbill builds GST tax invoices through a three-step wizard:
add items, pick a buyer, review and generate a printable PDF.

By default, running gstbill without arguments launches the interactive wizard.
Use subcommands to manage the item catalog and buyer profiles.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the wizard TUI
		return launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(buyersCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tuiCmd)
}
