package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meera/gstbill/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(config.DefaultConfigPath())
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the current configuration to disk for editing",
	Long: `Write the current configuration to disk for editing.

If no config file exists yet, this writes the defaults so the seller
profile, bank details, and invoice settings can be filled in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultConfigPath()
		if _, err := os.Stat(path); err == nil {
			if !confirmPrompt(fmt.Sprintf("%s already exists. Overwrite?", path)) {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := appInstance.SaveConfig(); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}
