package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset data in the database",
	Long: `Reset data in the database.

Examples:
  gstbill reset catalog    # Delete all catalog items
  gstbill reset buyers     # Delete all buyer profiles
  gstbill reset all        # Wipe everything, including the invoice number sequence`,
}

var resetCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Delete all catalog items",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will delete ALL catalog items. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if _, err := appInstance.DB.Exec("DELETE FROM catalog_items"); err != nil {
			return fmt.Errorf("failed to clear catalog_items: %w", err)
		}

		fmt.Println("All catalog items have been deleted.")
		return nil
	},
}

var resetBuyersCmd = &cobra.Command{
	Use:   "buyers",
	Short: "Delete all buyer profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will delete ALL buyer profiles. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if _, err := appInstance.DB.Exec("DELETE FROM buyers"); err != nil {
			return fmt.Errorf("failed to clear buyers: %w", err)
		}

		fmt.Println("All buyer profiles have been deleted.")
		return nil
	},
}

var resetAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Delete ALL data: catalog, buyers, and the invoice number sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will delete ALL data (catalog, buyers, invoice sequence). Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		db := appInstance.DB

		tables := []string{
			"catalog_items",
			"buyers",
			"invoice_sequence",
		}

		for _, table := range tables {
			if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		fmt.Println("All data has been deleted.")
		return nil
	},
}

func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func init() {
	resetCmd.AddCommand(resetCatalogCmd)
	resetCmd.AddCommand(resetBuyersCmd)
	resetCmd.AddCommand(resetAllCmd)
}
