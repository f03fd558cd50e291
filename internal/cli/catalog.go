package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/meera/gstbill/internal/domain"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the item catalog",
	Long:  `Add, list, and remove the inventory records the wizard picks items from.`,
}

var catalogAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add an item to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		rate, _ := cmd.Flags().GetFloat64("rate")
		hsn, _ := cmd.Flags().GetString("hsn")
		unit, _ := cmd.Flags().GetString("unit")

		record := domain.NewInventoryRecord(args[0], rate)
		record.HSN = hsn
		record.Unit = unit

		if err := appInstance.CatalogRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("failed to add catalog item: %w", err)
		}

		fmt.Printf("Added catalog item #%d: %s @ %.2f\n", record.ID, record.Name, record.Rate)
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var (
			records []*domain.InventoryRecord
			err     error
		)
		if search, _ := cmd.Flags().GetString("search"); search != "" {
			records, err = appInstance.CatalogRepo.Search(ctx, search)
		} else {
			records, err = appInstance.CatalogRepo.List(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to list catalog items: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No catalog items found")
			return nil
		}

		fmt.Printf("%-5s %-32s %10s %-10s %-8s\n", "ID", "Name", "Rate", "HSN", "Unit")
		fmt.Println("----------------------------------------------------------------------")
		for _, r := range records {
			fmt.Printf("%-5d %-32s %10.2f %-10s %-8s\n",
				r.ID, truncate(r.Name, 32), r.Rate, r.HSN, r.Unit)
		}

		fmt.Printf("\nTotal: %d item(s)\n", len(records))
		return nil
	},
}

var catalogRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a catalog item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid item ID: %w", err)
		}

		if err := appInstance.CatalogRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to remove catalog item: %w", err)
		}

		fmt.Printf("Removed catalog item #%d\n", id)
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogRemoveCmd)

	catalogAddCmd.Flags().Float64("rate", 0, "Unit price (required)")
	catalogAddCmd.Flags().String("hsn", "", "HSN/SAC tax classification code")
	catalogAddCmd.Flags().String("unit", "", "Unit of measure (e.g. Nos, Kg)")
	catalogAddCmd.MarkFlagRequired("rate")

	catalogListCmd.Flags().String("search", "", "Filter by name or HSN")
}

// truncate shortens a string for table display
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
