package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/meera/gstbill/internal/domain"
	"github.com/spf13/cobra"
)

var buyersCmd = &cobra.Command{
	Use:   "buyers",
	Short: "Manage buyer profiles",
	Long:  `Add, list, and update the buyer profiles the wizard bills against.`,
}

var buyersAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a buyer profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		buyer := domain.NewBuyer(args[0])
		if address, _ := cmd.Flags().GetString("address"); address != "" {
			buyer.AddressLines = strings.Split(address, ";")
		}
		buyer.GSTIN, _ = cmd.Flags().GetString("gstin")
		buyer.PAN, _ = cmd.Flags().GetString("pan")
		buyer.State, _ = cmd.Flags().GetString("state")
		buyer.StateCode, _ = cmd.Flags().GetString("state-code")
		buyer.PlaceOfSupply, _ = cmd.Flags().GetString("place-of-supply")

		if err := appInstance.BuyerRepo.Create(ctx, buyer); err != nil {
			return fmt.Errorf("failed to add buyer: %w", err)
		}

		fmt.Printf("Added buyer #%d: %s\n", buyer.ID, buyer.Name)
		return nil
	},
}

var buyersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List buyer profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		buyers, err := appInstance.BuyerRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list buyers: %w", err)
		}

		if len(buyers) == 0 {
			fmt.Println("No buyers found")
			return nil
		}

		fmt.Printf("%-5s %-28s %-16s %-16s %12s\n", "ID", "Name", "GSTIN", "State", "Balance")
		fmt.Println("--------------------------------------------------------------------------------")
		for _, b := range buyers {
			fmt.Printf("%-5d %-28s %-16s %-16s %12.2f\n",
				b.ID, truncate(b.Name, 28), b.GSTIN, truncate(b.State, 16), b.Balance)
		}

		fmt.Printf("\nTotal: %d buyer(s)\n", len(buyers))
		return nil
	},
}

var buyersSetBalanceCmd = &cobra.Command{
	Use:   "set-balance [id] [amount]",
	Short: "Set a buyer's outstanding balance",
	Long: `Set the outstanding balance carried into the next invoice's
running-balance line, e.g. after reconciling a payment.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid buyer ID: %w", err)
		}

		balance, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid balance: %w", err)
		}

		if err := appInstance.BuyerRepo.SetBalance(ctx, id, balance); err != nil {
			return fmt.Errorf("failed to set balance: %w", err)
		}

		fmt.Printf("Buyer #%d balance set to %.2f\n", id, balance)
		return nil
	},
}

var buyersRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a buyer profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid buyer ID: %w", err)
		}

		if err := appInstance.BuyerRepo.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to remove buyer: %w", err)
		}

		fmt.Printf("Removed buyer #%d\n", id)
		return nil
	},
}

func init() {
	buyersCmd.AddCommand(buyersAddCmd)
	buyersCmd.AddCommand(buyersListCmd)
	buyersCmd.AddCommand(buyersSetBalanceCmd)
	buyersCmd.AddCommand(buyersRemoveCmd)

	buyersAddCmd.Flags().String("address", "", "Address lines separated by ';'")
	buyersAddCmd.Flags().String("gstin", "", "GSTIN/UIN")
	buyersAddCmd.Flags().String("pan", "", "PAN")
	buyersAddCmd.Flags().String("state", "", "State name")
	buyersAddCmd.Flags().String("state-code", "", "State code")
	buyersAddCmd.Flags().String("place-of-supply", "", "Place of supply")
}
