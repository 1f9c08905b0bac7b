// Package item manages budget items inside the five buckets.
package item

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"rishvinreddy/smarty-budget/cmd/root"
	"rishvinreddy/smarty-budget/internal/models"
)

var (
	itemName      string
	plannedAmount string
	threshold     int
)

// Cmd represents the item command
var Cmd = &cobra.Command{
	Use:   "item",
	Short: "Add, update and remove budget items",
}

var addCmd = &cobra.Command{
	Use:   "add <bucket>",
	Short: "Add a budget item to a bucket",
	Long: `Add a budget item to one of the five buckets (income, bills, expenses,
savings, debt). New items start with a zero actual; actuals only ever come
from transactions.`,
	Args: cobra.ExactArgs(1),
	Run:  addFunc,
}

var updateCmd = &cobra.Command{
	Use:   "update <bucket> <name>",
	Short: "Update a budget item's name, planned amount or alert threshold",
	Args:  cobra.ExactArgs(2),
	Run:   updateFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <bucket> <name>",
	Short: "Remove a budget item from a bucket",
	Long: `Remove a budget item. Transactions that referenced it are kept; they show
up as unknown-category until re-pointed or removed.`,
	Args: cobra.ExactArgs(2),
	Run:  removeFunc,
}

func init() {
	addCmd.Flags().StringVarP(&itemName, "name", "n", "", "Item name")
	addCmd.Flags().StringVarP(&plannedAmount, "planned", "p", "0", "Planned amount")
	if err := addCmd.MarkFlagRequired("name"); err != nil {
		panic(err)
	}

	updateCmd.Flags().StringVarP(&itemName, "name", "n", "", "New item name")
	updateCmd.Flags().StringVarP(&plannedAmount, "planned", "p", "", "New planned amount")
	updateCmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "Alert threshold percentage (1-100)")

	Cmd.AddCommand(addCmd, updateCmd, removeCmd)
}

func parseBucket(arg string) models.CategoryType {
	ct, ok := models.ParseCategoryType(arg)
	if !ok {
		root.Log.Fatalf("Unknown bucket %q; expected one of income, bills, expenses, savings, debt", arg)
	}
	return ct
}

func parsePlanned(arg string) decimal.Decimal {
	planned, err := decimal.NewFromString(arg)
	if err != nil {
		root.Log.Fatalf("Invalid planned amount %q: %v", arg, err)
	}
	if planned.IsNegative() {
		root.Log.Fatal("Planned amount must not be negative")
	}
	return planned
}

func addFunc(cmd *cobra.Command, args []string) {
	bucket := parseBucket(args[0])
	if itemName == "" {
		root.Log.Fatal("Item name must not be empty")
	}
	planned := parsePlanned(plannedAmount)

	item := root.Store.AddItem(bucket, itemName, planned)
	fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s (%s)\n", item.Name, bucket, item.ID)
}

func updateFunc(cmd *cobra.Command, args []string) {
	bucket := parseBucket(args[0])
	ref, item, ok := root.Store.Ledger().FindItemByName(bucket, args[1])
	if !ok {
		root.Log.Fatalf("No item named %q in %s", args[1], bucket)
	}

	if itemName != "" {
		item.Name = itemName
	}
	if plannedAmount != "" {
		item.Planned = parsePlanned(plannedAmount)
	}
	if threshold != 0 {
		if threshold < 1 || threshold > 100 {
			root.Log.Fatalf("Threshold must be between 1 and 100, got %d", threshold)
		}
		item.AlertThreshold = threshold
	}

	root.Store.UpdateItem(ref.Bucket, item)
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %q in %s\n", item.Name, bucket)
}

func removeFunc(cmd *cobra.Command, args []string) {
	bucket := parseBucket(args[0])
	ref, item, ok := root.Store.Ledger().FindItemByName(bucket, args[1])
	if !ok {
		root.Log.Fatalf("No item named %q in %s", args[1], bucket)
	}
	root.Store.RemoveItem(ref.Bucket, ref.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from %s\n", item.Name, bucket)
}
