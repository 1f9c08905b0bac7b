// Package transactions implements listing, recording, removing and exporting
// ledger transactions.
package transactions

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"rishvinreddy/smarty-budget/cmd/root"
	"rishvinreddy/smarty-budget/internal/aggregator"
	"rishvinreddy/smarty-budget/internal/budgeterror"
	"rishvinreddy/smarty-budget/internal/common"
	"rishvinreddy/smarty-budget/internal/dateutils"
	"rishvinreddy/smarty-budget/internal/models"
)

var (
	searchQuery  string
	bucketName   string
	categoryName string
	fromDate     string
	toDate       string

	addDate        string
	addDescription string
	addAmount      string
	addLocation    string

	exportFile string
)

// Cmd represents the transactions command
var Cmd = &cobra.Command{
	Use:   "transactions",
	Short: "List, add, remove and export transactions",
	Run: func(cmd *cobra.Command, args []string) {
		listFunc(cmd, args)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, optionally filtered",
	Long: `List all transactions most recent first. Filters combine with AND:
--search matches description or location case-insensitively, --bucket and
--category narrow to one budget item, --from and --to bound the date range
inclusively.`,
	Run: listFunc,
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new transaction",
	Run:   addFunc,
}

var removeCmd = &cobra.Command{
	Use:   "remove <transaction-id>",
	Short: "Remove a transaction by id",
	Args:  cobra.ExactArgs(1),
	Run:   removeFunc,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions to a CSV file",
	Run:   exportFunc,
}

func init() {
	for _, c := range []*cobra.Command{listCmd, exportCmd} {
		c.Flags().StringVarP(&searchQuery, "search", "s", "", "Match description or location")
		c.Flags().StringVarP(&bucketName, "bucket", "b", "", "Restrict to one bucket (income, bills, expenses, savings, debt)")
		c.Flags().StringVarP(&categoryName, "category", "c", "", "Restrict to one budget item by name")
		c.Flags().StringVar(&fromDate, "from", "", "Earliest date to include (YYYY-MM-DD)")
		c.Flags().StringVar(&toDate, "to", "", "Latest date to include (YYYY-MM-DD)")
	}

	addCmd.Flags().StringVarP(&addDate, "date", "d", "", "Transaction date (YYYY-MM-DD, default: today)")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Transaction description")
	addCmd.Flags().StringVarP(&addAmount, "amount", "a", "", "Transaction amount")
	addCmd.Flags().StringVarP(&bucketName, "bucket", "b", "", "Bucket of the budget item")
	addCmd.Flags().StringVarP(&categoryName, "category", "c", "", "Budget item name the transaction counts against")
	addCmd.Flags().StringVarP(&addLocation, "location", "l", "", "Where the transaction happened")
	if err := addCmd.MarkFlagRequired("description"); err != nil {
		panic(err)
	}
	if err := addCmd.MarkFlagRequired("amount"); err != nil {
		panic(err)
	}
	if err := addCmd.MarkFlagRequired("category"); err != nil {
		panic(err)
	}

	exportCmd.Flags().StringVarP(&exportFile, "output", "o", "transactions.csv", "Output CSV file")

	Cmd.AddCommand(listCmd, addCmd, removeCmd, exportCmd)
}

func buildFilter(ledger models.Ledger) (aggregator.Filter, error) {
	filter := aggregator.Filter{Search: searchQuery, From: fromDate, To: toDate}
	if categoryName != "" {
		var bucket models.CategoryType
		if bucketName != "" {
			ct, ok := models.ParseCategoryType(bucketName)
			if !ok {
				return filter, &budgeterror.InputError{Field: "bucket", Reason: fmt.Sprintf("unknown bucket %q", bucketName)}
			}
			bucket = ct
		}
		ref, _, ok := ledger.FindItemByName(bucket, categoryName)
		if !ok {
			return filter, &budgeterror.InputError{Field: "category", Reason: fmt.Sprintf("no budget item named %q", categoryName)}
		}
		filter.Category = ref
	}
	return filter, nil
}

func listFunc(cmd *cobra.Command, args []string) {
	ledger := root.Store.Ledger()
	filter, err := buildFilter(ledger)
	if err != nil {
		root.Log.Fatalf("Invalid filter: %v", err)
	}
	txs := filter.Apply(ledger.Transactions)
	out := cmd.OutOrStdout()
	if len(txs) == 0 {
		fmt.Fprintln(out, "No transactions match.")
		return
	}
	resolve := resolveNameFunc(ledger)
	common.TransactionsTable(out, txs, resolve, ledger.DisplayCurrency)
	fmt.Fprintf(out, "\n%d transaction(s)\n", len(txs))
}

func addFunc(cmd *cobra.Command, args []string) {
	date := addDate
	if date == "" {
		date = dateutils.FormatDay(time.Now())
	}
	if _, err := dateutils.ParseDay(date); err != nil {
		root.Log.Fatalf("Invalid date %q: %v", date, err)
	}

	amount, err := decimal.NewFromString(addAmount)
	if err != nil {
		root.Log.Fatalf("Invalid amount %q: %v", addAmount, err)
	}
	if amount.IsNegative() {
		root.Log.Fatal("Amount must not be negative")
	}

	ledger := root.Store.Ledger()
	var bucket models.CategoryType
	if bucketName != "" {
		ct, ok := models.ParseCategoryType(bucketName)
		if !ok {
			root.Log.Fatalf("Unknown bucket %q", bucketName)
		}
		bucket = ct
	}
	ref, item, ok := ledger.FindItemByName(bucket, categoryName)
	if !ok {
		root.Log.Fatalf("No budget item named %q", categoryName)
	}

	tx := root.Store.AddTransaction(date, addDescription, amount, ref, addLocation, nil)
	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s against %q (%s)\n", tx.Date, item.Name, tx.ID)
}

func removeFunc(cmd *cobra.Command, args []string) {
	id := args[0]
	ledger := root.Store.Ledger()
	found := false
	for _, t := range ledger.Transactions {
		if t.ID == id {
			found = true
			break
		}
	}
	if !found {
		root.Log.Fatalf("No transaction with id %q", id)
	}
	root.Store.RemoveTransaction(id)
	fmt.Fprintf(cmd.OutOrStdout(), "Removed transaction %s\n", id)
}

func exportFunc(cmd *cobra.Command, args []string) {
	ledger := root.Store.Ledger()
	filter, err := buildFilter(ledger)
	if err != nil {
		root.Log.Fatalf("Invalid filter: %v", err)
	}
	txs := filter.Apply(ledger.Transactions)
	if err := common.WriteTransactionsCSV(txs, resolveNameFunc(ledger), exportFile); err != nil {
		root.Log.Fatalf("Export failed: %v", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transaction(s) to %s\n", len(txs), exportFile)
}

func resolveNameFunc(ledger models.Ledger) func(string) string {
	return func(id string) string {
		for _, ct := range models.CategoryTypes {
			for _, item := range ledger.Bucket(ct) {
				if item.ID == id {
					return item.Name
				}
			}
		}
		return "Unknown category"
	}
}
