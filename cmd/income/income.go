// Package income renders the month's income hub.
package income

import (
	"fmt"

	"github.com/spf13/cobra"

	"rishvinreddy/smarty-budget/cmd/root"
	"rishvinreddy/smarty-budget/internal/aggregator"
	"rishvinreddy/smarty-budget/internal/common"
	"rishvinreddy/smarty-budget/internal/currencyutils"
	"rishvinreddy/smarty-budget/internal/models"
)

// Cmd represents the income command
var Cmd = &cobra.Command{
	Use:   "income",
	Short: "Show income sources and income received this month",
	Long: `Show the income bucket with actuals recomputed from the selected month's
income transactions, followed by those transactions most recent first.`,
	Run: incomeFunc,
}

func incomeFunc(cmd *cobra.Command, args []string) {
	year, month := root.SelectedMonth()
	view := aggregator.IncomeView(root.Store.Ledger(), year, month)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Income for %s %d\n\n", root.MonthName(month), year)
	fmt.Fprintf(out, "Expected: %s    Received: %s\n\n",
		currencyutils.FormatWhole(models.TotalPlanned(view.Income), view.DisplayCurrency),
		currencyutils.FormatWhole(models.TotalActual(view.Income), view.DisplayCurrency),
	)

	common.ItemsTable(out, "Income Sources", view.Income, view.DisplayCurrency)
	fmt.Fprintln(out)

	if len(view.Transactions) == 0 {
		fmt.Fprintln(out, "No income recorded this month.")
		return
	}
	fmt.Fprintln(out, "Income Received")
	resolve := func(id string) string {
		for _, item := range view.Income {
			if item.ID == id {
				return item.Name
			}
		}
		return "Unknown category"
	}
	common.TransactionsTable(out, view.Transactions, resolve, view.DisplayCurrency)
}
