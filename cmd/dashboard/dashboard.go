// Package dashboard renders the month-scoped budget dashboard.
package dashboard

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rishvinreddy/smarty-budget/cmd/root"
	"rishvinreddy/smarty-budget/internal/aggregator"
	"rishvinreddy/smarty-budget/internal/alerts"
	"rishvinreddy/smarty-budget/internal/common"
	"rishvinreddy/smarty-budget/internal/currencyutils"
	"rishvinreddy/smarty-budget/internal/models"
)

// Cmd represents the dashboard command
var Cmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the budget dashboard for a month",
	Long: `Show the derived view for the selected month: overview totals, budget
alerts, and every bucket's items with actuals recomputed from the month's
transactions.`,
	Run: dashboardFunc,
}

func dashboardFunc(cmd *cobra.Command, args []string) {
	year, month := root.SelectedMonth()
	ledger := root.Store.Ledger()
	view := aggregator.Aggregate(ledger, year, month)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Budget Dashboard, %s %d\n\n", root.MonthName(month), year)

	printAlerts(out, view)
	printOverview(out, view)

	titles := map[models.CategoryType]string{
		models.Income:   "Income",
		models.Bills:    "Bills",
		models.Expenses: "Expenses",
		models.Savings:  "Savings",
		models.Debt:     "Debt",
	}
	for _, ct := range models.CategoryTypes {
		common.ItemsTable(out, titles[ct], view.Bucket(ct), view.DisplayCurrency)
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Transactions in %s %d\n", root.MonthName(month), year)
	txs := append([]models.Transaction(nil), view.Transactions...)
	aggregator.SortByDateDesc(txs)
	common.TransactionsTable(out, txs, view.ItemName, view.DisplayCurrency)
}

func printAlerts(out io.Writer, view models.DerivedView) {
	found := alerts.Evaluate(view)
	if len(found) == 0 {
		return
	}
	fmt.Fprintln(out, "Budget Alerts")
	for _, a := range found {
		marker := "!"
		if a.Severity == alerts.Danger {
			marker = "!!"
		}
		fmt.Fprintf(out, "  %-2s %s\n", marker, a.Message)
	}
	fmt.Fprintln(out)
}

func printOverview(out io.Writer, view models.DerivedView) {
	fmt.Fprintln(out, "Financial Overview (planned)")
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  Income\tExpenses\tBills\tSavings\tDebt\n")
	fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
		currencyutils.FormatWhole(models.TotalPlanned(view.Income), view.DisplayCurrency),
		currencyutils.FormatWhole(models.TotalPlanned(view.Expenses), view.DisplayCurrency),
		currencyutils.FormatWhole(models.TotalPlanned(view.Bills), view.DisplayCurrency),
		currencyutils.FormatWhole(models.TotalPlanned(view.Savings), view.DisplayCurrency),
		currencyutils.FormatWhole(models.TotalPlanned(view.Debt), view.DisplayCurrency),
	)
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	fmt.Fprintln(out)
}
