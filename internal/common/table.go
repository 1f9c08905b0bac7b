package common

import (
	"fmt"
	"io"
	"text/tabwriter"

	"rishvinreddy/smarty-budget/internal/currencyutils"
	"rishvinreddy/smarty-budget/internal/models"
)

// ItemsTable renders one bucket's budget lines with planned, actual and
// remaining amounts in the display currency.
func ItemsTable(out io.Writer, title string, items []models.BudgetItem, currency string) {
	fmt.Fprintf(out, "%s\n", title)
	if len(items) == 0 {
		fmt.Fprintln(out, "  (no items)")
		return
	}
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tPLANNED\tACTUAL\tREMAINING")
	for _, item := range items {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
			item.Name,
			currencyutils.Format(item.Planned, currency),
			currencyutils.Format(item.Actual, currency),
			currencyutils.Format(item.Planned.Sub(item.Actual), currency),
		)
	}
	fmt.Fprintf(w, "  Total\t%s\t%s\t%s\n",
		currencyutils.Format(models.TotalPlanned(items), currency),
		currencyutils.Format(models.TotalActual(items), currency),
		currencyutils.Format(models.TotalPlanned(items).Sub(models.TotalActual(items)), currency),
	)
	if err := w.Flush(); err != nil {
		log.WithError(err).Warn("Failed to flush table output")
	}
}

// TransactionsTable renders a transaction list. resolveName maps category
// ids to display names; the sign prefix marks income entries.
func TransactionsTable(out io.Writer, txs []models.Transaction, resolveName func(string) string, currency string) {
	if len(txs) == 0 {
		fmt.Fprintln(out, "No transactions found for this period.")
		return
	}
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tCATEGORY\tAMOUNT\tLOCATION")
	for _, t := range txs {
		sign := ""
		if t.CategoryType == models.Income {
			sign = "+"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s%s\t%s\n",
			t.ID, t.Date, t.Description, resolveName(t.CategoryID),
			sign, currencyutils.Format(t.Amount, currency), t.Location)
	}
	if err := w.Flush(); err != nil {
		log.WithError(err).Warn("Failed to flush table output")
	}
}
