// Package settings manages display currency and ledger reset.
package settings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"rishvinreddy/smarty-budget/cmd/root"
	"rishvinreddy/smarty-budget/internal/currencyutils"
)

// Cmd represents the settings command
var Cmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change application settings",
	Run:   showFunc,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Run:   showFunc,
}

var currencyCmd = &cobra.Command{
	Use:   "currency <code>",
	Short: "Set the display currency",
	Long: `Set the display currency. Stored amounts are kept in USD and converted at
display time, so switching back and forth never drifts the data.`,
	Args: cobra.ExactArgs(1),
	Run:  currencyFunc,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the ledger to the default sample budget",
	Run:   resetFunc,
}

var resetConfirmed bool

func init() {
	resetCmd.Flags().BoolVar(&resetConfirmed, "yes", false, "Skip the confirmation prompt")
	Cmd.AddCommand(showCmd, currencyCmd, resetCmd)
}

func showFunc(cmd *cobra.Command, args []string) {
	ledger := root.Store.Ledger()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Ledger file:      %s\n", root.Store.Path())
	fmt.Fprintf(out, "Display currency: %s (%s)\n", ledger.DisplayCurrency, currencyutils.Symbol(ledger.DisplayCurrency))
	fmt.Fprintf(out, "Default period:   %s to %s\n", ledger.Period.Start, ledger.Period.End)

	codes := make([]string, 0, len(currencyutils.Currencies))
	for code := range currencyutils.Currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	fmt.Fprintf(out, "Supported currencies: %s\n", strings.Join(codes, ", "))
}

func currencyFunc(cmd *cobra.Command, args []string) {
	code := strings.ToUpper(args[0])
	if !currencyutils.IsSupported(code) {
		root.Log.Fatalf("Unsupported currency %q", code)
	}
	root.Store.SetDisplayCurrency(code)
	fmt.Fprintf(cmd.OutOrStdout(), "Display currency set to %s\n", code)
}

func resetFunc(cmd *cobra.Command, args []string) {
	if !resetConfirmed {
		root.Log.Fatal("Reset replaces all items and transactions with the sample budget; re-run with --yes to confirm")
	}
	root.Store.ResetToDefault()
	fmt.Fprintln(cmd.OutOrStdout(), "Ledger reset to the default sample budget")
}
