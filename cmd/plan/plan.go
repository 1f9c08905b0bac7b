// Package plan generates a five-bucket budget plan from a description.
package plan

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rishvinreddy/smarty-budget/cmd/root"
	"rishvinreddy/smarty-budget/internal/currencyutils"
	"rishvinreddy/smarty-budget/internal/models"
)

var applyPlan bool

var bucketTitles = map[models.CategoryType]string{
	models.Income:   "Income",
	models.Bills:    "Bills",
	models.Expenses: "Expenses",
	models.Savings:  "Savings",
	models.Debt:     "Debt",
}

// Cmd represents the plan command
var Cmd = &cobra.Command{
	Use:   "plan <description>",
	Short: "Generate a budget plan from a free-text description",
	Long: `Describe your financial situation in plain words and get back a full
five-bucket plan. With --apply, the plan replaces all budget items through
the normal item construction path (fresh ids, zero actuals); transactions
are kept. Requires a Gemini API key.`,
	Args: cobra.MinimumNArgs(1),
	Run:  planFunc,
}

func init() {
	Cmd.Flags().BoolVar(&applyPlan, "apply", false, "Replace all budget items with the generated plan")
}

func planFunc(cmd *cobra.Command, args []string) {
	description := strings.Join(args, " ")

	ctx := context.Background()
	adv, closer, err := root.NewAdvisor(ctx)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	defer closer()

	ledger := root.Store.Ledger()
	generated, err := adv.GeneratePlan(ctx, description, ledger.DisplayCurrency)
	if err != nil {
		root.Log.Fatalf("Plan generation failed: %v", err)
	}

	out := cmd.OutOrStdout()
	planLines := generated.Plan()
	for _, ct := range models.CategoryTypes {
		lines := planLines[ct]
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s\n", bucketTitles[ct])
		for _, line := range lines {
			fmt.Fprintf(out, "  %-30s %s\n", line.Name, currencyutils.FormatWhole(line.Planned, ledger.DisplayCurrency))
		}
	}

	if !applyPlan {
		fmt.Fprintln(out, "\nRe-run with --apply to replace your budget items with this plan.")
		return
	}

	next := models.ApplyPlan(ledger, planLines)
	root.Store.ReplaceAll(next)
	fmt.Fprintln(out, "\nPlan applied. Transactions were kept.")
}
