// Package advise generates structured AI budgeting suggestions.
package advise

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rishvinreddy/smarty-budget/cmd/root"
	"rishvinreddy/smarty-budget/internal/advisor"
	"rishvinreddy/smarty-budget/internal/aggregator"
)

// Cmd represents the advise command
var Cmd = &cobra.Command{
	Use:   "advise",
	Short: "Get structured AI suggestions for the month's budget",
	Long: `Ask the AI coach for structured feedback on the selected month: what is
going well, where to improve, and concrete tips. Requires a Gemini API key.`,
	Run: adviseFunc,
}

func adviseFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	adv, closer, err := root.NewAdvisor(ctx)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	defer closer()

	year, month := root.SelectedMonth()
	view := aggregator.Aggregate(root.Store.Ledger(), year, month)
	stats := advisor.Summarize(view)

	suggestion, err := adv.Suggestions(ctx, stats)
	if err != nil {
		root.Log.Fatalf("Advice failed: %v", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", suggestion.Title)
	if suggestion.PositiveFeedback != "" {
		fmt.Fprintf(out, "Going well:\n  %s\n\n", suggestion.PositiveFeedback)
	}
	if suggestion.AreasForImprovement != "" {
		fmt.Fprintf(out, "Could improve:\n  %s\n\n", suggestion.AreasForImprovement)
	}
	if len(suggestion.ActionableTips) > 0 {
		fmt.Fprintln(out, "Tips:")
		for i, tip := range suggestion.ActionableTips {
			fmt.Fprintf(out, "  %d. %s\n     %s\n", i+1, tip.Tip, tip.Explanation)
		}
	}
}
