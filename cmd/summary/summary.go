// Package summary generates the AI narrative summary of a month.
package summary

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rishvinreddy/smarty-budget/cmd/root"
	"rishvinreddy/smarty-budget/internal/advisor"
	"rishvinreddy/smarty-budget/internal/aggregator"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Generate an AI summary of the month's finances",
	Long: `Summarize the selected month in two or three encouraging sentences, based
on the derived actuals. Requires a Gemini API key.`,
	Run: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	adv, closer, err := root.NewAdvisor(ctx)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	defer closer()

	year, month := root.SelectedMonth()
	view := aggregator.Aggregate(root.Store.Ledger(), year, month)
	stats := advisor.Summarize(view)

	root.Log.WithField("month", fmt.Sprintf("%d-%02d", year, month)).Info("Requesting budget summary")
	text, err := adv.NarrativeSummary(ctx, stats)
	if err != nil {
		root.Log.Fatalf("Summary failed: %v", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
}
