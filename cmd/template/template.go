// Package template lists and applies budget plan templates.
package template

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"rishvinreddy/smarty-budget/cmd/root"
	"rishvinreddy/smarty-budget/internal/currencyutils"
	"rishvinreddy/smarty-budget/internal/models"
	"rishvinreddy/smarty-budget/internal/templates"
)

var applyConfirmed bool

// Cmd represents the template command
var Cmd = &cobra.Command{
	Use:   "template",
	Short: "List and apply budget templates",
	Long: `Budget templates are named five-bucket plan skeletons. Built-in templates
can be extended or overridden with a templates.yaml file in the data
directory.`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Run:   listFunc,
}

var applyCmd = &cobra.Command{
	Use:   "apply <name>",
	Short: "Replace all budget items with a template's plan",
	Args:  cobra.ExactArgs(1),
	Run:   applyFunc,
}

func init() {
	applyCmd.Flags().BoolVar(&applyConfirmed, "yes", false, "Skip the confirmation prompt")
	Cmd.AddCommand(listCmd, applyCmd)
}

func templatesPath() string {
	return filepath.Join(root.Cfg.DataDirectory(), "templates.yaml")
}

func listFunc(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	for _, t := range templates.Load(templatesPath()) {
		fmt.Fprintf(out, "%-22s %s\n", t.Name, t.Description)
	}
}

func applyFunc(cmd *cobra.Command, args []string) {
	available := templates.Load(templatesPath())
	tmpl, err := templates.Find(available, args[0])
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	if !applyConfirmed {
		root.Log.Fatalf("Applying %q replaces all budget items (transactions are kept); re-run with --yes to confirm", tmpl.Name)
	}

	ledger := root.Store.Ledger()
	next := models.ApplyPlan(ledger, tmpl.Plan())
	root.Store.ReplaceAll(next)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Applied template %q\n", tmpl.Name)
	for _, ct := range models.CategoryTypes {
		items := next.Bucket(ct)
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(out, "  %-9s %d item(s), planned %s\n", ct,
			len(items), currencyutils.FormatWhole(models.TotalPlanned(items), next.DisplayCurrency))
	}
}
