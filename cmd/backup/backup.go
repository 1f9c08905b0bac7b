// Package backup implements full-ledger export and import.
package backup

import (
	"fmt"

	"github.com/spf13/cobra"

	"rishvinreddy/smarty-budget/cmd/root"
	"rishvinreddy/smarty-budget/internal/fileutils"
	"rishvinreddy/smarty-budget/internal/store"
)

// Cmd represents the backup command
var Cmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and import the whole ledger as JSON",
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the whole ledger to a JSON file",
	Args:  cobra.ExactArgs(1),
	Run:   exportFunc,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the whole ledger from a JSON file",
	Long: `Replace the whole ledger with the contents of a previously exported JSON
file. The file is validated in full before anything is touched; a bad file
leaves the current ledger exactly as it was.`,
	Args: cobra.ExactArgs(1),
	Run:  importFunc,
}

func init() {
	Cmd.AddCommand(exportCmd, importCmd)
}

func exportFunc(cmd *cobra.Command, args []string) {
	data, err := store.ExportDocument(root.Store.Ledger())
	if err != nil {
		root.Log.Fatalf("Export failed: %v", err)
	}
	if err := fileutils.WriteFile(args[0], data); err != nil {
		root.Log.Fatalf("Could not write %s: %v", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Ledger exported to %s\n", args[0])
}

func importFunc(cmd *cobra.Command, args []string) {
	data, err := fileutils.ReadFile(args[0])
	if err != nil {
		root.Log.Fatalf("Could not read %s: %v", args[0], err)
	}
	ledger, err := store.ParseDocument(data)
	if err != nil {
		root.Log.Fatalf("Import rejected, ledger unchanged: %v", err)
	}
	root.Store.ReplaceAll(ledger)
	fmt.Fprintf(cmd.OutOrStdout(), "Ledger replaced from %s (%d transactions)\n", args[0], len(ledger.Transactions))
}
