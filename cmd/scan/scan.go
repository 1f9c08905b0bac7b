// Package scan extracts transaction details from a receipt image with AI.
package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"rishvinreddy/smarty-budget/cmd/root"
	"rishvinreddy/smarty-budget/internal/fileutils"
	"rishvinreddy/smarty-budget/internal/models"
)

var applyScan bool

// Cmd represents the scan command
var Cmd = &cobra.Command{
	Use:   "scan <image-file>",
	Short: "Extract a transaction from a receipt image",
	Long: `Scan a receipt photo (JPEG or PNG) and extract vendor, total, date,
location, line items and a suggested category. With --apply, the extraction
is recorded as a transaction through the normal add path, so it gets a fresh
id and full validation. Requires a Gemini API key.`,
	Args: cobra.ExactArgs(1),
	Run:  scanFunc,
}

func init() {
	Cmd.Flags().BoolVar(&applyScan, "apply", false, "Record the extracted transaction")
}

var mimeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

func scanFunc(cmd *cobra.Command, args []string) {
	imagePath := args[0]
	mime, ok := mimeByExt[strings.ToLower(filepath.Ext(imagePath))]
	if !ok {
		root.Log.Fatalf("Unsupported image type %q; expected .jpg, .png or .webp", filepath.Ext(imagePath))
	}
	image, err := fileutils.ReadFile(imagePath)
	if err != nil {
		root.Log.Fatalf("Could not read %s: %v", imagePath, err)
	}

	ctx := context.Background()
	adv, closer, err := root.NewAdvisor(ctx)
	if err != nil {
		root.Log.Fatalf("%v", err)
	}
	defer closer()

	ledger := root.Store.Ledger()
	scan, err := adv.ScanReceipt(ctx, image, mime, ledger.CategoryNames(), time.Now().Year())
	if err != nil {
		root.Log.Fatalf("Scan failed: %v", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Vendor:   %s\n", scan.Vendor)
	fmt.Fprintf(out, "Total:    %s\n", scan.TotalAmount.StringFixed(2))
	fmt.Fprintf(out, "Date:     %s\n", scan.TransactionDate)
	if scan.Location != "" {
		fmt.Fprintf(out, "Location: %s\n", scan.Location)
	}
	fmt.Fprintf(out, "Category: %s\n", scan.SuggestedCategoryName)
	for _, item := range scan.Items {
		fmt.Fprintf(out, "  - %-30s %s\n", item.Description, item.Amount.StringFixed(2))
	}

	if !applyScan {
		fmt.Fprintln(out, "\nRe-run with --apply to record this transaction.")
		return
	}

	ref, _, ok := ledger.FindItemByName("", scan.SuggestedCategoryName)
	if !ok {
		root.Log.Fatalf("Suggested category %q does not match any budget item; add it first or record the transaction manually", scan.SuggestedCategoryName)
	}
	items := make([]models.TransactionItem, 0, len(scan.Items))
	for _, it := range scan.Items {
		items = append(items, models.TransactionItem{Description: it.Description, Amount: it.Amount})
	}
	tx := root.Store.AddTransaction(scan.TransactionDate, scan.Vendor, scan.TotalAmount, ref, scan.Location, items)
	fmt.Fprintf(out, "\nRecorded %s against %q (%s)\n", tx.Date, scan.SuggestedCategoryName, tx.ID)
}
