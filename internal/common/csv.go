// Package common provides shared output helpers used by multiple commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"rishvinreddy/smarty-budget/internal/models"
)

var log = logrus.New()

// Global CSV delimiter - configurable via the csv.delimiter setting
var Delimiter rune = ','

// SetDelimiter allows setting the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// transactionRow is the flat CSV projection of a transaction. Amounts stay
// in the base unit; CSV export is a data export, not a presentation surface.
type transactionRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Category    string `csv:"Category"`
	Bucket      string `csv:"Bucket"`
	Amount      string `csv:"Amount"`
	Location    string `csv:"Location"`
}

// WriteTransactionsCSV writes a transaction list to a CSV file. resolveName
// maps a category id to a display name; dangling references come out under
// the fallback label the views use.
func WriteTransactionsCSV(transactions []models.Transaction, resolveName func(string) string, csvFile string) error {
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]transactionRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, transactionRow{
			Date:        t.Date,
			Description: t.Description,
			Category:    resolveName(t.CategoryID),
			Bucket:      string(t.CategoryType),
			Amount:      t.Amount.StringFixed(2),
			Location:    t.Location,
		})
	}

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := csv.NewWriter(out)
		writer.Comma = Delimiter
		return gocsv.NewSafeCSVWriter(writer)
	})

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("error writing CSV file: %w", err)
	}

	log.WithField("file", csvFile).Info("Successfully wrote CSV file")
	return nil
}
