// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rishvinreddy/smarty-budget/internal/advisor"
	"rishvinreddy/smarty-budget/internal/common"
	"rishvinreddy/smarty-budget/internal/config"
	"rishvinreddy/smarty-budget/internal/dateutils"
	"rishvinreddy/smarty-budget/internal/fileutils"
	"rishvinreddy/smarty-budget/internal/store"
	"rishvinreddy/smarty-budget/internal/templates"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Store is the opened ledger store shared by all commands
	Store *store.LedgerStore

	// Month and Year select the viewing month for derived views. Zero means
	// "use the ledger's default period".
	Month int
	Year  int

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "smarty-budget",
		Short: "A personal budgeting dashboard in your terminal.",
		Long: `smarty-budget tracks planned vs. actual amounts across five budget buckets
(income, bills, expenses, savings, debt), logs dated transactions against
them, and derives month-scoped summaries, alerts and AI-powered advice.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to smarty-budget!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Hand the configured logger to the packages that log
			store.SetLogger(Log)
			fileutils.SetLogger(Log)
			common.SetLogger(Log)
			templates.SetLogger(Log)

			if delim := cfg.CSV.Delimiter; delim != "" {
				common.SetDelimiter([]rune(delim)[0])
			}

			Store = store.Open(cfg.LedgerPath())
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().IntVarP(&Month, "month", "m", 0, "Viewing month 1-12 (default: ledger period)")
	Cmd.PersistentFlags().IntVarP(&Year, "year", "y", 0, "Viewing year (default: ledger period)")
}

// SelectedMonth resolves the viewing month from the flags, falling back to
// the ledger's stored default period, and finally to the current month.
func SelectedMonth() (int, int) {
	year, month := Year, Month
	if month < 0 || month > 12 {
		Log.Fatalf("Invalid month %d; expected 1-12", month)
	}
	if year == 0 || month == 0 {
		start, err := dateutils.ParseDay(Store.Ledger().Period.Start)
		if err != nil {
			now := time.Now()
			start = now
		}
		if year == 0 {
			year = start.Year()
		}
		if month == 0 {
			month = int(start.Month())
		}
	}
	return year, month
}

// NewAdvisor builds the Gemini-backed advisor from configuration. The
// returned closer releases the client and must be called when the command
// finishes.
func NewAdvisor(ctx context.Context) (*advisor.Advisor, func(), error) {
	gen, err := advisor.NewGeminiGenerator(ctx, Cfg.AI.APIKey, Cfg.AI.Model, Log)
	if err != nil {
		return nil, nil, fmt.Errorf("could not initialize AI advisor: %w", err)
	}
	closer := func() {
		if err := gen.Close(); err != nil {
			Log.WithError(err).Warn("Failed to close Gemini client")
		}
	}
	a := advisor.New(gen, time.Duration(Cfg.AI.TimeoutSeconds)*time.Second, Log)
	return a, closer, nil
}

// MonthName returns the English month name for a 1-12 month number.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}
