package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"rishvinreddy/smarty-budget/cmd/advise"
	"rishvinreddy/smarty-budget/cmd/backup"
	"rishvinreddy/smarty-budget/cmd/dashboard"
	"rishvinreddy/smarty-budget/cmd/income"
	"rishvinreddy/smarty-budget/cmd/item"
	"rishvinreddy/smarty-budget/cmd/plan"
	"rishvinreddy/smarty-budget/cmd/root"
	"rishvinreddy/smarty-budget/cmd/scan"
	"rishvinreddy/smarty-budget/cmd/settings"
	"rishvinreddy/smarty-budget/cmd/summary"
	"rishvinreddy/smarty-budget/cmd/template"
	"rishvinreddy/smarty-budget/cmd/transactions"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables before anything logs
	loadEnvSilently()

	// Set the global log level so every logger created later inherits it
	configureLogLevelDirectly()

	root.Init()

	root.Cmd.AddCommand(dashboard.Cmd)
	root.Cmd.AddCommand(income.Cmd)
	root.Cmd.AddCommand(transactions.Cmd)
	root.Cmd.AddCommand(item.Cmd)
	root.Cmd.AddCommand(settings.Cmd)
	root.Cmd.AddCommand(backup.Cmd)
	root.Cmd.AddCommand(template.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(advise.Cmd)
	root.Cmd.AddCommand(scan.Cmd)
	root.Cmd.AddCommand(plan.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
