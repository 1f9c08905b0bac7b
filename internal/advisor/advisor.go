// Package advisor wraps the Gemini generative-AI service behind the four
// advisory features: narrative summaries, budget coaching, receipt-data
// extraction and full plan generation. The advisor only ever sends
// pre-aggregated statistics or a receipt image plus category names; every
// response is parsed and validated as untrusted input, and nothing here
// mutates the ledger.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"

	"rishvinreddy/smarty-budget/internal/budgeterror"
)

// Request describes one generation call.
type Request struct {
	System    string
	Prompt    string
	Image     []byte
	ImageMIME string
	// Schema, when set, constrains the response to application/json with
	// this shape.
	Schema *genai.Schema
}

// Generator abstracts the model call so the feature logic can be tested
// without the external service.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

const coachSystemPrompt = "You are 'Smarty', a witty, modern, and encouraging financial coach. " +
	"Your goal is to provide actionable, insightful, and positive financial advice. " +
	"Always find something to praise before offering constructive criticism."

// Advisor runs the advisory features against a Generator. Every call is
// bounded by the configured timeout; a slow or failed call surfaces as a
// recoverable error at the call site.
type Advisor struct {
	gen     Generator
	timeout time.Duration
	log     *logrus.Logger
}

// New creates an Advisor with the given generator and per-call timeout.
func New(gen Generator, timeout time.Duration, logger *logrus.Logger) *Advisor {
	if logger == nil {
		logger = logrus.New()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Advisor{gen: gen, timeout: timeout, log: logger}
}

// NarrativeSummary produces a 1-2 sentence narrative of the month's
// performance from pre-aggregated statistics.
func (a *Advisor) NarrativeSummary(ctx context.Context, stats BudgetStats) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := "Based on the following data, provide a very short, 1-2 sentence narrative summary " +
		"of the user's financial performance this month. Be encouraging but realistic. " +
		"Here's the data: " + stats.promptLine()

	a.log.WithField("feature", "summary").Debug("Requesting narrative summary")
	text, err := a.gen.Generate(ctx, Request{Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("narrative summary request failed: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &budgeterror.ResponseError{Feature: "summary", Reason: "empty response"}
	}
	return text, nil
}

// Suggestions produces structured coaching feedback for the month.
func (a *Advisor) Suggestions(ctx context.Context, stats BudgetStats) (Suggestion, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	prompt := fmt.Sprintf("Analyze this budget summary and provide feedback. Currency is %s. "+
		"Income: %s, Expenses: %s, Savings: %s, Savings Rate: %s, Top Expenses: %s.",
		stats.Currency, stats.TotalIncome, stats.TotalExpenses, stats.TotalSavings,
		stats.SavingsRate, stats.TopExpenses)

	a.log.WithField("feature", "advise").Debug("Requesting suggestions")
	text, err := a.gen.Generate(ctx, Request{
		System: coachSystemPrompt,
		Prompt: prompt,
		Schema: suggestionSchema(),
	})
	if err != nil {
		return Suggestion{}, fmt.Errorf("suggestions request failed: %w", err)
	}

	var suggestion Suggestion
	if err := json.Unmarshal([]byte(text), &suggestion); err != nil {
		return Suggestion{}, &budgeterror.ResponseError{Feature: "advise", Reason: "response is not valid JSON", Err: err}
	}
	if err := suggestion.Validate(); err != nil {
		return Suggestion{}, err
	}
	return suggestion, nil
}

// ScanReceipt extracts transaction data from a receipt image. categoryNames
// is the list of existing budget line names the model may suggest from;
// currentYear anchors receipts that omit the year.
func (a *Advisor) ScanReceipt(ctx context.Context, image []byte, imageMIME string, categoryNames []string, currentYear int) (ReceiptScan, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	names, err := json.Marshal(categoryNames)
	if err != nil {
		return ReceiptScan{}, fmt.Errorf("could not encode category names: %w", err)
	}

	prompt := fmt.Sprintf("Analyze the receipt in the image. Extract the vendor name, total amount, "+
		"transaction date, and the full street address of the vendor if available. Also extract an "+
		"itemized list of products and their prices. Finally, suggest the most relevant overall "+
		"category for this purchase from this list: %s. The current year is %d. If the year is not "+
		"specified on the receipt, assume it's the current year. If an itemized list is not clear or "+
		"available, return an empty array for items.", names, currentYear)

	a.log.WithFields(logrus.Fields{
		"feature":    "scan",
		"imageBytes": len(image),
	}).Debug("Requesting receipt extraction")
	text, err := a.gen.Generate(ctx, Request{
		Prompt:    prompt,
		Image:     image,
		ImageMIME: imageMIME,
		Schema:    receiptSchema(),
	})
	if err != nil {
		return ReceiptScan{}, fmt.Errorf("receipt scan request failed: %w", err)
	}

	var scan ReceiptScan
	if err := json.Unmarshal([]byte(text), &scan); err != nil {
		return ReceiptScan{}, &budgeterror.ResponseError{Feature: "scan", Reason: "response is not valid JSON", Err: err}
	}
	if err := scan.Validate(); err != nil {
		return ReceiptScan{}, err
	}
	return scan, nil
}

// GeneratePlan turns a free-text description of the user's finances into a
// five-bucket plan skeleton.
func (a *Advisor) GeneratePlan(ctx context.Context, description, currency string) (GeneratedPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	if strings.TrimSpace(description) == "" {
		return GeneratedPlan{}, &budgeterror.InputError{Field: "description", Reason: "describe your financial situation and goals"}
	}

	prompt := fmt.Sprintf("Based on the user's description, create a detailed monthly budget plan. "+
		"The user's currency is %s. Break down their budget into income, bills, expenses, savings, "+
		"and debt categories with specific items and planned amounts for each. The total planned "+
		"amounts for all spending, savings, and debt should logically align with the described "+
		"income. User's description: %q", currency, description)

	a.log.WithField("feature", "plan").Debug("Requesting budget plan")
	text, err := a.gen.Generate(ctx, Request{Prompt: prompt, Schema: planSchema()})
	if err != nil {
		return GeneratedPlan{}, fmt.Errorf("plan generation request failed: %w", err)
	}

	var plan GeneratedPlan
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return GeneratedPlan{}, &budgeterror.ResponseError{Feature: "plan", Reason: "response is not valid JSON", Err: err}
	}
	if err := plan.Validate(); err != nil {
		return GeneratedPlan{}, err
	}
	return plan, nil
}
