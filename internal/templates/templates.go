// Package templates provides named starter budgets. Built-in templates ship
// with the binary; a templates.yaml file in the data directory adds or
// overrides entries. Applying a template rebuilds bucket items through the
// same construction path as manual add-item.
package templates

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"rishvinreddy/smarty-budget/internal/fileutils"
	"rishvinreddy/smarty-budget/internal/models"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Line is one budget line of a template.
type Line struct {
	Name    string  `yaml:"name"`
	Planned float64 `yaml:"planned"`
}

// Template is a named starter budget covering the five buckets.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Income      []Line `yaml:"income"`
	Bills       []Line `yaml:"bills"`
	Expenses    []Line `yaml:"expenses"`
	Savings     []Line `yaml:"savings"`
	Debt        []Line `yaml:"debt"`
}

// Plan converts the template into plan lines keyed by bucket.
func (t Template) Plan() map[models.CategoryType][]models.PlanLine {
	toLines := func(lines []Line) []models.PlanLine {
		out := make([]models.PlanLine, 0, len(lines))
		for _, l := range lines {
			name := strings.TrimSpace(l.Name)
			if name == "" || l.Planned < 0 {
				continue
			}
			out = append(out, models.PlanLine{Name: name, Planned: decimal.NewFromFloat(l.Planned)})
		}
		return out
	}
	return map[models.CategoryType][]models.PlanLine{
		models.Income:   toLines(t.Income),
		models.Bills:    toLines(t.Bills),
		models.Expenses: toLines(t.Expenses),
		models.Savings:  toLines(t.Savings),
		models.Debt:     toLines(t.Debt),
	}
}

type templatesFile struct {
	Templates []Template `yaml:"templates"`
}

// Load returns the available templates: built-ins, then any from the given
// YAML file. A file entry with a built-in's name overrides it. A missing
// file is not an error; a malformed one is logged and skipped so built-ins
// stay available.
func Load(path string) []Template {
	result := builtin()

	if path == "" || !fileutils.FileExists(path) {
		return result
	}
	data, err := fileutils.ReadFile(path)
	if err != nil {
		log.WithError(err).Warn("Could not read templates file, using built-ins")
		return result
	}
	var file templatesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		log.WithError(err).WithField("file", path).Warn("Templates file is unparsable, using built-ins")
		return result
	}

	for _, t := range file.Templates {
		if strings.TrimSpace(t.Name) == "" {
			continue
		}
		replaced := false
		for i := range result {
			if result[i].Name == t.Name {
				result[i] = t
				replaced = true
				break
			}
		}
		if !replaced {
			result = append(result, t)
		}
	}
	return result
}

// Find returns the template with the given name.
func Find(available []Template, name string) (Template, error) {
	for _, t := range available {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("unknown template %q", name)
}

func builtin() []Template {
	return []Template{
		{
			Name:        "fresh-start",
			Description: "A minimal single-income budget to grow from.",
			Income:      []Line{{Name: "Salary", Planned: 4000}},
			Bills:       []Line{{Name: "Rent", Planned: 1400}, {Name: "Utilities", Planned: 180}, {Name: "Internet", Planned: 60}},
			Expenses:    []Line{{Name: "Groceries", Planned: 450}, {Name: "Transport", Planned: 150}, {Name: "Fun money", Planned: 200}},
			Savings:     []Line{{Name: "Emergency fund", Planned: 400}},
			Debt:        nil,
		},
		{
			Name:        "fifty-thirty-twenty",
			Description: "The classic 50/30/20 split on a 5000 income.",
			Income:      []Line{{Name: "Take-home pay", Planned: 5000}},
			Bills:       []Line{{Name: "Housing", Planned: 1600}, {Name: "Utilities", Planned: 250}, {Name: "Insurance", Planned: 300}},
			Expenses:    []Line{{Name: "Groceries", Planned: 350}, {Name: "Dining out", Planned: 500}, {Name: "Shopping", Planned: 500}, {Name: "Entertainment", Planned: 500}},
			Savings:     []Line{{Name: "Savings", Planned: 700}},
			Debt:        []Line{{Name: "Debt payments", Planned: 300}},
		},
		{
			Name:        "family",
			Description: "A two-income household with childcare and a mortgage.",
			Income:      []Line{{Name: "Primary income", Planned: 6200}, {Name: "Secondary income", Planned: 3100}},
			Bills:       []Line{{Name: "Mortgage", Planned: 2400}, {Name: "Childcare", Planned: 1200}, {Name: "Utilities", Planned: 350}, {Name: "Car insurance", Planned: 220}},
			Expenses:    []Line{{Name: "Groceries", Planned: 900}, {Name: "Kids activities", Planned: 250}, {Name: "Household", Planned: 300}},
			Savings:     []Line{{Name: "College fund", Planned: 500}, {Name: "Retirement", Planned: 800}},
			Debt:        []Line{{Name: "Car loan", Planned: 450}},
		},
	}
}
