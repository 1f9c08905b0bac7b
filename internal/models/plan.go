package models

import "github.com/shopspring/decimal"

// PlanLine is one budget line of a plan about to be applied: a name and a
// planned amount. Plans come from AI generation or from templates; either
// way the line carries no id, because ids are always minted here.
type PlanLine struct {
	Name    string
	Planned decimal.Decimal
}

// ApplyPlan returns a new ledger whose bucket items are rebuilt from the
// plan through the same construction path as manual add-item: fresh ids,
// zero actuals, default thresholds. Transactions, period and currency are
// untouched. Buckets absent from the plan come out empty, matching the
// wholesale-replace semantics of applying a plan.
func ApplyPlan(ledger Ledger, plan map[CategoryType][]PlanLine) Ledger {
	next := ledger.Clone()
	for _, ct := range CategoryTypes {
		lines := plan[ct]
		items := make([]BudgetItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, NewBudgetItem(line.Name, line.Planned))
		}
		next.SetBucket(ct, items)
	}
	return next
}
