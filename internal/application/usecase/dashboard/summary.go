// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/homeplan/backend/internal/domain/entity"
)

// Summary holds the derived planner metrics for one user. All values are a
// pure function of the item snapshot and the budget: recomputing over the
// same inputs always yields the same summary, so callers may cache it per
// snapshot.
type Summary struct {
	// TotalProjectedCost sums the effective cost (purchased price once
	// bought, otherwise the selected candidate's price) of every item that
	// is not dropped.
	TotalProjectedCost decimal.Decimal

	// TotalSpent sums purchased prices over purchased items.
	TotalSpent decimal.Decimal

	// RemainingBudget is budget minus TotalSpent.
	RemainingBudget decimal.Decimal

	// ItemsByCategory counts non-dropped items per category.
	ItemsByCategory map[entity.Category]int

	// CostByCategory sums effective cost per category over non-dropped items.
	CostByCategory map[entity.Category]decimal.Decimal

	// HighPriorityPendingCount counts essential items that are neither
	// purchased nor dropped.
	HighPriorityPendingCount int

	// BudgetUsagePercent is TotalProjectedCost/budget*100, zero when the
	// budget is unset.
	BudgetUsagePercent float64

	// IsOverBudget reports whether projected cost exceeds a set budget.
	IsOverBudget bool
}

// ComputeSummary reduces an item snapshot and budget into derived metrics.
// It has no side effects and never mutates its inputs. Items with stale
// category values are counted under "other", never dropped from totals; a
// zero price is a valid cost, not a missing one.
func ComputeSummary(items []*entity.Item, budget decimal.Decimal) *Summary {
	summary := &Summary{
		TotalProjectedCost: decimal.Zero,
		TotalSpent:         decimal.Zero,
		ItemsByCategory:    make(map[entity.Category]int),
		CostByCategory:     make(map[entity.Category]decimal.Decimal),
	}

	for _, item := range items {
		if item.Status == entity.StatusDropped {
			continue
		}

		cost := item.EffectiveCost()
		category := entity.NormalizeCategory(item.Category)

		summary.TotalProjectedCost = summary.TotalProjectedCost.Add(cost)
		summary.ItemsByCategory[category]++
		summary.CostByCategory[category] = summary.CostByCategory[category].Add(cost)

		if item.Status == entity.StatusPurchased && item.PurchasedPrice != nil {
			summary.TotalSpent = summary.TotalSpent.Add(*item.PurchasedPrice)
		}

		if item.Priority == entity.PriorityEssential && item.Status != entity.StatusPurchased {
			summary.HighPriorityPendingCount++
		}
	}

	summary.RemainingBudget = budget.Sub(summary.TotalSpent)

	if budget.IsPositive() {
		pct := summary.TotalProjectedCost.
			Mul(decimal.NewFromInt(100)).
			Div(budget)
		summary.BudgetUsagePercent, _ = pct.Round(2).Float64()
		summary.IsOverBudget = summary.TotalProjectedCost.GreaterThan(budget)
	}

	return summary
}
