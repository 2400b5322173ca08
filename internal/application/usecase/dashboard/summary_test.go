package dashboard

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeplan/backend/internal/domain/entity"
)

func mkItem(t *testing.T, category entity.Category, priority entity.Priority, price int64) *entity.Item {
	t.Helper()
	item := entity.NewItem(uuid.New(), "item", category, priority, "", "")
	if price > 0 {
		if err := item.AddCandidate(entity.NewCandidate("option", decimal.NewFromInt(price), "")); err != nil {
			t.Fatalf("add candidate: %v", err)
		}
	}
	return item
}

func mkPurchased(t *testing.T, category entity.Category, selected, paid int64) *entity.Item {
	t.Helper()
	item := mkItem(t, category, entity.PriorityDesired, selected)
	amount := decimal.NewFromInt(paid)
	if err := item.MarkPurchased(&amount); err != nil {
		t.Fatalf("mark purchased: %v", err)
	}
	return item
}

func TestComputeSummary(t *testing.T) {
	t.Run("empty snapshot", func(t *testing.T) {
		summary := ComputeSummary(nil, decimal.NewFromInt(1000))

		if !summary.TotalProjectedCost.IsZero() {
			t.Errorf("TotalProjectedCost = %s, want 0", summary.TotalProjectedCost)
		}
		if !summary.RemainingBudget.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("RemainingBudget = %s, want full budget", summary.RemainingBudget)
		}
		if summary.IsOverBudget {
			t.Error("empty snapshot should not be over budget")
		}
	})

	t.Run("mixed statuses", func(t *testing.T) {
		items := []*entity.Item{
			mkItem(t, entity.CategoryKitchen, entity.PriorityEssential, 300), // decided
			mkItem(t, entity.CategoryLiving, entity.PriorityEssential, 0),    // researching, no price
			mkPurchased(t, entity.CategoryKitchen, 200, 180),
		}
		dropped := mkItem(t, entity.CategoryBedroom, entity.PriorityEssential, 500)
		if err := dropped.Drop(); err != nil {
			t.Fatalf("drop: %v", err)
		}
		items = append(items, dropped)

		summary := ComputeSummary(items, decimal.NewFromInt(1000))

		// 300 decided + 0 researching + 180 purchased; the dropped 500 is excluded.
		if !summary.TotalProjectedCost.Equal(decimal.NewFromInt(480)) {
			t.Errorf("TotalProjectedCost = %s, want 480", summary.TotalProjectedCost)
		}
		if !summary.TotalSpent.Equal(decimal.NewFromInt(180)) {
			t.Errorf("TotalSpent = %s, want 180", summary.TotalSpent)
		}
		if !summary.RemainingBudget.Equal(decimal.NewFromInt(820)) {
			t.Errorf("RemainingBudget = %s, want 820", summary.RemainingBudget)
		}
		if summary.ItemsByCategory[entity.CategoryKitchen] != 2 {
			t.Errorf("kitchen count = %d, want 2", summary.ItemsByCategory[entity.CategoryKitchen])
		}
		if summary.ItemsByCategory[entity.CategoryBedroom] != 0 {
			t.Errorf("bedroom count = %d, want 0 (dropped excluded)", summary.ItemsByCategory[entity.CategoryBedroom])
		}
		if !summary.CostByCategory[entity.CategoryKitchen].Equal(decimal.NewFromInt(480)) {
			t.Errorf("kitchen cost = %s, want 480", summary.CostByCategory[entity.CategoryKitchen])
		}
		// Two essential items are pending: the decided one and the researching
		// one. The purchased and dropped ones do not count; dropped is not
		// pending and purchased is done.
		if summary.HighPriorityPendingCount != 2 {
			t.Errorf("HighPriorityPendingCount = %d, want 2", summary.HighPriorityPendingCount)
		}
		if summary.BudgetUsagePercent != 48 {
			t.Errorf("BudgetUsagePercent = %v, want 48", summary.BudgetUsagePercent)
		}
		if summary.IsOverBudget {
			t.Error("480 of 1000 should not be over budget")
		}
	})

	t.Run("unset budget yields zero percent", func(t *testing.T) {
		items := []*entity.Item{mkItem(t, entity.CategoryKitchen, entity.PriorityDesired, 300)}
		summary := ComputeSummary(items, decimal.Zero)

		if summary.BudgetUsagePercent != 0 {
			t.Errorf("BudgetUsagePercent = %v, want 0 with unset budget", summary.BudgetUsagePercent)
		}
		if summary.IsOverBudget {
			t.Error("unset budget can never be over budget")
		}
		if !summary.RemainingBudget.IsZero() {
			t.Errorf("RemainingBudget = %s, want 0", summary.RemainingBudget)
		}
	})

	t.Run("over budget", func(t *testing.T) {
		items := []*entity.Item{mkItem(t, entity.CategoryKitchen, entity.PriorityDesired, 1500)}
		summary := ComputeSummary(items, decimal.NewFromInt(1000))

		if !summary.IsOverBudget {
			t.Error("1500 of 1000 should be over budget")
		}
		if summary.BudgetUsagePercent != 150 {
			t.Errorf("BudgetUsagePercent = %v, want 150", summary.BudgetUsagePercent)
		}
	})

	t.Run("stale categories bucket under other", func(t *testing.T) {
		items := []*entity.Item{mkItem(t, entity.Category("garage"), entity.PriorityDesired, 100)}
		summary := ComputeSummary(items, decimal.Zero)

		if summary.ItemsByCategory[entity.CategoryOther] != 1 {
			t.Errorf("other count = %d, want 1", summary.ItemsByCategory[entity.CategoryOther])
		}
		if !summary.CostByCategory[entity.CategoryOther].Equal(decimal.NewFromInt(100)) {
			t.Errorf("other cost = %s, want 100", summary.CostByCategory[entity.CategoryOther])
		}
	})

	t.Run("deterministic over the same snapshot", func(t *testing.T) {
		items := []*entity.Item{
			mkItem(t, entity.CategoryKitchen, entity.PriorityEssential, 300),
			mkPurchased(t, entity.CategoryLiving, 200, 180),
		}
		budget := decimal.NewFromInt(700)

		first := ComputeSummary(items, budget)
		second := ComputeSummary(items, budget)

		if !first.TotalProjectedCost.Equal(second.TotalProjectedCost) ||
			first.BudgetUsagePercent != second.BudgetUsagePercent ||
			first.HighPriorityPendingCount != second.HighPriorityPendingCount {
			t.Error("summary should be a pure function of its inputs")
		}
	})
}
