package dto

import (
	"github.com/shopspring/decimal"

	"github.com/homeplan/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the dashboard summary in API responses.
// Monetary values are serialized as strings to avoid float rounding.
type SummaryResponse struct {
	TotalProjectedCost       string            `json:"total_projected_cost"`
	TotalSpent               string            `json:"total_spent"`
	RemainingBudget          string            `json:"remaining_budget"`
	Budget                   string            `json:"budget"`
	ItemsByCategory          map[string]int    `json:"items_by_category"`
	CostByCategory           map[string]string `json:"cost_by_category"`
	HighPriorityPendingCount int               `json:"high_priority_pending_count"`
	BudgetUsagePercent       float64           `json:"budget_usage_percent"`
	IsOverBudget             bool              `json:"is_over_budget"`
}

// ToSummaryResponse converts a computed summary and budget to a
// SummaryResponse DTO.
func ToSummaryResponse(summary *dashboard.Summary, budget decimal.Decimal) SummaryResponse {
	itemsByCategory := make(map[string]int, len(summary.ItemsByCategory))
	for category, count := range summary.ItemsByCategory {
		itemsByCategory[string(category)] = count
	}

	costByCategory := make(map[string]string, len(summary.CostByCategory))
	for category, cost := range summary.CostByCategory {
		costByCategory[string(category)] = cost.String()
	}

	return SummaryResponse{
		TotalProjectedCost:       summary.TotalProjectedCost.String(),
		TotalSpent:               summary.TotalSpent.String(),
		RemainingBudget:          summary.RemainingBudget.String(),
		Budget:                   budget.String(),
		ItemsByCategory:          itemsByCategory,
		CostByCategory:           costByCategory,
		HighPriorityPendingCount: summary.HighPriorityPendingCount,
		BudgetUsagePercent:       summary.BudgetUsagePercent,
		IsOverBudget:             summary.IsOverBudget,
	}
}
