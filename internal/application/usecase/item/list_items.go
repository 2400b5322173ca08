// Package item contains item-related use cases.
package item

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/domain/entity"
)

// ListItemsInput represents the input for listing items. All active filters
// combine with AND semantics.
type ListItemsInput struct {
	UserID          uuid.UUID
	Category        *entity.Category   // Optional, nil means all categories
	Status          *entity.ItemStatus // Optional, nil means all statuses
	Search          string             // Optional, case-insensitive substring match on name
	GroupByCategory bool
}

// ListItemsOutput represents the output of listing items.
type ListItemsOutput struct {
	Items []*entity.Item
	// Groups is populated only when grouping was requested. Relative item
	// order within each group matches Items.
	Groups map[entity.Category][]*entity.Item
}

// ListItemsUseCase handles filtered item listing.
type ListItemsUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewListItemsUseCase creates a new ListItemsUseCase instance.
func NewListItemsUseCase(itemRepo adapter.ItemRepository) *ListItemsUseCase {
	return &ListItemsUseCase{
		itemRepo: itemRepo,
	}
}

// Execute retrieves the user's items, newest first, filtered and sorted by
// descending priority rank (stable for equal priority).
func (uc *ListItemsUseCase) Execute(ctx context.Context, input ListItemsInput) (*ListItemsOutput, error) {
	items, err := uc.itemRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	filtered := FilterItems(items, input.Category, input.Status, input.Search)
	SortByPriority(filtered)

	output := &ListItemsOutput{Items: filtered}
	if input.GroupByCategory {
		output.Groups = GroupByCategory(filtered)
	}

	return output, nil
}

// FilterItems returns the subsequence of items satisfying all active
// filters, preserving input order. It never mutates the input slice.
func FilterItems(items []*entity.Item, category *entity.Category, status *entity.ItemStatus, search string) []*entity.Item {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]*entity.Item, 0, len(items))
	for _, item := range items {
		if category != nil && entity.NormalizeCategory(item.Category) != *category {
			continue
		}
		if status != nil && item.Status != *status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// SortByPriority sorts items by descending priority rank, stable for equal
// priority so the incoming order (newest first) is preserved within a tier.
func SortByPriority(items []*entity.Item) {
	sort.SliceStable(items, func(a, b int) bool {
		return entity.PriorityRank(items[a].Priority) > entity.PriorityRank(items[b].Priority)
	})
}

// GroupByCategory buckets items by normalized category, preserving relative
// input order within each group. Unknown categories land in "other" rather
// than being dropped.
func GroupByCategory(items []*entity.Item) map[entity.Category][]*entity.Item {
	groups := make(map[entity.Category][]*entity.Item)
	for _, item := range items {
		category := entity.NormalizeCategory(item.Category)
		groups[category] = append(groups[category], item)
	}
	return groups
}
