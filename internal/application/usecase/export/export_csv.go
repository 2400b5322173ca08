// Package export contains export-related use cases.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/google/uuid"

	"github.com/homeplan/backend/internal/application/adapter"
	"github.com/homeplan/backend/internal/application/usecase/item"
	"github.com/homeplan/backend/internal/domain/entity"
)

// csvHeader is the fixed header row of the export artifact.
var csvHeader = []string{"Name", "Category", "Price", "Status", "Priority", "Notes", "Link"}

// ExportCSVInput represents the input for CSV export. The same filters as
// the list view apply, so the export reflects exactly the visible items.
type ExportCSVInput struct {
	UserID   uuid.UUID
	Category *entity.Category
	Status   *entity.ItemStatus
	Search   string
}

// ExportCSVOutput represents the output of CSV export.
type ExportCSVOutput struct {
	Content  []byte
	Filename string
}

// ExportCSVUseCase renders the filtered item list as a CSV document.
type ExportCSVUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(itemRepo adapter.ItemRepository) *ExportCSVUseCase {
	return &ExportCSVUseCase{
		itemRepo: itemRepo,
	}
}

// Execute produces one quoted CSV row per visible item, with the effective
// cost in the price column.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ExportCSVInput) (*ExportCSVOutput, error) {
	items, err := uc.itemRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	visible := item.FilterItems(items, input.Category, input.Status, input.Search)
	item.SortByPriority(visible)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, it := range visible {
		row := []string{
			it.Name,
			string(entity.NormalizeCategory(it.Category)),
			it.EffectiveCost().String(),
			string(it.Status),
			string(it.Priority),
			it.Notes,
			it.Link,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return &ExportCSVOutput{
		Content:  buf.Bytes(),
		Filename: "home_planner_export.csv",
	}, nil
}
