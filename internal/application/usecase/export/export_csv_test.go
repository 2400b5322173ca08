package export

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeplan/backend/internal/domain/entity"
	domainerror "github.com/homeplan/backend/internal/domain/error"
)

// fakeItemRepo serves a fixed item list.
type fakeItemRepo struct {
	items []*entity.Item
}

func (r *fakeItemRepo) Create(context.Context, *entity.Item) error { return nil }

func (r *fakeItemRepo) FindByID(context.Context, uuid.UUID) (*entity.Item, error) {
	return nil, domainerror.ErrItemNotFound
}

func (r *fakeItemRepo) FindByUserID(context.Context, uuid.UUID) ([]*entity.Item, error) {
	return r.items, nil
}

func (r *fakeItemRepo) Update(context.Context, *entity.Item) error { return nil }
func (r *fakeItemRepo) Delete(context.Context, uuid.UUID) error    { return nil }

func TestExportCSVUseCase(t *testing.T) {
	userID := uuid.New()

	decided := entity.NewItem(userID, "Dining table", entity.CategoryKitchen, entity.PriorityEssential, "seats six", "https://example.com/table")
	if err := decided.AddCandidate(entity.NewCandidate("IKEA", decimal.NewFromInt(250), "")); err != nil {
		t.Fatalf("add candidate: %v", err)
	}

	purchased := entity.NewItem(userID, "Kettle", entity.CategoryKitchen, entity.PriorityDesired, "", "")
	if err := purchased.AddCandidate(entity.NewCandidate("Store", decimal.NewFromInt(40), "")); err != nil {
		t.Fatalf("add candidate: %v", err)
	}
	paid := decimal.NewFromInt(35)
	if err := purchased.MarkPurchased(&paid); err != nil {
		t.Fatalf("mark purchased: %v", err)
	}

	quoted := entity.NewItem(userID, `Lamp, "tall"`, entity.CategoryLiving, entity.PriorityDefer, "", "")

	repo := &fakeItemRepo{items: []*entity.Item{decided, purchased, quoted}}
	uc := NewExportCSVUseCase(repo)

	t.Run("renders header and one row per item", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), ExportCSVInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Filename != "home_planner_export.csv" {
			t.Errorf("Filename = %q", output.Filename)
		}

		records, err := csv.NewReader(strings.NewReader(string(output.Content))).ReadAll()
		if err != nil {
			t.Fatalf("exported CSV does not parse: %v", err)
		}
		if len(records) != 4 {
			t.Fatalf("len(records) = %d, want header + 3 rows", len(records))
		}

		wantHeader := []string{"Name", "Category", "Price", "Status", "Priority", "Notes", "Link"}
		for i, col := range wantHeader {
			if records[0][i] != col {
				t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
			}
		}

		// Rows are priority-sorted: essential, desired, defer.
		if records[1][0] != "Dining table" || records[1][2] != "250" {
			t.Errorf("first row = %v", records[1])
		}
		// Purchased items export the price actually paid.
		if records[2][0] != "Kettle" || records[2][2] != "35" {
			t.Errorf("second row = %v", records[2])
		}
		// Names with commas and quotes survive the round trip.
		if records[3][0] != `Lamp, "tall"` {
			t.Errorf("third row name = %q", records[3][0])
		}
	})

	t.Run("filters match the list view", func(t *testing.T) {
		status := entity.StatusPurchased
		output, err := uc.Execute(context.Background(), ExportCSVInput{
			UserID: userID,
			Status: &status,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		records, err := csv.NewReader(strings.NewReader(string(output.Content))).ReadAll()
		if err != nil {
			t.Fatalf("exported CSV does not parse: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("len(records) = %d, want header + 1 row", len(records))
		}
		if records[1][0] != "Kettle" {
			t.Errorf("filtered row = %v", records[1])
		}
	})

	t.Run("empty list still produces the header", func(t *testing.T) {
		empty := NewExportCSVUseCase(&fakeItemRepo{})
		output, err := empty.Execute(context.Background(), ExportCSVInput{UserID: userID})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		records, err := csv.NewReader(strings.NewReader(string(output.Content))).ReadAll()
		if err != nil {
			t.Fatalf("exported CSV does not parse: %v", err)
		}
		if len(records) != 1 {
			t.Errorf("len(records) = %d, want header only", len(records))
		}
	})
}
