package entity

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/homeplan/backend/internal/domain/error"
)

func newItem() *Item {
	return NewItem(uuid.New(), "Dining table", CategoryKitchen, PriorityDesired, "", "")
}

func TestNewItem(t *testing.T) {
	item := newItem()

	if item.Status != StatusResearching {
		t.Errorf("Status = %q, want %q", item.Status, StatusResearching)
	}
	if len(item.Candidates) != 0 {
		t.Errorf("len(Candidates) = %d, want 0", len(item.Candidates))
	}
	if !item.SelectedPrice.IsZero() {
		t.Errorf("SelectedPrice = %s, want 0", item.SelectedPrice)
	}
	if item.PurchasedPrice != nil {
		t.Error("PurchasedPrice should be nil for a new item")
	}
}

func TestItem_AddCandidate(t *testing.T) {
	t.Run("first candidate is auto-selected and decides the item", func(t *testing.T) {
		item := newItem()
		c := NewCandidate("IKEA", decimal.NewFromInt(250), "")

		if err := item.AddCandidate(c); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}

		if item.Status != StatusDecided {
			t.Errorf("Status = %q, want %q", item.Status, StatusDecided)
		}
		if !item.Candidates[0].Selected {
			t.Error("first candidate should be selected")
		}
		if !item.SelectedPrice.Equal(decimal.NewFromInt(250)) {
			t.Errorf("SelectedPrice = %s, want 250", item.SelectedPrice)
		}
	})

	t.Run("second candidate does not steal the selection", func(t *testing.T) {
		item := newItem()
		first := NewCandidate("IKEA", decimal.NewFromInt(250), "")
		second := NewCandidate("Local store", decimal.NewFromInt(300), "")

		if err := item.AddCandidate(first); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}
		if err := item.AddCandidate(second); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}

		if item.Candidates[1].Selected {
			t.Error("second candidate should not be selected")
		}
		if !item.SelectedPrice.Equal(decimal.NewFromInt(250)) {
			t.Errorf("SelectedPrice = %s, want 250", item.SelectedPrice)
		}
	})

	t.Run("rejected on purchased items", func(t *testing.T) {
		item := newItem()
		if err := item.AddCandidate(NewCandidate("IKEA", decimal.NewFromInt(250), "")); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}
		if err := item.MarkPurchased(nil); err != nil {
			t.Fatalf("MarkPurchased() error = %v", err)
		}

		err := item.AddCandidate(NewCandidate("Late option", decimal.NewFromInt(100), ""))
		if !errors.Is(err, domainerror.ErrItemPurchased) {
			t.Errorf("AddCandidate() error = %v, want ErrItemPurchased", err)
		}
	})
}

func TestItem_SelectCandidate(t *testing.T) {
	item := newItem()
	first := NewCandidate("IKEA", decimal.NewFromInt(250), "")
	second := NewCandidate("Local store", decimal.NewFromInt(300), "")
	if err := item.AddCandidate(first); err != nil {
		t.Fatalf("AddCandidate() error = %v", err)
	}
	if err := item.AddCandidate(second); err != nil {
		t.Fatalf("AddCandidate() error = %v", err)
	}

	t.Run("moves the selection and price", func(t *testing.T) {
		if err := item.SelectCandidate(second.ID); err != nil {
			t.Fatalf("SelectCandidate() error = %v", err)
		}

		if item.Candidates[0].Selected {
			t.Error("previous candidate should be deselected")
		}
		if !item.Candidates[1].Selected {
			t.Error("new candidate should be selected")
		}
		if !item.SelectedPrice.Equal(decimal.NewFromInt(300)) {
			t.Errorf("SelectedPrice = %s, want 300", item.SelectedPrice)
		}
		if item.Status != StatusDecided {
			t.Errorf("Status = %q, want %q", item.Status, StatusDecided)
		}
	})

	t.Run("selecting the selected candidate is idempotent", func(t *testing.T) {
		if err := item.SelectCandidate(second.ID); err != nil {
			t.Fatalf("SelectCandidate() error = %v", err)
		}

		selectedCount := 0
		for _, c := range item.Candidates {
			if c.Selected {
				selectedCount++
			}
		}
		if selectedCount != 1 {
			t.Errorf("selected candidates = %d, want exactly 1", selectedCount)
		}
	})

	t.Run("unknown candidate is rejected", func(t *testing.T) {
		err := item.SelectCandidate(uuid.New())
		if !errors.Is(err, domainerror.ErrCandidateNotFound) {
			t.Errorf("SelectCandidate() error = %v, want ErrCandidateNotFound", err)
		}
	})
}

func TestItem_RemoveCandidate(t *testing.T) {
	t.Run("removing the selected candidate reverts to researching", func(t *testing.T) {
		item := newItem()
		selected := NewCandidate("IKEA", decimal.NewFromInt(250), "")
		other := NewCandidate("Local store", decimal.NewFromInt(300), "")
		if err := item.AddCandidate(selected); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}
		if err := item.AddCandidate(other); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}

		if err := item.RemoveCandidate(selected.ID); err != nil {
			t.Fatalf("RemoveCandidate() error = %v", err)
		}

		if item.Status != StatusResearching {
			t.Errorf("Status = %q, want %q", item.Status, StatusResearching)
		}
		if !item.SelectedPrice.IsZero() {
			t.Errorf("SelectedPrice = %s, want 0", item.SelectedPrice)
		}
		// The survivor is not auto-promoted.
		if item.Candidates[0].Selected {
			t.Error("remaining candidate should not inherit the selection")
		}
	})

	t.Run("removing an unselected candidate keeps the decision", func(t *testing.T) {
		item := newItem()
		selected := NewCandidate("IKEA", decimal.NewFromInt(250), "")
		other := NewCandidate("Local store", decimal.NewFromInt(300), "")
		if err := item.AddCandidate(selected); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}
		if err := item.AddCandidate(other); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}

		if err := item.RemoveCandidate(other.ID); err != nil {
			t.Fatalf("RemoveCandidate() error = %v", err)
		}

		if item.Status != StatusDecided {
			t.Errorf("Status = %q, want %q", item.Status, StatusDecided)
		}
		if !item.SelectedPrice.Equal(decimal.NewFromInt(250)) {
			t.Errorf("SelectedPrice = %s, want 250", item.SelectedPrice)
		}
	})

	t.Run("unknown candidate is rejected", func(t *testing.T) {
		item := newItem()
		err := item.RemoveCandidate(uuid.New())
		if !errors.Is(err, domainerror.ErrCandidateNotFound) {
			t.Errorf("RemoveCandidate() error = %v, want ErrCandidateNotFound", err)
		}
	})
}

func TestItem_MarkPurchased(t *testing.T) {
	t.Run("records the final amount", func(t *testing.T) {
		item := newItem()
		if err := item.AddCandidate(NewCandidate("IKEA", decimal.NewFromInt(250), "")); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}

		final := decimal.NewFromInt(230)
		if err := item.MarkPurchased(&final); err != nil {
			t.Fatalf("MarkPurchased() error = %v", err)
		}

		if item.Status != StatusPurchased {
			t.Errorf("Status = %q, want %q", item.Status, StatusPurchased)
		}
		if item.PurchasedPrice == nil || !item.PurchasedPrice.Equal(final) {
			t.Errorf("PurchasedPrice = %v, want 230", item.PurchasedPrice)
		}
	})

	t.Run("defaults to the selected price", func(t *testing.T) {
		item := newItem()
		if err := item.AddCandidate(NewCandidate("IKEA", decimal.NewFromInt(250), "")); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}

		if err := item.MarkPurchased(nil); err != nil {
			t.Fatalf("MarkPurchased() error = %v", err)
		}

		if item.PurchasedPrice == nil || !item.PurchasedPrice.Equal(decimal.NewFromInt(250)) {
			t.Errorf("PurchasedPrice = %v, want 250", item.PurchasedPrice)
		}
	})

	t.Run("rejected from researching", func(t *testing.T) {
		item := newItem()
		err := item.MarkPurchased(nil)
		if !errors.Is(err, domainerror.ErrItemNotDecided) {
			t.Errorf("MarkPurchased() error = %v, want ErrItemNotDecided", err)
		}
	})

	t.Run("rejected when already purchased", func(t *testing.T) {
		item := newItem()
		if err := item.AddCandidate(NewCandidate("IKEA", decimal.NewFromInt(250), "")); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}
		if err := item.MarkPurchased(nil); err != nil {
			t.Fatalf("MarkPurchased() error = %v", err)
		}

		err := item.MarkPurchased(nil)
		if !errors.Is(err, domainerror.ErrItemPurchased) {
			t.Errorf("MarkPurchased() error = %v, want ErrItemPurchased", err)
		}
	})

	t.Run("negative final amount is rejected", func(t *testing.T) {
		item := newItem()
		if err := item.AddCandidate(NewCandidate("IKEA", decimal.NewFromInt(250), "")); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}

		final := decimal.NewFromInt(-10)
		err := item.MarkPurchased(&final)
		if !errors.Is(err, domainerror.ErrNegativePrice) {
			t.Errorf("MarkPurchased() error = %v, want ErrNegativePrice", err)
		}
	})
}

func TestItem_DropAndRestore(t *testing.T) {
	t.Run("drop and restore with a surviving selection", func(t *testing.T) {
		item := newItem()
		if err := item.AddCandidate(NewCandidate("IKEA", decimal.NewFromInt(250), "")); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}

		if err := item.Drop(); err != nil {
			t.Fatalf("Drop() error = %v", err)
		}
		if item.Status != StatusDropped {
			t.Errorf("Status = %q, want %q", item.Status, StatusDropped)
		}

		if err := item.Restore(); err != nil {
			t.Fatalf("Restore() error = %v", err)
		}
		if item.Status != StatusDecided {
			t.Errorf("Status = %q, want %q", item.Status, StatusDecided)
		}
	})

	t.Run("restore without a selection reverts to researching", func(t *testing.T) {
		item := newItem()
		if err := item.Drop(); err != nil {
			t.Fatalf("Drop() error = %v", err)
		}

		if err := item.Restore(); err != nil {
			t.Fatalf("Restore() error = %v", err)
		}
		if item.Status != StatusResearching {
			t.Errorf("Status = %q, want %q", item.Status, StatusResearching)
		}
	})

	t.Run("purchased items cannot be dropped", func(t *testing.T) {
		item := newItem()
		if err := item.AddCandidate(NewCandidate("IKEA", decimal.NewFromInt(250), "")); err != nil {
			t.Fatalf("AddCandidate() error = %v", err)
		}
		if err := item.MarkPurchased(nil); err != nil {
			t.Fatalf("MarkPurchased() error = %v", err)
		}

		err := item.Drop()
		if !errors.Is(err, domainerror.ErrItemPurchased) {
			t.Errorf("Drop() error = %v, want ErrItemPurchased", err)
		}
	})

	t.Run("restore requires the dropped state", func(t *testing.T) {
		item := newItem()
		err := item.Restore()
		if !errors.Is(err, domainerror.ErrItemNotDropped) {
			t.Errorf("Restore() error = %v, want ErrItemNotDropped", err)
		}
	})
}

func TestItem_EffectiveCost(t *testing.T) {
	item := newItem()
	if !item.EffectiveCost().IsZero() {
		t.Errorf("EffectiveCost() = %s, want 0 with no selection", item.EffectiveCost())
	}

	if err := item.AddCandidate(NewCandidate("IKEA", decimal.NewFromInt(250), "")); err != nil {
		t.Fatalf("AddCandidate() error = %v", err)
	}
	if !item.EffectiveCost().Equal(decimal.NewFromInt(250)) {
		t.Errorf("EffectiveCost() = %s, want 250", item.EffectiveCost())
	}

	final := decimal.NewFromInt(230)
	if err := item.MarkPurchased(&final); err != nil {
		t.Fatalf("MarkPurchased() error = %v", err)
	}
	if !item.EffectiveCost().Equal(final) {
		t.Errorf("EffectiveCost() = %s, want 230 after purchase", item.EffectiveCost())
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		want     Category
	}{
		{"known category", CategoryKitchen, CategoryKitchen},
		{"other stays other", CategoryOther, CategoryOther},
		{"stale value buckets to other", Category("garage"), CategoryOther},
		{"empty value buckets to other", Category(""), CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCategory(tt.category); got != tt.want {
				t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.category, got, tt.want)
			}
		})
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityRank(PriorityEssential) <= PriorityRank(PriorityDesired) {
		t.Error("essential should outrank desired")
	}
	if PriorityRank(PriorityDesired) <= PriorityRank(PriorityDefer) {
		t.Error("desired should outrank defer")
	}
	if PriorityRank(Priority("unknown")) != 0 {
		t.Error("unknown priority should rank 0")
	}
}
