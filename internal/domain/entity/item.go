// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/homeplan/backend/internal/domain/error"
)

// Category represents the room/category an item belongs to.
type Category string

const (
	CategoryLiving   Category = "living"
	CategoryKitchen  Category = "kitchen"
	CategoryBedroom  Category = "bedroom"
	CategoryBathroom Category = "bathroom"
	CategoryUtility  Category = "utility"
	CategoryOther    Category = "other"
)

// Categories lists all known categories in display order.
var Categories = []Category{
	CategoryLiving,
	CategoryKitchen,
	CategoryBedroom,
	CategoryBathroom,
	CategoryUtility,
	CategoryOther,
}

// IsValidCategory reports whether the category is one of the known set.
func IsValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeCategory maps unknown category values (stale data from renamed
// categories) into the "other" bucket so they are never dropped from
// grouped views or totals.
func NormalizeCategory(c Category) Category {
	if IsValidCategory(c) {
		return c
	}
	return CategoryOther
}

// Priority represents the urgency tier of an item.
type Priority string

const (
	PriorityEssential Priority = "essential"
	PriorityDesired   Priority = "desired"
	PriorityDefer     Priority = "defer"
)

// IsValidPriority reports whether the priority is one of the known set.
func IsValidPriority(p Priority) bool {
	return p == PriorityEssential || p == PriorityDesired || p == PriorityDefer
}

// PriorityRank returns the sort rank of a priority. Higher ranks sort first.
func PriorityRank(p Priority) int {
	switch p {
	case PriorityEssential:
		return 3
	case PriorityDesired:
		return 2
	case PriorityDefer:
		return 1
	default:
		return 0
	}
}

// ItemStatus represents the lifecycle stage of an item.
type ItemStatus string

const (
	StatusResearching ItemStatus = "researching"
	StatusDecided     ItemStatus = "decided"
	StatusPurchased   ItemStatus = "purchased"
	StatusDropped     ItemStatus = "dropped"
)

// IsValidStatus reports whether the status is one of the known set.
func IsValidStatus(s ItemStatus) bool {
	return s == StatusResearching || s == StatusDecided || s == StatusPurchased || s == StatusDropped
}

// Candidate represents one considered product option for an item.
// Candidates are embedded in their item and not independently addressable.
type Candidate struct {
	ID       uuid.UUID
	Name     string
	Price    decimal.Decimal
	Link     string
	Selected bool
}

// NewCandidate creates a new unselected Candidate.
func NewCandidate(name string, price decimal.Decimal, link string) Candidate {
	return Candidate{
		ID:    uuid.New(),
		Name:  name,
		Price: price,
		Link:  link,
	}
}

// Item represents a single purchase requirement in the planner.
//
// SelectedPrice is a denormalized mirror of the selected candidate's price
// (zero when none is selected). Every mutating method keeps the mirror and
// the at-most-one-selected invariant in sync within the same call.
type Item struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Category       Category
	Priority       Priority
	Status         ItemStatus
	Notes          string
	Link           string
	Candidates     []Candidate
	SelectedPrice  decimal.Decimal
	PurchasedPrice *decimal.Decimal // Set only when status is purchased
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewItem creates a new Item entity with no candidates in researching status.
func NewItem(userID uuid.UUID, name string, category Category, priority Priority, notes, link string) *Item {
	now := time.Now().UTC()

	return &Item{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Category:      category,
		Priority:      priority,
		Status:        StatusResearching,
		Notes:         notes,
		Link:          link,
		Candidates:    []Candidate{},
		SelectedPrice: decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// SelectedCandidate returns the currently selected candidate, or nil.
func (i *Item) SelectedCandidate() *Candidate {
	for idx := range i.Candidates {
		if i.Candidates[idx].Selected {
			return &i.Candidates[idx]
		}
	}
	return nil
}

// EffectiveCost returns the cost an item contributes to projected totals:
// the purchased price once bought, otherwise the selected candidate's price.
func (i *Item) EffectiveCost() decimal.Decimal {
	if i.Status == StatusPurchased && i.PurchasedPrice != nil {
		return *i.PurchasedPrice
	}
	return i.SelectedPrice
}

// AddCandidate appends a candidate to the item. The item's first candidate
// is auto-selected, moving the item from researching to decided.
func (i *Item) AddCandidate(c Candidate) error {
	if i.Status == StatusPurchased {
		return domainerror.ErrItemPurchased
	}

	if len(i.Candidates) == 0 {
		c.Selected = true
		i.SelectedPrice = c.Price
		i.Status = StatusDecided
	}

	i.Candidates = append(i.Candidates, c)
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// SelectCandidate marks exactly the given candidate as selected, deselects
// all others and refreshes the selected price mirror. Selecting the already
// selected candidate is a no-op with the same resulting state.
func (i *Item) SelectCandidate(candidateID uuid.UUID) error {
	if i.Status == StatusPurchased {
		return domainerror.ErrItemPurchased
	}

	found := false
	for idx := range i.Candidates {
		if i.Candidates[idx].ID == candidateID {
			found = true
			break
		}
	}
	if !found {
		return domainerror.ErrCandidateNotFound
	}

	for idx := range i.Candidates {
		selected := i.Candidates[idx].ID == candidateID
		i.Candidates[idx].Selected = selected
		if selected {
			i.SelectedPrice = i.Candidates[idx].Price
		}
	}

	i.Status = StatusDecided
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// RemoveCandidate removes the given candidate. Removing the selected
// candidate resets the selected price to zero and reverts the item to
// researching.
func (i *Item) RemoveCandidate(candidateID uuid.UUID) error {
	if i.Status == StatusPurchased {
		return domainerror.ErrItemPurchased
	}

	idx := -1
	for c := range i.Candidates {
		if i.Candidates[c].ID == candidateID {
			idx = c
			break
		}
	}
	if idx == -1 {
		return domainerror.ErrCandidateNotFound
	}

	wasSelected := i.Candidates[idx].Selected
	i.Candidates = append(i.Candidates[:idx], i.Candidates[idx+1:]...)

	if wasSelected {
		i.SelectedPrice = decimal.Zero
		i.Status = StatusResearching
	}

	i.UpdatedAt = time.Now().UTC()
	return nil
}

// MarkPurchased transitions a decided item to purchased. When finalAmount is
// nil the selected price is recorded as the purchased price. Purchasing is
// only valid from the decided state: with nothing selected there is no price
// to confirm.
func (i *Item) MarkPurchased(finalAmount *decimal.Decimal) error {
	if i.Status == StatusPurchased {
		return domainerror.ErrItemPurchased
	}
	if i.Status != StatusDecided {
		return domainerror.ErrItemNotDecided
	}

	amount := i.SelectedPrice
	if finalAmount != nil {
		if finalAmount.IsNegative() {
			return domainerror.ErrNegativePrice
		}
		amount = *finalAmount
	}

	i.PurchasedPrice = &amount
	i.Status = StatusPurchased
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// Drop excludes the item from planning without deleting it. Purchases are
// final and cannot be dropped.
func (i *Item) Drop() error {
	if i.Status == StatusPurchased {
		return domainerror.ErrItemPurchased
	}

	i.Status = StatusDropped
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// Restore brings a dropped item back into planning. It returns to decided
// when a selected candidate survives, otherwise to researching.
func (i *Item) Restore() error {
	if i.Status != StatusDropped {
		return domainerror.ErrItemNotDropped
	}

	if i.SelectedCandidate() != nil {
		i.Status = StatusDecided
	} else {
		i.Status = StatusResearching
	}
	i.UpdatedAt = time.Now().UTC()
	return nil
}
