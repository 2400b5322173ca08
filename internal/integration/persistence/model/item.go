// Package model defines database models for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeplan/backend/internal/domain/entity"
)

// ItemModel represents the items table in the database. Items are hard
// deleted; the planner has no undo.
type ItemModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name           string           `gorm:"type:varchar(255);not null"`
	Category       string           `gorm:"type:varchar(30);not null"`
	Priority       string           `gorm:"type:varchar(20);not null"`
	Status         string           `gorm:"type:varchar(20);not null"`
	Notes          string           `gorm:"type:text"`
	Link           string           `gorm:"type:text"`
	SelectedPrice  decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	PurchasedPrice *decimal.Decimal `gorm:"type:decimal(15,2)"`
	CreatedAt      time.Time        `gorm:"not null;index"`
	UpdatedAt      time.Time        `gorm:"not null"`

	Candidates []CandidateModel `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the ItemModel.
func (ItemModel) TableName() string {
	return "items"
}

// CandidateModel represents the candidates table in the database.
// Position preserves insertion order, which is meaningful for display.
type CandidateModel struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Price    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Link     string          `gorm:"type:text"`
	Selected bool            `gorm:"not null;default:false"`
	Position int             `gorm:"not null"`
}

// TableName returns the table name for the CandidateModel.
func (CandidateModel) TableName() string {
	return "candidates"
}

// ToEntity converts an ItemModel to a domain Item entity. Candidates are
// returned in insertion order.
func (m *ItemModel) ToEntity() *entity.Item {
	candidates := make([]entity.Candidate, len(m.Candidates))
	for i, c := range m.Candidates {
		candidates[i] = entity.Candidate{
			ID:       c.ID,
			Name:     c.Name,
			Price:    c.Price,
			Link:     c.Link,
			Selected: c.Selected,
		}
	}

	return &entity.Item{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Category:       entity.Category(m.Category),
		Priority:       entity.Priority(m.Priority),
		Status:         entity.ItemStatus(m.Status),
		Notes:          m.Notes,
		Link:           m.Link,
		Candidates:     candidates,
		SelectedPrice:  m.SelectedPrice,
		PurchasedPrice: m.PurchasedPrice,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// ItemFromEntity creates an ItemModel from a domain Item entity.
func ItemFromEntity(item *entity.Item) *ItemModel {
	candidates := make([]CandidateModel, len(item.Candidates))
	for i, c := range item.Candidates {
		candidates[i] = CandidateModel{
			ID:       c.ID,
			ItemID:   item.ID,
			Name:     c.Name,
			Price:    c.Price,
			Link:     c.Link,
			Selected: c.Selected,
			Position: i,
		}
	}

	return &ItemModel{
		ID:             item.ID,
		UserID:         item.UserID,
		Name:           item.Name,
		Category:       string(item.Category),
		Priority:       string(item.Priority),
		Status:         string(item.Status),
		Notes:          item.Notes,
		Link:           item.Link,
		SelectedPrice:  item.SelectedPrice,
		PurchasedPrice: item.PurchasedPrice,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
		Candidates:     candidates,
	}
}
