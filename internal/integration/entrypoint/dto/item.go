package dto

import (
	"time"

	"github.com/homeplan/backend/internal/domain/entity"
)

// CreateItemRequest represents the request body for item creation.
type CreateItemRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Category string  `json:"category" binding:"required"`
	Priority *string `json:"priority,omitempty" binding:"omitempty,oneof=essential desired defer"`
	Notes    string  `json:"notes,omitempty"`
	Link     string  `json:"link,omitempty"`
}

// UpdateItemRequest represents the request body for item update.
// Lifecycle transitions are not accepted here; they have dedicated endpoints.
type UpdateItemRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Category *string `json:"category,omitempty"`
	Priority *string `json:"priority,omitempty" binding:"omitempty,oneof=essential desired defer"`
	Notes    *string `json:"notes,omitempty"`
	Link     *string `json:"link,omitempty"`
}

// AddCandidateRequest represents the request body for adding a candidate.
// Price is the raw form value; non-numeric input is stored as zero.
type AddCandidateRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	Price string `json:"price,omitempty"`
	Link  string `json:"link,omitempty"`
}

// MarkPurchasedRequest represents the request body for confirming a purchase.
type MarkPurchasedRequest struct {
	FinalAmount *string `json:"final_amount,omitempty"`
}

// CandidateResponse represents a single candidate in API responses.
type CandidateResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Link     string `json:"link,omitempty"`
	Selected bool   `json:"selected"`
}

// ItemResponse represents a single item in API responses.
type ItemResponse struct {
	ID             string              `json:"id"`
	UserID         string              `json:"user_id"`
	Name           string              `json:"name"`
	Category       string              `json:"category"`
	Priority       string              `json:"priority"`
	Status         string              `json:"status"`
	Notes          string              `json:"notes,omitempty"`
	Link           string              `json:"link,omitempty"`
	Candidates     []CandidateResponse `json:"candidates"`
	SelectedPrice  string              `json:"selected_price"`
	PurchasedPrice *string             `json:"purchased_price,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// ItemListResponse represents the response for listing items.
type ItemListResponse struct {
	Items  []ItemResponse            `json:"items"`
	Groups map[string][]ItemResponse `json:"groups,omitempty"`
}

// ToCandidateResponse converts a domain Candidate to a CandidateResponse DTO.
func ToCandidateResponse(c entity.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:       c.ID.String(),
		Name:     c.Name,
		Price:    c.Price.String(),
		Link:     c.Link,
		Selected: c.Selected,
	}
}

// ToItemResponse converts a domain Item entity to an ItemResponse DTO.
func ToItemResponse(item *entity.Item) ItemResponse {
	candidates := make([]CandidateResponse, len(item.Candidates))
	for i, c := range item.Candidates {
		candidates[i] = ToCandidateResponse(c)
	}

	response := ItemResponse{
		ID:            item.ID.String(),
		UserID:        item.UserID.String(),
		Name:          item.Name,
		Category:      string(item.Category),
		Priority:      string(item.Priority),
		Status:        string(item.Status),
		Notes:         item.Notes,
		Link:          item.Link,
		Candidates:    candidates,
		SelectedPrice: item.SelectedPrice.String(),
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}

	if item.PurchasedPrice != nil {
		price := item.PurchasedPrice.String()
		response.PurchasedPrice = &price
	}

	return response
}

// ToItemListResponse converts items and optional category groups to a
// ItemListResponse.
func ToItemListResponse(items []*entity.Item, groups map[entity.Category][]*entity.Item) ItemListResponse {
	response := ItemListResponse{
		Items: make([]ItemResponse, len(items)),
	}
	for i, item := range items {
		response.Items[i] = ToItemResponse(item)
	}

	if groups != nil {
		response.Groups = make(map[string][]ItemResponse, len(groups))
		for category, grouped := range groups {
			converted := make([]ItemResponse, len(grouped))
			for i, item := range grouped {
				converted[i] = ToItemResponse(item)
			}
			response.Groups[string(category)] = converted
		}
	}

	return response
}
