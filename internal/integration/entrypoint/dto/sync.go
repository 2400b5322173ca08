package dto

import (
	"github.com/homeplan/backend/internal/application/usecase/sync"
)

// SnapshotEvent represents one full-replacement snapshot on the event
// stream. Clients replace their local state with it wholesale.
type SnapshotEvent struct {
	Items  []ItemResponse `json:"items"`
	Budget string         `json:"budget"`
}

// ToSnapshotEvent converts a snapshot to its wire representation.
func ToSnapshotEvent(snapshot sync.Snapshot) SnapshotEvent {
	items := make([]ItemResponse, len(snapshot.Items))
	for i, item := range snapshot.Items {
		items[i] = ToItemResponse(item)
	}
	return SnapshotEvent{
		Items:  items,
		Budget: snapshot.Budget.String(),
	}
}
