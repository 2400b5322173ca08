package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/homeplan/backend/internal/domain/entity"
	domainerror "github.com/homeplan/backend/internal/domain/error"
	"github.com/homeplan/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.ItemModel{}, &model.CandidateModel{}, &model.SettingsModel{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func newTestItem(userID uuid.UUID, name string) *entity.Item {
	return entity.NewItem(userID, name, entity.CategoryKitchen, entity.PriorityDesired, "", "")
}

func TestItemRepository_CreateAndFindByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	item := newTestItem(userID, "Dining table")
	if err := item.AddCandidate(entity.NewCandidate("IKEA", decimal.NewFromInt(250), "https://example.com/a")); err != nil {
		t.Fatalf("failed to add candidate: %v", err)
	}
	if err := item.AddCandidate(entity.NewCandidate("Local store", decimal.NewFromInt(300), "")); err != nil {
		t.Fatalf("failed to add candidate: %v", err)
	}

	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}

	if found.Name != "Dining table" {
		t.Errorf("Name = %q, want %q", found.Name, "Dining table")
	}
	if found.Status != entity.StatusDecided {
		t.Errorf("Status = %q, want %q", found.Status, entity.StatusDecided)
	}
	if len(found.Candidates) != 2 {
		t.Fatalf("len(Candidates) = %d, want 2", len(found.Candidates))
	}
	if found.Candidates[0].Name != "IKEA" || found.Candidates[1].Name != "Local store" {
		t.Errorf("candidate order = [%q, %q], want insertion order", found.Candidates[0].Name, found.Candidates[1].Name)
	}
	if !found.Candidates[0].Selected {
		t.Error("first candidate should be selected")
	}
	if !found.SelectedPrice.Equal(decimal.NewFromInt(250)) {
		t.Errorf("SelectedPrice = %s, want 250", found.SelectedPrice)
	}
}

func TestItemRepository_FindByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewItemRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrItemNotFound) {
		t.Errorf("FindByID() error = %v, want ErrItemNotFound", err)
	}
}

func TestItemRepository_FindByUserID(t *testing.T) {
	db := newTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	otherUserID := uuid.New()

	first := newTestItem(userID, "Sofa")
	first.CreatedAt = time.Now().UTC().Add(-time.Hour)
	second := newTestItem(userID, "Lamp")
	other := newTestItem(otherUserID, "Desk")

	for _, it := range []*entity.Item{first, second, other} {
		if err := repo.Create(ctx, it); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	items, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("FindByUserID() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Name != "Lamp" || items[1].Name != "Sofa" {
		t.Errorf("items ordered [%q, %q], want newest first", items[0].Name, items[1].Name)
	}
}

func TestItemRepository_Update_ReplacesCandidates(t *testing.T) {
	db := newTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()

	item := newTestItem(uuid.New(), "Washing machine")
	candA := entity.NewCandidate("Bosch", decimal.NewFromInt(600), "")
	candB := entity.NewCandidate("Samsung", decimal.NewFromInt(550), "")
	if err := item.AddCandidate(candA); err != nil {
		t.Fatalf("failed to add candidate: %v", err)
	}
	if err := item.AddCandidate(candB); err != nil {
		t.Fatalf("failed to add candidate: %v", err)
	}
	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := item.SelectCandidate(candB.ID); err != nil {
		t.Fatalf("SelectCandidate() error = %v", err)
	}
	if err := item.RemoveCandidate(candA.ID); err != nil {
		t.Fatalf("RemoveCandidate() error = %v", err)
	}
	if err := repo.Update(ctx, item); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, err := repo.FindByID(ctx, item.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if len(found.Candidates) != 1 {
		t.Fatalf("len(Candidates) = %d, want 1", len(found.Candidates))
	}
	if found.Candidates[0].Name != "Samsung" {
		t.Errorf("remaining candidate = %q, want %q", found.Candidates[0].Name, "Samsung")
	}
	if !found.SelectedPrice.Equal(decimal.NewFromInt(550)) {
		t.Errorf("SelectedPrice = %s, want 550", found.SelectedPrice)
	}

	var count int64
	if err := db.Model(&model.CandidateModel{}).Where("item_id = ?", item.ID).Count(&count).Error; err != nil {
		t.Fatalf("count candidates: %v", err)
	}
	if count != 1 {
		t.Errorf("stored candidate rows = %d, want 1", count)
	}
}

func TestItemRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewItemRepository(db)
	ctx := context.Background()

	item := newTestItem(uuid.New(), "Microwave")
	if err := item.AddCandidate(entity.NewCandidate("Panasonic", decimal.NewFromInt(120), "")); err != nil {
		t.Fatalf("failed to add candidate: %v", err)
	}
	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, item.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := repo.FindByID(ctx, item.ID); !errors.Is(err, domainerror.ErrItemNotFound) {
		t.Errorf("FindByID() after delete error = %v, want ErrItemNotFound", err)
	}

	var count int64
	if err := db.Model(&model.CandidateModel{}).Where("item_id = ?", item.ID).Count(&count).Error; err != nil {
		t.Fatalf("count candidates: %v", err)
	}
	if count != 0 {
		t.Errorf("candidate rows after delete = %d, want 0", count)
	}
}

func TestSettingsRepository_Upsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	if _, err := repo.FindByUserID(ctx, userID); !errors.Is(err, domainerror.ErrSettingsNotFound) {
		t.Fatalf("FindByUserID() error = %v, want ErrSettingsNotFound", err)
	}

	settings := entity.NewSettings(userID)
	settings.Budget = decimal.NewFromInt(5000)
	if err := repo.Upsert(ctx, settings); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	settings.Budget = decimal.NewFromInt(7500)
	settings.UpdatedAt = time.Now().UTC()
	if err := repo.Upsert(ctx, settings); err != nil {
		t.Fatalf("Upsert() second call error = %v", err)
	}

	found, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("FindByUserID() error = %v", err)
	}
	if !found.Budget.Equal(decimal.NewFromInt(7500)) {
		t.Errorf("Budget = %s, want 7500", found.Budget)
	}

	var count int64
	if err := db.Model(&model.SettingsModel{}).Count(&count).Error; err != nil {
		t.Fatalf("count settings: %v", err)
	}
	if count != 1 {
		t.Errorf("settings rows = %d, want 1", count)
	}
}
