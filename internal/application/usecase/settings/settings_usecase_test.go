package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeplan/backend/internal/domain/entity"
	domainerror "github.com/homeplan/backend/internal/domain/error"
)

// fakeSettingsRepo is an in-memory SettingsRepository.
type fakeSettingsRepo struct {
	settings map[uuid.UUID]*entity.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[uuid.UUID]*entity.Settings)}
}

func (r *fakeSettingsRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Settings, error) {
	s, ok := r.settings[userID]
	if !ok {
		return nil, domainerror.ErrSettingsNotFound
	}
	return s, nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, s *entity.Settings) error {
	r.settings[s.UserID] = s
	return nil
}

func TestGetSettingsUseCase_InitializesDefaults(t *testing.T) {
	repo := newFakeSettingsRepo()
	uc := NewGetSettingsUseCase(repo)
	userID := uuid.New()

	output, err := uc.Execute(context.Background(), GetSettingsInput{UserID: userID})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !output.Settings.Budget.IsZero() {
		t.Errorf("Budget = %s, want unset 0", output.Settings.Budget)
	}
	if _, ok := repo.settings[userID]; !ok {
		t.Error("defaults should be persisted on first access")
	}
}

func TestUpdateBudgetUseCase(t *testing.T) {
	t.Run("sets and persists the budget", func(t *testing.T) {
		repo := newFakeSettingsRepo()
		uc := NewUpdateBudgetUseCase(repo, nil)
		userID := uuid.New()

		output, err := uc.Execute(context.Background(), UpdateBudgetInput{
			UserID: userID,
			Budget: decimal.NewFromInt(5000),
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !output.Settings.Budget.Equal(decimal.NewFromInt(5000)) {
			t.Errorf("Budget = %s, want 5000", output.Settings.Budget)
		}
		if !repo.settings[userID].Budget.Equal(decimal.NewFromInt(5000)) {
			t.Error("budget not persisted")
		}
	})

	t.Run("zero resets to unset", func(t *testing.T) {
		repo := newFakeSettingsRepo()
		uc := NewUpdateBudgetUseCase(repo, nil)
		userID := uuid.New()

		if _, err := uc.Execute(context.Background(), UpdateBudgetInput{
			UserID: userID,
			Budget: decimal.NewFromInt(5000),
		}); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		output, err := uc.Execute(context.Background(), UpdateBudgetInput{
			UserID: userID,
			Budget: decimal.Zero,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !output.Settings.Budget.IsZero() {
			t.Errorf("Budget = %s, want 0", output.Settings.Budget)
		}
	})

	t.Run("negative budget is rejected", func(t *testing.T) {
		repo := newFakeSettingsRepo()
		uc := NewUpdateBudgetUseCase(repo, nil)

		_, err := uc.Execute(context.Background(), UpdateBudgetInput{
			UserID: uuid.New(),
			Budget: decimal.NewFromInt(-100),
		})
		if !errors.Is(err, domainerror.ErrNegativeBudget) {
			t.Errorf("Execute() error = %v, want ErrNegativeBudget", err)
		}
	})
}
