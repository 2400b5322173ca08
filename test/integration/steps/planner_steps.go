package steps

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/homeplan/backend/internal/domain/entity"
	"github.com/homeplan/backend/internal/integration/persistence"
)

func (t *testContext) iAmAuthenticated() error {
	return t.authenticateAs("mover@example.com")
}

func (t *testContext) iAmAuthenticatedAs(email string) error {
	return t.authenticateAs(email)
}

func (t *testContext) iAmNotAuthenticated() error {
	t.accessToken = ""
	return nil
}

// authenticateAs signs a JWT the auth middleware accepts. Each distinct
// email gets a stable user ID within a scenario.
func (t *testContext) authenticateAs(email string) error {
	userID, ok := t.users[email]
	if !ok {
		userID = uuid.New()
		t.users[email] = userID
	}
	t.currentUserID = userID

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"email":   email,
		"exp":     jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":     jwt.NewNumericDate(now),
		"nbf":     jwt.NewNumericDate(now),
		"sub":     userID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign access token: %w", err)
	}

	t.accessToken = signed
	return nil
}

func (t *testContext) anItemExists(name, priority, category string) error {
	if t.currentUserID == uuid.Nil {
		return errors.New("authenticate before seeding items")
	}
	if !entity.IsValidPriority(entity.Priority(priority)) {
		return fmt.Errorf("unknown priority '%s'", priority)
	}

	newItem := entity.NewItem(
		t.currentUserID,
		name,
		entity.NormalizeCategory(entity.Category(category)),
		entity.Priority(priority),
		"",
		"",
	)

	repo := persistence.NewItemRepository(t.db.DbConn)
	if err := repo.Create(context.Background(), newItem); err != nil {
		return fmt.Errorf("failed to seed item: %w", err)
	}

	t.currentItemID = newItem.ID
	return nil
}

func (t *testContext) theItemHasACandidate(name, price string) error {
	if t.currentItemID == uuid.Nil {
		return errors.New("seed an item before adding candidates")
	}

	parsedPrice, err := decimal.NewFromString(price)
	if err != nil {
		return fmt.Errorf("invalid candidate price '%s': %w", price, err)
	}

	repo := persistence.NewItemRepository(t.db.DbConn)
	seededItem, err := repo.FindByID(context.Background(), t.currentItemID)
	if err != nil {
		return fmt.Errorf("failed to load seeded item: %w", err)
	}

	candidate := entity.NewCandidate(name, parsedPrice, "")
	if err := seededItem.AddCandidate(candidate); err != nil {
		return err
	}
	if err := repo.Update(context.Background(), seededItem); err != nil {
		return fmt.Errorf("failed to persist candidate: %w", err)
	}

	t.currentCandidateID = candidate.ID
	return nil
}

func (t *testContext) myBudgetIs(amount string) error {
	if t.currentUserID == uuid.Nil {
		return errors.New("authenticate before setting a budget")
	}

	budget, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid budget '%s': %w", amount, err)
	}

	userSettings := entity.NewSettings(t.currentUserID)
	userSettings.Budget = budget

	repo := persistence.NewSettingsRepository(t.db.DbConn)
	return repo.Upsert(context.Background(), userSettings)
}
