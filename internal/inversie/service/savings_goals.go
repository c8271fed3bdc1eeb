package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
	"github.com/aussiebroadwan/inversie/pkg/idx"
	"github.com/shopspring/decimal"
)

type NewSavingsGoal struct {
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount *decimal.Decimal
	TargetDate    *time.Time
	ImageURL      *string
}

type SavingsGoalService struct {
	Store store.Store
	Clock Clock
}

func (s *SavingsGoalService) List(ctx context.Context, clientID string) ([]domain.SavingsGoal, error) {
	return s.Store.SavingsGoals().ListSavingsGoals(ctx, clientID)
}

func (s *SavingsGoalService) Get(ctx context.Context, clientID, id string) (domain.SavingsGoal, error) {
	g, err := s.Store.SavingsGoals().GetSavingsGoal(ctx, id)
	if err != nil {
		return domain.SavingsGoal{}, notFound(err, "savings goal")
	}
	if err := hideForeign(g.ClientID, clientID); err != nil {
		return domain.SavingsGoal{}, err
	}
	return g, nil
}

func (s *SavingsGoalService) Create(ctx context.Context, clientID string, in NewSavingsGoal) (domain.SavingsGoal, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return domain.SavingsGoal{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !in.TargetAmount.IsPositive() {
		return domain.SavingsGoal{}, fmt.Errorf("%w: targetAmount must be positive", ErrValidation)
	}
	current := decimal.Zero
	if in.CurrentAmount != nil {
		if in.CurrentAmount.IsNegative() {
			return domain.SavingsGoal{}, fmt.Errorf("%w: currentAmount may not be negative", ErrValidation)
		}
		current = *in.CurrentAmount
	}

	now := s.Clock.now()
	g := domain.SavingsGoal{
		ID:            idx.NewAt(now).String(),
		ClientID:      clientID,
		Name:          in.Name,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: current,
		TargetDate:    in.TargetDate,
		ImageURL:      in.ImageURL,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Store.SavingsGoals().CreateSavingsGoal(ctx, g); err != nil {
		return domain.SavingsGoal{}, err
	}
	return g, nil
}

// Update applies a partial update. Omitted fields keep their stored value.
func (s *SavingsGoalService) Update(
	ctx context.Context,
	clientID, id string,
	patch domain.SavingsGoalPatch,
) (domain.SavingsGoal, error) {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return domain.SavingsGoal{}, fmt.Errorf("%w: name may not be empty", ErrValidation)
		}
		patch.Name = &name
	}
	if patch.TargetAmount != nil && !patch.TargetAmount.IsPositive() {
		return domain.SavingsGoal{}, fmt.Errorf("%w: targetAmount must be positive", ErrValidation)
	}
	if patch.CurrentAmount != nil && patch.CurrentAmount.IsNegative() {
		return domain.SavingsGoal{}, fmt.Errorf("%w: currentAmount may not be negative", ErrValidation)
	}

	var out domain.SavingsGoal
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		g, err := tx.SavingsGoals().GetSavingsGoal(ctx, id)
		if err != nil {
			return notFound(err, "savings goal")
		}
		if err := hideForeign(g.ClientID, clientID); err != nil {
			return err
		}

		now := s.Clock.now()
		patch.Apply(&g, now)
		g.UpdatedAt = now
		if err := tx.SavingsGoals().UpdateSavingsGoal(ctx, g); err != nil {
			return err
		}
		out = g
		return nil
	})
	return out, err
}

func (s *SavingsGoalService) Delete(ctx context.Context, clientID, id string) error {
	if _, err := s.Get(ctx, clientID, id); err != nil {
		return err
	}
	return notFound(s.Store.SavingsGoals().DeleteSavingsGoal(ctx, id), "savings goal")
}
