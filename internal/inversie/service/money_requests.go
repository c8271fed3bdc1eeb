package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
	"github.com/aussiebroadwan/inversie/pkg/idx"
	"github.com/shopspring/decimal"
)

type NewMoneyRequest struct {
	Amount      decimal.Decimal
	Category    string
	Description *string
	PhotoURL    string
}

type MoneyRequestService struct {
	Store store.Store
	Clock Clock
}

func (s *MoneyRequestService) List(ctx context.Context, clientID string) ([]domain.MoneyRequest, error) {
	return s.Store.MoneyRequests().ListMoneyRequests(ctx, clientID)
}

func (s *MoneyRequestService) Create(ctx context.Context, clientID string, in NewMoneyRequest) (domain.MoneyRequest, error) {
	in.Category = strings.TrimSpace(in.Category)
	in.PhotoURL = strings.TrimSpace(in.PhotoURL)
	switch {
	case !in.Amount.IsPositive():
		return domain.MoneyRequest{}, fmt.Errorf("%w: amount must be positive", ErrValidation)
	case in.Category == "":
		return domain.MoneyRequest{}, fmt.Errorf("%w: category is required", ErrValidation)
	case in.PhotoURL == "":
		return domain.MoneyRequest{}, fmt.Errorf("%w: photoUrl is required", ErrValidation)
	}

	now := s.Clock.now()
	m := domain.MoneyRequest{
		ID:          idx.NewAt(now).String(),
		ClientID:    clientID,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		PhotoURL:    in.PhotoURL,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.MoneyRequests().CreateMoneyRequest(ctx, m); err != nil {
		return domain.MoneyRequest{}, err
	}
	return m, nil
}
