package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
	"github.com/aussiebroadwan/inversie/pkg/idx"
	"github.com/shopspring/decimal"
)

type NewDecision struct {
	Title       string
	Description *string
	Amount      decimal.Decimal
	PotjeID     string
	NeedsHelp   bool
}

type DecisionService struct {
	Store store.Store
	Clock Clock
}

func (s *DecisionService) List(ctx context.Context, clientID string) ([]domain.Decision, error) {
	return s.Store.Decisions().ListDecisions(ctx, clientID)
}

func (s *DecisionService) Get(ctx context.Context, clientID, id string) (domain.Decision, error) {
	d, err := s.Store.Decisions().GetDecision(ctx, id)
	if err != nil {
		return domain.Decision{}, notFound(err, "decision")
	}
	if err := hideForeign(d.ClientID, clientID); err != nil {
		return domain.Decision{}, err
	}
	return d, nil
}

// Create files a new PENDING decision against one of the caller's potjes.
func (s *DecisionService) Create(ctx context.Context, clientID string, in NewDecision) (domain.Decision, error) {
	in.Title = strings.TrimSpace(in.Title)
	switch {
	case in.Title == "":
		return domain.Decision{}, fmt.Errorf("%w: title is required", ErrValidation)
	case !in.Amount.IsPositive():
		return domain.Decision{}, fmt.Errorf("%w: amount must be positive", ErrValidation)
	case in.PotjeID == "":
		return domain.Decision{}, fmt.Errorf("%w: potjeId is required", ErrValidation)
	}

	potje, err := s.Store.Potjes().GetPotje(ctx, in.PotjeID)
	if err != nil {
		return domain.Decision{}, notFound(err, "potje")
	}
	if err := hideForeign(potje.ClientID, clientID); err != nil {
		return domain.Decision{}, fmt.Errorf("%w: potje", err)
	}

	now := s.Clock.now()
	d := domain.Decision{
		ID:          idx.NewAt(now).String(),
		ClientID:    clientID,
		PotjeID:     potje.ID,
		Title:       in.Title,
		Description: in.Description,
		Amount:      in.Amount,
		Status:      domain.StatusPending,
		NeedsHelp:   in.NeedsHelp,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Decisions().CreateDecision(ctx, d); err != nil {
		return domain.Decision{}, err
	}
	d.Potje = &potje
	return d, nil
}

// AddReflection attaches the client's rating to an approved decision. A
// decision takes at most one reflection.
func (s *DecisionService) AddReflection(
	ctx context.Context,
	clientID, decisionID string,
	rating int,
	notes *string,
) (domain.Reflection, error) {
	if rating < 1 || rating > 5 {
		return domain.Reflection{}, fmt.Errorf("%w: satisfactionRating must be between 1 and 5", ErrValidation)
	}

	d, err := s.Get(ctx, clientID, decisionID)
	if err != nil {
		return domain.Reflection{}, err
	}
	if d.Status != domain.StatusApproved {
		return domain.Reflection{}, fmt.Errorf("%w: only approved decisions take a reflection", ErrConflict)
	}
	if d.Reflection != nil {
		return domain.Reflection{}, fmt.Errorf("%w: reflection already exists", ErrConflict)
	}

	now := s.Clock.now()
	ref := domain.Reflection{
		ID:                 idx.NewAt(now).String(),
		DecisionID:         d.ID,
		SatisfactionRating: rating,
		Notes:              notes,
		CreatedAt:          now,
	}
	if err := s.Store.Decisions().CreateReflection(ctx, ref); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Reflection{}, fmt.Errorf("%w: reflection already exists", ErrConflict)
		}
		return domain.Reflection{}, err
	}
	return ref, nil
}
