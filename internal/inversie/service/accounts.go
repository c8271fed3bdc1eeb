package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
	"github.com/aussiebroadwan/inversie/pkg/cryptox"
	"github.com/aussiebroadwan/inversie/pkg/idx"
)

type NewUser struct {
	Type      domain.UserType
	Email     string
	FirstName string
	LastName  string
	PIN       string
}

// AccountService provisions users and guardian relations. There is no
// public sign-up route; operators use cmd/adduser and the demo seed.
type AccountService struct {
	Store store.Store
	Clock Clock
}

func (s *AccountService) CreateUser(ctx context.Context, in NewUser) (domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := mail.ParseAddress(email); err != nil || strings.ContainsAny(email, " <>") {
		return domain.User{}, fmt.Errorf("%w: invalid email %q", ErrValidation, in.Email)
	}
	if !in.Type.Valid() {
		return domain.User{}, fmt.Errorf("%w: type must be CLIENT or BEWINDVOERDER", ErrValidation)
	}
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return domain.User{}, fmt.Errorf("%w: first and last name are required", ErrValidation)
	}
	if err := ValidatePIN(in.PIN); err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPIN(in.PIN)
	if err != nil {
		return domain.User{}, err
	}

	now := s.Clock.now()
	u := domain.User{
		ID:        idx.NewAt(now).String(),
		Type:      in.Type,
		Email:     email,
		PINHash:   hash,
		FirstName: first,
		LastName:  last,
		Language:  domain.DefaultLanguage,
		TextSize:  domain.TextSizeMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return domain.User{}, err
	}
	return u, nil
}

// LinkGuardian makes guardianEmail the bewindvoerder of clientEmail.
func (s *AccountService) LinkGuardian(ctx context.Context, clientEmail, guardianEmail string) error {
	client, err := s.Store.Users().GetUserByEmail(ctx, clientEmail)
	if err != nil {
		return notFound(err, "client "+clientEmail)
	}
	guardian, err := s.Store.Users().GetUserByEmail(ctx, guardianEmail)
	if err != nil {
		return notFound(err, "guardian "+guardianEmail)
	}
	if client.Type != domain.UserTypeClient || guardian.Type != domain.UserTypeBewindvoerder {
		return fmt.Errorf("%w: relation must link a CLIENT to a BEWINDVOERDER", ErrValidation)
	}

	err = s.Store.Guardians().CreateRelation(ctx, domain.GuardianRelation{
		ClientID:   client.ID,
		GuardianID: guardian.ID,
		CreatedAt:  s.Clock.now(),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return fmt.Errorf("%w: relation already exists", ErrConflict)
	}
	return err
}
