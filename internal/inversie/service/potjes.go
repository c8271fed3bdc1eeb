package service

import (
	"context"

	"github.com/aussiebroadwan/inversie/internal/inversie/domain"
	"github.com/aussiebroadwan/inversie/internal/inversie/store"
)

type PotjeService struct {
	Store store.Store
}

// List returns the caller's potjes sorted by name.
func (s *PotjeService) List(ctx context.Context, clientID string) ([]domain.Potje, error) {
	return s.Store.Potjes().ListPotjes(ctx, clientID)
}

func (s *PotjeService) Get(ctx context.Context, clientID, id string) (domain.Potje, error) {
	p, err := s.Store.Potjes().GetPotje(ctx, id)
	if err != nil {
		return domain.Potje{}, notFound(err, "potje")
	}
	if err := hideForeign(p.ClientID, clientID); err != nil {
		return domain.Potje{}, err
	}
	return p, nil
}
