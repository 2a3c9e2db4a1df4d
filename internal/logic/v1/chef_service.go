package v1

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/chefbook/recipe-service/internal/core/domain"
)

// ChefService implements chef business rules on top of the repository
// interface.
//
// Reads degrade on storage failure: the error is logged and an empty result
// is returned. Writes propagate their errors.
type ChefService struct {
	chefs domain.ChefRepository
}

// NewChefService creates a new ChefService with the given repository.
func NewChefService(chefs domain.ChefRepository) *ChefService {
	return &ChefService{chefs: chefs}
}

// Find returns the chef with the given id, or nil when absent or when
// storage fails.
func (s *ChefService) Find(ctx context.Context, id int) *domain.Chef {
	chef, err := s.chefs.GetByID(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int("chef_id", id).Msg("Chef lookup failed, degrading to absent")
		return nil
	}
	return chef
}

// FindByUsername returns the chef with the given username, or nil when
// absent or when storage fails.
func (s *ChefService) FindByUsername(ctx context.Context, username string) *domain.Chef {
	chef, err := s.chefs.GetByUsername(ctx, username)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Chef lookup failed, degrading to absent")
		return nil
	}
	return chef
}

// Save creates the chef when it has never been persisted, writing the
// generated id back, and updates the existing row otherwise.
func (s *ChefService) Save(ctx context.Context, chef *domain.Chef) error {
	if !chef.Saved() {
		if _, err := s.chefs.Create(ctx, chef); err != nil {
			return fmt.Errorf("insert chef: %w", err)
		}
		return nil
	}

	if err := s.chefs.Update(ctx, chef); err != nil {
		return fmt.Errorf("update chef %d: %w", chef.ID, err)
	}
	return nil
}

// Search returns all chefs matching term, or all chefs when term is empty.
// Storage failure degrades to an empty list.
func (s *ChefService) Search(ctx context.Context, term string) []domain.Chef {
	chefs, err := s.chefs.Search(ctx, term)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Chef search failed, degrading to empty result")
		return nil
	}
	return chefs
}

// SearchPage returns one page of the chefs matching term. Storage failure
// degrades to an empty page.
func (s *ChefService) SearchPage(ctx context.Context, term string, opts domain.PageOptions) domain.Page[domain.Chef] {
	page, err := s.chefs.SearchPage(ctx, term, opts)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Chef search failed, degrading to empty page")
		return domain.EmptyPage[domain.Chef](opts)
	}
	return page
}

// Delete removes the chef with the given id.
func (s *ChefService) Delete(ctx context.Context, id int) error {
	if err := s.chefs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete chef %d: %w", id, err)
	}
	return nil
}
