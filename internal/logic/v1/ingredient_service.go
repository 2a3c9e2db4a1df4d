package v1

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/chefbook/recipe-service/internal/core/domain"
)

// IngredientService implements ingredient business rules on top of the
// repository interface. Reads degrade on storage failure, writes propagate.
type IngredientService struct {
	ingredients domain.IngredientRepository
}

// NewIngredientService creates a new IngredientService with the given
// repository.
func NewIngredientService(ingredients domain.IngredientRepository) *IngredientService {
	return &IngredientService{ingredients: ingredients}
}

// Find returns the ingredient with the given id, or nil when absent or when
// storage fails.
func (s *IngredientService) Find(ctx context.Context, id int) *domain.Ingredient {
	ingredient, err := s.ingredients.GetByID(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int("ingredient_id", id).Msg("Ingredient lookup failed, degrading to absent")
		return nil
	}
	return ingredient
}

// Save creates the ingredient when it has never been persisted, writing the
// generated id back, and updates the existing row otherwise.
func (s *IngredientService) Save(ctx context.Context, ingredient *domain.Ingredient) error {
	if !ingredient.Saved() {
		if _, err := s.ingredients.Create(ctx, ingredient); err != nil {
			return fmt.Errorf("insert ingredient: %w", err)
		}
		return nil
	}

	if err := s.ingredients.Update(ctx, ingredient); err != nil {
		return fmt.Errorf("update ingredient %d: %w", ingredient.ID, err)
	}
	return nil
}

// Search returns all ingredients matching term, or all ingredients when term
// is empty. Storage failure degrades to an empty list.
func (s *IngredientService) Search(ctx context.Context, term string) []domain.Ingredient {
	ingredients, err := s.ingredients.Search(ctx, term)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Ingredient search failed, degrading to empty result")
		return nil
	}
	return ingredients
}

// SearchPage returns one page of the ingredients matching term. Storage
// failure degrades to an empty page.
func (s *IngredientService) SearchPage(ctx context.Context, term string, opts domain.PageOptions) domain.Page[domain.Ingredient] {
	page, err := s.ingredients.SearchPage(ctx, term, opts)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Ingredient search failed, degrading to empty page")
		return domain.EmptyPage[domain.Ingredient](opts)
	}
	return page
}

// Delete removes the ingredient and its recipe_ingredient references.
func (s *IngredientService) Delete(ctx context.Context, id int) error {
	if err := s.ingredients.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete ingredient %d: %w", id, err)
	}
	return nil
}
