package v1

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/chefbook/recipe-service/internal/core/domain"
)

// RecipeService implements recipe business rules on top of the repository
// interface. Reads degrade on storage failure, writes propagate.
type RecipeService struct {
	recipes domain.RecipeRepository
}

// NewRecipeService creates a new RecipeService with the given repository.
func NewRecipeService(recipes domain.RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

// Find returns the recipe with the given id, author resolved, or nil when
// absent or when storage fails.
func (s *RecipeService) Find(ctx context.Context, id int) *domain.Recipe {
	recipe, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int("recipe_id", id).Msg("Recipe lookup failed, degrading to absent")
		return nil
	}
	return recipe
}

// Save creates the recipe when it has never been persisted, writing the
// generated id back. Otherwise it updates the existing row, which mutates
// instructions and the author reference only.
func (s *RecipeService) Save(ctx context.Context, recipe *domain.Recipe) error {
	if !recipe.Saved() {
		if _, err := s.recipes.Create(ctx, recipe); err != nil {
			return fmt.Errorf("insert recipe: %w", err)
		}
		return nil
	}

	if err := s.recipes.Update(ctx, recipe); err != nil {
		return fmt.Errorf("update recipe %d: %w", recipe.ID, err)
	}
	return nil
}

// Search returns all recipes matching term against name or instructions, or
// all recipes when term is empty. Storage failure degrades to an empty list.
func (s *RecipeService) Search(ctx context.Context, term string) []domain.Recipe {
	recipes, err := s.recipes.Search(ctx, term)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Recipe search failed, degrading to empty result")
		return nil
	}
	return recipes
}

// SearchPage returns one page of the recipes matching term. Storage failure
// degrades to an empty page.
func (s *RecipeService) SearchPage(ctx context.Context, term string, opts domain.PageOptions) domain.Page[domain.Recipe] {
	page, err := s.recipes.SearchPage(ctx, term, opts)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Recipe search failed, degrading to empty page")
		return domain.EmptyPage[domain.Recipe](opts)
	}
	return page
}

// Delete removes the recipe and its recipe_ingredient references.
func (s *RecipeService) Delete(ctx context.Context, id int) error {
	if err := s.recipes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete recipe %d: %w", id, err)
	}
	return nil
}
