package domain

import "context"

// RecipeRepository defines the data-access contract for recipe operations.
// Every read resolves the authoring chef eagerly.
type RecipeRepository interface {
	// Search returns recipes whose name or instructions contain term,
	// case-insensitively, ordered ascending by id. An empty term matches all.
	Search(ctx context.Context, term string) ([]Recipe, error)

	// SearchPage applies the same predicate as Search, orders by the resolved
	// sort options and returns one page of the matching set.
	SearchPage(ctx context.Context, term string, opts PageOptions) (Page[Recipe], error)

	// GetByID returns the recipe with the given id.
	// Returns (nil, nil) when no recipe is found.
	GetByID(ctx context.Context, id int) (*Recipe, error)

	// Create inserts a new recipe referencing recipe.Author.ID, writes the
	// generated id back and returns it.
	Create(ctx context.Context, recipe *Recipe) (int, error)

	// Update overwrites instructions and the author reference of the row
	// identified by recipe.ID. The name is never mutated.
	Update(ctx context.Context, recipe *Recipe) error

	// Delete removes every recipe_ingredient row referencing the recipe and
	// then the recipe row itself, inside one transaction. Zero join rows is a
	// no-op, not an error.
	Delete(ctx context.Context, id int) error
}
