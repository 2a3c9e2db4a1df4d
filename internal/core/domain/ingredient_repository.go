package domain

import "context"

// IngredientRepository defines the data-access contract for ingredient
// operations.
type IngredientRepository interface {
	// Search returns ingredients whose name contains term,
	// case-insensitively, ordered ascending by id. An empty term matches all.
	Search(ctx context.Context, term string) ([]Ingredient, error)

	// SearchPage applies the same predicate as Search, orders by the resolved
	// sort options and returns one page of the matching set.
	SearchPage(ctx context.Context, term string, opts PageOptions) (Page[Ingredient], error)

	// GetByID returns the ingredient with the given id.
	// Returns (nil, nil) when no ingredient is found.
	GetByID(ctx context.Context, id int) (*Ingredient, error)

	// Create inserts a new ingredient, writes the generated id back and
	// returns it.
	Create(ctx context.Context, ingredient *Ingredient) (int, error)

	// Update overwrites the name of the row identified by ingredient.ID.
	Update(ctx context.Context, ingredient *Ingredient) error

	// Delete removes every recipe_ingredient row referencing the ingredient
	// and then the ingredient row itself, inside one transaction. Zero join
	// rows is a no-op, not an error.
	Delete(ctx context.Context, id int) error
}
