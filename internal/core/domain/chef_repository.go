package domain

import "context"

// ChefRepository defines the data-access contract for chef operations.
// Implementations live in internal/core/repository (Core layer).
// The Logic layer depends on this interface only — never on SQL or pgx
// directly.
type ChefRepository interface {
	// Search returns chefs whose username contains term, case-insensitively,
	// ordered ascending by id. An empty term matches all chefs.
	Search(ctx context.Context, term string) ([]Chef, error)

	// SearchPage applies the same predicate as Search, orders by the resolved
	// sort options and returns one page of the matching set.
	SearchPage(ctx context.Context, term string, opts PageOptions) (Page[Chef], error)

	// GetByID returns the chef with the given id.
	// Returns (nil, nil) when no chef is found.
	GetByID(ctx context.Context, id int) (*Chef, error)

	// GetByUsername returns the chef matching the given username exactly,
	// case-sensitively. Returns (nil, nil) when no chef is found.
	GetByUsername(ctx context.Context, username string) (*Chef, error)

	// Create inserts a new chef, writes the generated id back into chef and
	// returns it.
	Create(ctx context.Context, chef *Chef) (int, error)

	// Update overwrites username, email, password and the admin flag of the
	// row identified by chef.ID.
	Update(ctx context.Context, chef *Chef) error

	// Delete removes the chef row. Recipes keep their chef_id value; no
	// cascade is performed at this layer.
	Delete(ctx context.Context, id int) error
}
