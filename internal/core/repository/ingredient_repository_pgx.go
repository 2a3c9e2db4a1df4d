package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chefbook/recipe-service/internal/core/domain"
)

// ingredientSortColumns is the allow-list of sortable ingredient columns.
var ingredientSortColumns = []string{"id", "name"}

// PgxIngredientRepository implements domain.IngredientRepository using
// pgxpool.
type PgxIngredientRepository struct {
	pool *pgxpool.Pool
}

// NewIngredientRepository creates a new PgxIngredientRepository.
func NewIngredientRepository(pool *pgxpool.Pool) *PgxIngredientRepository {
	return &PgxIngredientRepository{pool: pool}
}

const ingredientSearchQuery = `
	SELECT id, name
	FROM ingredient
	WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
	ORDER BY `

// Search returns ingredients whose name contains term, ordered ascending by
// id. An empty term matches all ingredients.
func (r *PgxIngredientRepository) Search(ctx context.Context, term string) ([]domain.Ingredient, error) {
	rows, err := r.pool.Query(ctx, ingredientSearchQuery+"id", term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanIngredients(rows)
}

// SearchPage applies the same predicate as Search with the resolved ordering
// and returns one page of the matching set.
func (r *PgxIngredientRepository) SearchPage(ctx context.Context, term string, opts domain.PageOptions) (domain.Page[domain.Ingredient], error) {
	order := orderClause(ingredientSortColumns, opts.SortBy, opts.SortDirection)

	rows, err := r.pool.Query(ctx, ingredientSearchQuery+order, term)
	if err != nil {
		return domain.EmptyPage[domain.Ingredient](opts), err
	}
	defer rows.Close()

	matching, err := scanIngredients(rows)
	if err != nil {
		return domain.EmptyPage[domain.Ingredient](opts), err
	}

	return domain.PageOf(matching, opts), nil
}

// GetByID returns the ingredient with the given id.
// Returns (nil, nil) when no ingredient is found.
func (r *PgxIngredientRepository) GetByID(ctx context.Context, id int) (*domain.Ingredient, error) {
	var ingredient domain.Ingredient
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM ingredient WHERE id = $1`, id).Scan(
		&ingredient.ID, &ingredient.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &ingredient, nil
}

// Create inserts a new ingredient, writes the generated id back and returns
// it.
func (r *PgxIngredientRepository) Create(ctx context.Context, ingredient *domain.Ingredient) (int, error) {
	query := `INSERT INTO ingredient (name) VALUES ($1) RETURNING id`

	err := r.pool.QueryRow(ctx, query, ingredient.Name).Scan(&ingredient.ID)
	if err != nil {
		return 0, err
	}

	return ingredient.ID, nil
}

// Update overwrites the name of the row identified by ingredient.ID.
func (r *PgxIngredientRepository) Update(ctx context.Context, ingredient *domain.Ingredient) error {
	_, err := r.pool.Exec(ctx, `UPDATE ingredient SET name = $1 WHERE id = $2`, ingredient.Name, ingredient.ID)
	return err
}

// Delete removes every recipe_ingredient row referencing the ingredient and
// then the ingredient row itself. Both steps run inside one transaction so a
// partial cascade is never visible.
func (r *PgxIngredientRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredient WHERE ingredient_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM ingredient WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanIngredients(rows pgx.Rows) ([]domain.Ingredient, error) {
	var ingredients []domain.Ingredient
	for rows.Next() {
		var ingredient domain.Ingredient
		if err := rows.Scan(&ingredient.ID, &ingredient.Name); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, rows.Err()
}
