package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chefbook/recipe-service/internal/core/domain"
)

// recipeSortColumns is the allow-list of sortable recipe columns.
var recipeSortColumns = []string{"id", "name", "instructions"}

// PgxRecipeRepository implements domain.RecipeRepository using pgxpool.
// The authoring chef is resolved eagerly through a join on every read.
type PgxRecipeRepository struct {
	pool *pgxpool.Pool
}

// NewRecipeRepository creates a new PgxRecipeRepository.
func NewRecipeRepository(pool *pgxpool.Pool) *PgxRecipeRepository {
	return &PgxRecipeRepository{pool: pool}
}

const recipeSearchQuery = `
	SELECT r.id, r.name, r.instructions, c.id, c.username, c.email, c.is_admin
	FROM recipe r
	JOIN chef c ON c.id = r.chef_id
	WHERE ($1 = '' OR r.name ILIKE '%' || $1 || '%' OR r.instructions ILIKE '%' || $1 || '%')
	ORDER BY r.`

// Search returns recipes whose name or instructions contain term, ordered
// ascending by id. An empty term matches all recipes.
func (r *PgxRecipeRepository) Search(ctx context.Context, term string) ([]domain.Recipe, error) {
	rows, err := r.pool.Query(ctx, recipeSearchQuery+"id", term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// SearchPage applies the same predicate as Search with the resolved ordering
// and returns one page of the matching set.
func (r *PgxRecipeRepository) SearchPage(ctx context.Context, term string, opts domain.PageOptions) (domain.Page[domain.Recipe], error) {
	order := orderClause(recipeSortColumns, opts.SortBy, opts.SortDirection)

	rows, err := r.pool.Query(ctx, recipeSearchQuery+order, term)
	if err != nil {
		return domain.EmptyPage[domain.Recipe](opts), err
	}
	defer rows.Close()

	matching, err := scanRecipes(rows)
	if err != nil {
		return domain.EmptyPage[domain.Recipe](opts), err
	}

	return domain.PageOf(matching, opts), nil
}

// GetByID returns the recipe with the given id, author included.
// Returns (nil, nil) when no recipe is found.
func (r *PgxRecipeRepository) GetByID(ctx context.Context, id int) (*domain.Recipe, error) {
	query := `
		SELECT r.id, r.name, r.instructions, c.id, c.username, c.email, c.is_admin
		FROM recipe r
		JOIN chef c ON c.id = r.chef_id
		WHERE r.id = $1`

	var recipe domain.Recipe
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&recipe.ID, &recipe.Name, &recipe.Instructions,
		&recipe.Author.ID, &recipe.Author.Username, &recipe.Author.Email, &recipe.Author.IsAdmin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &recipe, nil
}

// Create inserts a new recipe referencing recipe.Author.ID, writes the
// generated id back and returns it.
func (r *PgxRecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) (int, error) {
	query := `INSERT INTO recipe (name, instructions, chef_id) VALUES ($1, $2, $3) RETURNING id`

	err := r.pool.QueryRow(ctx, query, recipe.Name, recipe.Instructions, recipe.Author.ID).Scan(&recipe.ID)
	if err != nil {
		return 0, err
	}

	return recipe.ID, nil
}

// Update overwrites instructions and the author reference of the row
// identified by recipe.ID. The name column is deliberately left alone.
func (r *PgxRecipeRepository) Update(ctx context.Context, recipe *domain.Recipe) error {
	query := `UPDATE recipe SET instructions = $1, chef_id = $2 WHERE id = $3`
	_, err := r.pool.Exec(ctx, query, recipe.Instructions, recipe.Author.ID, recipe.ID)
	return err
}

// Delete removes every recipe_ingredient row referencing the recipe and then
// the recipe row itself. Both steps run inside one transaction so a partial
// cascade is never visible.
func (r *PgxRecipeRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredient WHERE recipe_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM recipe WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanRecipes(rows pgx.Rows) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	for rows.Next() {
		var recipe domain.Recipe
		err := rows.Scan(
			&recipe.ID, &recipe.Name, &recipe.Instructions,
			&recipe.Author.ID, &recipe.Author.Username, &recipe.Author.Email, &recipe.Author.IsAdmin,
		)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, rows.Err()
}
