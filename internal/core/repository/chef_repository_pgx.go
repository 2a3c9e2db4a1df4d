package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chefbook/recipe-service/internal/core/domain"
)

// chefSortColumns is the allow-list of sortable chef columns.
var chefSortColumns = []string{"id", "username", "email"}

// PgxChefRepository implements domain.ChefRepository using pgxpool.
type PgxChefRepository struct {
	pool *pgxpool.Pool
}

// NewChefRepository creates a new PgxChefRepository.
func NewChefRepository(pool *pgxpool.Pool) *PgxChefRepository {
	return &PgxChefRepository{pool: pool}
}

const chefSearchQuery = `
	SELECT id, username, email, password, is_admin
	FROM chef
	WHERE ($1 = '' OR username ILIKE '%' || $1 || '%')
	ORDER BY `

// Search returns chefs whose username contains term, ordered ascending by id.
// An empty term matches all chefs.
func (r *PgxChefRepository) Search(ctx context.Context, term string) ([]domain.Chef, error) {
	rows, err := r.pool.Query(ctx, chefSearchQuery+"id", term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanChefs(rows)
}

// SearchPage applies the same predicate as Search with the resolved ordering
// and returns one page of the matching set.
func (r *PgxChefRepository) SearchPage(ctx context.Context, term string, opts domain.PageOptions) (domain.Page[domain.Chef], error) {
	order := orderClause(chefSortColumns, opts.SortBy, opts.SortDirection)

	rows, err := r.pool.Query(ctx, chefSearchQuery+order, term)
	if err != nil {
		return domain.EmptyPage[domain.Chef](opts), err
	}
	defer rows.Close()

	matching, err := scanChefs(rows)
	if err != nil {
		return domain.EmptyPage[domain.Chef](opts), err
	}

	return domain.PageOf(matching, opts), nil
}

// GetByID returns the chef with the given id.
// Returns (nil, nil) when no chef is found.
func (r *PgxChefRepository) GetByID(ctx context.Context, id int) (*domain.Chef, error) {
	query := `SELECT id, username, email, password, is_admin FROM chef WHERE id = $1`

	var chef domain.Chef
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&chef.ID, &chef.Username, &chef.Email, &chef.Password, &chef.IsAdmin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &chef, nil
}

// GetByUsername returns the chef matching the given username exactly.
// Returns (nil, nil) when no chef is found.
func (r *PgxChefRepository) GetByUsername(ctx context.Context, username string) (*domain.Chef, error) {
	query := `SELECT id, username, email, password, is_admin FROM chef WHERE username = $1`

	var chef domain.Chef
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&chef.ID, &chef.Username, &chef.Email, &chef.Password, &chef.IsAdmin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &chef, nil
}

// Create inserts a new chef, writes the generated id back and returns it.
func (r *PgxChefRepository) Create(ctx context.Context, chef *domain.Chef) (int, error) {
	query := `INSERT INTO chef (username, email, password, is_admin) VALUES ($1, $2, $3, $4) RETURNING id`

	err := r.pool.QueryRow(ctx, query, chef.Username, chef.Email, chef.Password, chef.IsAdmin).Scan(&chef.ID)
	if err != nil {
		return 0, err
	}

	return chef.ID, nil
}

// Update overwrites username, email, password and the admin flag of the row
// identified by chef.ID.
func (r *PgxChefRepository) Update(ctx context.Context, chef *domain.Chef) error {
	query := `UPDATE chef SET username = $1, email = $2, password = $3, is_admin = $4 WHERE id = $5`
	_, err := r.pool.Exec(ctx, query, chef.Username, chef.Email, chef.Password, chef.IsAdmin, chef.ID)
	return err
}

// Delete removes the chef row. Recipes referencing the chef are not touched.
func (r *PgxChefRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM chef WHERE id = $1`, id)
	return err
}

func scanChefs(rows pgx.Rows) ([]domain.Chef, error) {
	var chefs []domain.Chef
	for rows.Next() {
		var chef domain.Chef
		if err := rows.Scan(&chef.ID, &chef.Username, &chef.Email, &chef.Password, &chef.IsAdmin); err != nil {
			return nil, err
		}
		chefs = append(chefs, chef)
	}
	return chefs, rows.Err()
}
