package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("not found")

// DBPool matches the methods from *pgxpool.Pool that we use.
// This allows us to mock the database in tests.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type Repository interface {
	List(ctx context.Context) ([]Menu, error)
	GetByID(ctx context.Context, id string) (*Menu, error)
	Create(ctx context.Context, m *Menu) error
	Update(ctx context.Context, m *Menu) error
	Delete(ctx context.Context, id string) error
}

type PostgresRepository struct {
	pool DBPool
}

func NewPostgresRepository(pool DBPool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const menuColumns = `id, name, price, category, image, description, created_at, updated_at`

// List returns the whole menu ordered by category then name, the way the
// storefront renders it.
func (r *PostgresRepository) List(ctx context.Context) ([]Menu, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+menuColumns+` FROM menus ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("select menus: %w", err)
	}
	defer rows.Close()

	var menus []Menu
	for rows.Next() {
		var m Menu
		if err := scanMenu(rows, &m); err != nil {
			return nil, fmt.Errorf("scan menu: %w", err)
		}
		menus = append(menus, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return menus, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Menu, error) {
	var m Menu
	row := r.pool.QueryRow(ctx, `SELECT `+menuColumns+` FROM menus WHERE id = $1`, id)
	if err := scanMenu(row, &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select menu: %w", err)
	}
	return &m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, m *Menu) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO menus (id, name, price, category, image, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, m.ID, m.Name, m.Price, m.Category, m.Image, m.Description)
	if err := row.Scan(&m.CreatedAt, &m.UpdatedAt); err != nil {
		return fmt.Errorf("insert menu: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, m *Menu) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE menus
		SET name = $2, price = $3, category = $4, image = $5, description = $6, updated_at = now()
		WHERE id = $1
	`, m.ID, m.Name, m.Price, m.Category, m.Image, m.Description)
	if err != nil {
		return fmt.Errorf("update menu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanMenu(row pgx.Row, m *Menu) error {
	return row.Scan(&m.ID, &m.Name, &m.Price, &m.Category, &m.Image, &m.Description, &m.CreatedAt, &m.UpdatedAt)
}
