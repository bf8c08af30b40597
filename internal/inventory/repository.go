package inventory

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
	List(ctx context.Context) ([]StockItem, error)
	Upsert(ctx context.Context, item *StockItem) error
	Delete(ctx context.Context, id string) error
}

type PostgresRepository struct {
	pool DBPool
}

func NewPostgresRepository(pool DBPool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// List returns all stock items ordered by name.
func (r *PostgresRepository) List(ctx context.Context) ([]StockItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, item_name, current_stock, unit, last_update
         FROM inventory ORDER BY item_name`)
	if err != nil {
		return nil, fmt.Errorf("select inventory: %w", err)
	}
	defer rows.Close()

	var items []StockItem
	for rows.Next() {
		var it StockItem
		if err := rows.Scan(&it.ID, &it.ItemName, &it.CurrentStock, &it.Unit, &it.LastUpdate); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return items, nil
}

// Upsert inserts or replaces the count for an item, keyed by item name.
func (r *PostgresRepository) Upsert(ctx context.Context, item *StockItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO inventory (id, item_name, current_stock, unit, last_update)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (item_name) DO UPDATE
		SET current_stock = EXCLUDED.current_stock, unit = EXCLUDED.unit, last_update = now()
		RETURNING id, last_update
	`, item.ID, item.ItemName, item.CurrentStock, item.Unit)
	if err := row.Scan(&item.ID, &item.LastUpdate); err != nil {
		return fmt.Errorf("upsert stock item: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
