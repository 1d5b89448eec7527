package menu

import (
	"context"
	"io"
	"log"

	"foodrepublic/internal/db"
	"foodrepublic/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) ListByCategory(ctx context.Context, category string) ([]domain.MenuItem, error) {
	const q = `
SELECT id::text, category, item_name, item_price_cents, created_at
FROM menu_items
WHERE category = $1
ORDER BY item_name ASC
`
	rows, err := r.pool.Query(ctx, q, category)
	if err != nil {
		r.logger.Printf("menu repo: list category=%s error=%v", category, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Category, &item.ItemName, &item.ItemPrice, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateItemInput) (*domain.MenuItem, error) {
	const q = `
INSERT INTO menu_items (category, item_name, item_price_cents)
VALUES ($1, $2, $3)
RETURNING id::text, category, item_name, item_price_cents, created_at
`
	var item domain.MenuItem
	err := r.pool.QueryRow(ctx, q, in.Category, in.ItemName, in.ItemPrice).
		Scan(&item.ID, &item.Category, &item.ItemName, &item.ItemPrice, &item.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		r.logger.Printf("menu repo: create category=%s name=%s error=%v", in.Category, in.ItemName, err)
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) Delete(ctx context.Context, category, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE category = $1 AND id = $2`, category, id)
	if err != nil {
		r.logger.Printf("menu repo: delete category=%s id=%s error=%v", category, id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
