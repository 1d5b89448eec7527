package table

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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Table, error) {
	const q = `
SELECT id::text, name, created_at
FROM tables
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("table repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Table
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts a table named "table-N" where N is the current row count
// plus one. Numbering can collide after deletions; the unique index turns
// that into ErrDuplicate, matching the historical behavior.
func (r *postgresRepo) Create(ctx context.Context) (*domain.Table, error) {
	const q = `
INSERT INTO tables (name)
VALUES ('table-' || ((SELECT COUNT(*) FROM tables) + 1)::text)
RETURNING id::text, name, created_at
`
	var t domain.Table
	if err := r.pool.QueryRow(ctx, q).Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		r.logger.Printf("table repo: create error=%v", err)
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepo) DeleteByName(ctx context.Context, name string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM tables WHERE name = $1`, name)
	if err != nil {
		r.logger.Printf("table repo: delete name=%s error=%v", name, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
