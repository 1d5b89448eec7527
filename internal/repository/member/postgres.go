package member

import (
	"context"
	"errors"
	"io"
	"log"

	"foodrepublic/internal/db"
	"foodrepublic/internal/domain"
	"github.com/jackc/pgx/v5"
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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Member, error) {
	const q = `
SELECT id::text, COALESCE(name, ''), mobile, discount_value, created_at
FROM members
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("member repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Mobile, &m.DiscountValue, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) FindByMobile(ctx context.Context, mobile string) (*domain.Member, error) {
	const q = `
SELECT id::text, COALESCE(name, ''), mobile, discount_value, created_at
FROM members
WHERE mobile = $1
`
	var m domain.Member
	err := r.pool.QueryRow(ctx, q, mobile).
		Scan(&m.ID, &m.Name, &m.Mobile, &m.DiscountValue, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("member repo: find mobile=%s error=%v", mobile, err)
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateMemberInput) (*domain.Member, error) {
	const q = `
INSERT INTO members (name, mobile, discount_value)
VALUES (NULLIF($1, ''), $2, $3)
RETURNING id::text, COALESCE(name, ''), mobile, discount_value, created_at
`
	var m domain.Member
	err := r.pool.QueryRow(ctx, q, in.Name, in.Mobile, in.DiscountValue).
		Scan(&m.ID, &m.Name, &m.Mobile, &m.DiscountValue, &m.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		r.logger.Printf("member repo: create mobile=%s error=%v", in.Mobile, err)
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("member repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
