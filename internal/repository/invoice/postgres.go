package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

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

func (r *postgresRepo) Insert(ctx context.Context, in CreateInvoiceInput) (string, error) {
	items, err := json.Marshal(in.Items)
	if err != nil {
		return "", fmt.Errorf("marshal invoice items: %w", err)
	}

	const q = `
INSERT INTO sold_invoices (table_name, items, total_bill_cents, total_discount_cents)
VALUES ($1, $2, $3, $4)
RETURNING id::text
`
	var id string
	if err := r.pool.QueryRow(ctx, q, in.TableName, items, in.TotalBill, in.TotalDiscount).Scan(&id); err != nil {
		r.logger.Printf("invoice repo: insert table=%s error=%v", in.TableName, err)
		return "", err
	}
	return id, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.SoldInvoice, error) {
	const q = `
SELECT id::text, table_name, items, total_bill_cents, total_discount_cents, created_at
FROM sold_invoices
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("invoice repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.SoldInvoice
	for rows.Next() {
		inv, err := scanInvoice(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *inv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.SoldInvoice, error) {
	const q = `
SELECT id::text, table_name, items, total_bill_cents, total_discount_cents, created_at
FROM sold_invoices
WHERE id = $1
`
	inv, err := scanInvoice(r.pool.QueryRow(ctx, q, id).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("invoice repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return inv, nil
}

func scanInvoice(scan func(dest ...any) error) (*domain.SoldInvoice, error) {
	var inv domain.SoldInvoice
	var items []byte
	if err := scan(&inv.ID, &inv.TableName, &items, &inv.TotalBill, &inv.TotalDiscount, &inv.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &inv.Items); err != nil {
		return nil, fmt.Errorf("unmarshal invoice items: %w", err)
	}
	return &inv, nil
}
