package seed

import (
	"context"
	"fmt"

	"foodrepublic/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type menuSeed struct {
	Category   string
	ItemName   string
	PriceCents int64
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 1; i <= 4; i++ {
		if err := ensureTable(ctx, pool, fmt.Sprintf("table-%d", i)); err != nil {
			return fmt.Errorf("ensure table-%d: %w", i, err)
		}
	}

	items := []menuSeed{
		{Category: domain.CategoryDrinksJuices, ItemName: "iced-tea", PriceCents: 250},
		{Category: domain.CategoryDrinksJuices, ItemName: "mango-lassi", PriceCents: 400},
		{Category: domain.CategoryFastFood, ItemName: "chicken-burger", PriceCents: 650},
		{Category: domain.CategoryFastFood, ItemName: "french-fries", PriceCents: 300},
		{Category: domain.CategoryVegetablesRices, ItemName: "fried-rice", PriceCents: 550},
		{Category: domain.CategoryVegetablesRices, ItemName: "mixed-vegetables", PriceCents: 480},
	}
	for _, it := range items {
		if err := upsertMenuItem(ctx, pool, it); err != nil {
			return fmt.Errorf("upsert menu item %s/%s: %w", it.Category, it.ItemName, err)
		}
	}

	if err := ensureMember(ctx, pool, "Demo Member", "01700000000", 10); err != nil {
		return fmt.Errorf("ensure member: %w", err)
	}

	if err := ensureUser(ctx, pool, "Demo Admin", "admin@foodrepublic.local", "admin"); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}

	return nil
}

func ensureTable(ctx context.Context, pool *pgxpool.Pool, name string) error {
	const q = `
INSERT INTO tables (name)
VALUES ($1)
ON CONFLICT (name) DO NOTHING
`
	_, err := pool.Exec(ctx, q, name)
	return err
}

func upsertMenuItem(ctx context.Context, pool *pgxpool.Pool, it menuSeed) error {
	const q = `
INSERT INTO menu_items (category, item_name, item_price_cents)
VALUES ($1, $2, $3)
ON CONFLICT (category, item_name) DO UPDATE
SET item_price_cents = EXCLUDED.item_price_cents
`
	_, err := pool.Exec(ctx, q, it.Category, it.ItemName, it.PriceCents)
	return err
}

func ensureMember(ctx context.Context, pool *pgxpool.Pool, name, mobile string, discount int64) error {
	const q = `
INSERT INTO members (name, mobile, discount_value)
VALUES ($1, $2, $3)
ON CONFLICT (mobile) DO UPDATE SET discount_value = EXCLUDED.discount_value
`
	_, err := pool.Exec(ctx, q, name, mobile, discount)
	return err
}

func ensureUser(ctx context.Context, pool *pgxpool.Pool, name, email, role string) error {
	const q = `
INSERT INTO users (name, email, role)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role
`
	_, err := pool.Exec(ctx, q, name, email, role)
	return err
}
