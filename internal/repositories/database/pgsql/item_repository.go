package pgsql

import (
	"context"
	"fmt"

	"github.com/adithyasudev/entry-voucher-forge/internal/core/domain"
	"github.com/adithyasudev/entry-voucher-forge/internal/core/ports/gateways"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxItemRepository serves the item catalog from the items table.
type PgxItemRepository struct {
	BaseRepository
}

func newPgxItemRepository(pool *pgxpool.Pool) *PgxItemRepository {
	return &PgxItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ gateways.ItemCatalog = (*PgxItemRepository)(nil)

// FetchItems lists every catalog entry ordered by code.
func (r *PgxItemRepository) FetchItems(ctx context.Context) ([]domain.Item, error) {
	query := `
		SELECT item_code, item_name
		FROM items
		ORDER BY item_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch item master: %w", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Item, error) {
		var item domain.Item
		err := row.Scan(&item.ItemCode, &item.ItemName)
		return item, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan item master: %w", err)
	}
	return items, nil
}

// SaveItems upserts catalog entries; used to seed a fresh database.
func (r *PgxItemRepository) SaveItems(ctx context.Context, items []domain.Item) error {
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(`
			INSERT INTO items (item_code, item_name)
			VALUES ($1, $2)
			ON CONFLICT (item_code) DO UPDATE SET item_name = EXCLUDED.item_name;
		`, item.ItemCode, item.ItemName)
	}

	br := r.Pool.SendBatch(ctx, batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to save item: %w", err)
		}
	}
	return nil
}
