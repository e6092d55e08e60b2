package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo reads catalog snapshots from Postgres. The core never writes back.
type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// LoadSnapshot returns every row of inventory_items ordered by position, then id.
func (r *Repo) LoadSnapshot(ctx context.Context) ([]Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, sku, category, size, price, stock, branch
		FROM inventory_items
		ORDER BY position, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.SKU, &it.Category, &it.Size, &it.Price, &it.Stock, &it.Branch); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
