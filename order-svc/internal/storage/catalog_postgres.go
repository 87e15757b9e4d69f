package storage

import (
	"context"

	"cardapio/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Rows failing domain validation are left out of catalog listings so the
// pricing code never sees them. Scan failures are returned.

func (r *PostgresRepository) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(description, ''), price, price_from, COALESCE(category_id, ''),
			available, is_pizza, variation_group_ids, created_at
		FROM menu_items
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		var groupIDs pq.StringArray
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.PriceFrom,
			&item.CategoryID, &item.Available, &item.IsPizza, &groupIDs, &item.CreatedAt); err != nil {
			return nil, err
		}
		item.VariationGroupIDs = []string(groupIDs)
		if item.Validate() != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListVariations(ctx context.Context) ([]domain.Variation, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, additional_price, available, category_ids
		FROM variations
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	variations := []domain.Variation{}
	for rows.Next() {
		var v domain.Variation
		var categoryIDs pq.StringArray
		if err := rows.Scan(&v.ID, &v.Name, &v.AdditionalPrice, &v.Available, &categoryIDs); err != nil {
			return nil, err
		}
		v.CategoryIDs = []string(categoryIDs)
		if v.Validate() != nil {
			continue
		}
		variations = append(variations, v)
	}
	return variations, rows.Err()
}

func (r *PostgresRepository) ListVariationGroups(ctx context.Context) ([]domain.VariationGroup, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, min_required, max_allowed, variation_ids, COALESCE(custom_message, '')
		FROM variation_groups
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []domain.VariationGroup{}
	for rows.Next() {
		var g domain.VariationGroup
		var variationIDs pq.StringArray
		if err := rows.Scan(&g.ID, &g.Name, &g.MinRequired, &g.MaxAllowed, &variationIDs, &g.CustomMessage); err != nil {
			return nil, err
		}
		g.VariationIDs = []string(variationIDs)
		if g.Validate() != nil {
			continue
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *PostgresRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (id, name, description, price, price_from, category_id, available, is_pizza, variation_group_ids)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`,
		item.ID, item.Name, nullString(item.Description), item.Price, item.PriceFrom,
		nullString(item.CategoryID), item.Available, item.IsPizza, pq.Array(item.VariationGroupIDs),
	).Scan(&item.CreatedAt)
}

func (r *PostgresRepository) CreateVariation(ctx context.Context, v *domain.Variation) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO variations (id, name, additional_price, available, category_ids)
		VALUES ($1, $2, $3, $4, $5)`,
		v.ID, v.Name, v.AdditionalPrice, v.Available, pq.Array(v.CategoryIDs))
	return err
}

func (r *PostgresRepository) CreateVariationGroup(ctx context.Context, g *domain.VariationGroup) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO variation_groups (id, name, min_required, max_allowed, variation_ids, custom_message)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		g.ID, g.Name, g.MinRequired, g.MaxAllowed, pq.Array(g.VariationIDs), nullString(g.CustomMessage))
	return err
}
