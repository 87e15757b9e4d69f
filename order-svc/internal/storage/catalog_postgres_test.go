package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"cardapio/order-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository_ListMenuItems(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewPostgresRepository(db)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	columns := []string{"id", "name", "description", "price", "price_from", "category_id", "available", "is_pizza", "variation_group_ids", "created_at"}
	mock.ExpectQuery("FROM menu_items").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("acai", "Açaí", "500ml", "25.50", true, "sobremesas", true, false, "{toppings}", now).
			AddRow("broken", "Quebrado", "", "-3.00", false, "", true, false, "{}", now).
			AddRow("calabresa", "Calabresa", "", "40.00", false, "pizzas", true, true, "{sizes,bordas}", now))

	items, err := repo.ListMenuItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "acai", items[0].ID)
	assert.True(t, items[0].PriceFrom)
	assert.Equal(t, []string{"toppings"}, items[0].VariationGroupIDs)
	assert.Equal(t, "25.50", items[0].Price.StringFixed(2))

	assert.Equal(t, "calabresa", items[1].ID)
	assert.True(t, items[1].IsPizza)
	assert.Equal(t, []string{"sizes", "bordas"}, items[1].VariationGroupIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListMenuItemsScanError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewPostgresRepository(db)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	columns := []string{"id", "name", "description", "price", "price_from", "category_id", "available", "is_pizza", "variation_group_ids", "created_at"}
	mock.ExpectQuery("FROM menu_items").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("acai", "Açaí", "", "25.50", true, "", true, false, "{}", now).
			AddRow("garbled", "Ilegível", "", "abc", false, "", true, false, "{}", now))

	items, err := repo.ListMenuItems(context.Background())
	assert.Error(t, err)
	assert.Nil(t, items)
}

func TestPostgresRepository_ListVariationGroupsScanError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM variation_groups").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "min_required", "max_allowed", "variation_ids", "custom_message"}).
			AddRow("ponto", "Ponto", "one", 1, "{}", ""))

	groups, err := repo.ListVariationGroups(context.Background())
	assert.Error(t, err)
	assert.Nil(t, groups)
}

func TestPostgresRepository_ListMenuItemsQueryError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM menu_items").WillReturnError(errors.New("relation does not exist"))

	items, err := repo.ListMenuItems(context.Background())
	assert.Error(t, err)
	assert.Nil(t, items)
}

func TestPostgresRepository_ListVariations(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM variations").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "additional_price", "available", "category_ids"}).
			AddRow("granola", "Granola", "4.00", true, "{sobremesas}").
			AddRow("", "", "1.00", true, "{}").
			AddRow("mel", "Mel", "0", false, "{}"))

	variations, err := repo.ListVariations(context.Background())
	require.NoError(t, err)
	require.Len(t, variations, 2)
	assert.Equal(t, "granola", variations[0].ID)
	assert.Equal(t, []string{"sobremesas"}, variations[0].CategoryIDs)
	assert.False(t, variations[1].Available)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListVariationGroups(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM variation_groups").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "min_required", "max_allowed", "variation_ids", "custom_message"}).
			AddRow("toppings", "Adicionais", 0, 3, "{granola,mel}", "Escolha até {max}").
			AddRow("bad", "Ruim", 4, 2, "{}", "").
			AddRow("ponto", "Ponto", 1, 1, "{mal,bem}", ""))

	groups, err := repo.ListVariationGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Escolha até {max}", groups[0].CustomMessage)
	assert.Equal(t, 3, groups[0].MaxAllowed)
	assert.Equal(t, []string{"mal", "bem"}, groups[1].VariationIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateCatalogRecords(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewPostgresRepository(db)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	item := &domain.MenuItem{Name: "Pastel", Price: decimal.RequireFromString("9"), Available: true, VariationGroupIDs: []string{"recheio"}}
	mock.ExpectQuery("INSERT INTO menu_items").
		WithArgs(sqlmock.AnyArg(), "Pastel", nil, "9", false, nil, true, false, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
	require.NoError(t, repo.CreateMenuItem(ctx, item))
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, now, item.CreatedAt)

	variation := &domain.Variation{ID: "queijo", Name: "Queijo", AdditionalPrice: decimal.RequireFromString("2"), Available: true}
	mock.ExpectExec("INSERT INTO variations").
		WithArgs("queijo", "Queijo", "2", true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.CreateVariation(ctx, variation))

	group := &domain.VariationGroup{Name: "Recheio", MinRequired: 1, MaxAllowed: 2, CustomMessage: "Escolha {min}"}
	mock.ExpectExec("INSERT INTO variation_groups").
		WithArgs(sqlmock.AnyArg(), "Recheio", 1, 2, sqlmock.AnyArg(), "Escolha {min}").
		WillReturnError(errors.New("duplicate key"))
	assert.Error(t, repo.CreateVariationGroup(ctx, group))
	assert.NotEmpty(t, group.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
