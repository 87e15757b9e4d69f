package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cardapio/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const orderColumns = `id, customer_name, customer_phone, address, payment_method, COALESCE(observations, ''),
	status, payment_status, total, discount, COALESCE(coupon_code, ''), amount_due, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Create stores the order and its line snapshots in one transaction. Amounts
// are written exactly as computed by the caller.
func (r *PostgresRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_name, customer_phone, address, payment_method, observations,
			status, payment_status, total, discount, coupon_code, amount_due, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		order.ID, order.CustomerName, order.CustomerPhone, order.Address, order.PaymentMethod,
		nullString(order.Observations), order.Status, order.PaymentStatus, order.Total, order.Discount,
		nullString(order.CouponCode), order.AmountDue, order.CreatedAt, order.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i, item := range order.Items {
		variations, err := json.Marshal(item.SelectedVariations)
		if err != nil {
			return fmt.Errorf("encode variations: %w", err)
		}
		var combination []byte
		if item.Combination != nil {
			if combination, err = json.Marshal(item.Combination); err != nil {
				return fmt.Errorf("encode combination: %w", err)
			}
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, menu_item_id, name, price, quantity,
				selected_variations, is_half_pizza, combination, price_from, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			order.ID, i, item.MenuItemID, item.Name, item.Price, item.Quantity,
			variations, item.IsHalfPizza, combination, item.PriceFrom, item.Subtotal,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

// Update applies the non-nil fields of update. It returns a nil order when
// id does not exist.
func (r *PostgresRepository) Update(ctx context.Context, id string, update domain.OrderUpdate) (*domain.Order, error) {
	var status, paymentStatus sql.NullString
	if update.Status != nil {
		status = sql.NullString{String: string(*update.Status), Valid: true}
	}
	if update.PaymentStatus != nil {
		paymentStatus = sql.NullString{String: string(*update.PaymentStatus), Valid: true}
	}

	var updatedID string
	err := r.DB.QueryRowContext(ctx, `
		UPDATE orders
		SET status = COALESCE($1, status),
			payment_status = COALESCE($2, payment_status),
			updated_at = $3
		WHERE id = $4
		RETURNING id`,
		status, paymentStatus, time.Now().UTC(), id,
	).Scan(&updatedID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, updatedID)
}

// GetByID returns a nil order when id does not exist.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if order.Items, err = r.listItems(ctx, order.ID); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *PostgresRepository) ListByPhone(ctx context.Context, phone string) ([]domain.Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+`
		FROM orders
		WHERE customer_phone = $1
		ORDER BY created_at DESC`, phone)
}

func (r *PostgresRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	return r.queryOrders(ctx, `SELECT `+orderColumns+`
		FROM orders
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at DESC`, from, to)
}

func (r *PostgresRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].Items, err = r.listItems(ctx, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *PostgresRepository) listItems(ctx context.Context, orderID string) ([]domain.OrderLineItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT menu_item_id, name, price, quantity, selected_variations, is_half_pizza, combination, price_from, subtotal
		FROM order_items
		WHERE order_id = $1
		ORDER BY position`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderLineItem{}
	for rows.Next() {
		var item domain.OrderLineItem
		var variations, combination []byte
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Price, &item.Quantity,
			&variations, &item.IsHalfPizza, &combination, &item.PriceFrom, &item.Subtotal); err != nil {
			return nil, err
		}
		if len(variations) > 0 {
			if err := json.Unmarshal(variations, &item.SelectedVariations); err != nil {
				return nil, fmt.Errorf("decode variations of order %s: %w", orderID, err)
			}
		}
		if len(combination) > 0 {
			item.Combination = &domain.Combination{}
			if err := json.Unmarshal(combination, item.Combination); err != nil {
				return nil, fmt.Errorf("decode combination of order %s: %w", orderID, err)
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(&order.ID, &order.CustomerName, &order.CustomerPhone, &order.Address,
		&order.PaymentMethod, &order.Observations, &order.Status, &order.PaymentStatus,
		&order.Total, &order.Discount, &order.CouponCode, &order.AmountDue,
		&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
