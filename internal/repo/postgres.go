package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/SergeyBogomolovv/payment-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	// Получаем заказ
	query, args := r.qb.Select("id", "currency", "total_amount", "created_at").
		From("orders").
		Where(sq.Eq{"id": orderID}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	// Получаем позиции заказа вместе с товарами
	query, args = r.qb.Select(
		"oi.id", "oi.order_id", "oi.quantity",
		"i.id AS item_id", "i.name", "i.description", "i.price", "i.currency").
		From("order_items oi").
		Join("items i ON i.id = oi.item_id").
		Where(sq.Eq{"oi.order_id": orderID}).
		OrderBy("oi.id").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	// Скидка и налог опциональны
	query, args = r.qb.Select("order_id", "percent_off", "coupon_id").
		From("discounts").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var discount Discount
	hasDiscount := true
	err = r.getContext(ctx, &discount, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		hasDiscount = false
	} else if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get discount: %w", err)
	}

	query, args = r.qb.Select("order_id", "tax_rate", "tax_id").
		From("taxes").
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	var tax Tax
	hasTax := true
	err = r.getContext(ctx, &tax, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		hasTax = false
	} else if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get tax: %w", err)
	}

	var d *Discount
	if hasDiscount {
		d = &discount
	}
	var t *Tax
	if hasTax {
		t = &tax
	}

	return OrderToEntity(order, items, d, t), nil
}

// CreateOrder inserts the order row only; lines and adjustments are saved
// separately. The returned order carries the generated id and timestamp.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns("currency", "total_amount").
		Values(string(o.Currency), o.TotalAmount).
		Suffix("RETURNING id, created_at").
		MustSql()

	var row struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	o.ID = row.ID
	o.CreatedAt = row.CreatedAt
	return o, nil
}

func (r *postgresRepo) SaveOrderItems(ctx context.Context, orderID int64, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns("order_id", "item_id", "quantity")
	for _, it := range items {
		q = q.Values(orderID, it.Item.ID, it.Quantity)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order items: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdateTotal(ctx context.Context, orderID int64, total decimal.Decimal) error {
	query, args := r.qb.Update("orders").
		Set("total_amount", total).
		Where(sq.Eq{"id": orderID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order total: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
