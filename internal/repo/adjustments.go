package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) SaveDiscount(ctx context.Context, d entities.Discount) error {
	query, args := r.qb.Insert("discounts").
		Columns("order_id", "percent_off", "coupon_id").
		Values(d.OrderID, d.PercentOff, d.CouponID).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save discount: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveTax(ctx context.Context, t entities.Tax) error {
	query, args := r.qb.Insert("taxes").
		Columns("order_id", "tax_rate", "tax_id").
		Values(t.OrderID, t.Rate, t.TaxID).
		Suffix("ON CONFLICT (order_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save tax: %w", err)
	}
	return nil
}

// SetCouponID stores couponID unless the discount already has one and
// returns the id that ended up stored. The first writer wins.
func (r *postgresRepo) SetCouponID(ctx context.Context, orderID int64, couponID string) (string, error) {
	stored, err := r.setExternalID(ctx, "discounts", "coupon_id", orderID, couponID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entities.ErrDiscountNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to set coupon id: %w", err)
	}
	return stored, nil
}

// SetTaxID is the tax counterpart of SetCouponID.
func (r *postgresRepo) SetTaxID(ctx context.Context, orderID int64, taxID string) (string, error) {
	stored, err := r.setExternalID(ctx, "taxes", "tax_id", orderID, taxID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entities.ErrTaxNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to set tax id: %w", err)
	}
	return stored, nil
}

func (r *postgresRepo) setExternalID(ctx context.Context, table, column string, orderID int64, id string) (string, error) {
	query, args := r.qb.Update(table).
		Set(column, sq.Expr(fmt.Sprintf("CASE WHEN %[1]s = '' THEN ? ELSE %[1]s END", column), id)).
		Where(sq.Eq{"order_id": orderID}).
		Suffix("RETURNING " + column).
		MustSql()

	var stored string
	err := r.getContext(ctx, &stored, query, args...)
	return stored, err
}
