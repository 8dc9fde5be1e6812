package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var itemColumns = []string{"id", "name", "description", "price", "currency"}

func (r *postgresRepo) GetItemByID(ctx context.Context, itemID int64) (entities.Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"id": itemID}).
		MustSql()

	var item Item
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Item{}, entities.ErrItemNotFound
	}
	if err != nil {
		return entities.Item{}, fmt.Errorf("failed to get item: %w", err)
	}
	return ItemToEntity(item), nil
}

// GetItemsByIDs returns the items that exist; missing ids are skipped.
func (r *postgresRepo) GetItemsByIDs(ctx context.Context, ids []int64) ([]entities.Item, error) {
	if len(ids) == 0 {
		return []entities.Item{}, nil
	}

	query, args := r.qb.Select(itemColumns...).
		From("items").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	result := make([]entities.Item, 0, len(items))
	for _, it := range items {
		result = append(result, ItemToEntity(it))
	}
	return result, nil
}

func (r *postgresRepo) CountItems(ctx context.Context) (int, error) {
	query, args := r.qb.Select("COUNT(*)").From("items").MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) CreateItem(ctx context.Context, item entities.Item) (entities.Item, error) {
	query, args := r.qb.Insert("items").
		Columns("name", "description", "price", "currency").
		Values(item.Name, item.Description, item.Price, string(item.Currency)).
		Suffix("RETURNING id").
		MustSql()

	if err := r.getContext(ctx, &item.ID, query, args...); err != nil {
		return entities.Item{}, fmt.Errorf("failed to create item: %w", err)
	}
	return item, nil
}

// ListItems returns up to limit items, lowest id first.
func (r *postgresRepo) ListItems(ctx context.Context, limit int) ([]entities.Item, error) {
	query, args := r.qb.Select(itemColumns...).
		From("items").
		OrderBy("id").
		Limit(uint64(limit)).
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	result := make([]entities.Item, 0, len(items))
	for _, it := range items {
		result = append(result, ItemToEntity(it))
	}
	return result, nil
}
