package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/SergeyBogomolovv/payment-service/pkg/utils"
)

type ItemRepo interface {
	GetItemByID(ctx context.Context, itemID int64) (entities.Item, error)
	ListItems(ctx context.Context, limit int) ([]entities.Item, error)
}

type ItemCache interface {
	Get(key int64) (entities.Item, bool)
	Set(key int64, value entities.Item)
}

type catalogService struct {
	logger *slog.Logger
	repo   ItemRepo
	cache  ItemCache
}

func NewCatalogService(logger *slog.Logger, repo ItemRepo, cache ItemCache) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
		cache:  cache,
	}
}

// GetItemByID serves item pages, so a cached copy up to the cache TTL old is fine.
func (s *catalogService) GetItemByID(ctx context.Context, itemID int64) (entities.Item, error) {
	if item, ok := s.cache.Get(itemID); ok {
		return item, nil
	}

	item, err := getItem(ctx, s.repo, itemID)
	if err != nil {
		return entities.Item{}, err
	}

	s.cache.Set(itemID, item)
	s.logger.Debug("item cached", slog.Int64("item_id", itemID))
	return item, nil
}

func getItem(ctx context.Context, repo ItemRepo, itemID int64) (entities.Item, error) {
	var item entities.Item
	fn := func() error {
		var err error
		item, err = repo.GetItemByID(ctx, itemID)
		return err
	}
	if err := utils.Retry(ctx, utils.DefaultRetry, fn, entities.ErrItemNotFound); err != nil {
		return entities.Item{}, err
	}
	return item, nil
}

// WarmUpCache loads up to count items into the cache.
func (s *catalogService) WarmUpCache(ctx context.Context, count int) error {
	var items []entities.Item
	fn := func() error {
		var err error
		items, err = s.repo.ListItems(ctx, count)
		return err
	}
	if err := utils.Retry(ctx, utils.DefaultRetry, fn); err != nil {
		return fmt.Errorf("failed to warm up cache: %w", err)
	}

	for _, item := range items {
		s.cache.Set(item.ID, item)
	}
	s.logger.Info("cache warmed up", slog.Int("items", len(items)))
	return nil
}
