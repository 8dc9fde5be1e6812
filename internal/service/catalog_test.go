package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/SergeyBogomolovv/payment-service/internal/service"
	mocks "github.com/SergeyBogomolovv/payment-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCatalogService_GetItemByID(t *testing.T) {
	type MockBehavior func(repo *mocks.MockItemRepo, cache *mocks.MockItemCache)

	item := entities.Item{ID: 1, Name: "Mug", Price: decimal.RequireFromString("10.00"), Currency: entities.USD}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		want         entities.Item
		wantErr      error
	}{
		{
			name: "from cache",
			mockBehavior: func(_ *mocks.MockItemRepo, cache *mocks.MockItemCache) {
				cache.EXPECT().Get(int64(1)).Return(item, true).Once()
			},
			want: item,
		},
		{
			name: "from repo and set to cache",
			mockBehavior: func(repo *mocks.MockItemRepo, cache *mocks.MockItemCache) {
				cache.EXPECT().Get(int64(1)).Return(entities.Item{}, false).Once()
				repo.EXPECT().GetItemByID(mock.Anything, int64(1)).Return(item, nil).Once()
				cache.EXPECT().Set(int64(1), item).Return().Once()
			},
			want: item,
		},
		{
			name: "not found is not retried",
			mockBehavior: func(repo *mocks.MockItemRepo, cache *mocks.MockItemCache) {
				cache.EXPECT().Get(int64(1)).Return(entities.Item{}, false).Once()
				repo.EXPECT().GetItemByID(mock.Anything, int64(1)).Return(entities.Item{}, entities.ErrItemNotFound).Once()
			},
			wantErr: entities.ErrItemNotFound,
		},
		{
			name: "second attempt from repo",
			mockBehavior: func(repo *mocks.MockItemRepo, cache *mocks.MockItemCache) {
				cache.EXPECT().Get(int64(1)).Return(entities.Item{}, false).Once()
				repo.EXPECT().GetItemByID(mock.Anything, int64(1)).Return(entities.Item{}, errors.New("conn reset")).Once()
				repo.EXPECT().GetItemByID(mock.Anything, int64(1)).Return(item, nil).Once()
				cache.EXPECT().Set(int64(1), item).Return().Once()
			},
			want: item,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockItemRepo(t)
			cache := mocks.NewMockItemCache(t)
			tc.mockBehavior(repo, cache)

			svc := service.NewCatalogService(discardLogger(), repo, cache)

			got, err := svc.GetItemByID(context.Background(), 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCatalogService_WarmUpCache(t *testing.T) {
	items := []entities.Item{
		{ID: 1, Name: "A", Currency: entities.USD},
		{ID: 2, Name: "B", Currency: entities.RUB},
	}

	repo := mocks.NewMockItemRepo(t)
	cache := mocks.NewMockItemCache(t)
	repo.EXPECT().ListItems(mock.Anything, 10).Return(items, nil).Once()
	cache.EXPECT().Set(int64(1), items[0]).Return().Once()
	cache.EXPECT().Set(int64(2), items[1]).Return().Once()

	svc := service.NewCatalogService(discardLogger(), repo, cache)

	require.NoError(t, svc.WarmUpCache(context.Background(), 10))
}
