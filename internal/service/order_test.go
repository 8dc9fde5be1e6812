package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/SergeyBogomolovv/payment-service/internal/service"
	mocks "github.com/SergeyBogomolovv/payment-service/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/payment-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	itemA = entities.Item{ID: 1, Name: "A", Price: decimal.RequireFromString("100.00"), Currency: entities.USD}
	itemB = entities.Item{ID: 2, Name: "B", Price: decimal.RequireFromString("50.00"), Currency: entities.USD}
	itemE = entities.Item{ID: 3, Name: "E", Price: decimal.RequireFromString("5.00"), Currency: entities.EUR}
)

func decimalEq(s string) any {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func passthroughTx(t *testing.T) *txMocks.MockManager {
	tx := txMocks.NewMockManager(t)
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).
		Maybe()
	return tx
}

func TestOrderService_CreateOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo)

	percent := 10
	rate := decimal.RequireFromString("20.00")
	createdAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	baseDraft := entities.OrderDraft{
		Currency: entities.USD,
		Lines: []entities.OrderLine{
			{ItemID: 1, Quantity: 2},
			{ItemID: 2, Quantity: 1},
		},
	}

	testCases := []struct {
		name         string
		draft        entities.OrderDraft
		mockBehavior MockBehavior
		wantErr      error
		wantTotal    string
	}{
		{
			name: "OK with discount and tax",
			draft: entities.OrderDraft{
				Currency:   baseDraft.Currency,
				Lines:      baseDraft.Lines,
				PercentOff: &percent,
				TaxRate:    &rate,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetItemsByIDs(mock.Anything, []int64{1, 2}).Return([]entities.Item{itemA, itemB}, nil)
				repo.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.Currency == entities.USD && o.TotalAmount.Equal(decimal.RequireFromString("250.00"))
					})).
					Return(entities.Order{ID: 7, CreatedAt: createdAt}, nil)
				repo.EXPECT().
					SaveOrderItems(mock.Anything, int64(7), mock.MatchedBy(func(items []entities.OrderItem) bool {
						return len(items) == 2 && items[0].Quantity == 2 && items[1].Item.ID == 2
					})).
					Return(nil)
				repo.EXPECT().SaveDiscount(mock.Anything, entities.Discount{OrderID: 7, PercentOff: 10}).Return(nil)
				repo.EXPECT().
					SaveTax(mock.Anything, mock.MatchedBy(func(tax entities.Tax) bool {
						return tax.OrderID == 7 && tax.Rate.Equal(rate) && tax.TaxID == ""
					})).
					Return(nil)
			},
			wantTotal: "250.00",
		},
		{
			name:  "item not found is not retried",
			draft: baseDraft,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetItemsByIDs(mock.Anything, []int64{1, 2}).Return([]entities.Item{itemA}, nil).Once()
			},
			wantErr: entities.ErrItemNotFound,
		},
		{
			name: "currency mismatch",
			draft: entities.OrderDraft{
				Currency: entities.USD,
				Lines:    []entities.OrderLine{{ItemID: 3, Quantity: 1}},
			},
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetItemsByIDs(mock.Anything, []int64{3}).Return([]entities.Item{itemE}, nil).Once()
			},
			wantErr: entities.ErrCurrencyMismatch,
		},
		{
			name: "invalid quantity",
			draft: entities.OrderDraft{
				Currency: entities.USD,
				Lines:    []entities.OrderLine{{ItemID: 1, Quantity: 0}},
			},
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetItemsByIDs(mock.Anything, []int64{1}).Return([]entities.Item{itemA}, nil).Once()
			},
			wantErr: entities.ErrInvalidQuantity,
		},
		{
			name:         "invalid percent",
			draft:        entities.OrderDraft{Currency: entities.USD, PercentOff: func() *int { p := 150; return &p }()},
			mockBehavior: func(_ *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrInvalidPercent,
		},
		{
			name:         "invalid currency",
			draft:        entities.OrderDraft{Currency: "gbp"},
			mockBehavior: func(_ *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrInvalidCurrency,
		},
		{
			name:  "retry works (first attempt fails, second succeeds)",
			draft: baseDraft,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetItemsByIDs(mock.Anything, []int64{1, 2}).Return([]entities.Item{itemA, itemB}, nil).Twice()
				// первая попытка - CreateOrder падает
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("temporary error")).Once()
				// вторая попытка - всё ок
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{ID: 8, CreatedAt: createdAt}, nil).Once()
				repo.EXPECT().SaveOrderItems(mock.Anything, int64(8), mock.Anything).Return(nil).Once()
			},
			wantTotal: "250.00",
		},
		{
			name: "empty order is valid",
			draft: entities.OrderDraft{
				Currency: entities.EUR,
			},
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetItemsByIDs(mock.Anything, []int64{}).Return([]entities.Item{}, nil)
				repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{ID: 9, CreatedAt: createdAt}, nil)
				repo.EXPECT().SaveOrderItems(mock.Anything, int64(9), mock.Anything).Return(nil)
			},
			wantTotal: "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewOrderService(discardLogger(), passthroughTx(t), repo)

			order, err := svc.CreateOrder(context.Background(), tc.draft)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, order.ID)
			assert.Equal(t, createdAt, order.CreatedAt)
			assert.True(t, decimal.RequireFromString(tc.wantTotal).Equal(order.TotalAmount), "total %s", order.TotalAmount)
		})
	}
}

func TestOrderService_GetOrderByID(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo)

	order := func(total string) entities.Order {
		return entities.Order{
			ID:          7,
			Currency:    entities.USD,
			TotalAmount: decimal.RequireFromString(total),
			Items: []entities.OrderItem{
				{ID: 1, Item: itemA, Quantity: 2},
				{ID: 2, Item: itemB, Quantity: 1},
			},
		}
	}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "total up to date",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order("250.00"), nil).Once()
			},
		},
		{
			name: "stale total is written back",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order("199.00"), nil).Once()
				repo.EXPECT().UpdateTotal(mock.Anything, int64(7), decimalEq("250.00")).Return(nil).Once()
			},
		},
		{
			name: "not found is not retried",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "second attempt from repo",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(entities.Order{}, errors.New("some error")).Once()
				repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order("250.00"), nil).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewOrderService(discardLogger(), txMocks.NewMockManager(t), repo)

			got, err := svc.GetOrderByID(context.Background(), 7)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString("250.00").Equal(got.TotalAmount))
			assert.Equal(t, entities.USD, got.EffectiveCurrency())
		})
	}
}

func TestOrderService_RecalculateTotal(t *testing.T) {
	repo := mocks.NewMockOrderRepo(t)
	repo.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(entities.Order{
		ID:          7,
		TotalAmount: decimal.Zero,
	}, nil).Once()

	svc := service.NewOrderService(discardLogger(), txMocks.NewMockManager(t), repo)

	total, err := svc.RecalculateTotal(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}
