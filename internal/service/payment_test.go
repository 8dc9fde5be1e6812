package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/SergeyBogomolovv/payment-service/internal/gateway"
	"github.com/SergeyBogomolovv/payment-service/internal/service"
	mocks "github.com/SergeyBogomolovv/payment-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testKeys = gateway.Keyring{
	Default: gateway.Credential{SecretKey: "sk_default", PublishableKey: "pk_default"},
	ByCurrency: map[entities.Currency]gateway.Credential{
		entities.USD: {SecretKey: "sk_usd", PublishableKey: "pk_usd"},
	},
}

var urls = entities.RedirectURLs{
	Success: "http://localhost:8080/success",
	Cancel:  "http://localhost:8080/cancel",
}

type paymentService interface {
	PublishableKey(currency entities.Currency) string
	ItemCheckoutSession(ctx context.Context, itemID int64, urls entities.RedirectURLs) (string, error)
	ItemPaymentIntent(ctx context.Context, itemID int64) (entities.PaymentIntent, error)
	OrderPaymentIntent(ctx context.Context, orderID int64) (entities.PaymentIntent, error)
	OrderCheckoutSession(ctx context.Context, orderID int64, urls entities.RedirectURLs) (string, error)
	MaterializeDiscount(ctx context.Context, order *entities.Order, secretKey string) entities.AdjustmentResult
	MaterializeTax(ctx context.Context, order *entities.Order, secretKey string) entities.AdjustmentResult
}

type paymentMocks struct {
	gateway     *mocks.MockGateway
	items       *mocks.MockItemRepo
	orders      *mocks.MockOrderGetter
	adjustments *mocks.MockAdjustmentRepo
}

func newPaymentService(t *testing.T, keys gateway.Keyring) (paymentService, paymentMocks) {
	m := paymentMocks{
		gateway:     mocks.NewMockGateway(t),
		items:       mocks.NewMockItemRepo(t),
		orders:      mocks.NewMockOrderGetter(t),
		adjustments: mocks.NewMockAdjustmentRepo(t),
	}
	svc := service.NewPaymentService(discardLogger(), m.gateway, keys, m.items, m.orders, m.adjustments, "RU")
	return svc, m
}

// exampleOrder is A(100.00 × 2) + B(50.00 × 1), both in usd.
func exampleOrder() entities.Order {
	return entities.Order{
		ID:          7,
		Currency:    entities.USD,
		TotalAmount: decimal.RequireFromString("250.00"),
		Items: []entities.OrderItem{
			{ID: 1, Item: itemA, Quantity: 2},
			{ID: 2, Item: itemB, Quantity: 1},
		},
	}
}

func TestPaymentService_ItemPaymentIntent(t *testing.T) {
	item := entities.Item{ID: 1, Name: "Mug", Price: decimal.RequireFromString("250.00"), Currency: entities.USD}

	t.Run("OK", func(t *testing.T) {
		svc, m := newPaymentService(t, testKeys)
		m.items.EXPECT().GetItemByID(mock.Anything, int64(1)).Return(item, nil)
		m.gateway.EXPECT().
			CreatePaymentIntent(mock.Anything, "sk_usd", gateway.IntentParams{
				Amount:   25000,
				Currency: entities.USD,
				Metadata: map[string]string{"item_id": "1", "product_name": "Mug"},
			}).
			Return(entities.PaymentIntent{ID: "pi_1", ClientSecret: "secret"}, nil).Once()

		intent, err := svc.ItemPaymentIntent(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "secret", intent.ClientSecret)
		assert.Equal(t, "pk_usd", intent.PublishableKey)
	})

	t.Run("missing credential", func(t *testing.T) {
		svc, m := newPaymentService(t, gateway.Keyring{})
		m.items.EXPECT().GetItemByID(mock.Anything, int64(1)).Return(item, nil)

		_, err := svc.ItemPaymentIntent(context.Background(), 1)
		assert.ErrorIs(t, err, entities.ErrMissingCredential)
	})

	t.Run("item not found", func(t *testing.T) {
		svc, m := newPaymentService(t, testKeys)
		m.items.EXPECT().GetItemByID(mock.Anything, int64(1)).Return(entities.Item{}, entities.ErrItemNotFound).Once()

		_, err := svc.ItemPaymentIntent(context.Background(), 1)
		assert.ErrorIs(t, err, entities.ErrItemNotFound)
	})

	t.Run("gateway error", func(t *testing.T) {
		svc, m := newPaymentService(t, testKeys)
		m.items.EXPECT().GetItemByID(mock.Anything, int64(1)).Return(item, nil)
		gwErr := &entities.GatewayError{Op: "create payment intent", Message: "Invalid API Key provided"}
		m.gateway.EXPECT().CreatePaymentIntent(mock.Anything, "sk_usd", mock.Anything).
			Return(entities.PaymentIntent{}, gwErr)

		_, err := svc.ItemPaymentIntent(context.Background(), 1)
		var target *entities.GatewayError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "Invalid API Key provided", target.Error())
	})
}

func TestPaymentService_ItemCheckoutSession(t *testing.T) {
	item := entities.Item{
		ID:          1,
		Name:        "Mug",
		Description: "Big mug",
		Price:       decimal.RequireFromString("10.00"),
		Currency:    entities.EUR,
	}

	svc, m := newPaymentService(t, testKeys)
	m.items.EXPECT().GetItemByID(mock.Anything, int64(1)).Return(item, nil)
	m.gateway.EXPECT().
		CreateCheckoutSession(mock.Anything, "sk_default", gateway.SessionParams{
			LineItems: []gateway.LineItem{{
				Name:        "Mug",
				Description: "Big mug",
				Currency:    entities.EUR,
				UnitAmount:  1000,
				Quantity:    1,
			}},
			SuccessURL: urls.Success,
			CancelURL:  urls.Cancel,
		}).
		Return("cs_1", nil).Once()

	id, err := svc.ItemCheckoutSession(context.Background(), 1, urls)
	require.NoError(t, err)
	assert.Equal(t, "cs_1", id)
}

func TestPaymentService_OrderPaymentIntent(t *testing.T) {
	t.Run("discount materialized before intent", func(t *testing.T) {
		order := exampleOrder()
		order.Discount = &entities.Discount{OrderID: 7, PercentOff: 10}

		svc, m := newPaymentService(t, testKeys)
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil)
		m.gateway.EXPECT().
			CreateCoupon(mock.Anything, "sk_usd", mock.MatchedBy(func(p gateway.CouponParams) bool {
				return p.PercentOff == 10 && p.Name == "Discount 10% for Order #7" && p.IdempotencyKey != ""
			})).
			Return("co_1", nil).Once()
		m.adjustments.EXPECT().SetCouponID(mock.Anything, int64(7), "co_1").Return("co_1", nil).Once()
		m.gateway.EXPECT().
			CreatePaymentIntent(mock.Anything, "sk_usd", gateway.IntentParams{
				Amount:   25000,
				Currency: entities.USD,
				Metadata: map[string]string{"order_id": "7", "type": "order"},
				CouponID: "co_1",
			}).
			Return(entities.PaymentIntent{ID: "pi_1", ClientSecret: "secret"}, nil).Once()

		intent, err := svc.OrderPaymentIntent(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, "secret", intent.ClientSecret)
		assert.Equal(t, "pk_usd", intent.PublishableKey)
	})

	t.Run("tax enables automatic tax", func(t *testing.T) {
		order := exampleOrder()
		order.Tax = &entities.Tax{OrderID: 7, Rate: decimal.RequireFromString("20.00"), TaxID: "txr_1"}

		svc, m := newPaymentService(t, testKeys)
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil)
		m.gateway.EXPECT().
			CreatePaymentIntent(mock.Anything, "sk_usd", mock.MatchedBy(func(p gateway.IntentParams) bool {
				return p.AutomaticTax && p.CouponID == "" && p.Amount == 25000
			})).
			Return(entities.PaymentIntent{ClientSecret: "secret"}, nil).Once()

		_, err := svc.OrderPaymentIntent(context.Background(), 7)
		require.NoError(t, err)
	})

	t.Run("zero percent discount is not attached", func(t *testing.T) {
		order := exampleOrder()
		order.Discount = &entities.Discount{OrderID: 7, PercentOff: 0}

		svc, m := newPaymentService(t, testKeys)
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil)
		m.gateway.EXPECT().
			CreatePaymentIntent(mock.Anything, "sk_usd", mock.MatchedBy(func(p gateway.IntentParams) bool {
				return p.CouponID == "" && p.Amount == 25000
			})).
			Return(entities.PaymentIntent{ClientSecret: "secret"}, nil).Once()

		_, err := svc.OrderPaymentIntent(context.Background(), 7)
		require.NoError(t, err)
	})

	t.Run("mixed currencies make no gateway call", func(t *testing.T) {
		order := exampleOrder()
		order.Items = append(order.Items, entities.OrderItem{ID: 3, Item: itemE, Quantity: 1})
		order.Discount = &entities.Discount{OrderID: 7, PercentOff: 10}

		svc, m := newPaymentService(t, testKeys)
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil)

		_, err := svc.OrderPaymentIntent(context.Background(), 7)
		assert.ErrorIs(t, err, entities.ErrMixedCurrencies)
	})

	t.Run("empty order", func(t *testing.T) {
		svc, m := newPaymentService(t, testKeys)
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(entities.Order{ID: 7}, nil)

		_, err := svc.OrderPaymentIntent(context.Background(), 7)
		assert.ErrorIs(t, err, entities.ErrEmptyOrder)
	})

	t.Run("coupon failure fails the request", func(t *testing.T) {
		order := exampleOrder()
		order.Discount = &entities.Discount{OrderID: 7, PercentOff: 10}
		gwErr := &entities.GatewayError{Op: "create coupon", Message: "Invalid percent_off"}

		svc, m := newPaymentService(t, testKeys)
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil)
		m.gateway.EXPECT().CreateCoupon(mock.Anything, "sk_usd", mock.Anything).Return("", gwErr).Once()

		_, err := svc.OrderPaymentIntent(context.Background(), 7)

		var adjErr *entities.AdjustmentError
		require.ErrorAs(t, err, &adjErr)
		assert.Equal(t, entities.AdjustmentDiscount, adjErr.Kind)
		assert.Equal(t, int64(7), adjErr.OrderID)
		assert.ErrorIs(t, err, gwErr)
	})

	t.Run("order not found", func(t *testing.T) {
		svc, m := newPaymentService(t, testKeys)
		m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(entities.Order{}, entities.ErrOrderNotFound)

		_, err := svc.OrderPaymentIntent(context.Background(), 7)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

func TestPaymentService_OrderCheckoutSession(t *testing.T) {
	order := exampleOrder()
	order.Discount = &entities.Discount{OrderID: 7, PercentOff: 10, CouponID: "co_1"}
	order.Tax = &entities.Tax{OrderID: 7, Rate: decimal.RequireFromString("20.00")}

	svc, m := newPaymentService(t, testKeys)
	m.orders.EXPECT().GetOrderByID(mock.Anything, int64(7)).Return(order, nil)
	m.gateway.EXPECT().
		CreateTaxRate(mock.Anything, "sk_usd", mock.MatchedBy(func(p gateway.TaxRateParams) bool {
			return p.DisplayName == "Tax 20.00%" && !p.Inclusive && p.Country == "RU"
		})).
		Return("txr_1", nil).Once()
	m.adjustments.EXPECT().SetTaxID(mock.Anything, int64(7), "txr_1").Return("txr_1", nil).Once()
	m.gateway.EXPECT().
		CreateCheckoutSession(mock.Anything, "sk_usd", gateway.SessionParams{
			LineItems: []gateway.LineItem{
				{Name: "A", Description: "Quantity: 2", Currency: entities.USD, UnitAmount: 10000, Quantity: 2},
				{Name: "B", Description: "Quantity: 1", Currency: entities.USD, UnitAmount: 5000, Quantity: 1},
			},
			SuccessURL: urls.Success,
			CancelURL:  urls.Cancel,
			CouponID:   "co_1",
			TaxRateID:  "txr_1",
		}).
		Return("cs_7", nil).Once()

	id, err := svc.OrderCheckoutSession(context.Background(), 7, urls)
	require.NoError(t, err)
	assert.Equal(t, "cs_7", id)
}

func TestPaymentService_MaterializeDiscount(t *testing.T) {
	t.Run("second call makes no requests", func(t *testing.T) {
		order := exampleOrder()
		order.Discount = &entities.Discount{OrderID: 7, PercentOff: 10}

		svc, m := newPaymentService(t, testKeys)
		m.gateway.EXPECT().CreateCoupon(mock.Anything, "sk_usd", mock.Anything).Return("co_1", nil).Once()
		m.adjustments.EXPECT().SetCouponID(mock.Anything, int64(7), "co_1").Return("co_1", nil).Once()

		first := svc.MaterializeDiscount(context.Background(), &order, "sk_usd")
		require.True(t, first.OK())
		assert.True(t, first.Created)
		assert.Equal(t, "co_1", first.ExternalID)
		assert.Equal(t, "co_1", order.Discount.CouponID)

		second := svc.MaterializeDiscount(context.Background(), &order, "sk_usd")
		require.True(t, second.OK())
		assert.False(t, second.Created)
		assert.Equal(t, "co_1", second.ExternalID)
	})

	t.Run("existing coupon is kept", func(t *testing.T) {
		order := exampleOrder()
		order.Discount = &entities.Discount{OrderID: 7, PercentOff: 10, CouponID: "co_old"}

		svc, _ := newPaymentService(t, testKeys)

		res := svc.MaterializeDiscount(context.Background(), &order, "sk_usd")
		require.True(t, res.OK())
		assert.False(t, res.Created)
		assert.Equal(t, "co_old", order.Discount.CouponID)
	})

	t.Run("no discount", func(t *testing.T) {
		order := exampleOrder()
		svc, _ := newPaymentService(t, testKeys)

		res := svc.MaterializeDiscount(context.Background(), &order, "sk_usd")
		assert.True(t, res.OK())
		assert.Empty(t, res.ExternalID)
	})

	t.Run("zero percent creates no coupon", func(t *testing.T) {
		order := exampleOrder()
		order.Discount = &entities.Discount{OrderID: 7, PercentOff: 0}
		svc, _ := newPaymentService(t, testKeys)

		res := svc.MaterializeDiscount(context.Background(), &order, "sk_usd")
		assert.True(t, res.OK())
		assert.False(t, res.Created)
		assert.Empty(t, order.Discount.CouponID)
	})

	t.Run("cancelled request does not cancel creation", func(t *testing.T) {
		order := exampleOrder()
		order.Discount = &entities.Discount{OrderID: 7, PercentOff: 10}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc, m := newPaymentService(t, testKeys)
		m.gateway.EXPECT().CreateCoupon(mock.Anything, "sk_usd", mock.Anything).
			RunAndReturn(func(ctx context.Context, _ string, _ gateway.CouponParams) (string, error) {
				return "co_1", ctx.Err()
			}).Once()
		m.adjustments.EXPECT().SetCouponID(mock.Anything, int64(7), "co_1").Return("co_1", nil).Once()

		res := svc.MaterializeDiscount(ctx, &order, "sk_usd")
		require.True(t, res.OK())
		assert.Equal(t, "co_1", order.Discount.CouponID)
	})

	t.Run("stored id wins", func(t *testing.T) {
		order := exampleOrder()
		order.Discount = &entities.Discount{OrderID: 7, PercentOff: 10}

		svc, m := newPaymentService(t, testKeys)
		m.gateway.EXPECT().CreateCoupon(mock.Anything, "sk_usd", mock.Anything).Return("co_2", nil).Once()
		m.adjustments.EXPECT().SetCouponID(mock.Anything, int64(7), "co_2").Return("co_1", nil).Once()

		res := svc.MaterializeDiscount(context.Background(), &order, "sk_usd")
		require.True(t, res.OK())
		assert.Equal(t, "co_1", order.Discount.CouponID)
	})

	t.Run("same idempotency key for the same discount", func(t *testing.T) {
		var keys []string
		svc, m := newPaymentService(t, testKeys)
		m.gateway.EXPECT().CreateCoupon(mock.Anything, "sk_usd", mock.Anything).
			Run(func(_ context.Context, _ string, p gateway.CouponParams) {
				keys = append(keys, p.IdempotencyKey)
			}).
			Return("co_1", nil).Twice()
		m.adjustments.EXPECT().SetCouponID(mock.Anything, int64(7), "co_1").Return("co_1", nil).Twice()

		for range 2 {
			order := exampleOrder()
			order.Discount = &entities.Discount{OrderID: 7, PercentOff: 10}
			require.True(t, svc.MaterializeDiscount(context.Background(), &order, "sk_usd").OK())
		}

		require.Len(t, keys, 2)
		assert.Equal(t, keys[0], keys[1])
	})

	t.Run("persist failure", func(t *testing.T) {
		order := exampleOrder()
		order.Discount = &entities.Discount{OrderID: 7, PercentOff: 10}
		dbErr := errors.New("db error")

		svc, m := newPaymentService(t, testKeys)
		m.gateway.EXPECT().CreateCoupon(mock.Anything, "sk_usd", mock.Anything).Return("co_1", nil).Once()
		m.adjustments.EXPECT().SetCouponID(mock.Anything, int64(7), "co_1").Return("", dbErr).Once()

		res := svc.MaterializeDiscount(context.Background(), &order, "sk_usd")
		assert.False(t, res.OK())
		assert.ErrorIs(t, res.Err, dbErr)
		assert.Empty(t, order.Discount.CouponID)
	})
}

func TestPaymentService_MaterializeDiscountConcurrent(t *testing.T) {
	const workers = 8

	var calls atomic.Int32
	release := make(chan struct{})

	svc, m := newPaymentService(t, testKeys)
	m.gateway.EXPECT().CreateCoupon(mock.Anything, "sk_usd", mock.Anything).
		RunAndReturn(func(context.Context, string, gateway.CouponParams) (string, error) {
			calls.Add(1)
			<-release
			return "co_1", nil
		}).Maybe()
	m.adjustments.EXPECT().SetCouponID(mock.Anything, int64(7), "co_1").Return("co_1", nil).Maybe()

	var started, done sync.WaitGroup
	results := make([]entities.AdjustmentResult, workers)
	orders := make([]entities.Order, workers)
	for i := range workers {
		orders[i] = exampleOrder()
		orders[i].Discount = &entities.Discount{OrderID: 7, PercentOff: 10}

		started.Add(1)
		done.Add(1)
		go func() {
			defer done.Done()
			started.Done()
			results[i] = svc.MaterializeDiscount(context.Background(), &orders[i], "sk_usd")
		}()
	}

	// все запросы должны успеть попасть в один и тот же вызов
	started.Wait()
	time.Sleep(50 * time.Millisecond)
	close(release)
	done.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := range workers {
		require.True(t, results[i].OK())
		assert.Equal(t, "co_1", results[i].ExternalID)
		assert.Equal(t, "co_1", orders[i].Discount.CouponID)
	}
}

func TestPaymentService_MaterializeTax(t *testing.T) {
	order := exampleOrder()
	order.Tax = &entities.Tax{OrderID: 7, Rate: decimal.RequireFromString("7.5")}

	svc, m := newPaymentService(t, testKeys)
	m.gateway.EXPECT().
		CreateTaxRate(mock.Anything, "sk_usd", mock.MatchedBy(func(p gateway.TaxRateParams) bool {
			return p.DisplayName == "Tax 7.50%" && p.Percentage.Equal(decimal.RequireFromString("7.5"))
		})).
		Return("txr_1", nil).Once()
	m.adjustments.EXPECT().SetTaxID(mock.Anything, int64(7), "txr_1").Return("txr_1", nil).Once()

	res := svc.MaterializeTax(context.Background(), &order, "sk_usd")
	require.True(t, res.OK())
	assert.Equal(t, entities.AdjustmentTax, res.Kind)
	assert.Equal(t, "txr_1", order.Tax.TaxID)

	res = svc.MaterializeTax(context.Background(), &order, "sk_usd")
	assert.False(t, res.Created)
}

func TestPaymentService_PublishableKey(t *testing.T) {
	svc, _ := newPaymentService(t, testKeys)

	assert.Equal(t, "pk_usd", svc.PublishableKey(entities.USD))
	assert.Equal(t, "pk_default", svc.PublishableKey(entities.RUB))
}
