package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/SergeyBogomolovv/payment-service/internal/gateway"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, secretKey string, p gateway.SessionParams) (string, error)
	CreatePaymentIntent(ctx context.Context, secretKey string, p gateway.IntentParams) (entities.PaymentIntent, error)
	CreateCoupon(ctx context.Context, secretKey string, p gateway.CouponParams) (string, error)
	CreateTaxRate(ctx context.Context, secretKey string, p gateway.TaxRateParams) (string, error)
}

type Keyring interface {
	Resolve(currency entities.Currency) (gateway.Credential, error)
	PublishableKey(currency entities.Currency) string
}

type OrderGetter interface {
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
}

type AdjustmentRepo interface {
	// Возвращают id, который в итоге оказался в базе (побеждает первая запись)
	SetCouponID(ctx context.Context, orderID int64, couponID string) (string, error)
	SetTaxID(ctx context.Context, orderID int64, taxID string) (string, error)
}

type paymentService struct {
	logger      *slog.Logger
	gateway     Gateway
	keys        Keyring
	items       ItemRepo
	orders      OrderGetter
	adjustments AdjustmentRepo
	taxCountry  string

	inflight singleflight.Group
}

func NewPaymentService(
	logger *slog.Logger,
	gw Gateway,
	keys Keyring,
	items ItemRepo,
	orders OrderGetter,
	adjustments AdjustmentRepo,
	taxCountry string,
) *paymentService {
	return &paymentService{
		logger:      logger.With(slog.String("service", "payment")),
		gateway:     gw,
		keys:        keys,
		items:       items,
		orders:      orders,
		adjustments: adjustments,
		taxCountry:  taxCountry,
	}
}

func (s *paymentService) PublishableKey(currency entities.Currency) string {
	return s.keys.PublishableKey(currency)
}

// ItemCheckoutSession starts a hosted checkout for one unit of the item.
func (s *paymentService) ItemCheckoutSession(ctx context.Context, itemID int64, urls entities.RedirectURLs) (string, error) {
	item, err := getItem(ctx, s.items, itemID)
	if err != nil {
		return "", err
	}

	cred, err := s.keys.Resolve(item.Currency)
	if err != nil {
		return "", err
	}

	sessionID, err := s.gateway.CreateCheckoutSession(ctx, cred.SecretKey, gateway.SessionParams{
		LineItems: []gateway.LineItem{{
			Name:        item.Name,
			Description: item.Description,
			Currency:    item.Currency,
			UnitAmount:  entities.MinorUnits(item.Price),
			Quantity:    1,
		}},
		SuccessURL: urls.Success,
		CancelURL:  urls.Cancel,
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("checkout session created", slog.Int64("item_id", itemID), slog.String("session_id", sessionID))
	return sessionID, nil
}

func (s *paymentService) ItemPaymentIntent(ctx context.Context, itemID int64) (entities.PaymentIntent, error) {
	item, err := getItem(ctx, s.items, itemID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	cred, err := s.keys.Resolve(item.Currency)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, cred.SecretKey, gateway.IntentParams{
		Amount:   entities.MinorUnits(item.Price),
		Currency: item.Currency,
		Metadata: map[string]string{
			"item_id":      strconv.FormatInt(item.ID, 10),
			"product_name": item.Name,
		},
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	intent.PublishableKey = cred.PublishableKey
	s.logger.Info("payment intent created", slog.Int64("item_id", itemID), slog.String("intent_id", intent.ID))
	return intent, nil
}

// OrderPaymentIntent charges the order total. Pending discount and tax are
// created in the gateway first; if that fails no intent is created.
func (s *paymentService) OrderPaymentIntent(ctx context.Context, orderID int64) (entities.PaymentIntent, error) {
	order, currency, cred, err := s.prepareOrder(ctx, orderID)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	params := gateway.IntentParams{
		Amount:   entities.MinorUnits(order.TotalAmount),
		Currency: currency,
		Metadata: map[string]string{
			"order_id": strconv.FormatInt(order.ID, 10),
			"type":     "order",
		},
	}
	if order.Discount != nil {
		params.CouponID = order.Discount.CouponID
	}
	if order.Tax != nil {
		params.AutomaticTax = true
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, cred.SecretKey, params)
	if err != nil {
		return entities.PaymentIntent{}, err
	}

	intent.PublishableKey = cred.PublishableKey
	s.logger.Info("payment intent created",
		slog.Int64("order_id", orderID),
		slog.String("intent_id", intent.ID),
		slog.Int64("amount", params.Amount),
	)
	return intent, nil
}

// OrderCheckoutSession starts a hosted checkout with one line per order item.
func (s *paymentService) OrderCheckoutSession(ctx context.Context, orderID int64, urls entities.RedirectURLs) (string, error) {
	order, currency, cred, err := s.prepareOrder(ctx, orderID)
	if err != nil {
		return "", err
	}

	params := gateway.SessionParams{
		LineItems:  make([]gateway.LineItem, 0, len(order.Items)),
		SuccessURL: urls.Success,
		CancelURL:  urls.Cancel,
	}
	for _, oi := range order.Items {
		params.LineItems = append(params.LineItems, gateway.LineItem{
			Name:        oi.Item.Name,
			Description: fmt.Sprintf("Quantity: %d", oi.Quantity),
			Currency:    currency,
			UnitAmount:  entities.MinorUnits(oi.Item.Price),
			Quantity:    int64(oi.Quantity),
		})
	}
	if order.Discount != nil {
		params.CouponID = order.Discount.CouponID
	}
	if order.Tax != nil {
		params.TaxRateID = order.Tax.TaxID
	}

	sessionID, err := s.gateway.CreateCheckoutSession(ctx, cred.SecretKey, params)
	if err != nil {
		return "", err
	}

	s.logger.Info("checkout session created", slog.Int64("order_id", orderID), slog.String("session_id", sessionID))
	return sessionID, nil
}

// prepareOrder loads the repriced order, checks it can be charged in a
// single currency and materializes its adjustments.
func (s *paymentService) prepareOrder(ctx context.Context, orderID int64) (entities.Order, entities.Currency, gateway.Credential, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, "", gateway.Credential{}, err
	}

	currency, err := order.CheckoutCurrency()
	if err != nil {
		return entities.Order{}, "", gateway.Credential{}, err
	}

	cred, err := s.keys.Resolve(currency)
	if err != nil {
		return entities.Order{}, "", gateway.Credential{}, err
	}

	for _, res := range []entities.AdjustmentResult{
		s.MaterializeDiscount(ctx, &order, cred.SecretKey),
		s.MaterializeTax(ctx, &order, cred.SecretKey),
	} {
		if !res.OK() {
			return entities.Order{}, "", gateway.Credential{}, res.Err
		}
	}

	return order, currency, cred, nil
}

// MaterializeDiscount creates the coupon for the order's discount unless it
// already has one. The order is updated in place.
func (s *paymentService) MaterializeDiscount(ctx context.Context, order *entities.Order, secretKey string) entities.AdjustmentResult {
	res := entities.AdjustmentResult{Kind: entities.AdjustmentDiscount}

	// Скидка 0% не создаёт купон: Stripe требует percent_off > 0
	d := order.Discount
	if d == nil || d.PercentOff == 0 {
		return res
	}
	if d.CouponID != "" {
		res.ExternalID = d.CouponID
		return res
	}

	id, err := s.materialize(ctx, order.ID, res.Kind, func(ctx context.Context) (string, error) {
		couponID, err := s.gateway.CreateCoupon(ctx, secretKey, gateway.CouponParams{
			PercentOff:     d.PercentOff,
			Name:           fmt.Sprintf("Discount %d%% for Order #%d", d.PercentOff, order.ID),
			IdempotencyKey: idempotencyKey(order.ID, res.Kind, strconv.Itoa(d.PercentOff)),
		})
		if err != nil {
			return "", err
		}
		return s.adjustments.SetCouponID(ctx, order.ID, couponID)
	})
	if err != nil {
		res.Err = &entities.AdjustmentError{Kind: res.Kind, OrderID: order.ID, Err: err}
		return res
	}

	d.CouponID = id
	res.ExternalID = id
	res.Created = true
	return res
}

// MaterializeTax creates the tax rate for the order's tax unless it already
// has one. The order is updated in place.
func (s *paymentService) MaterializeTax(ctx context.Context, order *entities.Order, secretKey string) entities.AdjustmentResult {
	res := entities.AdjustmentResult{Kind: entities.AdjustmentTax}

	t := order.Tax
	if t == nil {
		return res
	}
	if t.TaxID != "" {
		res.ExternalID = t.TaxID
		return res
	}

	id, err := s.materialize(ctx, order.ID, res.Kind, func(ctx context.Context) (string, error) {
		taxID, err := s.gateway.CreateTaxRate(ctx, secretKey, gateway.TaxRateParams{
			DisplayName:    fmt.Sprintf("Tax %s%%", t.Rate.StringFixed(2)),
			Percentage:     t.Rate,
			Inclusive:      false,
			Country:        s.taxCountry,
			IdempotencyKey: idempotencyKey(order.ID, res.Kind, t.Rate.String()),
		})
		if err != nil {
			return "", err
		}
		return s.adjustments.SetTaxID(ctx, order.ID, taxID)
	})
	if err != nil {
		res.Err = &entities.AdjustmentError{Kind: res.Kind, OrderID: order.ID, Err: err}
		return res
	}

	t.TaxID = id
	res.ExternalID = id
	res.Created = true
	return res
}

// materialize collapses concurrent creations of the same adjustment in this
// process into one gateway call. The shared call outlives the cancellation of
// the request that started it.
func (s *paymentService) materialize(ctx context.Context, orderID int64, kind entities.AdjustmentKind, create func(ctx context.Context) (string, error)) (string, error) {
	key := fmt.Sprintf("order:%d:%s", orderID, kind)
	v, err, shared := s.inflight.Do(key, func() (any, error) {
		id, err := create(context.WithoutCancel(ctx))
		return id, err
	})
	if err != nil {
		s.logger.Error("failed to materialize adjustment",
			slog.Int64("order_id", orderID),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
		return "", err
	}

	id := v.(string)
	s.logger.Info("adjustment materialized",
		slog.Int64("order_id", orderID),
		slog.String("kind", string(kind)),
		slog.String("external_id", id),
		slog.Bool("shared", shared),
	)
	return id, nil
}

// idempotencyKey is stable for the same adjustment, so processes racing on
// one order get the same gateway object back.
func idempotencyKey(orderID int64, kind entities.AdjustmentKind, value string) string {
	name := fmt.Sprintf("order:%d:%s:%s", orderID, kind, value)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}
