package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeClient calls the Stripe API. It keeps no API key of its own: every
// call receives the secret key to use, so requests for different currencies
// never share credentials.
type StripeClient struct {
	logger   *slog.Logger
	backends *stripe.Backends
}

// NewStripeClient builds a client. apiURL overrides the Stripe endpoint and is
// meant for stubs; leave it empty in production.
func NewStripeClient(logger *slog.Logger, apiURL string) *StripeClient {
	logger = logger.With(slog.String("gateway", "stripe"))

	backend := func(t stripe.SupportedBackend) stripe.Backend {
		cfg := &stripe.BackendConfig{
			LeveledLogger: &leveledLogger{logger: logger},
			// Повторов нет: ошибка шлюза сразу уходит вызывающему
			MaxNetworkRetries: stripe.Int64(0),
		}
		if apiURL != "" {
			cfg.URL = stripe.String(apiURL)
		}
		return stripe.GetBackendWithConfig(t, cfg)
	}

	return &StripeClient{
		logger: logger,
		backends: &stripe.Backends{
			API:     backend(stripe.APIBackend),
			Connect: backend(stripe.ConnectBackend),
			Uploads: backend(stripe.UploadsBackend),
		},
	}
}

func (c *StripeClient) api(secretKey string) *client.API {
	return client.New(secretKey, c.backends)
}

func (c *StripeClient) CreateCheckoutSession(ctx context.Context, secretKey string, p SessionParams) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(p.SuccessURL),
		CancelURL:          stripe.String(p.CancelURL),
	}
	params.Context = ctx

	for _, li := range p.LineItems {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(li.Name),
		}
		if li.Description != "" {
			product.Description = stripe.String(li.Description)
		}

		item := &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(string(li.Currency)),
				ProductData: product,
				UnitAmount:  stripe.Int64(li.UnitAmount),
			},
			Quantity: stripe.Int64(li.Quantity),
		}
		if p.TaxRateID != "" {
			item.TaxRates = stripe.StringSlice([]string{p.TaxRateID})
		}
		params.LineItems = append(params.LineItems, item)
	}

	if p.CouponID != "" {
		params.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{Coupon: stripe.String(p.CouponID)},
		}
	}

	var id string
	err := c.observe("create_checkout_session", func() error {
		s, err := c.api(secretKey).CheckoutSessions.New(params)
		if err != nil {
			return err
		}
		id = s.ID
		return nil
	})
	if err != nil {
		return "", wrapError("create checkout session", err)
	}
	return id, nil
}

func (c *StripeClient) CreatePaymentIntent(ctx context.Context, secretKey string, p IntentParams) (entities.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.Amount),
		Currency: stripe.String(string(p.Currency)),
	}
	params.Context = ctx

	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}
	if p.CouponID != "" {
		params.AddExtra("discounts[0][coupon]", p.CouponID)
	}
	if p.AutomaticTax {
		params.AddExtra("automatic_tax[enabled]", "true")
	}

	var intent entities.PaymentIntent
	err := c.observe("create_payment_intent", func() error {
		pi, err := c.api(secretKey).PaymentIntents.New(params)
		if err != nil {
			return err
		}
		intent = entities.PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}
		return nil
	})
	if err != nil {
		return entities.PaymentIntent{}, wrapError("create payment intent", err)
	}
	return intent, nil
}

func (c *StripeClient) CreateCoupon(ctx context.Context, secretKey string, p CouponParams) (string, error) {
	params := &stripe.CouponParams{
		PercentOff: stripe.Float64(float64(p.PercentOff)),
		Duration:   stripe.String(string(stripe.CouponDurationOnce)),
		Name:       stripe.String(p.Name),
	}
	params.Context = ctx
	if p.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(p.IdempotencyKey)
	}

	var id string
	err := c.observe("create_coupon", func() error {
		coupon, err := c.api(secretKey).Coupons.New(params)
		if err != nil {
			return err
		}
		id = coupon.ID
		return nil
	})
	if err != nil {
		return "", wrapError("create coupon", err)
	}
	return id, nil
}

func (c *StripeClient) CreateTaxRate(ctx context.Context, secretKey string, p TaxRateParams) (string, error) {
	params := &stripe.TaxRateParams{
		DisplayName: stripe.String(p.DisplayName),
		Percentage:  stripe.Float64(p.Percentage.InexactFloat64()),
		Inclusive:   stripe.Bool(p.Inclusive),
		Country:     stripe.String(p.Country),
	}
	params.Context = ctx
	if p.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(p.IdempotencyKey)
	}

	var id string
	err := c.observe("create_tax_rate", func() error {
		rate, err := c.api(secretKey).TaxRates.New(params)
		if err != nil {
			return err
		}
		id = rate.ID
		return nil
	})
	if err != nil {
		return "", wrapError("create tax rate", err)
	}
	return id, nil
}

func (c *StripeClient) observe(op string, fn func() error) error {
	start := time.Now()
	err := fn()

	status := "ok"
	if err != nil {
		status = "error"
		c.logger.Warn("stripe request failed", slog.String("op", op), slog.Any("error", err))
	}
	gatewayRequestsTotal.WithLabelValues(op, status).Inc()
	gatewayRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	return err
}

func wrapError(op string, err error) error {
	gwErr := &entities.GatewayError{Op: op, Err: fmt.Errorf("failed to %s: %w", op, err)}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		gwErr.Message = stripeErr.Msg
	}
	return gwErr
}
