package gateway_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/SergeyBogomolovv/payment-service/internal/gateway"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stripeCall struct {
	path   string
	auth   string
	idem   string
	values url.Values
}

// fakeStripe answers every request with the given status and body and records
// what it received.
func fakeStripe(t *testing.T, status int, body string) (*gateway.StripeClient, *[]stripeCall) {
	t.Helper()

	var calls []stripeCall
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		values, err := url.ParseQuery(string(raw))
		require.NoError(t, err)

		calls = append(calls, stripeCall{
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			idem:   r.Header.Get("Idempotency-Key"),
			values: values,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gateway.NewStripeClient(logger, srv.URL), &calls
}

func TestStripeClient_CreateCheckoutSession(t *testing.T) {
	client, calls := fakeStripe(t, http.StatusOK, `{"id":"cs_test_1","object":"checkout.session"}`)

	id, err := client.CreateCheckoutSession(context.Background(), "sk_test_usd", gateway.SessionParams{
		LineItems: []gateway.LineItem{
			{Name: "Mug", Description: "Quantity: 2", Currency: entities.USD, UnitAmount: 1000, Quantity: 2},
			{Name: "Pen", Currency: entities.USD, UnitAmount: 50, Quantity: 1},
		},
		SuccessURL: "http://localhost:8080/success",
		CancelURL:  "http://localhost:8080/cancel",
		CouponID:   "co_1",
		TaxRateID:  "txr_1",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", id)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/v1/checkout/sessions", call.path)
	assert.Equal(t, "Bearer sk_test_usd", call.auth)

	v := call.values
	assert.Equal(t, "payment", v.Get("mode"))
	assert.Equal(t, "http://localhost:8080/success", v.Get("success_url"))
	assert.Equal(t, "http://localhost:8080/cancel", v.Get("cancel_url"))
	assert.Equal(t, "usd", v.Get("line_items[0][price_data][currency]"))
	assert.Equal(t, "Mug", v.Get("line_items[0][price_data][product_data][name]"))
	assert.Equal(t, "Quantity: 2", v.Get("line_items[0][price_data][product_data][description]"))
	assert.Equal(t, "1000", v.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "2", v.Get("line_items[0][quantity]"))
	assert.Equal(t, "txr_1", v.Get("line_items[0][tax_rates][0]"))
	assert.Equal(t, "txr_1", v.Get("line_items[1][tax_rates][0]"))
	assert.Equal(t, "co_1", v.Get("discounts[0][coupon]"))
	assert.False(t, v.Has("line_items[1][price_data][product_data][description]"))
}

func TestStripeClient_CreatePaymentIntent(t *testing.T) {
	client, calls := fakeStripe(t, http.StatusOK,
		`{"id":"pi_1","object":"payment_intent","client_secret":"pi_1_secret_abc"}`)

	intent, err := client.CreatePaymentIntent(context.Background(), "sk_test", gateway.IntentParams{
		Amount:       25000,
		Currency:     entities.USD,
		Metadata:     map[string]string{"order_id": "7", "type": "order"},
		CouponID:     "co_1",
		AutomaticTax: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "pi_1_secret_abc", intent.ClientSecret)

	require.Len(t, *calls, 1)
	v := (*calls)[0].values
	assert.Equal(t, "/v1/payment_intents", (*calls)[0].path)
	assert.Equal(t, "25000", v.Get("amount"))
	assert.Equal(t, "usd", v.Get("currency"))
	assert.Equal(t, "7", v.Get("metadata[order_id]"))
	assert.Equal(t, "order", v.Get("metadata[type]"))
	assert.Equal(t, "co_1", v.Get("discounts[0][coupon]"))
	assert.Equal(t, "true", v.Get("automatic_tax[enabled]"))
}

func TestStripeClient_CreateCoupon(t *testing.T) {
	client, calls := fakeStripe(t, http.StatusOK, `{"id":"co_123","object":"coupon"}`)

	id, err := client.CreateCoupon(context.Background(), "sk_test", gateway.CouponParams{
		PercentOff:     10,
		Name:           "Discount 10% for Order #7",
		IdempotencyKey: "idem-coupon",
	})
	require.NoError(t, err)
	assert.Equal(t, "co_123", id)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/v1/coupons", call.path)
	assert.Equal(t, "idem-coupon", call.idem)
	assert.Equal(t, "once", call.values.Get("duration"))
	assert.Equal(t, "Discount 10% for Order #7", call.values.Get("name"))

	percent, err := strconv.ParseFloat(call.values.Get("percent_off"), 64)
	require.NoError(t, err)
	assert.Equal(t, 10.0, percent)
}

func TestStripeClient_CreateTaxRate(t *testing.T) {
	client, calls := fakeStripe(t, http.StatusOK, `{"id":"txr_1","object":"tax_rate"}`)

	id, err := client.CreateTaxRate(context.Background(), "sk_test", gateway.TaxRateParams{
		DisplayName:    "Tax 20.00%",
		Percentage:     decimal.RequireFromString("20.00"),
		Country:        "RU",
		IdempotencyKey: "idem-tax",
	})
	require.NoError(t, err)
	assert.Equal(t, "txr_1", id)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, "/v1/tax_rates", call.path)
	assert.Equal(t, "idem-tax", call.idem)
	assert.Equal(t, "Tax 20.00%", call.values.Get("display_name"))
	assert.Equal(t, "false", call.values.Get("inclusive"))
	assert.Equal(t, "RU", call.values.Get("country"))

	percent, err := strconv.ParseFloat(call.values.Get("percentage"), 64)
	require.NoError(t, err)
	assert.Equal(t, 20.0, percent)
}

func TestStripeClient_Error(t *testing.T) {
	client, _ := fakeStripe(t, http.StatusBadRequest,
		`{"error":{"type":"invalid_request_error","message":"Invalid API Key provided"}}`)

	_, err := client.CreateCoupon(context.Background(), "sk_bad", gateway.CouponParams{PercentOff: 10, Name: "x"})
	require.Error(t, err)

	var gwErr *entities.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, "Invalid API Key provided", gwErr.Error())
	assert.Equal(t, "create coupon", gwErr.Op)
}
