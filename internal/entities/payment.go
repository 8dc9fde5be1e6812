package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

// PaymentIntent is what the front-end needs to confirm a payment.
type PaymentIntent struct {
	ID             string
	ClientSecret   string
	PublishableKey string
}

// RedirectURLs are absolute URLs the hosted checkout returns to.
type RedirectURLs struct {
	Success string
	Cancel  string
}

var ErrMissingCredential = errors.New("stripe secret key not configured")

// GatewayError wraps a failed call to the payment gateway. Message is the
// gateway's own description and is safe to show to the client.
type GatewayError struct {
	Op      string
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

var hundred = decimal.NewFromInt(100)

// MinorUnits converts an amount to cents/kopecks, truncating fractions.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).IntPart()
}
