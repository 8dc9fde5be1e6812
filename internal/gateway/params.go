package gateway

import (
	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/shopspring/decimal"
)

type LineItem struct {
	Name        string
	Description string
	Currency    entities.Currency
	UnitAmount  int64
	Quantity    int64
}

type SessionParams struct {
	LineItems  []LineItem
	SuccessURL string
	CancelURL  string

	// Optional, attached to the whole session and to every line respectively.
	CouponID  string
	TaxRateID string
}

type IntentParams struct {
	Amount       int64
	Currency     entities.Currency
	Metadata     map[string]string
	CouponID     string
	AutomaticTax bool
}

type CouponParams struct {
	PercentOff     int
	Name           string
	IdempotencyKey string
}

type TaxRateParams struct {
	DisplayName    string
	Percentage     decimal.Decimal
	Inclusive      bool
	Country        string
	IdempotencyKey string
}
