package entities

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Discount mirrors a percent-off coupon in the payment gateway.
type Discount struct {
	OrderID    int64
	PercentOff int
	CouponID   string
}

// Tax mirrors an exclusive tax rate in the payment gateway.
type Tax struct {
	OrderID int64
	Rate    decimal.Decimal
	TaxID   string
}

type AdjustmentKind string

const (
	AdjustmentDiscount AdjustmentKind = "discount"
	AdjustmentTax      AdjustmentKind = "tax"
)

var (
	ErrDiscountNotFound = errors.New("discount not found")
	ErrTaxNotFound      = errors.New("tax not found")
	ErrInvalidPercent   = errors.New("percent off must be between 0 and 100")
)

// AdjustmentResult is the outcome of materializing a discount or tax in the
// gateway. Created is false when the external id already existed.
type AdjustmentResult struct {
	Kind       AdjustmentKind
	ExternalID string
	Created    bool
	Err        error
}

func (r AdjustmentResult) OK() bool {
	return r.Err == nil
}

type AdjustmentError struct {
	Kind    AdjustmentKind
	OrderID int64
	Err     error
}

func (e *AdjustmentError) Error() string {
	return fmt.Sprintf("failed to create %s for order #%d: %v", e.Kind, e.OrderID, e.Err)
}

func (e *AdjustmentError) Unwrap() error {
	return e.Err
}
