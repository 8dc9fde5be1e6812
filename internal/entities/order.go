package entities

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID       int64
	Item     Item
	Quantity int
}

// Subtotal is price × quantity of a single line.
func (oi OrderItem) Subtotal() decimal.Decimal {
	return oi.Item.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

type Order struct {
	ID          int64
	Currency    Currency
	TotalAmount decimal.Decimal
	CreatedAt   time.Time

	Items []OrderItem

	// nil, если скидка/налог к заказу не привязаны
	Discount *Discount
	Tax      *Tax
}

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrCurrencyMismatch = errors.New("item currency differs from order currency")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrMixedCurrencies  = errors.New("order contains items in different currencies, create a separate order for each currency")
	ErrEmptyOrder       = errors.New("order has no items")
)

func NewOrder(currency Currency) Order {
	return Order{Currency: currency, TotalAmount: decimal.Zero}
}

// AddItem appends a line to the order. The order currency is fixed at
// creation, so items priced in another currency are rejected.
func (o *Order) AddItem(item Item, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if o.Currency != "" && item.Currency != o.Currency {
		return ErrCurrencyMismatch
	}
	o.Items = append(o.Items, OrderItem{Item: item, Quantity: quantity})
	return nil
}

// CalculateTotal sums price × quantity over all lines, stores the result in
// TotalAmount and returns it. An order without lines totals zero.
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, oi := range o.Items {
		total = total.Add(oi.Subtotal())
	}
	o.TotalAmount = total
	return total
}

// GroupByCurrency partitions order lines by the currency of their item.
func (o Order) GroupByCurrency() map[Currency][]OrderItem {
	groups := make(map[Currency][]OrderItem)
	for _, oi := range o.Items {
		groups[oi.Item.Currency] = append(groups[oi.Item.Currency], oi)
	}
	return groups
}

// EffectiveCurrency is the currency of the first line, then the order's own
// currency, then DefaultCurrency.
func (o Order) EffectiveCurrency() Currency {
	if len(o.Items) > 0 {
		return o.Items[0].Item.Currency
	}
	if o.Currency != "" {
		return o.Currency
	}
	return DefaultCurrency
}

// CheckoutCurrency returns the single currency the order can be charged in.
func (o Order) CheckoutCurrency() (Currency, error) {
	if len(o.Items) == 0 {
		return "", ErrEmptyOrder
	}
	groups := o.GroupByCurrency()
	if len(groups) > 1 {
		return "", ErrMixedCurrencies
	}
	return o.EffectiveCurrency(), nil
}

type OrderLine struct {
	ItemID   int64
	Quantity int
}

// OrderDraft describes an order that is not stored yet.
type OrderDraft struct {
	Currency Currency
	Lines    []OrderLine

	PercentOff *int
	TaxRate    *decimal.Decimal
}
