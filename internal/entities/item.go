package entities

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	USD Currency = "usd"
	EUR Currency = "eur"
	RUB Currency = "rub"

	// DefaultCurrency используется, когда валюту неоткуда взять (например, пустой заказ)
	DefaultCurrency = RUB
)

var Currencies = []Currency{USD, EUR, RUB}

func (c Currency) Valid() bool {
	return slices.Contains(Currencies, c)
}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, s)
	}
	return c, nil
}

type Item struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Currency    Currency
}

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidCurrency = errors.New("invalid currency")
)
