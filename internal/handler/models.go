package handler

import (
	"reflect"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// newValidator validates decimal fields by their numeric value.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		if d, ok := v.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return validate
}

// SessionResponse идентификатор сессии Stripe Checkout
type SessionResponse struct {
	ID string `json:"id"`
}

// PaymentIntentResponse данные для подтверждения платежа на клиенте
type PaymentIntentResponse struct {
	ClientSecret   string `json:"clientSecret"`
	PublishableKey string `json:"publishableKey"`
}

func PaymentIntentToJSON(pi entities.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{
		ClientSecret:   pi.ClientSecret,
		PublishableKey: pi.PublishableKey,
	}
}

// OrderMessage заказ из топика Kafka
type OrderMessage struct {
	Currency string             `json:"currency" validate:"required,oneof=usd eur rub"`
	Items    []OrderLineMessage `json:"items" validate:"dive"`
	Discount *DiscountMessage   `json:"discount,omitempty"`
	Tax      *TaxMessage        `json:"tax,omitempty"`
}

type OrderLineMessage struct {
	ItemID   int64 `json:"item_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"required,gte=1"`
}

type DiscountMessage struct {
	PercentOff int `json:"percent_off" validate:"gte=0,lte=100"`
}

type TaxMessage struct {
	TaxRate decimal.Decimal `json:"tax_rate" validate:"gte=0,lte=100"`
}

func OrderMessageToDraft(m OrderMessage) entities.OrderDraft {
	draft := entities.OrderDraft{
		Currency: entities.Currency(m.Currency),
		Lines:    make([]entities.OrderLine, 0, len(m.Items)),
	}
	for _, l := range m.Items {
		draft.Lines = append(draft.Lines, entities.OrderLine{ItemID: l.ItemID, Quantity: l.Quantity})
	}
	if m.Discount != nil {
		percent := m.Discount.PercentOff
		draft.PercentOff = &percent
	}
	if m.Tax != nil {
		rate := m.Tax.TaxRate
		draft.TaxRate = &rate
	}
	return draft
}

type itemPage struct {
	Item           entities.Item
	PublishableKey string
	PaymentMethod  string
}

type orderLine struct {
	Name     string
	Quantity int
	Price    decimal.Decimal
	Subtotal decimal.Decimal
	Currency entities.Currency
}

type orderPage struct {
	ID             int64
	Lines          []orderLine
	Total          decimal.Decimal
	Currency       entities.Currency
	Discount       *entities.Discount
	Tax            *entities.Tax
	PublishableKey string
	PaymentMethod  string
}

func newOrderPage(o entities.Order, publishableKey string) orderPage {
	page := orderPage{
		ID:             o.ID,
		Lines:          make([]orderLine, 0, len(o.Items)),
		Total:          o.TotalAmount,
		Currency:       o.EffectiveCurrency(),
		Discount:       o.Discount,
		Tax:            o.Tax,
		PublishableKey: publishableKey,
		PaymentMethod:  "intent",
	}
	for _, oi := range o.Items {
		page.Lines = append(page.Lines, orderLine{
			Name:     oi.Item.Name,
			Quantity: oi.Quantity,
			Price:    oi.Item.Price,
			Subtotal: oi.Subtotal(),
			Currency: oi.Item.Currency,
		})
	}
	return page
}
