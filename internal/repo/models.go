package repo

import (
	"time"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Item struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Currency    string          `db:"currency"`
}

type Order struct {
	ID          int64           `db:"id"`
	Currency    string          `db:"currency"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	CreatedAt   time.Time       `db:"created_at"`
}

// OrderItem is a row of order_items joined with its item.
type OrderItem struct {
	ID          int64           `db:"id"`
	OrderID     int64           `db:"order_id"`
	Quantity    int             `db:"quantity"`
	ItemID      int64           `db:"item_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Currency    string          `db:"currency"`
}

type Discount struct {
	OrderID    int64  `db:"order_id"`
	PercentOff int    `db:"percent_off"`
	CouponID   string `db:"coupon_id"`
}

type Tax struct {
	OrderID int64           `db:"order_id"`
	TaxRate decimal.Decimal `db:"tax_rate"`
	TaxID   string          `db:"tax_id"`
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Currency:    entities.Currency(i.Currency),
	}
}

func OrderItemToEntity(oi OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:       oi.ID,
		Quantity: oi.Quantity,
		Item: entities.Item{
			ID:          oi.ItemID,
			Name:        oi.Name,
			Description: oi.Description,
			Price:       oi.Price,
			Currency:    entities.Currency(oi.Currency),
		},
	}
}

func DiscountToEntity(d Discount) *entities.Discount {
	return &entities.Discount{
		OrderID:    d.OrderID,
		PercentOff: d.PercentOff,
		CouponID:   d.CouponID,
	}
}

func TaxToEntity(t Tax) *entities.Tax {
	return &entities.Tax{
		OrderID: t.OrderID,
		Rate:    t.TaxRate,
		TaxID:   t.TaxID,
	}
}

// OrderToEntity assembles the aggregate. discount and tax are nil when the
// order has none.
func OrderToEntity(o Order, items []OrderItem, discount *Discount, tax *Tax) entities.Order {
	order := entities.Order{
		ID:          o.ID,
		Currency:    entities.Currency(o.Currency),
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, OrderItemToEntity(it))
		}
	}
	if discount != nil {
		order.Discount = DiscountToEntity(*discount)
	}
	if tax != nil {
		order.Tax = TaxToEntity(*tax)
	}

	return order
}
