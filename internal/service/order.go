package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/SergeyBogomolovv/payment-service/pkg/trm"
	"github.com/SergeyBogomolovv/payment-service/pkg/utils"
	"github.com/shopspring/decimal"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
	GetItemsByIDs(ctx context.Context, ids []int64) ([]entities.Item, error)

	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	SaveOrderItems(ctx context.Context, orderID int64, items []entities.OrderItem) error
	UpdateTotal(ctx context.Context, orderID int64, total decimal.Decimal) error

	// Операции идемпотентны, т.к. используется ON CONFLICT DO NOTHING
	SaveDiscount(ctx context.Context, d entities.Discount) error
	SaveTax(ctx context.Context, t entities.Tax) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
	}
}

// CreateOrder stores the draft with its lines and adjustments in one
// transaction and returns the priced order.
func (s *orderService) CreateOrder(ctx context.Context, draft entities.OrderDraft) (entities.Order, error) {
	currency := draft.Currency
	if currency == "" {
		currency = entities.DefaultCurrency
	}
	if !currency.Valid() {
		return entities.Order{}, fmt.Errorf("%w: %q", entities.ErrInvalidCurrency, currency)
	}
	if draft.PercentOff != nil && (*draft.PercentOff < 0 || *draft.PercentOff > 100) {
		return entities.Order{}, entities.ErrInvalidPercent
	}

	var order entities.Order
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			order, err = s.buildOrder(ctx, currency, draft.Lines)
			if err != nil {
				return err
			}

			created, err := s.repo.CreateOrder(ctx, order)
			if err != nil {
				return fmt.Errorf("failed to create order: %w", err)
			}
			order.ID = created.ID
			order.CreatedAt = created.CreatedAt

			if err := s.repo.SaveOrderItems(ctx, order.ID, order.Items); err != nil {
				return fmt.Errorf("failed to save order items: %w", err)
			}

			if draft.PercentOff != nil {
				order.Discount = &entities.Discount{OrderID: order.ID, PercentOff: *draft.PercentOff}
				if err := s.repo.SaveDiscount(ctx, *order.Discount); err != nil {
					return fmt.Errorf("failed to save discount: %w", err)
				}
			}
			if draft.TaxRate != nil {
				order.Tax = &entities.Tax{OrderID: order.ID, Rate: *draft.TaxRate}
				if err := s.repo.SaveTax(ctx, *order.Tax); err != nil {
					return fmt.Errorf("failed to save tax: %w", err)
				}
			}

			s.logger.Debug("order created", slog.Int64("order_id", order.ID), slog.String("total", order.TotalAmount.String()))
			return nil
		})
	}

	err := utils.Retry(ctx, utils.DefaultRetry, fn,
		entities.ErrItemNotFound,
		entities.ErrCurrencyMismatch,
		entities.ErrInvalidQuantity,
	)
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) buildOrder(ctx context.Context, currency entities.Currency, lines []entities.OrderLine) (entities.Order, error) {
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ItemID)
	}

	items, err := s.repo.GetItemsByIDs(ctx, ids)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to load items: %w", err)
	}
	byID := make(map[int64]entities.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	order := entities.NewOrder(currency)
	for _, l := range lines {
		item, ok := byID[l.ItemID]
		if !ok {
			return entities.Order{}, fmt.Errorf("%w: id %d", entities.ErrItemNotFound, l.ItemID)
		}
		if err := order.AddItem(item, l.Quantity); err != nil {
			return entities.Order{}, fmt.Errorf("item %d: %w", l.ItemID, err)
		}
	}
	order.CalculateTotal()
	return order, nil
}

// GetOrderByID loads the order and reprices it. A total that drifted from
// the lines (an item price changed) is written back.
func (s *orderService) GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(ctx, utils.DefaultRetry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	if err := s.reprice(ctx, &order); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

// RecalculateTotal reprices the order and returns the new total.
func (s *orderService) RecalculateTotal(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return decimal.Zero, err
	}
	return order.TotalAmount, nil
}

func (s *orderService) reprice(ctx context.Context, order *entities.Order) error {
	stored := order.TotalAmount
	total := order.CalculateTotal()
	if stored.Equal(total) {
		return nil
	}

	if err := s.repo.UpdateTotal(ctx, order.ID, total); err != nil {
		return fmt.Errorf("failed to update total: %w", err)
	}
	s.logger.Info("order total updated",
		slog.Int64("order_id", order.ID),
		slog.String("from", stored.String()),
		slog.String("to", total.String()),
	)
	return nil
}
