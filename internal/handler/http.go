package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/payment-service/internal/entities"
	"github.com/SergeyBogomolovv/payment-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CatalogService interface {
	GetItemByID(ctx context.Context, itemID int64) (entities.Item, error)
}

type OrderService interface {
	GetOrderByID(ctx context.Context, orderID int64) (entities.Order, error)
}

type PaymentService interface {
	PublishableKey(currency entities.Currency) string
	ItemCheckoutSession(ctx context.Context, itemID int64, urls entities.RedirectURLs) (string, error)
	ItemPaymentIntent(ctx context.Context, itemID int64) (entities.PaymentIntent, error)
	OrderPaymentIntent(ctx context.Context, orderID int64) (entities.PaymentIntent, error)
	OrderCheckoutSession(ctx context.Context, orderID int64, urls entities.RedirectURLs) (string, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	pages    *pages

	catalog  CatalogService
	orders   OrderService
	payments PaymentService

	// Если пусто, адрес берётся из запроса
	publicURL string
}

func NewHTTPHandler(
	logger *slog.Logger,
	publicURL string,
	catalog CatalogService,
	orders OrderService,
	payments PaymentService,
) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  newValidator(),
		pages:     newPages(),
		catalog:   catalog,
		orders:    orders,
		payments:  payments,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/item/{id:[0-9]+}", h.ItemPage)
	r.Post("/buy/{id:[0-9]+}", h.BuyItem)
	r.Post("/item/{id:[0-9]+}/pay", h.PayItem)

	r.Get("/order/{id:[0-9]+}", h.OrderPage)
	r.Post("/order/{id:[0-9]+}/pay", h.PayOrder)
	r.Post("/order/{id:[0-9]+}/buy", h.BuyOrder)
	r.Post("/api/order/{id:[0-9]+}/payment-intent", h.PayOrder)

	r.Get("/success", h.SuccessPage)
	r.Get("/cancel", h.CancelPage)
}

// ItemPage отдаёт страницу товара с кнопкой оплаты через Stripe Checkout.
func (h *HTTPHandler) ItemPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	item, err := h.catalog.GetItemByID(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err, "failed to get item")
		return
	}

	h.renderPage(ctx, w, "item_detail.html", itemPage{
		Item:           item,
		PublishableKey: h.payments.PublishableKey(item.Currency),
		PaymentMethod:  "session",
	})
}

// BuyItem создаёт сессию оплаты товара.
// @Summary      Создать Checkout-сессию для товара
// @Description  Создаёт сессию Stripe Checkout на одну единицу товара и возвращает её идентификатор
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Идентификатор товара"
// @Success      200  {object}  SessionResponse
// @Failure      400  {object}  utils.ErrorResponse "Ошибка платёжного шлюза"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /buy/{id} [post]
func (h *HTTPHandler) BuyItem(w http.ResponseWriter, r *http.Request) {
	defer observe("item_session", time.Now())
	ctx := r.Context()
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	sessionID, err := h.payments.ItemCheckoutSession(ctx, id, h.redirectURLs(r))
	if err != nil {
		checkoutFailed("item_session")
		h.writeError(ctx, w, err, "failed to create checkout session")
		return
	}

	checkoutSucceeded("item_session")
	utils.WriteJSON(w, SessionResponse{ID: sessionID}, http.StatusOK)
}

// PayItem создаёт Payment Intent для товара.
// @Summary      Создать Payment Intent для товара
// @Description  Возвращает client secret и публичный ключ для подтверждения платежа на клиенте
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Идентификатор товара"
// @Success      200  {object}  PaymentIntentResponse
// @Failure      400  {object}  utils.ErrorResponse "Ошибка платёжного шлюза"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Не настроен секретный ключ Stripe"
// @Router       /item/{id}/pay [post]
func (h *HTTPHandler) PayItem(w http.ResponseWriter, r *http.Request) {
	defer observe("item_intent", time.Now())
	ctx := r.Context()
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	intent, err := h.payments.ItemPaymentIntent(ctx, id)
	if err != nil {
		checkoutFailed("item_intent")
		h.writeError(ctx, w, err, "failed to create payment intent")
		return
	}

	checkoutSucceeded("item_intent")
	utils.WriteJSON(w, PaymentIntentToJSON(intent), http.StatusOK)
}

// OrderPage отдаёт страницу заказа с пересчитанной суммой.
func (h *HTTPHandler) OrderPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	order, err := h.orders.GetOrderByID(ctx, id)
	if err != nil {
		h.writeError(ctx, w, err, "failed to get order")
		return
	}

	h.renderPage(ctx, w, "order_detail.html",
		newOrderPage(order, h.payments.PublishableKey(order.EffectiveCurrency())))
}

// PayOrder создаёт Payment Intent для заказа.
// @Summary      Создать Payment Intent для заказа
// @Description  Пересчитывает сумму заказа, создаёт в Stripe купон и налог (если нужно) и возвращает client secret
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Идентификатор заказа"
// @Success      200  {object}  PaymentIntentResponse
// @Failure      400  {object}  utils.ErrorResponse "Разные валюты в заказе или ошибка платёжного шлюза"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /order/{id}/pay [post]
// @Router       /api/order/{id}/payment-intent [post]
func (h *HTTPHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	defer observe("order_intent", time.Now())
	ctx := r.Context()
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	intent, err := h.payments.OrderPaymentIntent(ctx, id)
	if err != nil {
		checkoutFailed("order_intent")
		h.writeError(ctx, w, err, "failed to create payment intent")
		return
	}

	checkoutSucceeded("order_intent")
	utils.WriteJSON(w, PaymentIntentToJSON(intent), http.StatusOK)
}

// BuyOrder создаёт сессию оплаты заказа.
// @Summary      Создать Checkout-сессию для заказа
// @Description  Создаёт сессию Stripe Checkout с позицией на каждый товар заказа
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Идентификатор заказа"
// @Success      200  {object}  SessionResponse
// @Failure      400  {object}  utils.ErrorResponse "Разные валюты в заказе или ошибка платёжного шлюза"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /order/{id}/buy [post]
func (h *HTTPHandler) BuyOrder(w http.ResponseWriter, r *http.Request) {
	defer observe("order_session", time.Now())
	ctx := r.Context()
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	sessionID, err := h.payments.OrderCheckoutSession(ctx, id, h.redirectURLs(r))
	if err != nil {
		checkoutFailed("order_session")
		h.writeError(ctx, w, err, "failed to create checkout session")
		return
	}

	checkoutSucceeded("order_session")
	utils.WriteJSON(w, SessionResponse{ID: sessionID}, http.StatusOK)
}

func (h *HTTPHandler) SuccessPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(r.Context(), w, "success.html", nil)
}

func (h *HTTPHandler) CancelPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(r.Context(), w, "cancel.html", nil)
}

func (h *HTTPHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	if err := h.validate.Var(raw, "required,numeric"); err != nil {
		utils.WriteValidationError(w, err)
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// Число не влезает в int64, такой записи точно нет
		utils.WriteError(w, "not found", http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) redirectURLs(r *http.Request) entities.RedirectURLs {
	base := h.publicURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		base = scheme + "://" + r.Host
	}
	return entities.RedirectURLs{
		Success: base + "/success",
		Cancel:  base + "/cancel",
	}
}

func (h *HTTPHandler) writeError(ctx context.Context, w http.ResponseWriter, err error, msg string) {
	var gwErr *entities.GatewayError

	switch {
	case errors.Is(err, entities.ErrItemNotFound):
		utils.WriteError(w, "item not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrMissingCredential):
		utils.WriteError(w, "Stripe secret key not configured", http.StatusInternalServerError)
	case errors.Is(err, entities.ErrMixedCurrencies):
		utils.WriteError(w, entities.ErrMixedCurrencies.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrEmptyOrder):
		utils.WriteError(w, entities.ErrEmptyOrder.Error(), http.StatusBadRequest)
	case errors.As(err, &gwErr):
		h.logger.WarnContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, gwErr.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *HTTPHandler) renderPage(ctx context.Context, w http.ResponseWriter, name string, data any) {
	if err := h.pages.render(w, name, data); err != nil {
		h.logger.ErrorContext(ctx, "failed to render page", slog.String("page", name), slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
