package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ по ID
// @Description  Используется страницей подтверждения после оформления
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_id   path      int  true  "ID заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	orderRequestsInProgress.Inc()
	defer orderRequestsInProgress.Dec()
	start := time.Now()
	defer func() {
		orderRequestDuration.Observe(time.Since(start).Seconds())
	}()

	creds, ok := h.credentials(w, r)
	if !ok {
		orderRequestTotal.WithLabelValues("unauthorized").Inc()
		return
	}

	raw := chi.URLParam(r, "order_id")
	if err := h.validate.Var(raw, "required,number"); err != nil {
		orderRequestTotal.WithLabelValues("invalid").Inc()
		utils.WriteValidationError(w, err)
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		orderRequestTotal.WithLabelValues("invalid").Inc()
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.orders.GetOrderByID(r.Context(), creds, id)
	if err != nil {
		orderRequestTotal.WithLabelValues("error").Inc()
		h.writeError(w, r, err)
		return
	}

	orderRequestTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders история заказов пользователя.
// @Summary      История заказов
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}
	orders, err := h.orders.ListOrders(r.Context(), creds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}
