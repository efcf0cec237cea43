package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// StartCheckout открывает сессию оформления.
// @Summary      Начать оформление заказа
// @Description  Создает сессию оформления. Если items не переданы, корзина загружается с бекенда
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      StartCheckoutRequest  false  "Позиции корзины"
// @Success      201  {object}  CheckoutView
// @Failure      400  {object}  utils.ValidationErrorResponse "Пустая корзина или ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /checkout [post]
func (h *HTTPHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}

	var req StartCheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	snap, err := h.checkout.Start(r.Context(), creds, entities.NewCheckout(CartItemsJSONToEntity(req.Items)))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, SnapshotToView(snap, h.scriptURL), http.StatusCreated)
}

// GetCheckout возвращает текущее состояние сессии.
// @Summary      Состояние оформления
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Param        session_id  path  string  true  "ID сессии"
// @Success      200  {object}  CheckoutView
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Router       /checkout/{session_id} [get]
func (h *HTTPHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}
	snap, err := h.checkout.Get(r.Context(), creds, chi.URLParam(r, "session_id"))
	h.writeView(w, r, snap, err)
}

// DiscardCheckout закрывает сессию.
// @Summary      Отменить оформление
// @Tags         checkout
// @Security     BearerAuth
// @Param        session_id  path  string  true  "ID сессии"
// @Success      204
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Router       /checkout/{session_id} [delete]
func (h *HTTPHandler) DiscardCheckout(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}
	if err := h.checkout.Discard(r.Context(), creds, chi.URLParam(r, "session_id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UseSavedAddress переключает использование сохраненного адреса.
// @Summary      Использовать сохраненный адрес
// @Description  При включении адрес загружается с бекенда и блокируется, при выключении очищается
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        session_id  path  string               true  "ID сессии"
// @Param        request     body  SavedAddressRequest  true  "Флаг"
// @Success      200  {object}  CheckoutView
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Оформление уже идет"
// @Router       /checkout/{session_id}/saved-address [put]
func (h *HTTPHandler) UseSavedAddress(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}
	var req SavedAddressRequest
	if !h.decode(w, r, &req) {
		return
	}
	snap, err := h.checkout.UseSavedAddress(r.Context(), creds, chi.URLParam(r, "session_id"), *req.Use)
	h.writeView(w, r, snap, err)
}

// UpdateCheckoutAddress задает адрес вручную. Полная проверка адреса выполняется при оформлении.
// @Summary      Ввести адрес доставки
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        session_id  path  string   true  "ID сессии"
// @Param        request     body  Address  true  "Адрес"
// @Success      200  {object}  CheckoutView
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Адрес заблокирован или оформление уже идет"
// @Router       /checkout/{session_id}/address [put]
func (h *HTTPHandler) UpdateCheckoutAddress(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}
	var req Address
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	snap, err := h.checkout.UpdateAddress(r.Context(), creds, chi.URLParam(r, "session_id"), AddressJSONToEntity(req))
	h.writeView(w, r, snap, err)
}

// SetPaymentMethod выбирает способ оплаты.
// @Summary      Выбрать способ оплаты
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        session_id  path  string                true  "ID сессии"
// @Param        request     body  PaymentMethodRequest  true  "COD или ONLINE"
// @Success      200  {object}  CheckoutView
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Оформление уже идет"
// @Router       /checkout/{session_id}/payment-method [put]
func (h *HTTPHandler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}
	var req PaymentMethodRequest
	if !h.decode(w, r, &req) {
		return
	}
	snap, err := h.checkout.SetPaymentMethod(r.Context(), creds, chi.URLParam(r, "session_id"), entities.PaymentMethod(req.Method))
	h.writeView(w, r, snap, err)
}

// Submit запускает оформление.
// @Summary      Оформить заказ
// @Description  Ответ приходит, когда заказ оформлен, оформление упало, либо открыт виджет оплаты (поле widget).
// @Description  Ошибки оформления возвращаются в поле error, а не HTTP статусом
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Param        session_id  path  string  true  "ID сессии"
// @Success      200  {object}  CheckoutView
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Оформление уже идет или завершено"
// @Router       /checkout/{session_id}/submit [post]
func (h *HTTPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}
	snap, err := h.checkout.Submit(r.Context(), creds, chi.URLParam(r, "session_id"))
	h.writeView(w, r, snap, err)
}

// CompletePayment передает результат успешной оплаты из виджета.
// @Summary      Оплата завершена
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        session_id  path  string                  true  "ID сессии"
// @Param        request     body  PaymentCompleteRequest  true  "Ответ виджета"
// @Success      200  {object}  CheckoutView
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Оплата не ожидается"
// @Router       /checkout/{session_id}/payment/complete [post]
func (h *HTTPHandler) CompletePayment(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}
	var req PaymentCompleteRequest
	if !h.decode(w, r, &req) {
		return
	}
	snap, err := h.checkout.CompletePayment(r.Context(), creds, chi.URLParam(r, "session_id"), entities.PaymentCompleted{
		PaymentID: req.PaymentID,
		OrderID:   req.OrderID,
		Signature: req.Signature,
	})
	h.writeView(w, r, snap, err)
}

// CancelPayment пользователь закрыл виджет.
// @Summary      Оплата отменена
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Param        session_id  path  string  true  "ID сессии"
// @Success      200  {object}  CheckoutView
// @Failure      404  {object}  utils.ErrorResponse "Сессия не найдена"
// @Failure      409  {object}  utils.ErrorResponse "Оплата не ожидается"
// @Router       /checkout/{session_id}/payment/cancel [post]
func (h *HTTPHandler) CancelPayment(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}
	snap, err := h.checkout.CancelPayment(r.Context(), creds, chi.URLParam(r, "session_id"))
	h.writeView(w, r, snap, err)
}

const defaultAttemptsLimit = 20

// LatestAttempts последние попытки оформления пользователя.
// @Summary      Журнал попыток оформления
// @Description  Пустой список, если журнал выключен
// @Tags         checkout
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "Сколько записей вернуть (1..100)"
// @Success      200  {array}   Attempt
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Router       /checkout/attempts [get]
func (h *HTTPHandler) LatestAttempts(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.credentials(w, r)
	if !ok {
		return
	}

	limit := defaultAttemptsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.WriteError(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = n
		if err := h.validate.Var(limit, "gte=1,lte=100"); err != nil {
			utils.WriteValidationError(w, err)
			return
		}
	}

	attempts, err := h.attempts.LatestAttempts(r.Context(), creds, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res := make([]Attempt, 0, len(attempts))
	for _, a := range attempts {
		res = append(res, AttemptEntityToJSON(a))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *HTTPHandler) writeView(w http.ResponseWriter, r *http.Request, snap checkout.Snapshot, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, SnapshotToView(snap, h.scriptURL), http.StatusOK)
}
