package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CheckoutService interface {
	Start(ctx context.Context, creds *auth.JWTProvider, c entities.Checkout) (checkout.Snapshot, error)
	Get(ctx context.Context, creds *auth.JWTProvider, id string) (checkout.Snapshot, error)
	UseSavedAddress(ctx context.Context, creds *auth.JWTProvider, id string, use bool) (checkout.Snapshot, error)
	UpdateAddress(ctx context.Context, creds *auth.JWTProvider, id string, a entities.Address) (checkout.Snapshot, error)
	SetPaymentMethod(ctx context.Context, creds *auth.JWTProvider, id string, m entities.PaymentMethod) (checkout.Snapshot, error)
	Submit(ctx context.Context, creds *auth.JWTProvider, id string) (checkout.Snapshot, error)
	CompletePayment(ctx context.Context, creds *auth.JWTProvider, id string, p entities.PaymentCompleted) (checkout.Snapshot, error)
	CancelPayment(ctx context.Context, creds *auth.JWTProvider, id string) (checkout.Snapshot, error)
	Discard(ctx context.Context, creds *auth.JWTProvider, id string) error
}

type OrderService interface {
	GetOrderByID(ctx context.Context, creds *auth.JWTProvider, id int64) (entities.Order, error)
	ListOrders(ctx context.Context, creds *auth.JWTProvider) ([]entities.Order, error)
}

type AddressService interface {
	GetAddress(ctx context.Context, creds *auth.JWTProvider) (entities.Address, error)
	SaveAddress(ctx context.Context, creds *auth.JWTProvider, a entities.Address) error
	UpdateAddress(ctx context.Context, creds *auth.JWTProvider, a entities.Address) error
	DeleteAddress(ctx context.Context, creds *auth.JWTProvider) error
}

type AttemptService interface {
	LatestAttempts(ctx context.Context, creds *auth.JWTProvider, count int) ([]entities.Attempt, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	checkout  CheckoutService
	orders    OrderService
	addresses AddressService
	attempts  AttemptService
	scriptURL string

	submitLimit []func(http.Handler) http.Handler
}

func NewHTTPHandler(
	logger *slog.Logger,
	checkout CheckoutService,
	orders OrderService,
	addresses AddressService,
	attempts AttemptService,
	scriptURL string,
) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		checkout:  checkout,
		orders:    orders,
		addresses: addresses,
		attempts:  attempts,
		scriptURL: scriptURL,
	}
}

// SetSubmitLimiter отдельный лимит на запуск оформления.
func (h *HTTPHandler) SetSubmitLimiter(mw func(http.Handler) http.Handler) {
	h.submitLimit = append(h.submitLimit, mw)
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/checkout", func(r chi.Router) {
		r.Post("/", h.StartCheckout)
		r.Get("/attempts", h.LatestAttempts)
		r.Get("/{session_id}", h.GetCheckout)
		r.Delete("/{session_id}", h.DiscardCheckout)
		r.Put("/{session_id}/saved-address", h.UseSavedAddress)
		r.Put("/{session_id}/address", h.UpdateCheckoutAddress)
		r.Put("/{session_id}/payment-method", h.SetPaymentMethod)
		r.With(h.submitLimit...).Post("/{session_id}/submit", h.Submit)
		r.Post("/{session_id}/payment/complete", h.CompletePayment)
		r.Post("/{session_id}/payment/cancel", h.CancelPayment)
	})

	r.Get("/orders", h.ListOrders)
	r.Get("/orders/{order_id}", h.GetOrderByID)

	r.Get("/address", h.GetAddress)
	r.Post("/address", h.SaveAddress)
	r.Put("/address", h.UpdateAddress)
	r.Delete("/address", h.DeleteAddress)
}

// credentials достает провайдера, которого положил middleware.Authenticate.
func (h *HTTPHandler) credentials(w http.ResponseWriter, r *http.Request) (*auth.JWTProvider, bool) {
	creds, ok := auth.FromContext(r.Context())
	if !ok {
		utils.WriteError(w, checkout.Message(entities.ErrUnauthenticated), http.StatusUnauthorized)
		return nil, false
	}
	return creds, true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve validator.ValidationErrors
	switch {
	case errors.As(err, &ve):
		utils.WriteValidationError(w, err)
	case errors.Is(err, entities.ErrUnauthenticated):
		utils.WriteError(w, checkout.Message(err), http.StatusUnauthorized)
	case errors.Is(err, entities.ErrSessionNotFound),
		errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrAddressNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrCartEmpty),
		errors.Is(err, entities.ErrInvalidPinCode),
		errors.Is(err, checkout.ErrInvalidCart),
		errors.Is(err, checkout.ErrInvalidPaymentMethod):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, checkout.ErrInProgress),
		errors.Is(err, checkout.ErrCheckoutCompleted),
		errors.Is(err, checkout.ErrAddressLocked),
		errors.Is(err, checkout.ErrPaymentNotPending),
		errors.Is(err, entities.ErrAddressConflict):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		h.logger.ErrorContext(r.Context(), "request failed", slog.Any("error", err), slog.String("path", r.URL.Path))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// decode читает и валидирует тело запроса, при ошибке сам пишет ответ.
func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}
