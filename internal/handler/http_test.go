package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/widget"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const scriptURL = "https://checkout.example.com/v1/checkout.js"

type deps struct {
	checkout *mocks.MockCheckoutService
	orders   *mocks.MockOrderService
	address  *mocks.MockAddressService
	attempts *mocks.MockAttemptService
}

func newDeps(t *testing.T) deps {
	return deps{
		checkout: mocks.NewMockCheckoutService(t),
		orders:   mocks.NewMockOrderService(t),
		address:  mocks.NewMockAddressService(t),
		attempts: mocks.NewMockAttemptService(t),
	}
}

func newRouter(t *testing.T, authenticated bool, m deps) chi.Router {
	t.Helper()
	h := handler.NewHTTPHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), m.checkout, m.orders, m.address, m.attempts, scriptURL)

	r := chi.NewRouter()
	if authenticated {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		creds, err := auth.NewVerifier("secret").Provider(token)
		require.NoError(t, err)

		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(auth.WithProvider(r.Context(), creds)))
			})
		})
	}
	h.Init(r)
	return r
}

func TestHTTPHandler_Checkout(t *testing.T) {
	idle := checkout.Snapshot{
		ID:     "s1",
		State:  checkout.StateIdle,
		Total:  decimal.RequireFromString("200"),
		Method: entities.PaymentMethodCOD,
		Items:  []entities.CartItem{{ProductID: 1, UnitPrice: decimal.NewFromInt(100), Quantity: 2}},
	}
	awaiting := idle
	awaiting.State = checkout.StateAwaitingUser
	awaiting.Processing = true
	awaiting.Widget = &widget.Config{Key: "rzp_test", Amount: 20000, Currency: "INR", OrderID: "gw_1"}

	failed := idle
	failed.State = checkout.StateError
	failed.Message = "Payment verification failed"

	testCases := []struct {
		name          string
		method        string
		path          string
		body          string
		unauth        bool
		mockBehavior  func(c *mocks.MockCheckoutService)
		wantStatus    int
		wantBody      []string
		wantNotInBody []string
	}{
		{
			name:   "start with items",
			method: http.MethodPost,
			path:   "/checkout",
			body:   `{"items":[{"product_id":1,"unit_price":"100.00","quantity":2}]}`,
			mockBehavior: func(c *mocks.MockCheckoutService) {
				c.EXPECT().Start(mock.Anything, mock.Anything, mock.MatchedBy(func(ch entities.Checkout) bool {
					active, ok := ch.(entities.ActiveCheckout)
					return ok && len(active.Items) == 1 && active.Items[0].Quantity == 2
				})).Return(idle, nil).Once()
			},
			wantStatus:    http.StatusCreated,
			wantBody:      []string{`"session_id":"s1"`, `"total":"200.00"`, `"payment_method":"COD"`},
			wantNotInBody: []string{`"widget"`},
		},
		{
			name:   "start without body uses backend cart",
			method: http.MethodPost,
			path:   "/checkout",
			mockBehavior: func(c *mocks.MockCheckoutService) {
				c.EXPECT().Start(mock.Anything, mock.Anything, entities.NoActiveCheckout{}).
					Return(checkout.Snapshot{}, entities.ErrCartEmpty).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{`"cart is empty"`},
		},
		{
			name:         "start with zero quantity",
			method:       http.MethodPost,
			path:         "/checkout",
			body:         `{"items":[{"product_id":1,"unit_price":"1","quantity":0}]}`,
			mockBehavior: func(c *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     []string{`"Quantity":"gte"`},
		},
		{
			name:         "unauthenticated",
			method:       http.MethodGet,
			path:         "/checkout/s1",
			unauth:       true,
			mockBehavior: func(c *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     []string{"Your session has expired. Please log in again."},
		},
		{
			name:   "session not found",
			method: http.MethodGet,
			path:   "/checkout/missing",
			mockBehavior: func(c *mocks.MockCheckoutService) {
				c.EXPECT().Get(mock.Anything, mock.Anything, "missing").Return(checkout.Snapshot{}, entities.ErrSessionNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "submit opens widget",
			method: http.MethodPost,
			path:   "/checkout/s1/submit",
			mockBehavior: func(c *mocks.MockCheckoutService) {
				c.EXPECT().Submit(mock.Anything, mock.Anything, "s1").Return(awaiting, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody: []string{
				`"state":"AWAITING_USER_IN_WIDGET"`,
				`"order_id":"gw_1"`,
				`"amount":20000`,
				`"widget_script":"` + scriptURL + `"`,
			},
		},
		{
			name:   "submit while in progress",
			method: http.MethodPost,
			path:   "/checkout/s1/submit",
			mockBehavior: func(c *mocks.MockCheckoutService) {
				c.EXPECT().Submit(mock.Anything, mock.Anything, "s1").Return(checkout.Snapshot{}, checkout.ErrInProgress).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "workflow failure is reported in view",
			method: http.MethodPost,
			path:   "/checkout/s1/payment/complete",
			body:   `{"razorpay_payment_id":"pay_1","razorpay_order_id":"gw_1","razorpay_signature":"sig"}`,
			mockBehavior: func(c *mocks.MockCheckoutService) {
				c.EXPECT().CompletePayment(mock.Anything, mock.Anything, "s1", entities.PaymentCompleted{
					PaymentID: "pay_1", OrderID: "gw_1", Signature: "sig",
				}).Return(failed, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"error":"Payment verification failed"`, `"state":"ERROR"`},
		},
		{
			name:         "payment complete without signature",
			method:       http.MethodPost,
			path:         "/checkout/s1/payment/complete",
			body:         `{"razorpay_payment_id":"pay_1","razorpay_order_id":"gw_1"}`,
			mockBehavior: func(c *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     []string{`"Signature":"required"`},
		},
		{
			name:   "cancel when nothing pending",
			method: http.MethodPost,
			path:   "/checkout/s1/payment/cancel",
			mockBehavior: func(c *mocks.MockCheckoutService) {
				c.EXPECT().CancelPayment(mock.Anything, mock.Anything, "s1").Return(checkout.Snapshot{}, checkout.ErrPaymentNotPending).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:         "invalid payment method",
			method:       http.MethodPut,
			path:         "/checkout/s1/payment-method",
			body:         `{"method":"CARD"}`,
			mockBehavior: func(c *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     []string{`"Method":"oneof"`},
		},
		{
			name:   "toggle saved address off",
			method: http.MethodPut,
			path:   "/checkout/s1/saved-address",
			body:   `{"use":false}`,
			mockBehavior: func(c *mocks.MockCheckoutService) {
				c.EXPECT().UseSavedAddress(mock.Anything, mock.Anything, "s1", false).Return(idle, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"use_saved_address":false`},
		},
		{
			name:   "manual address while locked",
			method: http.MethodPut,
			path:   "/checkout/s1/address",
			body:   `{"door_number":"1","address_line1":"Main","city":"Pune","pin_code":"411001"}`,
			mockBehavior: func(c *mocks.MockCheckoutService) {
				c.EXPECT().UpdateAddress(mock.Anything, mock.Anything, "s1", entities.Address{
					DoorNumber: "1", AddressLine1: "Main", City: "Pune", PinCode: "411001",
				}).Return(checkout.Snapshot{}, checkout.ErrAddressLocked).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "discard",
			method: http.MethodDelete,
			path:   "/checkout/s1",
			mockBehavior: func(c *mocks.MockCheckoutService) {
				c.EXPECT().Discard(mock.Anything, mock.Anything, "s1").Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newDeps(t)
			tc.mockBehavior(m.checkout)
			r := newRouter(t, !tc.unauth, m)

			var body io.Reader = http.NoBody
			if tc.body != "" {
				body = strings.NewReader(tc.body)
			}
			req := httptest.NewRequest(tc.method, tc.path, body)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			for _, s := range tc.wantBody {
				assert.Contains(t, rec.Body.String(), s)
			}
			for _, s := range tc.wantNotInBody {
				assert.NotContains(t, rec.Body.String(), s)
			}
		})
	}
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	order := entities.Order{
		ID:     42,
		Status: entities.OrderStatusPending,
		Total:  decimal.RequireFromString("200"),
		Method: entities.PaymentMethodCOD,
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(o *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "42",
			mockBehavior: func(o *mocks.MockOrderService) {
				o.EXPECT().GetOrderByID(mock.Anything, mock.Anything, int64(42)).Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":"200.00"`,
		},
		{
			name:    "not found",
			orderID: "7",
			mockBehavior: func(o *mocks.MockOrderService) {
				o.EXPECT().GetOrderByID(mock.Anything, mock.Anything, int64(7)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "invalid id",
			orderID:      "abc",
			mockBehavior: func(o *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:    "internal error",
			orderID: "42",
			mockBehavior: func(o *mocks.MockOrderService) {
				o.EXPECT().GetOrderByID(mock.Anything, mock.Anything, int64(42)).Return(entities.Order{}, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newDeps(t)
			tc.mockBehavior(m.orders)
			r := newRouter(t, true, m)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_Address(t *testing.T) {
	m := newDeps(t)
	a := m.address
	a.EXPECT().SaveAddress(mock.Anything, mock.Anything, mock.Anything).Return(entities.ErrAddressConflict).Once()
	a.EXPECT().GetAddress(mock.Anything, mock.Anything).Return(entities.Address{}, entities.ErrAddressNotFound).Once()
	r := newRouter(t, true, m)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/address",
		strings.NewReader(`{"door_number":"1","address_line1":"Main","city":"Pune","pin_code":"411001"}`)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	badPins := []struct {
		pin     string
		wantTag string
	}{
		{pin: "41", wantTag: "len"},
		{pin: "-12345", wantTag: "number"},
		{pin: "+12345", wantTag: "number"},
		{pin: "1.2345", wantTag: "number"},
		{pin: "41100a", wantTag: "number"},
		{pin: "012345", wantTag: "startsnotwith"},
	}
	for _, tc := range badPins {
		t.Run(tc.pin, func(t *testing.T) {
			rec := httptest.NewRecorder()
			body := `{"door_number":"1","address_line1":"Main","city":"Pune","pin_code":"` + tc.pin + `"}`
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/address", strings.NewReader(body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"PinCode":"`+tc.wantTag+`"`)
		})
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/address", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

}

func TestHTTPHandler_LatestAttempts(t *testing.T) {
	m := newDeps(t)
	m.attempts.EXPECT().LatestAttempts(mock.Anything, mock.Anything, 20).Return([]entities.Attempt{
		{ID: "a1", Method: entities.PaymentMethodCOD, Total: decimal.NewFromInt(200), Outcome: entities.AttemptPlaced, OrderID: 42},
	}, nil).Once()
	m.attempts.EXPECT().LatestAttempts(mock.Anything, mock.Anything, 5).Return(nil, nil).Once()
	r := newRouter(t, true, m)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/attempts", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"placed"`)
	assert.Contains(t, rec.Body.String(), `"total":"200.00"`)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/attempts?limit=5", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	badLimits := []struct {
		name     string
		limit    string
		wantBody string
	}{
		{name: "above max", limit: "500", wantBody: `"fields"`},
		{name: "zero", limit: "0", wantBody: `"fields"`},
		{name: "negative", limit: "-3", wantBody: `"fields"`},
		{name: "not a number", limit: "ten", wantBody: "limit must be an integer"},
		{name: "fraction", limit: "2.5", wantBody: "limit must be an integer"},
		{name: "overflow", limit: "99999999999999999999", wantBody: "limit must be an integer"},
	}
	for _, tc := range badLimits {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/attempts?limit="+tc.limit, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantBody)
		})
	}

}
