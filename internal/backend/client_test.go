package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/backend"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCreds struct {
	token string
	err   error
}

func (s staticCreds) Token(context.Context) (string, error) {
	return s.token, s.err
}

func newTestClient(t *testing.T, r chi.Router) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return backend.NewClient(&http.Client{Timeout: time.Second}, srv.URL+"/", staticCreds{token: "tkn"})
}

func TestClient_GetAddress(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		want    entities.Address
		wantErr error
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body:   `{"doorNumber":"12","addressLine1":"Main st","addressLine2":"","pinCode":560001,"City":"Bengaluru"}`,
			want: entities.Address{
				DoorNumber:   "12",
				AddressLine1: "Main st",
				PinCode:      "560001",
				City:         "Bengaluru",
			},
		},
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `no address`,
			wantErr: entities.ErrAddressNotFound,
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `Please log in.`,
			wantErr: entities.ErrUnauthenticated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/api/address", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			got, err := newTestClient(t, r).GetAddress(context.Background())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClient_PlaceOrder(t *testing.T) {
	address := entities.Address{DoorNumber: "1", AddressLine1: "Line", City: "Pune", PinCode: "411001"}

	testCases := []struct {
		name       string
		req        entities.PlaceOrderRequest
		wantMethod string
		wantPayID  string
		wantOrdID  string
	}{
		{
			name: "cash on delivery",
			req: entities.PlaceOrderRequest{
				Method:  entities.PaymentMethodCOD,
				Address: address,
				Total:   decimal.RequireFromString("200.00"),
			},
			wantMethod: "COD",
		},
		{
			name: "online",
			req: entities.PlaceOrderRequest{
				Method:         entities.PaymentMethodOnline,
				Address:        address,
				Total:          decimal.RequireFromString("50.00"),
				PaymentID:      "pay_1",
				GatewayOrderID: "gw_1",
			},
			wantMethod: "UPI",
			wantPayID:  "pay_1",
			wantOrdID:  "gw_1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Post("/checkout", func(w http.ResponseWriter, r *http.Request) {
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

				assert.Equal(t, tc.wantMethod, body["paymentMethod"])
				if tc.wantPayID == "" {
					assert.NotContains(t, body, "paymentId")
					assert.NotContains(t, body, "orderId")
				} else {
					assert.Equal(t, tc.wantPayID, body["paymentId"])
					assert.Equal(t, tc.wantOrdID, body["orderId"])
				}
				addr := body["address"].(map[string]any)
				assert.Equal(t, float64(411001), addr["pinCode"])

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":42,"status":"PENDING","totalAmount":200.0,"paymentMethod":"` + tc.wantMethod + `","list":[]}`))
			})

			order, err := newTestClient(t, r).PlaceOrder(context.Background(), tc.req)
			require.NoError(t, err)
			assert.Equal(t, int64(42), order.ID)
			assert.Equal(t, entities.OrderStatusPending, order.Status)
			assert.Equal(t, tc.req.Method, order.Method)
		})
	}
}

func TestClient_GatewayAndVerify(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/payments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "200.00", r.URL.Query().Get("amount"))
		assert.Equal(t, "INR", r.URL.Query().Get("currency"))
		_, _ = w.Write([]byte(`{"id":"gw_1","amount":20000,"currency":"INR","receipt":"rcpt_1","status":"created"}`))
	})
	r.Post("/payments/verify", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		ok := q.Get("orderId") == "gw_1" && q.Get("paymentId") == "pay_1" && q.Get("signature") == "sig"
		_ = json.NewEncoder(w).Encode(ok)
	})
	client := newTestClient(t, r)

	gw, err := client.CreateGatewayOrder(context.Background(), decimal.NewFromInt(200), "INR")
	require.NoError(t, err)
	assert.Equal(t, entities.GatewayOrder{ID: "gw_1", Amount: 20000, Currency: "INR", Receipt: "rcpt_1", Status: "created"}, gw)

	ok, err := client.VerifyPayment(context.Background(), entities.PaymentCompleted{PaymentID: "pay_1", OrderID: "gw_1", Signature: "sig"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.VerifyPayment(context.Background(), entities.PaymentCompleted{PaymentID: "pay_1", OrderID: "gw_1", Signature: "forged"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_StatusError(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/payments", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Payment order creation failed: boom", http.StatusInternalServerError)
	})

	_, err := newTestClient(t, r).CreateGatewayOrder(context.Background(), decimal.NewFromInt(1), "INR")

	var se *backend.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Contains(t, se.Message, "boom")
}

func TestClient_ExpiredCredentialsSkipRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	client := backend.NewClient(srv.Client(), srv.URL, staticCreds{err: entities.ErrUnauthenticated})

	_, err := client.GetOrder(context.Background(), 1)
	assert.ErrorIs(t, err, entities.ErrUnauthenticated)
	assert.Zero(t, calls.Load())
}

func TestClient_GetCartAndOrder(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/cart", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":1,"items":[{"productId":1,"productName":"Widget","productPrice":100.0,"quantity":2}]}`))
	})
	r.Get("/api/order/{id}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != "7" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"id":7,"status":"CONFIRMED","totalAmount":200.0,"paymentMethod":"COD","createdAt":"2024-05-01T10:00:00",` +
			`"addressDto":{"doorNumber":"1","addressLine1":"L","pinCode":411001,"City":"Pune"},` +
			`"list":[{"id":1,"productId":1,"quantity":2,"price":100.0,"totalPrice":200.0}]}`))
	})
	client := newTestClient(t, r)

	items, err := client.GetCart(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
	assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(100)))

	order, err := client.GetOrder(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusConfirmed, order.Status)
	assert.Equal(t, "411001", order.Address.PinCode)
	assert.Equal(t, 2024, order.CreatedAt.Year())
	require.Len(t, order.Items, 1)

	_, err = client.GetOrder(context.Background(), 8)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestAddressEntityToJSON(t *testing.T) {
	testCases := []struct {
		name    string
		pin     string
		wantPin int64
		wantErr bool
	}{
		{name: "six digits", pin: "411001", wantPin: 411001},
		{name: "leading zero", pin: "012345", wantErr: true},
		{name: "negative", pin: "-12345", wantErr: true},
		{name: "plus sign", pin: "+12345", wantErr: true},
		{name: "decimal", pin: "1.2345", wantErr: true},
		{name: "five digits", pin: "41100", wantErr: true},
		{name: "letters", pin: "41100a", wantErr: true},
		{name: "empty", pin: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			addr, err := backend.AddressEntityToJSON(entities.Address{DoorNumber: "1", AddressLine1: "L", City: "Pune", PinCode: tc.pin})
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrInvalidPinCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPin, addr.PinCode)
			assert.Equal(t, tc.pin, backend.AddressJSONToEntity(addr).PinCode)
		})
	}
}

func TestClient_InvalidPinNeverSent(t *testing.T) {
	var calls atomic.Int32
	r := chi.NewRouter()
	r.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})
	client := newTestClient(t, r)
	bad := entities.Address{DoorNumber: "1", AddressLine1: "L", City: "Pune", PinCode: "1.2345"}

	assert.ErrorIs(t, client.SaveAddress(context.Background(), bad), entities.ErrInvalidPinCode)
	assert.ErrorIs(t, client.UpdateAddress(context.Background(), bad), entities.ErrInvalidPinCode)
	_, err := client.PlaceOrder(context.Background(), entities.PlaceOrderRequest{Method: entities.PaymentMethodCOD, Address: bad})
	assert.ErrorIs(t, err, entities.ErrInvalidPinCode)

	assert.Zero(t, calls.Load())
}
