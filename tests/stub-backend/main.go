package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/backend"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Заглушка бекенда магазина для ручной проверки оформления заказа.
// Выдает токены на /login, хранит все в памяти.

var (
	addr          = env("STUB_ADDR", "localhost:8081")
	jwtSecret     = []byte(env("STUB_JWT_SECRET", "dev-jwt-secret"))
	gatewaySecret = []byte(env("STUB_GATEWAY_SECRET", "gateway-secret"))

	verifier = auth.NewVerifier(string(jwtSecret))
)

type user struct {
	address *backend.Address
	orders  []backend.Order
}

type store struct {
	mu     sync.Mutex
	users  map[string]*user
	nextID int64
}

func (s *store) user(name string) *user {
	u, ok := s.users[name]
	if !ok {
		u = &user{}
		s.users[name] = u
	}
	return u
}

var cart = backend.Cart{
	ID: 1,
	Items: []backend.CartItem{
		{ProductID: 1, ProductName: "Keyboard", ProductPrice: decimal.RequireFromString("2499.00"), Quantity: 1},
		{ProductID: 2, ProductName: "Mouse", ProductPrice: decimal.RequireFromString("799.50"), Quantity: 2},
	},
}

func main() {
	s := &store{users: make(map[string]*user), nextID: 1}

	r := chi.NewRouter()
	r.Post("/login", login)

	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/users/me", func(w http.ResponseWriter, r *http.Request) {
			name := subject(r)
			writeJSON(w, http.StatusOK, backend.User{ID: 1, Username: name, Email: name + "@example.com"})
		})
		r.Get("/cart", func(w http.ResponseWriter, r *http.Request) {
			cart.UpdatedAt = time.Now().Format("2006-01-02T15:04:05")
			writeJSON(w, http.StatusOK, cart)
		})

		r.Route("/api/address", func(r chi.Router) {
			r.Get("/", s.getAddress)
			r.Post("/", s.saveAddress)
			r.Put("/", s.updateAddress)
			r.Delete("/", s.deleteAddress)
		})

		r.Post("/payments", createGatewayOrder)
		r.Post("/payments/verify", verifyPayment)

		r.Post("/checkout", s.checkout)
		r.Get("/api/order", s.listOrders)
		r.Get("/api/order/{id}", s.getOrder)
	})

	log.Println("stub backend listening on", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func login(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("username")
	if name == "" {
		http.Error(w, "username required", http.StatusBadRequest)
		return
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   name,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": signed})
}

func authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := verifier.Parse(auth.BearerToken(r)); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func subject(r *http.Request) string {
	claims, _ := verifier.Parse(auth.BearerToken(r))
	return claims.Subject
}

func (s *store) getAddress(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user(subject(r))
	if u.address == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, u.address)
}

func (s *store) saveAddress(w http.ResponseWriter, r *http.Request) {
	var a backend.Address
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user(subject(r))
	if u.address != nil {
		w.WriteHeader(http.StatusConflict)
		return
	}
	u.address = &a
	w.WriteHeader(http.StatusCreated)
}

func (s *store) updateAddress(w http.ResponseWriter, r *http.Request) {
	var a backend.Address
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user(subject(r))
	if u.address == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	u.address = &a
	w.WriteHeader(http.StatusOK)
}

func (s *store) deleteAddress(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.user(subject(r))
	if u.address == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	u.address = nil
	w.WriteHeader(http.StatusNoContent)
}

// createGatewayOrder принимает сумму в рублях/рупиях, отвечает в минимальных единицах.
func createGatewayOrder(w http.ResponseWriter, r *http.Request) {
	amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
	if err != nil || !amount.IsPositive() {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, backend.GatewayOrder{
		ID:       "order_" + uuid.NewString()[:14],
		Amount:   amount.Shift(2).Round(0),
		Currency: r.URL.Query().Get("currency"),
		Receipt:  "rcpt_" + strconv.FormatInt(time.Now().Unix(), 10),
		Status:   "created",
	})
}

func verifyPayment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, hmac.Equal([]byte(sign(q.Get("orderId"), q.Get("paymentId"))), []byte(q.Get("signature"))))
}

// sign подпись шлюза: hex(hmac_sha256(secret, orderId + "|" + paymentId)).
func sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, gatewaySecret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *store) checkout(w http.ResponseWriter, r *http.Request) {
	var req backend.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.PaymentMethod != "COD" && req.PaymentID == "" {
		http.Error(w, "payment id required", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order := backend.Order{
		ID:            s.nextID,
		Status:        "PENDING",
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		AddressDto:    req.Address,
		CreatedAt:     time.Now().Format("2006-01-02T15:04:05"),
	}
	for i, it := range cart.Items {
		q := decimal.NewFromInt(int64(it.Quantity))
		order.List = append(order.List, backend.OrderItem{
			ID:         int64(i + 1),
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			Price:      it.ProductPrice,
			TotalPrice: it.ProductPrice.Mul(q),
		})
	}
	s.nextID++

	u := s.user(subject(r))
	u.orders = append(u.orders, order)
	log.Printf("order %d placed by %s (%s, %s)", order.ID, subject(r), order.PaymentMethod, order.TotalAmount)
	writeJSON(w, http.StatusOK, order)
}

func (s *store) listOrders(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := s.user(subject(r)).orders
	if orders == nil {
		orders = []backend.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *store) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.user(subject(r)).orders {
		if o.ID == id {
			writeJSON(w, http.StatusOK, o)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Println("failed to encode response:", err)
	}
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
