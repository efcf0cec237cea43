package widget_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Ensure(t *testing.T) {
	var calls atomic.Int32
	var fail atomic.Bool
	fail.Store(true)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if fail.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("window.Razorpay = function() {}"))
	}))
	defer srv.Close()

	loader := widget.NewLoader(srv.Client(), srv.URL+"/checkout.js")

	err := loader.Ensure(context.Background())
	assert.ErrorIs(t, err, widget.ErrScriptUnavailable)

	fail.Store(false)
	require.NoError(t, loader.Ensure(context.Background()))
	require.NoError(t, loader.Ensure(context.Background()))
	require.NoError(t, loader.Ensure(context.Background()))

	// один неуспешный запрос и один успешный, дальше скрипт считается загруженным
	assert.Equal(t, int32(2), calls.Load())
}

type loaderFunc func(ctx context.Context) error

func (f loaderFunc) Ensure(ctx context.Context) error { return f(ctx) }

func TestInvoker_Open(t *testing.T) {
	cfg := config.Gateway{
		KeyID:       "rzp_test_key",
		StoreName:   "Your Store",
		Description: "Test Transaction",
		ThemeColor:  "#3399cc",
	}

	t.Run("builds config", func(t *testing.T) {
		inv := widget.NewInvoker(loaderFunc(func(context.Context) error { return nil }), cfg)

		h, err := inv.Open(context.Background(), widget.Options{
			Order:   entities.GatewayOrder{ID: "gw_1", Amount: 5000, Currency: "INR"},
			Profile: entities.Profile{Username: "alice", Email: "alice@example.com", Phone: "+919999999999"},
		})
		require.NoError(t, err)

		assert.Equal(t, widget.Config{
			Key:         "rzp_test_key",
			Amount:      5000,
			Currency:    "INR",
			Name:        "Your Store",
			Description: "Test Transaction",
			OrderID:     "gw_1",
			Prefill:     widget.Prefill{Name: "alice", Email: "alice@example.com", Contact: "+919999999999"},
			Theme:       widget.Theme{Color: "#3399cc"},
		}, h.Config())
	})

	t.Run("script failure", func(t *testing.T) {
		inv := widget.NewInvoker(loaderFunc(func(context.Context) error { return widget.ErrScriptUnavailable }), cfg)

		_, err := inv.Open(context.Background(), widget.Options{})
		assert.ErrorIs(t, err, widget.ErrScriptUnavailable)
	})
}

func TestHandle(t *testing.T) {
	t.Run("completed", func(t *testing.T) {
		h := widget.NewHandle(widget.Config{OrderID: "gw_1"})
		payment := entities.PaymentCompleted{PaymentID: "pay_1", OrderID: "gw_1", Signature: "sig"}

		go func() {
			time.Sleep(10 * time.Millisecond)
			h.Complete(payment)
		}()

		outcome, err := h.Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, payment, outcome)
	})

	t.Run("only first resolution counts", func(t *testing.T) {
		h := widget.NewHandle(widget.Config{})

		assert.True(t, h.Cancel())
		assert.False(t, h.Complete(entities.PaymentCompleted{PaymentID: "pay_1"}))

		outcome, err := h.Wait(context.Background())
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentCancelled{}, outcome)
	})

	t.Run("context cancelled", func(t *testing.T) {
		h := widget.NewHandle(widget.Config{})
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := h.Wait(ctx)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}
