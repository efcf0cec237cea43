package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type writerStub struct {
	msgs []kafka.Message
	err  error
}

func (w *writerStub) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *writerStub) Close() error { return nil }

func TestKafkaPublisher_OrderPlaced(t *testing.T) {
	attempt := entities.Attempt{
		ID:             "a1",
		SessionID:      "s1",
		Subject:        "alice",
		Method:         entities.PaymentMethodOnline,
		Total:          decimal.RequireFromString("200"),
		Currency:       "INR",
		GatewayOrderID: "gw_1",
		PaymentID:      "pay_1",
		OrderID:        42,
		Items: []entities.CartItem{
			{ProductID: 1, UnitPrice: decimal.NewFromInt(100), Quantity: 2},
		},
		FinishedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	w := &writerStub{}
	p := newKafkaPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), w)

	require.NoError(t, p.OrderPlaced(context.Background(), attempt))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "42", string(w.msgs[0].Key))

	var event OrderPlaced
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &event))
	assert.Equal(t, EventOrderPlaced, event.Event)
	assert.Equal(t, "200.00", event.Total)
	assert.Equal(t, "ONLINE", event.PaymentMethod)
	assert.Equal(t, "pay_1", event.PaymentID)
	require.Len(t, event.Items, 1)
	assert.Equal(t, "100.00", event.Items[0].UnitPrice)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	w := &writerStub{err: errors.New("broker down")}
	p := newKafkaPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), w)

	err := p.OrderPlaced(context.Background(), entities.Attempt{OrderID: 1})
	assert.ErrorContains(t, err, "broker down")
}
