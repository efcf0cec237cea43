package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/segmentio/kafka-go"
)

const EventOrderPlaced = "order.placed"

type OrderPlacedItem struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// OrderPlaced событие, которое уходит в топик после успешного оформления.
type OrderPlaced struct {
	Event          string            `json:"event"`
	AttemptID      string            `json:"attempt_id"`
	SessionID      string            `json:"session_id"`
	Subject        string            `json:"subject"`
	OrderID        int64             `json:"order_id"`
	PaymentMethod  string            `json:"payment_method"`
	Total          string            `json:"total"`
	Currency       string            `json:"currency"`
	GatewayOrderID string            `json:"gateway_order_id,omitempty"`
	PaymentID      string            `json:"payment_id,omitempty"`
	Items          []OrderPlacedItem `json:"items"`
	PlacedAt       time.Time         `json:"placed_at"`
}

func OrderPlacedFromAttempt(a entities.Attempt) OrderPlaced {
	items := make([]OrderPlacedItem, 0, len(a.Items))
	for _, it := range a.Items {
		items = append(items, OrderPlacedItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
		})
	}
	return OrderPlaced{
		Event:          EventOrderPlaced,
		AttemptID:      a.ID,
		SessionID:      a.SessionID,
		Subject:        a.Subject,
		OrderID:        a.OrderID,
		PaymentMethod:  string(a.Method),
		Total:          a.Total.StringFixed(2),
		Currency:       a.Currency,
		GatewayOrderID: a.GatewayOrderID,
		PaymentID:      a.PaymentID,
		Items:          items,
		PlacedAt:       a.FinishedAt,
	}
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger *slog.Logger
	writer MessageWriter
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return newKafkaPublisher(logger, &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireOne,
	})
}

func newKafkaPublisher(logger *slog.Logger, w MessageWriter) *kafkaPublisher {
	return &kafkaPublisher{
		logger: logger.With(slog.String("publisher", "kafka")),
		writer: w,
	}
}

// OrderPlaced ключ сообщения ID заказа, чтобы события одного заказа попадали в одну партицию.
func (p *kafkaPublisher) OrderPlaced(ctx context.Context, a entities.Attempt) error {
	value, err := json.Marshal(OrderPlacedFromAttempt(a))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// В библиотеке уже есть retry
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(a.OrderID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(EventOrderPlaced)},
		},
	})
	if err != nil {
		eventsFailed.Inc()
		return fmt.Errorf("failed to write message: %w", err)
	}

	eventsPublished.Inc()
	p.logger.Debug("event published", slog.Int64("order_id", a.OrderID))
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}
