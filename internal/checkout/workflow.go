package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/widget"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type PaymentWidget interface {
	Open(ctx context.Context, opts widget.Options) (*widget.Handle, error)
}

// Journal сохраняет итог каждой попытки оформления.
type Journal interface {
	Record(ctx context.Context, a entities.Attempt) error
}

// Publisher отправляет событие об оформленном заказе.
type Publisher interface {
	OrderPlaced(ctx context.Context, a entities.Attempt) error
}

type nopJournal struct{}

func (nopJournal) Record(context.Context, entities.Attempt) error { return nil }

type nopPublisher struct{}

func (nopPublisher) OrderPlaced(context.Context, entities.Attempt) error { return nil }

const recordTimeout = 5 * time.Second

type Workflow struct {
	logger   *slog.Logger
	widget   PaymentWidget
	validate *validator.Validate
	currency string
	journal  Journal
	events   Publisher
}

type WorkflowOption func(w *Workflow)

func WithJournal(j Journal) WorkflowOption {
	return func(w *Workflow) {
		w.journal = j
	}
}

func WithPublisher(p Publisher) WorkflowOption {
	return func(w *Workflow) {
		w.events = p
	}
}

func NewWorkflow(logger *slog.Logger, widget PaymentWidget, currency string, opts ...WorkflowOption) *Workflow {
	w := &Workflow{
		logger:   logger.With(slog.String("service", "checkout")),
		widget:   widget,
		validate: validator.New(),
		currency: currency,
		journal:  nopJournal{},
		events:   nopPublisher{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Submit запускает оформление в отдельной горутине. Повторный вызов,
// пока попытка не завершилась, возвращает ErrInProgress.
func (w *Workflow) Submit(s *Session) error {
	req, err := s.begin()
	if err != nil {
		return err
	}
	attemptsInProgress.Inc()
	go w.run(s, req)
	return nil
}

func (w *Workflow) run(s *Session, req entities.PlaceOrderRequest) {
	defer attemptsInProgress.Dec()

	attempt := entities.Attempt{
		ID:        uuid.NewString(),
		SessionID: s.id,
		Subject:   s.subject,
		Method:    req.Method,
		Total:     req.Total,
		Currency:  w.currency,
		Items:     req.Items,
		StartedAt: time.Now(),
	}
	logger := w.logger.With(
		slog.String("session", s.id),
		slog.String("attempt", attempt.ID),
		slog.String("method", string(req.Method)),
	)

	order, err := w.execute(s.ctx, s, req, &attempt)
	attempt.FinishedAt = time.Now()

	switch {
	case err == nil:
		attempt.Outcome = entities.AttemptPlaced
		attempt.OrderID = order.ID
		s.complete(order)
		logger.Info("order placed", slog.Int64("order_id", order.ID))
	case errors.Is(err, ErrPaymentCancelled):
		attempt.Outcome = entities.AttemptCancelled
		attempt.Error = err.Error()
		s.fail(err, nil)
		logger.Info("payment cancelled")
	default:
		attempt.Outcome = entities.AttemptFailed
		attempt.Error = err.Error()
		var fields map[string]string
		if errors.Is(err, ErrInvalidAddress) {
			fields = utils.ValidationFields(err)
		}
		s.fail(err, fields)
		logger.Warn("checkout failed", slog.Any("error", err))
	}

	attemptsTotal.WithLabelValues(string(req.Method), string(attempt.Outcome)).Inc()
	attemptDuration.WithLabelValues(string(req.Method)).Observe(attempt.FinishedAt.Sub(attempt.StartedAt).Seconds())

	w.record(logger, attempt)
}

func (w *Workflow) execute(ctx context.Context, s *Session, req entities.PlaceOrderRequest, a *entities.Attempt) (entities.Order, error) {
	if err := w.validate.Struct(req.Address); err != nil {
		return entities.Order{}, stepError(ErrInvalidAddress, err)
	}

	if req.Method == entities.PaymentMethodOnline {
		s.transition(StateAwaitingGateway)
		start := time.Now()
		gw, err := s.backend.CreateGatewayOrder(ctx, req.Total, w.currency)
		observeStep("gateway_order", start)
		if err != nil {
			return entities.Order{}, stepError(ErrGatewayOrder, err)
		}
		a.GatewayOrderID = gw.ID

		// без профиля виджет откроется с пустыми полями
		profile, err := s.backend.GetProfile(ctx)
		if err != nil {
			w.logger.Debug("failed to load profile for prefill", slog.Any("error", err))
		}

		h, err := w.widget.Open(ctx, widget.Options{Order: gw, Profile: profile})
		if err != nil {
			return entities.Order{}, stepError(ErrWidgetUnavailable, err)
		}
		s.awaitUser(h)

		outcome, err := h.Wait(ctx)
		if err != nil {
			return entities.Order{}, err
		}
		payment, ok := outcome.(entities.PaymentCompleted)
		if !ok {
			return entities.Order{}, ErrPaymentCancelled
		}
		a.PaymentID = payment.PaymentID
		// подпись верна и для оплаты другого, более дешевого заказа шлюза
		if payment.OrderID != gw.ID {
			return entities.Order{}, stepError(ErrVerificationFailed,
				fmt.Errorf("payment belongs to gateway order %q, expected %q", payment.OrderID, gw.ID))
		}

		s.transition(StateVerifying)
		start = time.Now()
		verified, err := s.backend.VerifyPayment(ctx, payment)
		observeStep("verify", start)
		if err != nil {
			return entities.Order{}, stepError(ErrVerificationFailed, err)
		}
		if !verified {
			return entities.Order{}, ErrVerificationFailed
		}

		req.PaymentID = payment.PaymentID
		req.GatewayOrderID = payment.OrderID
	}

	s.transition(StatePlacingOrder)
	start := time.Now()
	order, err := s.backend.PlaceOrder(ctx, req)
	observeStep("place_order", start)
	if err != nil {
		return entities.Order{}, stepError(ErrPlaceOrder, err)
	}
	return order, nil
}

// record пишет попытку в журнал и публикует событие. Ошибки только логируются,
// на результат оформления они не влияют.
func (w *Workflow) record(logger *slog.Logger, a entities.Attempt) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := w.journal.Record(ctx, a); err != nil {
		logger.Error("failed to record attempt", slog.Any("error", err))
	}
	if a.Outcome != entities.AttemptPlaced {
		return
	}
	if err := w.events.OrderPlaced(ctx, a); err != nil {
		logger.Error("failed to publish order placed event", slog.Any("error", err))
	}
}
