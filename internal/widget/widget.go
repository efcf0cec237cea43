package widget

import (
	"context"
	"sync"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

// Config конфигурация виджета. Имена полей диктует платежный шлюз, менять их нельзя.
type Config struct {
	Key         string  `json:"key"`
	Amount      int64   `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	OrderID     string  `json:"order_id"`
	Prefill     Prefill `json:"prefill"`
	Theme       Theme   `json:"theme"`
}

type Prefill struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
}

type Theme struct {
	Color string `json:"color,omitempty"`
}

// Options то, что меняется от попытки к попытке.
type Options struct {
	Order   entities.GatewayOrder
	Profile entities.Profile
}

type ScriptLoader interface {
	Ensure(ctx context.Context) error
}

type Invoker struct {
	loader ScriptLoader
	cfg    config.Gateway
}

func NewInvoker(loader ScriptLoader, cfg config.Gateway) *Invoker {
	return &Invoker{loader: loader, cfg: cfg}
}

// Open гарантирует загрузку скрипта и возвращает ожидающий результата Handle.
func (i *Invoker) Open(ctx context.Context, opts Options) (*Handle, error) {
	if err := i.loader.Ensure(ctx); err != nil {
		return nil, err
	}

	return NewHandle(Config{
		Key:         i.cfg.KeyID,
		Amount:      opts.Order.Amount,
		Currency:    opts.Order.Currency,
		Name:        i.cfg.StoreName,
		Description: i.cfg.Description,
		OrderID:     opts.Order.ID,
		Prefill: Prefill{
			Name:    opts.Profile.Username,
			Email:   opts.Profile.Email,
			Contact: opts.Profile.Phone,
		},
		Theme: Theme{Color: i.cfg.ThemeColor},
	}), nil
}

// Handle результат открытого виджета: разрешается ровно один раз,
// либо PaymentCompleted, либо PaymentCancelled.
type Handle struct {
	config  Config
	once    sync.Once
	done    chan struct{}
	outcome entities.PaymentOutcome
}

func NewHandle(cfg Config) *Handle {
	return &Handle{config: cfg, done: make(chan struct{})}
}

func (h *Handle) Config() Config {
	return h.config
}

// Complete возвращает false, если виджет уже был разрешен.
func (h *Handle) Complete(p entities.PaymentCompleted) bool {
	return h.resolve(p)
}

func (h *Handle) Cancel() bool {
	return h.resolve(entities.PaymentCancelled{})
}

func (h *Handle) resolve(o entities.PaymentOutcome) bool {
	resolved := false
	h.once.Do(func() {
		h.outcome = o
		close(h.done)
		resolved = true
	})
	return resolved
}

func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait ждет, пока пользователь завершит или закроет виджет. Таймаута нет,
// ожидание прерывается только отменой ctx.
func (h *Handle) Wait(ctx context.Context) (entities.PaymentOutcome, error) {
	select {
	case <-h.done:
		return h.outcome, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
