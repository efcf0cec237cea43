package checkout

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/widget"
	"github.com/shopspring/decimal"
)

type State string

const (
	StateIdle              State = "IDLE"
	StateValidatingAddress State = "VALIDATING_ADDRESS"
	StateAwaitingGateway   State = "AWAITING_GATEWAY"
	StateAwaitingUser      State = "AWAITING_USER_IN_WIDGET"
	StateVerifying         State = "VERIFYING"
	StatePlacingOrder      State = "PLACING_ORDER"
	StateDone              State = "DONE"
	StateError             State = "ERROR"
)

// Backend операции бекенда, нужные одной сессии. Клиент уже привязан к учетным данным пользователя.
type Backend interface {
	GetAddress(ctx context.Context) (entities.Address, error)
	GetProfile(ctx context.Context) (entities.Profile, error)
	CreateGatewayOrder(ctx context.Context, amount decimal.Decimal, currency string) (entities.GatewayOrder, error)
	VerifyPayment(ctx context.Context, p entities.PaymentCompleted) (bool, error)
	PlaceOrder(ctx context.Context, r entities.PlaceOrderRequest) (entities.Order, error)
}

// Snapshot состояние сессии на момент вызова, безопасно отдавать наружу.
type Snapshot struct {
	ID              string
	State           State
	Items           []entities.CartItem
	Total           decimal.Decimal
	UseSavedAddress bool
	AddressLocked   bool
	Address         entities.Address
	Method          entities.PaymentMethod
	Processing      bool
	Message         string
	FieldErrors     map[string]string
	Widget          *widget.Config
	OrderID         int64
	Redirect        string
	CreatedAt       time.Time
}

// Settled true, когда сессия ждет действий пользователя: либо обработка
// не идет, либо открыт виджет оплаты.
func (s Snapshot) Settled() bool {
	return !s.Processing || (s.State == StateAwaitingUser && s.Widget != nil)
}

type Session struct {
	id        string
	subject   string
	backend   Backend
	createdAt time.Time

	// ctx живет столько же, сколько сессия, отменяется в Close
	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	changed     chan struct{}
	items       []entities.CartItem
	total       decimal.Decimal
	useSaved    bool
	locked      bool
	addrGen     uint64
	address     entities.Address
	method      entities.PaymentMethod
	state       State
	processing  bool
	message     string
	fieldErrors map[string]string
	handle      *widget.Handle
	orderID     int64
}

// NewSession создает сессию в состоянии IDLE с оплатой при получении по умолчанию.
func NewSession(id, subject string, backend Backend, items []entities.CartItem) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		id:        id,
		subject:   subject,
		backend:   backend,
		createdAt: time.Now(),
		ctx:       ctx,
		cancel:    cancel,
		changed:   make(chan struct{}),
		items:     slices.Clone(items),
		total:     Total(items),
		method:    entities.PaymentMethodCOD,
		state:     StateIdle,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Subject() string {
	return s.subject
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:              s.id,
		State:           s.state,
		Items:           slices.Clone(s.items),
		Total:           s.total,
		UseSavedAddress: s.useSaved,
		AddressLocked:   s.locked,
		Address:         s.address,
		Method:          s.method,
		Processing:      s.processing,
		Message:         s.message,
		FieldErrors:     maps.Clone(s.fieldErrors),
		OrderID:         s.orderID,
		CreatedAt:       s.createdAt,
	}
	if s.handle != nil {
		cfg := s.handle.Config()
		snap.Widget = &cfg
	}
	if s.state == StateDone {
		snap.Redirect = fmt.Sprintf("/orders/%d", s.orderID)
	}
	return snap
}

// notifyLocked будит всех, кто ждет в Await.
func (s *Session) notifyLocked() {
	close(s.changed)
	s.changed = make(chan struct{})
}

func (s *Session) editableLocked() error {
	if s.processing {
		return ErrInProgress
	}
	if s.state == StateDone {
		return ErrCheckoutCompleted
	}
	return nil
}

// UseSavedAddress переключает использование сохраненного адреса.
// Выключение очищает адрес, включение загружает его с бекенда и блокирует поля.
// Ошибка загрузки не фатальна: поля остаются редактируемыми, текст ошибки пишется в сессию.
func (s *Session) UseSavedAddress(ctx context.Context, use bool) error {
	s.mu.Lock()
	if err := s.editableLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.addrGen++
	gen := s.addrGen
	s.useSaved = use
	s.locked = false
	s.address = entities.Address{}
	s.message = ""
	s.fieldErrors = nil
	s.notifyLocked()
	s.mu.Unlock()

	if !use {
		return nil
	}

	addr, err := s.backend.GetAddress(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	// пока грузили, пользователь успел переключить флаг
	if gen != s.addrGen {
		return nil
	}
	switch {
	case err == nil:
		s.address = addr
		s.locked = true
	case errors.Is(err, entities.ErrAddressNotFound):
		s.message = msgNoSavedAddress
	case errors.Is(err, entities.ErrUnauthenticated):
		s.message = Message(err)
	default:
		s.message = msgLoadAddressError
	}
	s.notifyLocked()
	return nil
}

// UpdateAddress заменяет адрес, введенный вручную.
func (s *Session) UpdateAddress(a entities.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	if s.locked {
		return ErrAddressLocked
	}
	s.address = a
	s.fieldErrors = nil
	s.notifyLocked()
	return nil
}

func (s *Session) SetPaymentMethod(m entities.PaymentMethod) error {
	if !m.Valid() {
		return ErrInvalidPaymentMethod
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return err
	}
	s.method = m
	s.notifyLocked()
	return nil
}

// ResolvePayment передает результат виджета ожидающему workflow.
func (s *Session) ResolvePayment(outcome entities.PaymentOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAwaitingUser || s.handle == nil {
		return ErrPaymentNotPending
	}

	var ok bool
	switch o := outcome.(type) {
	case entities.PaymentCompleted:
		ok = s.handle.Complete(o)
	default:
		ok = s.handle.Cancel()
	}
	if !ok {
		return ErrPaymentNotPending
	}
	s.handle = nil
	s.notifyLocked()
	return nil
}

// Await ждет, пока снимок сессии не будет удовлетворять pred.
func (s *Session) Await(ctx context.Context, pred func(Snapshot) bool) (Snapshot, error) {
	for {
		s.mu.Lock()
		snap := s.snapshotLocked()
		changed := s.changed
		s.mu.Unlock()

		if pred(snap) {
			return snap, nil
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return snap, ctx.Err()
		}
	}
}

// Close отменяет контекст сессии, ожидающий виджет workflow завершится с ошибкой.
func (s *Session) Close() {
	s.cancel()
}

func (s *Session) begin() (entities.PlaceOrderRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editableLocked(); err != nil {
		return entities.PlaceOrderRequest{}, err
	}
	s.processing = true
	s.state = StateValidatingAddress
	s.message = ""
	s.fieldErrors = nil
	s.notifyLocked()

	return entities.PlaceOrderRequest{
		Method:  s.method,
		Address: s.address,
		Items:   slices.Clone(s.items),
		Total:   s.total,
	}, nil
}

func (s *Session) transition(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.notifyLocked()
}

func (s *Session) awaitUser(h *widget.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAwaitingUser
	s.handle = h
	s.notifyLocked()
}

func (s *Session) complete(order entities.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateDone
	s.processing = false
	s.orderID = order.ID
	s.notifyLocked()
}

func (s *Session) fail(err error, fields map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateError
	s.processing = false
	s.handle = nil
	s.message = Message(err)
	s.fieldErrors = fields
	s.notifyLocked()
}
