package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/google/uuid"
)

// Backend клиент бекенда, привязанный к учетным данным одного пользователя.
type Backend interface {
	checkout.Backend
	GetCart(ctx context.Context) ([]entities.CartItem, error)
}

type BackendFactory func(creds auth.CredentialProvider) Backend

type Submitter interface {
	Submit(s *checkout.Session) error
}

// Session сессия оформления вместе с учетными данными владельца.
type Session struct {
	*checkout.Session
	creds *auth.JWTProvider
}

type SessionCache interface {
	Get(key string) (*Session, bool)
	Set(key string, value *Session)
	Delete(key string)
}

type checkoutService struct {
	logger   *slog.Logger
	backends BackendFactory
	workflow Submitter
	sessions SessionCache
}

func NewCheckoutService(logger *slog.Logger, backends BackendFactory, workflow Submitter, sessions SessionCache) *checkoutService {
	return &checkoutService{
		logger:   logger.With(slog.String("service", "checkout_session")),
		backends: backends,
		workflow: workflow,
		sessions: sessions,
	}
}

// CloseSession подходит как hook вытеснения для кеша сессий.
func CloseSession(_ string, s *Session) {
	s.Close()
}

// Start открывает сессию. Если корзина не передана, она загружается с бекенда.
func (s *checkoutService) Start(ctx context.Context, creds *auth.JWTProvider, c entities.Checkout) (checkout.Snapshot, error) {
	if _, err := creds.Token(ctx); err != nil {
		return checkout.Snapshot{}, err
	}
	// отдельный провайдер, чтобы токен сессии обновлялся независимо от запроса
	owned := creds.Clone()
	backend := s.backends(owned)

	var (
		items []entities.CartItem
		err   error
	)
	switch c := c.(type) {
	case entities.ActiveCheckout:
		items = c.Items
	default:
		items, err = backend.GetCart(ctx)
		if err != nil {
			return checkout.Snapshot{}, fmt.Errorf("failed to load cart: %w", err)
		}
	}
	if err := checkout.ValidateCart(items); err != nil {
		return checkout.Snapshot{}, err
	}

	sess := &Session{
		Session: checkout.NewSession(uuid.NewString(), owned.Subject(), backend, items),
		creds:   owned,
	}
	if err := sess.UseSavedAddress(ctx, true); err != nil {
		return checkout.Snapshot{}, err
	}
	s.sessions.Set(sess.ID(), sess)

	s.logger.Debug("checkout session started", slog.String("session", sess.ID()), slog.String("subject", sess.Subject()))
	return sess.Snapshot(), nil
}

func (s *checkoutService) Get(ctx context.Context, creds *auth.JWTProvider, id string) (checkout.Snapshot, error) {
	sess, err := s.session(ctx, creds, id)
	if err != nil {
		return checkout.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *checkoutService) UseSavedAddress(ctx context.Context, creds *auth.JWTProvider, id string, use bool) (checkout.Snapshot, error) {
	sess, err := s.session(ctx, creds, id)
	if err != nil {
		return checkout.Snapshot{}, err
	}
	if err := sess.UseSavedAddress(ctx, use); err != nil {
		return checkout.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *checkoutService) UpdateAddress(ctx context.Context, creds *auth.JWTProvider, id string, addr entities.Address) (checkout.Snapshot, error) {
	sess, err := s.session(ctx, creds, id)
	if err != nil {
		return checkout.Snapshot{}, err
	}
	if err := sess.UpdateAddress(addr); err != nil {
		return checkout.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

func (s *checkoutService) SetPaymentMethod(ctx context.Context, creds *auth.JWTProvider, id string, m entities.PaymentMethod) (checkout.Snapshot, error) {
	sess, err := s.session(ctx, creds, id)
	if err != nil {
		return checkout.Snapshot{}, err
	}
	if err := sess.SetPaymentMethod(m); err != nil {
		return checkout.Snapshot{}, err
	}
	return sess.Snapshot(), nil
}

// Submit запускает оформление и ждет, пока оно либо завершится, либо откроет виджет оплаты.
func (s *checkoutService) Submit(ctx context.Context, creds *auth.JWTProvider, id string) (checkout.Snapshot, error) {
	sess, err := s.session(ctx, creds, id)
	if err != nil {
		return checkout.Snapshot{}, err
	}
	if err := s.workflow.Submit(sess.Session); err != nil {
		return checkout.Snapshot{}, err
	}
	return sess.Await(ctx, checkout.Snapshot.Settled)
}

func (s *checkoutService) CompletePayment(ctx context.Context, creds *auth.JWTProvider, id string, p entities.PaymentCompleted) (checkout.Snapshot, error) {
	return s.resolve(ctx, creds, id, p)
}

func (s *checkoutService) CancelPayment(ctx context.Context, creds *auth.JWTProvider, id string) (checkout.Snapshot, error) {
	return s.resolve(ctx, creds, id, entities.PaymentCancelled{})
}

func (s *checkoutService) resolve(ctx context.Context, creds *auth.JWTProvider, id string, outcome entities.PaymentOutcome) (checkout.Snapshot, error) {
	sess, err := s.session(ctx, creds, id)
	if err != nil {
		return checkout.Snapshot{}, err
	}
	if err := sess.ResolvePayment(outcome); err != nil {
		return checkout.Snapshot{}, err
	}
	return sess.Await(ctx, checkout.Snapshot.Settled)
}

// Discard закрывает сессию, незавершенное оформление прерывается.
func (s *checkoutService) Discard(ctx context.Context, creds *auth.JWTProvider, id string) error {
	if _, err := s.session(ctx, creds, id); err != nil {
		return err
	}
	s.sessions.Delete(id)
	return nil
}

// session ищет сессию владельца и обновляет ее токен токеном из запроса.
// Чужая сессия неотличима от несуществующей.
func (s *checkoutService) session(ctx context.Context, creds *auth.JWTProvider, id string) (*Session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok || sess.Subject() != creds.Subject() {
		return nil, entities.ErrSessionNotFound
	}

	token, err := creds.Token(ctx)
	if err != nil {
		return nil, err
	}
	if err := sess.creds.Refresh(token); err != nil {
		return nil, err
	}
	return sess, nil
}
