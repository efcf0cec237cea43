package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-checkout/internal/service/mocks"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/widget"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/cache"
	txMocks "github.com/SergeyBogomolovv/storefront-checkout/pkg/trm/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubWidget struct{}

func (stubWidget) Open(_ context.Context, opts widget.Options) (*widget.Handle, error) {
	return widget.NewHandle(widget.Config{OrderID: opts.Order.ID, Amount: opts.Order.Amount}), nil
}

var (
	discard = slog.New(slog.NewTextHandler(io.Discard, nil))

	address = entities.Address{DoorNumber: "1", AddressLine1: "Main St", City: "Pune", PinCode: "411001"}
	items   = []entities.CartItem{{ProductID: 1, UnitPrice: decimal.NewFromInt(50), Quantity: 4}}
)

func provider(t *testing.T, subject string) *auth.JWTProvider {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	p, err := auth.NewVerifier("secret").Provider(token)
	require.NoError(t, err)
	return p
}

type checkoutService interface {
	Start(ctx context.Context, creds *auth.JWTProvider, c entities.Checkout) (checkout.Snapshot, error)
	Get(ctx context.Context, creds *auth.JWTProvider, id string) (checkout.Snapshot, error)
	UseSavedAddress(ctx context.Context, creds *auth.JWTProvider, id string, use bool) (checkout.Snapshot, error)
	UpdateAddress(ctx context.Context, creds *auth.JWTProvider, id string, a entities.Address) (checkout.Snapshot, error)
	SetPaymentMethod(ctx context.Context, creds *auth.JWTProvider, id string, m entities.PaymentMethod) (checkout.Snapshot, error)
	Submit(ctx context.Context, creds *auth.JWTProvider, id string) (checkout.Snapshot, error)
	CompletePayment(ctx context.Context, creds *auth.JWTProvider, id string, p entities.PaymentCompleted) (checkout.Snapshot, error)
	CancelPayment(ctx context.Context, creds *auth.JWTProvider, id string) (checkout.Snapshot, error)
	Discard(ctx context.Context, creds *auth.JWTProvider, id string) error
}

func newCheckoutService(b *mocks.MockBackend) (checkoutService, *cache.LRUCache[*service.Session]) {
	sessions := cache.NewLRUCache(10, time.Minute, cache.WithEvictHook(service.CloseSession))
	factory := func(auth.CredentialProvider) service.Backend { return b }
	wf := checkout.NewWorkflow(discard, stubWidget{}, "INR")
	return service.NewCheckoutService(discard, factory, wf, sessions), sessions
}

func TestCheckoutService_Start(t *testing.T) {
	testCases := []struct {
		name      string
		checkout  entities.Checkout
		mockSetup func(b *mocks.MockBackend)
		wantErr   error
		wantTotal string
	}{
		{
			name:     "items from request",
			checkout: entities.NewCheckout(items),
			mockSetup: func(b *mocks.MockBackend) {
				b.EXPECT().GetAddress(mock.Anything).Return(address, nil)
			},
			wantTotal: "200",
		},
		{
			name:     "cart loaded from backend",
			checkout: entities.NewCheckout(nil),
			mockSetup: func(b *mocks.MockBackend) {
				b.EXPECT().GetCart(mock.Anything).Return(items, nil)
				b.EXPECT().GetAddress(mock.Anything).Return(address, nil)
			},
			wantTotal: "200",
		},
		{
			name:     "empty cart",
			checkout: entities.NoActiveCheckout{},
			mockSetup: func(b *mocks.MockBackend) {
				b.EXPECT().GetCart(mock.Anything).Return(nil, entities.ErrCartEmpty)
			},
			wantErr: entities.ErrCartEmpty,
		},
		{
			name:     "invalid quantity",
			checkout: entities.ActiveCheckout{Items: []entities.CartItem{{ProductID: 1, Quantity: 0}}},
			mockSetup: func(b *mocks.MockBackend) {},
			wantErr:   checkout.ErrInvalidCart,
		},
		{
			name: "negative price",
			checkout: entities.ActiveCheckout{Items: []entities.CartItem{
				{ProductID: 1, UnitPrice: decimal.RequireFromString("-500"), Quantity: 1},
			}},
			mockSetup: func(b *mocks.MockBackend) {},
			wantErr:   checkout.ErrInvalidCart,
		},
		{
			name:      "zero price",
			checkout:  entities.ActiveCheckout{Items: []entities.CartItem{{ProductID: 1, Quantity: 3}}},
			mockSetup: func(b *mocks.MockBackend) {},
			wantErr:   checkout.ErrInvalidCart,
		},
		{
			name:     "backend cart with negative price",
			checkout: entities.NoActiveCheckout{},
			mockSetup: func(b *mocks.MockBackend) {
				b.EXPECT().GetCart(mock.Anything).Return([]entities.CartItem{
					{ProductID: 1, UnitPrice: decimal.RequireFromString("100"), Quantity: 2},
					{ProductID: 2, UnitPrice: decimal.RequireFromString("-150"), Quantity: 1},
				}, nil)
			},
			wantErr: checkout.ErrInvalidCart,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := mocks.NewMockBackend(t)
			tc.mockSetup(b)
			svc, sessions := newCheckoutService(b)

			snap, err := svc.Start(context.Background(), provider(t, "alice"), tc.checkout)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Zero(t, sessions.Size())
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, snap.ID)
			assert.Equal(t, checkout.StateIdle, snap.State)
			assert.True(t, snap.UseSavedAddress)
			assert.True(t, snap.AddressLocked)
			assert.Equal(t, address, snap.Address)
			assert.True(t, decimal.RequireFromString(tc.wantTotal).Equal(snap.Total))
			assert.Equal(t, 1, sessions.Size())
		})
	}
}

func TestCheckoutService_Ownership(t *testing.T) {
	b := mocks.NewMockBackend(t)
	b.EXPECT().GetAddress(mock.Anything).Return(entities.Address{}, entities.ErrAddressNotFound)
	svc, _ := newCheckoutService(b)
	ctx := context.Background()

	snap, err := svc.Start(ctx, provider(t, "alice"), entities.NewCheckout(items))
	require.NoError(t, err)
	assert.Equal(t, "No saved address found", snap.Message)

	_, err = svc.Get(ctx, provider(t, "bob"), snap.ID)
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)

	_, err = svc.Get(ctx, provider(t, "alice"), "missing")
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)

	got, err := svc.Get(ctx, provider(t, "alice"), snap.ID)
	require.NoError(t, err)
	assert.Equal(t, snap.ID, got.ID)
}

func TestCheckoutService_SubmitCOD(t *testing.T) {
	b := mocks.NewMockBackend(t)
	b.EXPECT().GetAddress(mock.Anything).Return(entities.Address{}, entities.ErrAddressNotFound)
	b.EXPECT().PlaceOrder(mock.Anything, mock.Anything).Return(entities.Order{ID: 11}, nil).Once()
	svc, _ := newCheckoutService(b)
	ctx := context.Background()
	alice := provider(t, "alice")

	snap, err := svc.Start(ctx, alice, entities.NewCheckout(items))
	require.NoError(t, err)

	_, err = svc.UseSavedAddress(ctx, alice, snap.ID, false)
	require.NoError(t, err)
	_, err = svc.UpdateAddress(ctx, alice, snap.ID, address)
	require.NoError(t, err)
	_, err = svc.SetPaymentMethod(ctx, alice, snap.ID, entities.PaymentMethodCOD)
	require.NoError(t, err)

	snap, err = svc.Submit(ctx, alice, snap.ID)
	require.NoError(t, err)
	assert.Equal(t, checkout.StateDone, snap.State)
	assert.Equal(t, "/orders/11", snap.Redirect)

	_, err = svc.Submit(ctx, alice, snap.ID)
	assert.ErrorIs(t, err, checkout.ErrCheckoutCompleted)
	b.AssertNotCalled(t, "CreateGatewayOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutService_OnlinePayment(t *testing.T) {
	payment := entities.PaymentCompleted{PaymentID: "pay_1", OrderID: "gw_1", Signature: "sig"}

	b := mocks.NewMockBackend(t)
	b.EXPECT().GetAddress(mock.Anything).Return(address, nil)
	b.EXPECT().CreateGatewayOrder(mock.Anything, mock.Anything, "INR").Return(entities.GatewayOrder{ID: "gw_1", Amount: 20000}, nil).Once()
	b.EXPECT().GetProfile(mock.Anything).Return(entities.Profile{}, nil)
	b.EXPECT().VerifyPayment(mock.Anything, payment).Return(true, nil).Once()
	b.EXPECT().PlaceOrder(mock.Anything, mock.Anything).Return(entities.Order{ID: 5}, nil).Once()
	svc, _ := newCheckoutService(b)
	ctx := context.Background()
	alice := provider(t, "alice")

	snap, err := svc.Start(ctx, alice, entities.NewCheckout(items))
	require.NoError(t, err)

	_, err = svc.CompletePayment(ctx, alice, snap.ID, payment)
	assert.ErrorIs(t, err, checkout.ErrPaymentNotPending)

	_, err = svc.SetPaymentMethod(ctx, alice, snap.ID, entities.PaymentMethodOnline)
	require.NoError(t, err)

	snap, err = svc.Submit(ctx, alice, snap.ID)
	require.NoError(t, err)
	require.Equal(t, checkout.StateAwaitingUser, snap.State)
	require.NotNil(t, snap.Widget)
	assert.Equal(t, "gw_1", snap.Widget.OrderID)

	snap, err = svc.CompletePayment(ctx, alice, snap.ID, payment)
	require.NoError(t, err)
	assert.Equal(t, checkout.StateDone, snap.State)
	assert.Equal(t, int64(5), snap.OrderID)
}

func TestCheckoutService_DiscardCancelsWidget(t *testing.T) {
	b := mocks.NewMockBackend(t)
	b.EXPECT().GetAddress(mock.Anything).Return(address, nil)
	b.EXPECT().CreateGatewayOrder(mock.Anything, mock.Anything, "INR").Return(entities.GatewayOrder{ID: "gw_1"}, nil)
	b.EXPECT().GetProfile(mock.Anything).Return(entities.Profile{}, nil)
	svc, sessions := newCheckoutService(b)
	ctx := context.Background()
	alice := provider(t, "alice")

	snap, err := svc.Start(ctx, alice, entities.NewCheckout(items))
	require.NoError(t, err)
	_, err = svc.SetPaymentMethod(ctx, alice, snap.ID, entities.PaymentMethodOnline)
	require.NoError(t, err)
	snap, err = svc.Submit(ctx, alice, snap.ID)
	require.NoError(t, err)
	require.Equal(t, checkout.StateAwaitingUser, snap.State)

	sess, ok := sessions.Get(snap.ID)
	require.True(t, ok)

	require.NoError(t, svc.Discard(ctx, alice, snap.ID))
	_, err = svc.Get(ctx, alice, snap.ID)
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)

	waitCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	final, err := sess.Await(waitCtx, func(s checkout.Snapshot) bool { return !s.Processing })
	require.NoError(t, err)
	assert.Equal(t, checkout.StateError, final.State)
	b.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	dbErr := errors.New("temporary")

	testCases := []struct {
		name      string
		mockSetup func(b *mocks.MockOrderBackend)
		wantErr   error
	}{
		{
			name: "OK",
			mockSetup: func(b *mocks.MockOrderBackend) {
				b.EXPECT().GetOrder(mock.Anything, int64(9)).Return(entities.Order{ID: 9}, nil).Once()
			},
		},
		{
			name: "retried after temporary error",
			mockSetup: func(b *mocks.MockOrderBackend) {
				b.EXPECT().GetOrder(mock.Anything, int64(9)).Return(entities.Order{}, dbErr).Once()
				b.EXPECT().GetOrder(mock.Anything, int64(9)).Return(entities.Order{ID: 9}, nil).Once()
			},
		},
		{
			name: "not found is not retried",
			mockSetup: func(b *mocks.MockOrderBackend) {
				b.EXPECT().GetOrder(mock.Anything, int64(9)).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := mocks.NewMockOrderBackend(t)
			tc.mockSetup(b)

			orders := cache.NewLRUCache[entities.Order](10, time.Minute)
			svc := service.NewOrderService(discard, func(auth.CredentialProvider) service.OrderBackend { return b }, orders)
			alice := provider(t, "alice")

			order, err := svc.GetOrderByID(context.Background(), alice, 9)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(9), order.ID)

			// второй запрос из кеша
			_, err = svc.GetOrderByID(context.Background(), alice, 9)
			require.NoError(t, err)

			_, ok := orders.Get("alice:9")
			assert.True(t, ok)
			_, ok = orders.Get("bob:9")
			assert.False(t, ok)
		})
	}
}

func TestAddressService(t *testing.T) {
	b := mocks.NewMockAddressBackend(t)
	b.EXPECT().GetAddress(mock.Anything).Return(address, nil).Once()
	b.EXPECT().SaveAddress(mock.Anything, address).Return(entities.ErrAddressConflict).Once()
	b.EXPECT().UpdateAddress(mock.Anything, address).Return(nil).Once()
	b.EXPECT().DeleteAddress(mock.Anything).Return(nil).Once()

	svc := service.NewAddressService(discard, func(auth.CredentialProvider) service.AddressBackend { return b })
	ctx := context.Background()
	alice := provider(t, "alice")

	got, err := svc.GetAddress(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, address, got)
	assert.ErrorIs(t, svc.SaveAddress(ctx, alice, address), entities.ErrAddressConflict)
	assert.NoError(t, svc.UpdateAddress(ctx, alice, address))
	assert.NoError(t, svc.DeleteAddress(ctx, alice))
}

func TestJournalService_Record(t *testing.T) {
	dbError := errors.New("db error")
	attempt := entities.Attempt{ID: "a1", Items: items, Outcome: entities.AttemptPlaced}

	testCases := []struct {
		name      string
		mockSetup func(r *mocks.MockAttemptRepo)
		wantTx    int
		wantErr   error
	}{
		{
			name: "OK",
			mockSetup: func(r *mocks.MockAttemptRepo) {
				r.EXPECT().SaveAttempt(mock.Anything, attempt).Return(nil).Once()
				r.EXPECT().SaveAttemptItems(mock.Anything, "a1", items).Return(nil).Once()
			},
			wantTx: 1,
		},
		{
			name: "retry works (first attempt fails, second succeeds)",
			mockSetup: func(r *mocks.MockAttemptRepo) {
				// первая попытка - SaveAttempt падает
				r.EXPECT().SaveAttempt(mock.Anything, attempt).Return(errors.New("temporary error")).Once()
				// вторая попытка - всё ок
				r.EXPECT().SaveAttempt(mock.Anything, attempt).Return(nil).Once()
				r.EXPECT().SaveAttemptItems(mock.Anything, "a1", items).Return(nil).Once()
			},
			wantTx: 2,
		},
		{
			name: "items keep failing",
			mockSetup: func(r *mocks.MockAttemptRepo) {
				r.EXPECT().SaveAttempt(mock.Anything, attempt).Return(nil)
				r.EXPECT().SaveAttemptItems(mock.Anything, "a1", items).Return(dbError)
			},
			wantTx:  3,
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := mocks.NewMockAttemptRepo(t)
			tc.mockSetup(r)
			tx := txMocks.NewMockManager(t)
			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).
				Times(tc.wantTx)

			svc := service.NewJournalService(discard, tx, r)
			err := svc.Record(context.Background(), attempt)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJournalService_LatestAttempts(t *testing.T) {
	r := mocks.NewMockAttemptRepo(t)
	r.EXPECT().LatestAttempts(mock.Anything, "alice", 10).Return([]entities.Attempt{{ID: "a1"}}, nil).Once()

	svc := service.NewJournalService(discard, txMocks.NewMockManager(t), r)
	attempts, err := svc.LatestAttempts(context.Background(), provider(t, "alice"), 10)
	require.NoError(t, err)
	assert.Len(t, attempts, 1)
}
