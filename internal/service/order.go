package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
)

type OrderBackend interface {
	GetOrder(ctx context.Context, id int64) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
}

type OrderBackendFactory func(creds auth.CredentialProvider) OrderBackend

type OrderCache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
}

type orderService struct {
	logger   *slog.Logger
	backends OrderBackendFactory
	cache    OrderCache
	retry    utils.RetryConfig
}

func NewOrderService(logger *slog.Logger, backends OrderBackendFactory, cache OrderCache) *orderService {
	return &orderService{
		logger:   logger.With(slog.String("service", "order")),
		backends: backends,
		cache:    cache,
		retry: utils.RetryConfig{
			InitialDelay: 100 * time.Millisecond,
			MaxAttempts:  5,
			Multiplier:   2,
		},
	}
}

// GetOrderByID заказ для страницы подтверждения. Кеш разделен по subject,
// чтобы пользователь не увидел чужой заказ.
func (s *orderService) GetOrderByID(ctx context.Context, creds *auth.JWTProvider, id int64) (entities.Order, error) {
	key := fmt.Sprintf("%s:%d", creds.Subject(), id)
	if order, ok := s.cache.Get(key); ok {
		return order, nil
	}

	backend := s.backends(creds)
	var order entities.Order
	fn := func() error {
		var err error
		order, err = backend.GetOrder(ctx, id)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound, entities.ErrUnauthenticated); err != nil {
		return entities.Order{}, err
	}

	s.cache.Set(key, order)
	s.logger.Debug("order cached", slog.String("key", key))
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, creds *auth.JWTProvider) ([]entities.Order, error) {
	return s.backends(creds).ListOrders(ctx)
}
