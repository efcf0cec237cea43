package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

type AddressBackend interface {
	GetAddress(ctx context.Context) (entities.Address, error)
	SaveAddress(ctx context.Context, a entities.Address) error
	UpdateAddress(ctx context.Context, a entities.Address) error
	DeleteAddress(ctx context.Context) error
}

type AddressBackendFactory func(creds auth.CredentialProvider) AddressBackend

// addressService адресная книга пользователя, хранится на бекенде.
type addressService struct {
	logger   *slog.Logger
	backends AddressBackendFactory
}

func NewAddressService(logger *slog.Logger, backends AddressBackendFactory) *addressService {
	return &addressService{
		logger:   logger.With(slog.String("service", "address")),
		backends: backends,
	}
}

func (s *addressService) GetAddress(ctx context.Context, creds *auth.JWTProvider) (entities.Address, error) {
	return s.backends(creds).GetAddress(ctx)
}

func (s *addressService) SaveAddress(ctx context.Context, creds *auth.JWTProvider, a entities.Address) error {
	if err := s.backends(creds).SaveAddress(ctx, a); err != nil {
		return err
	}
	s.logger.Debug("address saved", slog.String("subject", creds.Subject()))
	return nil
}

func (s *addressService) UpdateAddress(ctx context.Context, creds *auth.JWTProvider, a entities.Address) error {
	return s.backends(creds).UpdateAddress(ctx, a)
}

func (s *addressService) DeleteAddress(ctx context.Context, creds *auth.JWTProvider) error {
	return s.backends(creds).DeleteAddress(ctx)
}
