package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/auth"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"
)

type AttemptRepo interface {
	// Операции идемпотентны, т.к. используется ON CONFLICT DO NOTHING
	SaveAttempt(ctx context.Context, a entities.Attempt) error
	SaveAttemptItems(ctx context.Context, attemptID string, items []entities.CartItem) error

	LatestAttempts(ctx context.Context, subject string, count int) ([]entities.Attempt, error)
}

type journalService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      AttemptRepo
}

func NewJournalService(logger *slog.Logger, txManager trm.Manager, repo AttemptRepo) *journalService {
	return &journalService{
		logger:    logger.With(slog.String("service", "journal")),
		txManager: txManager,
		repo:      repo,
	}
}

// Record сохраняет попытку оформления целиком в одной транзакции.
func (s *journalService) Record(ctx context.Context, a entities.Attempt) error {
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveAttempt(ctx, a); err != nil {
				return fmt.Errorf("failed to save attempt: %w", err)
			}
			if err := s.repo.SaveAttemptItems(ctx, a.ID, a.Items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}

			s.logger.Debug("attempt recorded", "attempt_id", a.ID, "outcome", a.Outcome)
			return nil
		})
	}

	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}

	return utils.Retry(ctx, cfg, fn)
}

func (s *journalService) LatestAttempts(ctx context.Context, creds *auth.JWTProvider, count int) ([]entities.Attempt, error) {
	return s.repo.LatestAttempts(ctx, creds.Subject(), count)
}

// NopJournal используется, когда журнал выключен.
type NopJournal struct{}

func (NopJournal) Record(context.Context, entities.Attempt) error { return nil }

func (NopJournal) LatestAttempts(context.Context, *auth.JWTProvider, int) ([]entities.Attempt, error) {
	return []entities.Attempt{}, nil
}
