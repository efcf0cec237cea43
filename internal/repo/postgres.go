package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) SaveAttempt(ctx context.Context, a entities.Attempt) error {
	query, args := r.qb.Insert("checkout_attempts").
		Columns(
			"id", "session_id", "subject", "payment_method", "total", "currency",
			"gateway_order_id", "payment_id", "order_id", "outcome", "error",
			"started_at", "finished_at",
		).
		Values(
			a.ID, a.SessionID, a.Subject, string(a.Method), a.Total, a.Currency,
			nullString(a.GatewayOrderID), nullString(a.PaymentID), nullInt64(a.OrderID), string(a.Outcome), nullString(a.Error),
			a.StartedAt, a.FinishedAt,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save attempt: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveAttemptItems(ctx context.Context, attemptID string, items []entities.CartItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("checkout_attempt_items").
		Columns("attempt_id", "product_id", "name", "unit_price", "quantity").
		Suffix("ON CONFLICT (attempt_id, product_id) DO NOTHING")

	for _, it := range items {
		q = q.Values(attemptID, it.ProductID, nullString(it.Name), it.UnitPrice, it.Quantity)
	}

	query, args := q.MustSql()
	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save attempt items: %w", err)
	}
	return nil
}

// LatestAttempts последние попытки пользователя вместе с позициями.
func (r *postgresRepo) LatestAttempts(ctx context.Context, subject string, count int) ([]entities.Attempt, error) {
	query, args := r.qb.Select(
		"id", "session_id", "subject", "payment_method", "total", "currency",
		"gateway_order_id", "payment_id", "order_id", "outcome", "error",
		"started_at", "finished_at").
		From("checkout_attempts").
		Where(sq.Eq{"subject": subject}).
		OrderBy("started_at DESC").
		Limit(uint64(count)).
		MustSql()

	var attempts []Attempt
	if err := r.selectContext(ctx, &attempts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select attempts: %w", err)
	}
	if len(attempts) == 0 {
		return []entities.Attempt{}, nil
	}

	ids := make([]string, len(attempts))
	for i, a := range attempts {
		ids[i] = a.ID
	}

	query, args = r.qb.Select("attempt_id", "product_id", "name", "unit_price", "quantity").
		From("checkout_attempt_items").
		Where(sq.Eq{"attempt_id": ids}).
		MustSql()

	var items []AttemptItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select attempt items: %w", err)
	}
	itemsMap := make(map[string][]AttemptItem, len(ids))
	for _, it := range items {
		itemsMap[it.AttemptID] = append(itemsMap[it.AttemptID], it)
	}

	result := make([]entities.Attempt, 0, len(attempts))
	for _, a := range attempts {
		result = append(result, AttemptToEntity(a, itemsMap[a.ID]))
	}
	return result, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(i int64) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: i, Valid: true}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
