package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/shopspring/decimal"
)

type Attempt struct {
	ID             string          `db:"id"`
	SessionID      string          `db:"session_id"`
	Subject        string          `db:"subject"`
	PaymentMethod  string          `db:"payment_method"`
	Total          decimal.Decimal `db:"total"`
	Currency       string          `db:"currency"`
	GatewayOrderID sql.NullString  `db:"gateway_order_id"`
	PaymentID      sql.NullString  `db:"payment_id"`
	OrderID        sql.NullInt64   `db:"order_id"`
	Outcome        string          `db:"outcome"`
	Error          sql.NullString  `db:"error"`
	StartedAt      time.Time       `db:"started_at"`
	FinishedAt     time.Time       `db:"finished_at"`
}

type AttemptItem struct {
	AttemptID string          `db:"attempt_id"`
	ProductID int64           `db:"product_id"`
	Name      sql.NullString  `db:"name"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Quantity  int             `db:"quantity"`
}

func AttemptToEntity(a Attempt, items []AttemptItem) entities.Attempt {
	res := entities.Attempt{
		ID:             a.ID,
		SessionID:      a.SessionID,
		Subject:        a.Subject,
		Method:         entities.PaymentMethod(a.PaymentMethod),
		Total:          a.Total,
		Currency:       a.Currency,
		GatewayOrderID: a.GatewayOrderID.String,
		PaymentID:      a.PaymentID.String,
		OrderID:        a.OrderID.Int64,
		Outcome:        entities.AttemptOutcome(a.Outcome),
		Error:          a.Error.String,
		StartedAt:      a.StartedAt,
		FinishedAt:     a.FinishedAt,
		Items:          make([]entities.CartItem, 0, len(items)),
	}
	for _, it := range items {
		res.Items = append(res.Items, entities.CartItem{
			ProductID: it.ProductID,
			Name:      it.Name.String,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	return res
}
