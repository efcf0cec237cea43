package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type AttemptOutcome string

const (
	AttemptPlaced    AttemptOutcome = "placed"
	AttemptCancelled AttemptOutcome = "cancelled"
	AttemptFailed    AttemptOutcome = "failed"
)

// Attempt итог одной попытки оформления, пишется в журнал.
type Attempt struct {
	ID             string
	SessionID      string
	Subject        string
	Method         PaymentMethod
	Total          decimal.Decimal
	Currency       string
	GatewayOrderID string
	PaymentID      string
	OrderID        int64
	Outcome        AttemptOutcome
	Error          string
	Items          []CartItem
	StartedAt      time.Time
	FinishedAt     time.Time
}
