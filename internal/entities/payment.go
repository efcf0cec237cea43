package entities

// GatewayOrder заказ платежного шлюза, Amount в минимальных единицах валюты.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}

// PaymentOutcome результат работы виджета оплаты:
// PaymentCompleted либо PaymentCancelled.
type PaymentOutcome interface {
	isPaymentOutcome()
}

type PaymentCompleted struct {
	PaymentID string
	OrderID   string
	Signature string
}

type PaymentCancelled struct{}

func (PaymentCompleted) isPaymentOutcome() {}
func (PaymentCancelled) isPaymentOutcome() {}
