package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodOnline
}

type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "PENDING"
	OrderStatusConfirmed       OrderStatus = "CONFIRMED"
	OrderStatusShipped         OrderStatus = "SHIPPED"
	OrderStatusDelivered       OrderStatus = "DELIVERED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
	OrderStatusReturnRequested OrderStatus = "RETURN_REQUESTED"
	OrderStatusReturned        OrderStatus = "RETURNED"
)

type OrderItem struct {
	ID         int64
	ProductID  int64
	Quantity   int
	Price      decimal.Decimal
	TotalPrice decimal.Decimal
}

type Order struct {
	ID        int64
	Status    OrderStatus
	Total     decimal.Decimal
	Method    PaymentMethod
	Address   Address
	Items     []OrderItem
	CreatedAt time.Time
}

// PlaceOrderRequest то, что уходит в бекенд при оформлении.
// PaymentID и GatewayOrderID заполняются только для оплаты онлайн.
type PlaceOrderRequest struct {
	Method         PaymentMethod
	Address        Address
	Items          []CartItem
	Total          decimal.Decimal
	PaymentID      string
	GatewayOrderID string
}
