package entities

import (
	"errors"

	"github.com/shopspring/decimal"
)

type Address struct {
	DoorNumber   string `validate:"required"`
	AddressLine1 string `validate:"required"`
	AddressLine2 string
	City         string `validate:"required"`
	PinCode      string `validate:"required,len=6,number,startsnotwith=0"`
}

func (a Address) IsZero() bool {
	return a == Address{}
}

type CartItem struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int `validate:"gte=1"`
}

// Checkout описывает корзину на входе в оформление заказа:
// NoActiveCheckout либо ActiveCheckout с позициями.
type Checkout interface {
	isCheckout()
}

type NoActiveCheckout struct{}

type ActiveCheckout struct {
	Items []CartItem
}

func (NoActiveCheckout) isCheckout() {}
func (ActiveCheckout) isCheckout()   {}

// NewCheckout сводит пустую корзину к NoActiveCheckout.
func NewCheckout(items []CartItem) Checkout {
	if len(items) == 0 {
		return NoActiveCheckout{}
	}
	return ActiveCheckout{Items: items}
}

type Profile struct {
	Username string
	Email    string
	Phone    string
}

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrAddressNotFound = errors.New("address not found")
	ErrAddressConflict = errors.New("address already exists")
	ErrOrderNotFound   = errors.New("order not found")
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrCartEmpty       = errors.New("cart is empty")
	ErrInvalidPinCode  = errors.New("pin code must be 6 digits")
)
