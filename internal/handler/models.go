package handler

import (
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/widget"
	"github.com/shopspring/decimal"
)

// Address адрес доставки
type Address struct {
	DoorNumber   string `json:"door_number" validate:"required"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city" validate:"required"`
	PinCode      string `json:"pin_code" validate:"required,len=6,number,startsnotwith=0"`
}

// CartItem позиция корзины
type CartItem struct {
	ProductID int64           `json:"product_id" validate:"required"`
	Name      string          `json:"name,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"100.00"`
	Quantity  int             `json:"quantity" validate:"gte=1"`
}

// StartCheckoutRequest запрос на открытие сессии. Без items корзина берется с бекенда.
type StartCheckoutRequest struct {
	Items []CartItem `json:"items,omitempty" validate:"omitempty,dive"`
}

type SavedAddressRequest struct {
	Use *bool `json:"use" validate:"required"`
}

type PaymentMethodRequest struct {
	Method string `json:"method" validate:"required,oneof=COD ONLINE"`
}

// PaymentCompleteRequest данные, которые виджет отдает в success callback
type PaymentCompleteRequest struct {
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

// CheckoutView состояние сессии оформления
type CheckoutView struct {
	SessionID       string            `json:"session_id"`
	State           string            `json:"state" example:"IDLE"`
	Items           []CartItem        `json:"items"`
	Total           string            `json:"total" example:"200.00"`
	UseSavedAddress bool              `json:"use_saved_address"`
	AddressLocked   bool              `json:"address_locked"`
	Address         Address           `json:"address"`
	PaymentMethod   string            `json:"payment_method" example:"COD"`
	Processing      bool              `json:"processing"`
	Error           string            `json:"error,omitempty"`
	FieldErrors     map[string]string `json:"field_errors,omitempty"`
	Widget          *widget.Config    `json:"widget,omitempty"`
	WidgetScript    string            `json:"widget_script,omitempty"`
	OrderID         int64             `json:"order_id,omitempty"`
	Redirect        string            `json:"redirect,omitempty"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ID         int64  `json:"id"`
	ProductID  int64  `json:"product_id"`
	Quantity   int    `json:"quantity"`
	Price      string `json:"price"`
	TotalPrice string `json:"total_price"`
}

// Order заказ
type Order struct {
	ID            int64       `json:"id"`
	Status        string      `json:"status" example:"PENDING"`
	Total         string      `json:"total"`
	PaymentMethod string      `json:"payment_method"`
	Address       Address     `json:"address"`
	Items         []OrderItem `json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		DoorNumber:   a.DoorNumber,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		PinCode:      a.PinCode,
	}
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		DoorNumber:   a.DoorNumber,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		PinCode:      a.PinCode,
	}
}

func CartItemsJSONToEntity(items []CartItem) []entities.CartItem {
	res := make([]entities.CartItem, 0, len(items))
	for _, it := range items {
		res = append(res, entities.CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	return res
}

func CartItemsEntityToJSON(items []entities.CartItem) []CartItem {
	res := make([]CartItem, 0, len(items))
	for _, it := range items {
		res = append(res, CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	return res
}

func SnapshotToView(s checkout.Snapshot, scriptURL string) CheckoutView {
	view := CheckoutView{
		SessionID:       s.ID,
		State:           string(s.State),
		Items:           CartItemsEntityToJSON(s.Items),
		Total:           s.Total.StringFixed(2),
		UseSavedAddress: s.UseSavedAddress,
		AddressLocked:   s.AddressLocked,
		Address:         AddressEntityToJSON(s.Address),
		PaymentMethod:   string(s.Method),
		Processing:      s.Processing,
		Error:           s.Message,
		FieldErrors:     s.FieldErrors,
		Widget:          s.Widget,
		OrderID:         s.OrderID,
		Redirect:        s.Redirect,
	}
	if s.Widget != nil {
		view.WidgetScript = scriptURL
	}
	return view
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			Price:      it.Price.StringFixed(2),
			TotalPrice: it.TotalPrice.StringFixed(2),
		})
	}
	return Order{
		ID:            o.ID,
		Status:        string(o.Status),
		Total:         o.Total.StringFixed(2),
		PaymentMethod: string(o.Method),
		Address:       AddressEntityToJSON(o.Address),
		Items:         items,
		CreatedAt:     o.CreatedAt,
	}
}

// Attempt запись журнала попыток оформления
type Attempt struct {
	ID             string     `json:"id"`
	PaymentMethod  string     `json:"payment_method"`
	Total          string     `json:"total"`
	Currency       string     `json:"currency"`
	Outcome        string     `json:"outcome" example:"placed"`
	Error          string     `json:"error,omitempty"`
	OrderID        int64      `json:"order_id,omitempty"`
	GatewayOrderID string     `json:"gateway_order_id,omitempty"`
	Items          []CartItem `json:"items"`
	StartedAt      time.Time  `json:"started_at"`
	FinishedAt     time.Time  `json:"finished_at"`
}

func AttemptEntityToJSON(a entities.Attempt) Attempt {
	return Attempt{
		ID:             a.ID,
		PaymentMethod:  string(a.Method),
		Total:          a.Total.StringFixed(2),
		Currency:       a.Currency,
		Outcome:        string(a.Outcome),
		Error:          a.Error,
		OrderID:        a.OrderID,
		GatewayOrderID: a.GatewayOrderID,
		Items:          CartItemsEntityToJSON(a.Items),
		StartedAt:      a.StartedAt,
		FinishedAt:     a.FinishedAt,
	}
}
