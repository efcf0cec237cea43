package backend

import (
	"fmt"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/shopspring/decimal"
)

// Address в том виде, в котором его отдает бекенд (поле City с заглавной буквы).
type Address struct {
	DoorNumber   string `json:"doorNumber"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	PinCode      int64  `json:"pinCode"`
	City         string `json:"City"`
}

type CartItem struct {
	ProductID    int64           `json:"productId"`
	ProductName  string          `json:"productName"`
	ProductPrice decimal.Decimal `json:"productPrice"`
	Quantity     int             `json:"quantity"`
}

type Cart struct {
	ID        int64      `json:"id"`
	Items     []CartItem `json:"items"`
	UpdatedAt string     `json:"updatedAt"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

type GatewayOrder struct {
	ID       string          `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Receipt  string          `json:"receipt"`
	Status   string          `json:"status"`
}

type CheckoutRequest struct {
	PaymentMethod string          `json:"paymentMethod"`
	Address       Address         `json:"address"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentID     string          `json:"paymentId,omitempty"`
	OrderID       string          `json:"orderId,omitempty"`
}

type OrderItem struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"productId"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type Order struct {
	ID            int64           `json:"id"`
	List          []OrderItem     `json:"list"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod string          `json:"paymentMethod"`
	AddressDto    Address         `json:"addressDto"`
	CreatedAt     string          `json:"createdAt,omitempty"`
}

// onlineWireMethod метод оплаты, которым бекенд помечает онлайн-платежи.
const onlineWireMethod = "UPI"

func methodToWire(m entities.PaymentMethod) string {
	if m == entities.PaymentMethodOnline {
		return onlineWireMethod
	}
	return string(m)
}

func methodFromWire(s string) entities.PaymentMethod {
	if s == string(entities.PaymentMethodCOD) {
		return entities.PaymentMethodCOD
	}
	return entities.PaymentMethodOnline
}

// AddressEntityToJSON бекенд хранит pin code числом, поэтому принимаются только
// ровно 6 цифр без ведущего нуля: иначе число не совпадет с введенной строкой.
func AddressEntityToJSON(a entities.Address) (Address, error) {
	pin, err := strconv.ParseInt(a.PinCode, 10, 64)
	if err != nil || len(a.PinCode) != 6 || strconv.FormatInt(pin, 10) != a.PinCode {
		return Address{}, fmt.Errorf("%w: %q", entities.ErrInvalidPinCode, a.PinCode)
	}
	return Address{
		DoorNumber:   a.DoorNumber,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		PinCode:      pin,
		City:         a.City,
	}, nil
}

func AddressJSONToEntity(a Address) entities.Address {
	var pin string
	if a.PinCode != 0 {
		pin = strconv.FormatInt(a.PinCode, 10)
	}
	return entities.Address{
		DoorNumber:   a.DoorNumber,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		PinCode:      pin,
		City:         a.City,
	}
}

func CartJSONToEntity(c Cart) []entities.CartItem {
	items := make([]entities.CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, entities.CartItem{
			ProductID: it.ProductID,
			Name:      it.ProductName,
			UnitPrice: it.ProductPrice,
			Quantity:  it.Quantity,
		})
	}
	return items
}

func OrderJSONToEntity(o Order) entities.Order {
	items := make([]entities.OrderItem, 0, len(o.List))
	for _, it := range o.List {
		items = append(items, entities.OrderItem{
			ID:         it.ID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			Price:      it.Price,
			TotalPrice: it.TotalPrice,
		})
	}

	order := entities.Order{
		ID:      o.ID,
		Status:  entities.OrderStatus(o.Status),
		Total:   o.TotalAmount,
		Method:  methodFromWire(o.PaymentMethod),
		Address: AddressJSONToEntity(o.AddressDto),
		Items:   items,
	}
	order.CreatedAt = parseTime(o.CreatedAt)
	return order
}

// бекенд отдает LocalDateTime без зоны, но на всякий случай понимаем и RFC3339
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func CheckoutEntityToJSON(r entities.PlaceOrderRequest) (CheckoutRequest, error) {
	addr, err := AddressEntityToJSON(r.Address)
	if err != nil {
		return CheckoutRequest{}, err
	}
	return CheckoutRequest{
		PaymentMethod: methodToWire(r.Method),
		Address:       addr,
		TotalAmount:   r.Total,
		PaymentID:     r.PaymentID,
		OrderID:       r.GatewayOrderID,
	}, nil
}

// GatewayOrderJSONToEntity: бекенд отдает amount в минимальных единицах валюты.
func GatewayOrderJSONToEntity(g GatewayOrder) entities.GatewayOrder {
	return entities.GatewayOrder{
		ID:       g.ID,
		Amount:   g.Amount.Round(0).IntPart(),
		Currency: g.Currency,
		Receipt:  g.Receipt,
		Status:   g.Status,
	}
}
