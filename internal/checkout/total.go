package checkout

import (
	"fmt"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Total сумма unit price * quantity по всем позициям, округленная до копеек.
func Total(items []entities.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Round(2)
}

// MinorUnits переводит сумму в минимальные единицы валюты (пайсы, центы).
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Round(2).Mul(hundred).IntPart()
}

var itemsValidator = validator.New()

// ValidateCart проверяет, что в корзине есть позиции, у каждой quantity >= 1
// и положительная цена: сумма уходит в платежный шлюз как есть.
func ValidateCart(items []entities.CartItem) error {
	if len(items) == 0 {
		return entities.ErrCartEmpty
	}
	for _, it := range items {
		if err := itemsValidator.Struct(it); err != nil {
			return stepError(ErrInvalidCart, err)
		}
		if !it.UnitPrice.IsPositive() {
			return fmt.Errorf("%w: product %d has price %s", ErrInvalidCart, it.ProductID, it.UnitPrice)
		}
	}
	return nil
}
