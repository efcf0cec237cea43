package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
)

var (
	ErrInProgress           = errors.New("checkout is already in progress")
	ErrCheckoutCompleted    = errors.New("checkout is already completed")
	ErrAddressLocked        = errors.New("saved address is in use")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidCart          = errors.New("invalid cart")
	ErrPaymentNotPending    = errors.New("no payment is awaiting completion")

	ErrInvalidAddress     = errors.New("invalid address")
	ErrGatewayOrder       = errors.New("failed to create gateway order")
	ErrWidgetUnavailable  = errors.New("payment widget failed to load")
	ErrPaymentCancelled   = errors.New("payment was cancelled")
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrPlaceOrder         = errors.New("failed to place order")
)

func stepError(sentinel, err error) error {
	return fmt.Errorf("%w: %w", sentinel, err)
}

// Message текст ошибки, который показывается пользователю.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, entities.ErrUnauthenticated):
		return "Your session has expired. Please log in again."
	case errors.Is(err, ErrInvalidAddress):
		return "Please provide a complete address with a 6-digit pin code"
	case errors.Is(err, ErrGatewayOrder):
		return "Could not initiate payment. Please try again."
	case errors.Is(err, ErrWidgetUnavailable):
		return "Payment widget failed to load. Are you online?"
	case errors.Is(err, ErrPaymentCancelled):
		return "Payment was cancelled"
	case errors.Is(err, ErrVerificationFailed):
		return "Payment verification failed"
	case errors.Is(err, ErrPlaceOrder):
		return "Could not place order. Please try again."
	case errors.Is(err, context.Canceled):
		return "Checkout session has expired"
	default:
		return "Something went wrong. Please try again."
	}
}

const (
	msgNoSavedAddress   = "No saved address found"
	msgLoadAddressError = "Could not load saved address"
)
