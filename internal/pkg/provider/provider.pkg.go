package provider

import (
	"context"

	"payment-portal/internal/common/enum"
)

// Customer identifies the paying customer as the provider wants it.
type Customer struct {
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	PhoneNumber string `validate:"required,intl_phone"`
}

// CheckoutRequest is the normalized parameter set for one mobile-money
// checkout attempt. TransactionID is the locally generated correlation id.
// The validate tags are the contract a concrete provider may enforce before
// spending a network call.
type CheckoutRequest struct {
	Amount            float64 `validate:"gt=0"`
	Description       string  `validate:"required"`
	Currency          string  `validate:"required"`
	TransactionID     string  `validate:"required"`
	Customer          Customer
	PaymentMethod     enum.PaymentMethod `validate:"required"`
	AuthorizationCode string
}

// CheckoutResult is what a provider reports back for an accepted checkout.
// RedirectURL is empty when the payment completes without a hosted page.
type CheckoutResult struct {
	TransactionID        string
	TransactionReference string
	TransactionStatus    string
	TransactionAmount    float64
	TransactionCurrency  string
	RedirectURL          string
}

// MobileMoneyProvider is the single capability the orchestrator depends on.
// Any concrete PSP integration implements it (Adapter Pattern).
type MobileMoneyProvider interface {
	Name() string
	CheckoutMobileMoney(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
}
