package payment

import (
	"context"

	"payment-portal/internal/common/enum"
	types "payment-portal/internal/common/type"
	"payment-portal/internal/pkg/provider"
)

type Service struct {
	ctx      context.Context
	provider provider.MobileMoneyProvider
	currency string
}

type IService interface {
	ValidateCheckout(form *CheckoutForm) (*CheckoutRequest, error)
	InitiateCheckout(req *CheckoutRequest) *PaymentResult
	Checkout(form *CheckoutForm) *types.Response
}

func NewService(ctx context.Context, prv provider.MobileMoneyProvider, currency string) IService {
	return &Service{
		ctx:      ctx,
		provider: prv,
		currency: currency,
	}
}

// Request/Response DTOs

// CheckoutForm is the untrusted, stringly-typed submission exactly as it
// arrives from the HTML form or the JSON API. It lives for one request.
type CheckoutForm struct {
	FirstName         string `form:"firstName" json:"firstName"`
	LastName          string `form:"lastName" json:"lastName"`
	PhoneNumber       string `form:"phoneNumber" json:"phoneNumber"`
	PaymentMethod     string `form:"paymentMethod" json:"paymentMethod"`
	Amount            string `form:"amount" json:"amount"`
	ProductName       string `form:"productName" json:"productName"`
	AuthorizationCode string `form:"authorizationCode" json:"authorizationCode"`
}

// CheckoutRequest is a fully validated checkout. Only ValidateCheckout
// constructs one; the orchestrator accepts nothing else.
type CheckoutRequest struct {
	FirstName         string
	LastName          string
	PhoneNumber       string
	PaymentMethod     enum.PaymentMethod
	Amount            float64
	ProductName       string
	AuthorizationCode string
}

// PaymentResult is the uniform outcome of one checkout attempt. Immutable
// once returned; consumed exactly once by the presentation layer.
type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
	RedirectURL   string `json:"redirectUrl,omitempty"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
}
