package payment

import (
	"errors"
	"fmt"
	"net/http"

	"payment-portal/internal/common/enum"
	types "payment-portal/internal/common/type"
	"payment-portal/internal/pkg/helper"
	"payment-portal/internal/pkg/logger"
	"payment-portal/internal/pkg/provider"
)

// InitiateCheckout owns the lifecycle of a single checkout attempt: it builds
// the provider call from the validated request, invokes the provider, and
// maps every outcome into a PaymentResult. It never returns an error.
func (s *Service) InitiateCheckout(req *CheckoutRequest) *PaymentResult {
	transactionID := helper.TransactionID()

	logger.Info.Printf("Initiating payment for transaction %s: amount=%v product=%q method=%s customer=%s %s phone=%s",
		transactionID, req.Amount, req.ProductName, req.PaymentMethod, req.FirstName, req.LastName, req.PhoneNumber)

	checkout, err := s.dispatch(transactionID, req)
	if err != nil {
		return s.failure(transactionID, err)
	}

	logger.Info.Printf("Payment initiated successfully for transaction %s: reference=%s status=%s",
		transactionID, checkout.TransactionReference, checkout.TransactionStatus)

	return &PaymentResult{
		Success:       true,
		RedirectURL:   checkout.RedirectURL,
		TransactionID: checkout.TransactionID,
		Message:       "Payment initiated successfully",
	}
}

func (s *Service) dispatch(transactionID string, req *CheckoutRequest) (*provider.CheckoutResult, error) {
	call := provider.CheckoutRequest{
		Amount:        req.Amount,
		Description:   req.ProductName,
		Currency:      s.currency,
		TransactionID: transactionID,
		Customer: provider.Customer{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			PhoneNumber: req.PhoneNumber,
		},
		PaymentMethod: req.PaymentMethod,
	}

	switch req.PaymentMethod {
	case enum.WAVE:
		return s.provider.CheckoutMobileMoney(s.ctx, call)
	case enum.ORANGE_MONEY:
		// Validation already enforced this; checked again so a bad caller
		// can never reach the provider without a code.
		if req.AuthorizationCode == "" {
			logger.Error.Printf("[ERR_MISSING_AUTH_CODE] transaction %s reached dispatch without a code", transactionID)
			return nil, errAuthCodeRequired
		}
		call.AuthorizationCode = req.AuthorizationCode
		return s.provider.CheckoutMobileMoney(s.ctx, call)
	default:
		// Unreachable through validation; kept as defense-in-depth.
		logger.Error.Printf("[ERR_UNSUPPORTED_METHOD] transaction %s method=%q", transactionID, req.PaymentMethod)
		return nil, fmt.Errorf("Unsupported payment method: %s", req.PaymentMethod)
	}
}

// failure converts any dispatch or provider error into a failed result with
// a fresh correlation id. A failed attempt never reuses a prior identifier.
func (s *Service) failure(transactionID string, err error) *PaymentResult {
	logger.Error.Printf("Payment initiation failed for transaction %s: %v", transactionID, err)

	message := err.Error()
	if message == "" {
		message = "Unknown error occurred"
	}

	return &PaymentResult{
		Success:       false,
		TransactionID: helper.TransactionID(),
		Error:         message,
		Message:       "Payment initiation failed",
	}
}

// Checkout is the JSON API surface: validate, orchestrate, and wrap the
// outcome in the uniform response envelope.
func (s *Service) Checkout(form *CheckoutForm) *types.Response {
	req, err := s.ValidateCheckout(form)
	if err != nil {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid form data",
			Error:   err,
		})
	}

	result := s.InitiateCheckout(req)
	if !result.Success {
		return helper.ParseResponse(&types.Response{
			Code:    http.StatusInternalServerError,
			Message: result.Message,
			Data:    result,
			Error:   errors.New(result.Error),
		})
	}

	return helper.ParseResponse(&types.Response{
		Code:    http.StatusOK,
		Message: result.Message,
		Data:    result,
	})
}
