package payment

import (
	"context"
	"os"
	"testing"

	"payment-portal/internal/common/enum"
	"payment-portal/internal/pkg/logger"
	"payment-portal/internal/pkg/validation"
)

func TestMain(m *testing.M) {
	logger.Setup()
	if err := validation.Setup(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func validForm() *CheckoutForm {
	return &CheckoutForm{
		FirstName:     "John",
		LastName:      "Doe",
		PhoneNumber:   "+221771234567",
		PaymentMethod: "WAVE",
		Amount:        "5000",
		ProductName:   "Premium Subscription",
	}
}

func newValidationService() IService {
	return NewService(context.Background(), nil, "XOF")
}

func TestValidateCheckoutSuccess(t *testing.T) {
	svc := newValidationService()

	req, err := svc.ValidateCheckout(validForm())
	if err != nil {
		t.Fatalf("expected valid form, got error: %v", err)
	}
	if req.PaymentMethod != enum.WAVE {
		t.Fatalf("expected WAVE, got %s", req.PaymentMethod)
	}
	if req.Amount != 5000 {
		t.Fatalf("expected amount 5000, got %v", req.Amount)
	}
}

func TestValidateCheckoutTrimsFields(t *testing.T) {
	svc := newValidationService()

	form := validForm()
	form.FirstName = "  John "
	form.LastName = " Doe  "
	form.PhoneNumber = " +221771234567 "
	form.ProductName = "  Premium Subscription "

	req, err := svc.ValidateCheckout(form)
	if err != nil {
		t.Fatalf("expected valid form, got error: %v", err)
	}
	if req.FirstName != "John" || req.LastName != "Doe" {
		t.Fatalf("expected trimmed names, got %q %q", req.FirstName, req.LastName)
	}
	if req.PhoneNumber != "+221771234567" {
		t.Fatalf("expected trimmed phone, got %q", req.PhoneNumber)
	}
	if req.ProductName != "Premium Subscription" {
		t.Fatalf("expected trimmed product name, got %q", req.ProductName)
	}
}

func TestValidateCheckoutPresence(t *testing.T) {
	svc := newValidationService()

	mutations := map[string]func(*CheckoutForm){
		"firstName":   func(f *CheckoutForm) { f.FirstName = "" },
		"lastName":    func(f *CheckoutForm) { f.LastName = "   " },
		"phoneNumber": func(f *CheckoutForm) { f.PhoneNumber = "" },
		"method":      func(f *CheckoutForm) { f.PaymentMethod = "  " },
		"amount":      func(f *CheckoutForm) { f.Amount = "" },
		"productName": func(f *CheckoutForm) { f.ProductName = "" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			form := validForm()
			mutate(form)
			_, err := svc.ValidateCheckout(form)
			if err == nil {
				t.Fatal("expected presence error, got nil")
			}
			if err.Error() != "All fields are required" {
				t.Fatalf("expected presence message, got %q", err.Error())
			}
		})
	}
}

func TestValidateCheckoutAmount(t *testing.T) {
	svc := newValidationService()

	rejected := []string{"0", "-5", "-0.01", "abc", "5000abc", "12,50", "NaN", "Inf", "-Inf"}
	for _, amount := range rejected {
		t.Run("rejects "+amount, func(t *testing.T) {
			form := validForm()
			form.Amount = amount
			_, err := svc.ValidateCheckout(form)
			if err == nil {
				t.Fatalf("expected amount %q to be rejected", amount)
			}
			if err.Error() != "Amount must be a positive number" {
				t.Fatalf("expected positive-number message, got %q", err.Error())
			}
		})
	}

	accepted := map[string]float64{"5000": 5000, "0.01": 0.01, "1500.50": 1500.50, " 250 ": 250}
	for amount, want := range accepted {
		t.Run("accepts "+amount, func(t *testing.T) {
			form := validForm()
			form.Amount = amount
			req, err := svc.ValidateCheckout(form)
			if err != nil {
				t.Fatalf("expected amount %q to be accepted, got %v", amount, err)
			}
			if req.Amount != want {
				t.Fatalf("expected parsed amount %v, got %v", want, req.Amount)
			}
		})
	}
}

func TestValidateCheckoutPhoneFormat(t *testing.T) {
	svc := newValidationService()

	accepted := []string{"+221771234567", "221771234567", "0123456789", "+123456789012345"}
	for _, phone := range accepted {
		t.Run("accepts "+phone, func(t *testing.T) {
			form := validForm()
			form.PhoneNumber = phone
			if _, err := svc.ValidateCheckout(form); err != nil {
				t.Fatalf("expected phone %q to pass, got %v", phone, err)
			}
		})
	}

	// Human-friendly formats are fine on the display tier but must be
	// rejected here on submit.
	rejected := []string{
		"+221 77 123 45 67",
		"+221-77-123-4567",
		"123456789",        // too short
		"1234567890123456", // too long
		"77abc1234567",
		"++221771234567",
	}
	for _, phone := range rejected {
		t.Run("rejects "+phone, func(t *testing.T) {
			form := validForm()
			form.PhoneNumber = phone
			_, err := svc.ValidateCheckout(form)
			if err == nil {
				t.Fatalf("expected phone %q to be rejected", phone)
			}
			if err.Error() != "Invalid phone number format. Use international format (e.g., +221771234567)" {
				t.Fatalf("expected phone-format message, got %q", err.Error())
			}
		})
	}
}

func TestValidateCheckoutPaymentMethod(t *testing.T) {
	svc := newValidationService()

	for _, token := range []string{"wave", "WAVE", "Wave", "wAvE"} {
		t.Run("canonicalizes "+token, func(t *testing.T) {
			form := validForm()
			form.PaymentMethod = token
			req, err := svc.ValidateCheckout(form)
			if err != nil {
				t.Fatalf("expected %q to validate, got %v", token, err)
			}
			if req.PaymentMethod != enum.WAVE {
				t.Fatalf("expected WAVE, got %s", req.PaymentMethod)
			}
		})
	}

	for _, token := range []string{"MPESA", "CARD", "ORANGE", " WAVE "} {
		t.Run("rejects "+token, func(t *testing.T) {
			form := validForm()
			form.PaymentMethod = token
			_, err := svc.ValidateCheckout(form)
			if err == nil {
				t.Fatalf("expected %q to be rejected", token)
			}
			if err.Error() != "Invalid payment method. Supported methods: WAVE, ORANGE_MONEY" {
				t.Fatalf("expected method message, got %q", err.Error())
			}
		})
	}
}

func TestValidateCheckoutOrangeMoneyAuthorizationCode(t *testing.T) {
	svc := newValidationService()

	for name, code := range map[string]string{"absent": "", "blank": "   "} {
		t.Run(name, func(t *testing.T) {
			form := validForm()
			form.PaymentMethod = "orange_money"
			form.AuthorizationCode = code
			_, err := svc.ValidateCheckout(form)
			if err == nil {
				t.Fatal("expected authorization-code error, got nil")
			}
			if err.Error() != "Authorization code is required for Orange Money payments" {
				t.Fatalf("expected authorization-code message, got %q", err.Error())
			}
		})
	}

	form := validForm()
	form.PaymentMethod = "ORANGE_MONEY"
	form.AuthorizationCode = " 391042 "
	req, err := svc.ValidateCheckout(form)
	if err != nil {
		t.Fatalf("expected valid orange money form, got %v", err)
	}
	if req.PaymentMethod != enum.ORANGE_MONEY {
		t.Fatalf("expected ORANGE_MONEY, got %s", req.PaymentMethod)
	}
	if req.AuthorizationCode != "391042" {
		t.Fatalf("expected trimmed authorization code, got %q", req.AuthorizationCode)
	}

	// Wave never requires a code.
	form = validForm()
	form.AuthorizationCode = ""
	if _, err := svc.ValidateCheckout(form); err != nil {
		t.Fatalf("expected wave form without code to validate, got %v", err)
	}
}

func TestValidateCheckoutRuleOrder(t *testing.T) {
	svc := newValidationService()

	// Everything is wrong; the presence rule must win.
	form := &CheckoutForm{
		FirstName:     "",
		LastName:      "",
		PhoneNumber:   "not-a-phone",
		PaymentMethod: "MPESA",
		Amount:        "-1",
		ProductName:   "",
	}
	_, err := svc.ValidateCheckout(form)
	if err == nil || err.Error() != "All fields are required" {
		t.Fatalf("expected presence rule to win, got %v", err)
	}

	// Presence satisfied; the amount rule must fire before phone and method.
	form = validForm()
	form.Amount = "0"
	form.PhoneNumber = "bad"
	form.PaymentMethod = "MPESA"
	_, err = svc.ValidateCheckout(form)
	if err == nil || err.Error() != "Amount must be a positive number" {
		t.Fatalf("expected amount rule to win, got %v", err)
	}
}
