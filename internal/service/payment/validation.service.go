package payment

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"payment-portal/internal/common/enum"
	"payment-portal/internal/pkg/validation"

	"github.com/samber/lo"
)

var (
	errAllFieldsRequired = errors.New("All fields are required")
	errAmountNotPositive = errors.New("Amount must be a positive number")
	errInvalidPhone      = errors.New("Invalid phone number format. Use international format (e.g., +221771234567)")
	errInvalidMethod     = fmt.Errorf("Invalid payment method. Supported methods: %s",
		strings.Join(lo.Map(enum.SupportedPaymentMethods(), func(m enum.PaymentMethod, _ int) string {
			return m.ToString()
		}), ", "))
	errAuthCodeRequired = errors.New("Authorization code is required for Orange Money payments")
)

// normalizedInput is the best-effort typed view of one form submission.
// Normalization never rejects; every rejection belongs to ValidateCheckout.
type normalizedInput struct {
	firstName         string
	lastName          string
	phoneNumber       string
	paymentMethod     string // case and whitespace untouched, see rule 4
	amountRaw         string
	amount            float64 // NaN when amountRaw does not parse
	productName       string
	authorizationCode string
}

func normalizeCheckoutForm(form *CheckoutForm) normalizedInput {
	in := normalizedInput{
		firstName:         strings.TrimSpace(form.FirstName),
		lastName:          strings.TrimSpace(form.LastName),
		phoneNumber:       strings.TrimSpace(form.PhoneNumber),
		paymentMethod:     form.PaymentMethod,
		amountRaw:         strings.TrimSpace(form.Amount),
		productName:       strings.TrimSpace(form.ProductName),
		authorizationCode: strings.TrimSpace(form.AuthorizationCode),
	}

	// Strict parse: the whole token must be a number. "5000abc" is a
	// rejection, not 5000.
	amount, err := strconv.ParseFloat(in.amountRaw, 64)
	if err != nil {
		amount = math.NaN()
	}
	in.amount = amount

	return in
}

// ValidateCheckout decides whether a raw submission may become a
// CheckoutRequest. Rules run in order and short-circuit: the first failing
// rule supplies the one user-facing message.
func (s *Service) ValidateCheckout(form *CheckoutForm) (*CheckoutRequest, error) {
	in := normalizeCheckoutForm(form)

	// Rule 1: presence. The authorization code is only conditionally
	// required, see rule 4.
	for _, field := range []string{
		in.firstName,
		in.lastName,
		in.phoneNumber,
		strings.TrimSpace(in.paymentMethod),
		in.amountRaw,
		in.productName,
	} {
		if validation.Var(field, "required") != nil {
			return nil, errAllFieldsRequired
		}
	}

	// Rule 2: amount must be a finite number strictly greater than zero.
	if math.IsInf(in.amount, 0) || validation.Var(in.amount, "gt=0") != nil {
		return nil, errAmountNotPositive
	}

	// Rule 3: strict submit-time phone format. The display tier is lenient
	// with spaces and dashes; this tier is not.
	if validation.Var(in.phoneNumber, "intl_phone") != nil {
		return nil, errInvalidPhone
	}

	// Rule 4: payment method, plus the Orange Money authorization code.
	method, ok := enum.ParsePaymentMethod(in.paymentMethod)
	if !ok {
		return nil, errInvalidMethod
	}
	if method.RequiresAuthorizationCode() && in.authorizationCode == "" {
		return nil, errAuthCodeRequired
	}

	return &CheckoutRequest{
		FirstName:         in.firstName,
		LastName:          in.lastName,
		PhoneNumber:       in.phoneNumber,
		PaymentMethod:     method,
		Amount:            in.amount,
		ProductName:       in.productName,
		AuthorizationCode: in.authorizationCode,
	}, nil
}
