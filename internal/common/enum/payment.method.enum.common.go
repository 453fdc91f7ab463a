package enum

import "strings"

// PaymentMethod is the closed set of mobile-money rails the portal accepts.
type PaymentMethod string

const (
	WAVE         PaymentMethod = "WAVE"
	ORANGE_MONEY PaymentMethod = "ORANGE_MONEY"
)

func (m PaymentMethod) ToString() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case WAVE, ORANGE_MONEY:
		return true
	}
	return false
}

// RequiresAuthorizationCode reports whether the carrier needs an out-of-band
// authorization code before checkout.
func (m PaymentMethod) RequiresAuthorizationCode() bool {
	return m == ORANGE_MONEY
}

// ParsePaymentMethod canonicalizes a raw token to its enum value. Matching is
// case-insensitive; surrounding whitespace is not forgiven.
func ParsePaymentMethod(raw string) (PaymentMethod, bool) {
	m := PaymentMethod(strings.ToUpper(raw))
	return m, m.IsValid()
}

// SupportedPaymentMethods lists the accepted tokens in display order.
func SupportedPaymentMethods() []PaymentMethod {
	return []PaymentMethod{WAVE, ORANGE_MONEY}
}
