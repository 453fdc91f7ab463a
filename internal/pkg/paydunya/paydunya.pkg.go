package paydunya

import (
	"context"
	"fmt"
	"strings"
	"time"

	"payment-portal/internal/common/enum"
	"payment-portal/internal/pkg/logger"
	"payment-portal/internal/pkg/provider"
	"payment-portal/internal/pkg/validation"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

const (
	liveBaseURL = "https://app.paydunya.com/api/v1"
	testBaseURL = "https://app.paydunya.com/sandbox-api/v1"

	requestTimeout = 30 * time.Second
)

type Config struct {
	MasterKey  string
	PrivateKey string
	PublicKey  string
	Token      string
	Mode       string // "live" or "test"
	StoreName  string
	BaseURL    string // optional override, used by tests
}

// Client talks to the Paydunya PSP. It implements provider.MobileMoneyProvider.
type Client struct {
	rest    *resty.Client
	breaker *gobreaker.CircuitBreaker
	store   string
}

func Setup(cfg *Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = testBaseURL
		if cfg.Mode == "live" {
			baseURL = liveBaseURL
		}
	}

	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("PAYDUNYA-MASTER-KEY", cfg.MasterKey).
		SetHeader("PAYDUNYA-PRIVATE-KEY", cfg.PrivateKey).
		SetHeader("PAYDUNYA-PUBLIC-KEY", cfg.PublicKey).
		SetHeader("PAYDUNYA-TOKEN", cfg.Token)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "paydunya",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if logger.Error != nil {
				logger.Error.Printf("circuit breaker %s: %s -> %s", name, from, to)
			}
		},
	})

	return &Client{
		rest:    rest,
		breaker: breaker,
		store:   cfg.StoreName,
	}
}

func (c *Client) Name() string {
	return "PAYDUNYA"
}

// CheckoutMobileMoney creates a checkout invoice then pushes it onto the
// requested mobile-money rail. Wave yields a hosted redirect URL; Orange
// Money is charged directly against the customer's authorization code and
// completes without a redirect.
func (c *Client) CheckoutMobileMoney(ctx context.Context, req provider.CheckoutRequest) (*provider.CheckoutResult, error) {
	// Malformed requests are rejected here; they never reach the breaker
	// or the wire.
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.checkout(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return out.(*provider.CheckoutResult), nil
}

func (c *Client) checkout(ctx context.Context, req provider.CheckoutRequest) (*provider.CheckoutResult, error) {
	token, err := c.createInvoice(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &provider.CheckoutResult{
		TransactionID:        req.TransactionID,
		TransactionReference: token,
		TransactionStatus:    "pending",
		TransactionAmount:    req.Amount,
		TransactionCurrency:  req.Currency,
	}

	switch req.PaymentMethod {
	case enum.WAVE:
		redirectURL, err := c.pushWave(ctx, req, token)
		if err != nil {
			return nil, err
		}
		result.RedirectURL = redirectURL
	case enum.ORANGE_MONEY:
		if err := c.pushOrangeMoney(ctx, req, token); err != nil {
			return nil, err
		}
		result.TransactionStatus = "success"
	default:
		return nil, fmt.Errorf("paydunya: no rail for payment method %s", req.PaymentMethod)
	}

	return result, nil
}

type invoiceRequest struct {
	Invoice    invoiceDetails `json:"invoice"`
	Store      storeDetails   `json:"store"`
	CustomData map[string]any `json:"custom_data,omitempty"`
}

type invoiceDetails struct {
	TotalAmount float64 `json:"total_amount"`
	Description string  `json:"description"`
}

type storeDetails struct {
	Name string `json:"name"`
}

type invoiceResponse struct {
	ResponseCode string `json:"response_code"`
	ResponseText string `json:"response_text"`
	Token        string `json:"token"`
}

func (c *Client) createInvoice(ctx context.Context, req provider.CheckoutRequest) (string, error) {
	var parsed invoiceResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(invoiceRequest{
			Invoice: invoiceDetails{
				TotalAmount: req.Amount,
				Description: req.Description,
			},
			Store: storeDetails{Name: c.store},
			CustomData: map[string]any{
				"transaction_id": req.TransactionID,
			},
		}).
		SetResult(&parsed).
		Post("/checkout-invoice/create")
	if err != nil {
		return "", fmt.Errorf("paydunya: create invoice: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("paydunya: create invoice returned %s", resp.Status())
	}
	if parsed.ResponseCode != "00" {
		return "", fmt.Errorf("paydunya: %s", parsed.ResponseText)
	}
	return parsed.Token, nil
}

type softpayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

func (c *Client) pushWave(ctx context.Context, req provider.CheckoutRequest, token string) (string, error) {
	var parsed softpayResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"wave_senegal_fullName":      req.Customer.FirstName + " " + req.Customer.LastName,
			"wave_senegal_email":         placeholderEmail(req.Customer.PhoneNumber),
			"wave_senegal_phone":         req.Customer.PhoneNumber,
			"wave_senegal_payment_token": token,
		}).
		SetResult(&parsed).
		Post("/softpay/wave-senegal")
	if err != nil {
		return "", fmt.Errorf("paydunya: wave checkout: %w", err)
	}
	if resp.IsError() || !parsed.Success {
		return "", softpayError("wave", resp, parsed)
	}
	return parsed.URL, nil
}

func (c *Client) pushOrangeMoney(ctx context.Context, req provider.CheckoutRequest, token string) error {
	var parsed softpayResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"customer_name":      req.Customer.FirstName + " " + req.Customer.LastName,
			"customer_email":     placeholderEmail(req.Customer.PhoneNumber),
			"phone_number":       req.Customer.PhoneNumber,
			"authorization_code": req.AuthorizationCode,
			"invoice_token":      token,
		}).
		SetResult(&parsed).
		Post("/softpay/new-orange-money-senegal")
	if err != nil {
		return fmt.Errorf("paydunya: orange money checkout: %w", err)
	}
	if resp.IsError() || !parsed.Success {
		return softpayError("orange money", resp, parsed)
	}
	return nil
}

func softpayError(rail string, resp *resty.Response, parsed softpayResponse) error {
	if parsed.Message != "" {
		return fmt.Errorf("paydunya: %s", parsed.Message)
	}
	return fmt.Errorf("paydunya: %s checkout returned %s", rail, resp.Status())
}

// Paydunya requires an email address; checkout collects phone numbers only.
func placeholderEmail(phone string) string {
	return strings.TrimPrefix(phone, "+") + "@checkout.invalid"
}
