package payment

import (
	"net/http"
	"strconv"
	"strings"

	"payment-portal/internal/pkg/helper"
	paymentService "payment-portal/internal/service/payment"

	"github.com/gin-gonic/gin"
)

// ShowPaymentForm handles GET /payment and renders the checkout form for a
// product. Prepopulation fields are passed through leniently: phone numbers
// with spaces or dashes are fine here, the submit-time check is the strict one.
func (h *Handler) ShowPaymentForm(c *gin.Context) {
	amountRaw := c.Query("amount")
	productName := c.Query("productName")

	if amountRaw == "" || productName == "" {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"Message": "Missing required parameters",
			"Details": "Both amount and productName are required query parameters",
		})
		return
	}

	amount, err := strconv.ParseFloat(amountRaw, 64)
	if err != nil || !(amount > 0) {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"Message": "Invalid amount",
			"Details": "Amount must be a positive number",
		})
		return
	}

	c.HTML(http.StatusOK, "payment.html", gin.H{
		"ProductName":   productName,
		"AmountDisplay": helper.FormatAmount(amount, h.currency),
		"AmountValue":   helper.AmountValue(amount),
		"Error":         "",
		"FirstName":     c.Query("firstName"),
		"LastName":      c.Query("lastName"),
		"PhoneNumber":   c.Query("phoneNumber"),
		"PaymentMethod": strings.ToUpper(c.Query("paymentMethod")),
	})
}

// ProcessPayment handles POST /payment/process, the authoritative
// submission path: validate, orchestrate, then redirect or render.
func (h *Handler) ProcessPayment(c *gin.Context) {
	var form paymentService.CheckoutForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"Message": "Invalid form data",
			"Details": err.Error(),
		})
		return
	}

	req, err := h.paymentService.ValidateCheckout(&form)
	if err != nil {
		h.renderFormWithError(c, &form, err.Error())
		return
	}

	result := h.paymentService.InitiateCheckout(req)

	if !result.Success {
		details := result.Error
		if details == "" {
			details = "Please try again later"
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Message":   "Payment processing failed",
			"Details":   details,
			"Reference": result.TransactionID,
		})
		return
	}

	if result.RedirectURL != "" {
		c.Redirect(http.StatusFound, result.RedirectURL)
		return
	}

	c.HTML(http.StatusOK, "success.html", gin.H{
		"TransactionID": result.TransactionID,
		"ProductName":   req.ProductName,
		"AmountDisplay": helper.FormatAmount(req.Amount, h.currency),
	})
}

// renderFormWithError re-renders the form with an inline error and the
// submitted values so the customer can correct one field, not retype six.
func (h *Handler) renderFormWithError(c *gin.Context, form *paymentService.CheckoutForm, message string) {
	amountRaw := strings.TrimSpace(form.Amount)
	amountDisplay := amountRaw
	if amount, err := strconv.ParseFloat(amountRaw, 64); err == nil {
		amountDisplay = helper.FormatAmount(amount, h.currency)
	}

	c.HTML(http.StatusBadRequest, "payment.html", gin.H{
		"ProductName":   strings.TrimSpace(form.ProductName),
		"AmountDisplay": amountDisplay,
		"AmountValue":   amountRaw,
		"Error":         message,
		"FirstName":     strings.TrimSpace(form.FirstName),
		"LastName":      strings.TrimSpace(form.LastName),
		"PhoneNumber":   strings.TrimSpace(form.PhoneNumber),
		"PaymentMethod": strings.ToUpper(strings.TrimSpace(form.PaymentMethod)),
	})
}
