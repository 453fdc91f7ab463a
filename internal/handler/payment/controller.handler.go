package payment

import (
	"context"
	"net/http"

	types "payment-portal/internal/common/type"
	"payment-portal/internal/pkg/helper"
	paymentService "payment-portal/internal/service/payment"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ctx            context.Context
	paymentService paymentService.IService
	currency       string
}

type IHandler interface {
	NewRoutes(e *gin.RouterGroup)
	NewPageRoutes(e *gin.Engine)
}

func NewHandler(ctx context.Context, paymentService paymentService.IService, currency string) IHandler {
	return &Handler{
		ctx:            ctx,
		paymentService: paymentService,
		currency:       currency,
	}
}

// InitiateCheckout handles POST /api/v1/payments/initiate, the headless
// counterpart of the HTML form. Same pipeline, JSON envelope out.
func (h *Handler) InitiateCheckout(c *gin.Context) {
	send := c.MustGet("send").(func(r *types.Response))

	var form paymentService.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		send(helper.ParseResponse(&types.Response{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
			Error:   err,
		}))
		return
	}

	send(h.paymentService.Checkout(&form))
}
