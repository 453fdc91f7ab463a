package payment

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) NewRoutes(e *gin.RouterGroup) {
	payments := e.Group("/v1/payments")

	payments.POST("/initiate", h.InitiateCheckout)
}

func (h *Handler) NewPageRoutes(e *gin.Engine) {
	e.GET("/payment", h.ShowPaymentForm)
	e.POST("/payment/process", h.ProcessPayment)
}
