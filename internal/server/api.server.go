package serverApp

import (
	"context"
	"net/http"

	config "payment-portal/configs"
	"payment-portal/frontend"
	paymentHandler "payment-portal/internal/handler/payment"
	"payment-portal/internal/pkg/middleware"
	"payment-portal/internal/pkg/provider"
	paymentService "payment-portal/internal/service/payment"

	"github.com/gin-gonic/gin"
)

// Setup initializes the HTTP server with middleware and routes
func Setup(
	engine *gin.Engine,
	ctx context.Context,
	env *config.Config,
	prv provider.MobileMoneyProvider,
) {
	InitMiddleware(engine)

	engine.SetHTMLTemplate(frontend.Templates())

	// Health check endpoint
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": http.StatusOK,
			"service": gin.H{
				"provider": gin.H{
					"name": prv.Name(),
					"mode": env.PaydunyaMode,
				},
				"currency": env.Currency,
			},
		})
	})

	e := engine.Group(BasePath())
	InitRoutes(e, engine, ctx, env, prv)
}

// BasePath returns the base API path
func BasePath() string {
	return "/api"
}

// InitMiddleware initializes global middleware
func InitMiddleware(e *gin.Engine) {
	e.Use(middleware.CorsMiddleware())
	e.Use(middleware.RequestInit())
	e.Use(middleware.ResponseInit())
	e.Use(middleware.ErrorRecovery())
}

func InitRoutes(
	e *gin.RouterGroup,
	engine *gin.Engine,
	ctx context.Context,
	env *config.Config,
	prv provider.MobileMoneyProvider,
) {
	// === Payment ===
	PaymentService := paymentService.NewService(ctx, prv, env.Currency)
	PaymentHandler := paymentHandler.NewHandler(ctx, PaymentService, env.Currency)
	PaymentHandler.NewRoutes(e)
	PaymentHandler.NewPageRoutes(engine)
}
