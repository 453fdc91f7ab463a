package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "payment-portal/configs"
	"payment-portal/internal/common/enum"
	"payment-portal/internal/pkg/helper"
	"payment-portal/internal/pkg/logger"
	"payment-portal/internal/pkg/paydunya"
	"payment-portal/internal/pkg/validation"
	serverApp "payment-portal/internal/server"

	"github.com/gin-gonic/gin"
)

func main() {
	logger.Setup()

	env, err := config.GetEnv()
	if err != nil {
		logger.Error.Println("Error getting environment", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	paydunyaClient := setupPaydunya(env)

	setupServer(&config.SetupServerDto{
		Ctx:      &ctx,
		Cancel:   cancel,
		Env:      env,
		Provider: paydunyaClient,
	})
}

func setupPaydunya(env *config.Config) *paydunya.Client {
	return paydunya.Setup(&paydunya.Config{
		MasterKey:  env.PaydunyaMasterKey,
		PrivateKey: env.PaydunyaPrivateKey,
		PublicKey:  env.PaydunyaPublicKey,
		Token:      env.PaydunyaToken,
		Mode:       env.PaydunyaMode,
		StoreName:  env.StoreName,
		BaseURL:    helper.GetEnv("PAYDUNYA_BASE_URL"),
	})
}

func setupServer(payload *config.SetupServerDto) {
	env := payload.Env
	ctx := payload.Ctx
	cancel := payload.Cancel

	defer cancel()

	err := validation.Setup()
	if err != nil {
		logger.Error.Println("Failed to setup validation")
		panic(err)
	}

	if env.AppEnv == enum.PRODUCTION {
		gin.SetMode(gin.ReleaseMode)
	}
	e := gin.Default()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", env.AppPort),
		Handler:      e,
		ReadTimeout:  time.Duration(helper.GetEnvAsIntWithDefault("SERVER_READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout: time.Duration(helper.GetEnvAsIntWithDefault("SERVER_WRITE_TIMEOUT", 60)) * time.Second,
	}

	serverApp.Setup(e, *ctx, env, payload.Provider)

	go func() {
		logger.HTTP.Println("========= Server Started =========")
		logger.HTTP.Println("=========", env.AppPort, "=========")
		logger.HTTP.Printf("Mode: %s, Currency: %s", env.PaydunyaMode, env.Currency)
		logger.HTTP.Printf("Payment form: http://localhost:%d/payment?amount=1000&productName=Test+Product", env.AppPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error.Println("Server error:", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	logger.HTTP.Println("========= Server Shutting Down =========")
	_ = server.Shutdown(*ctx)
}
