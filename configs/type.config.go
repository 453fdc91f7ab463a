package config

import (
	"context"

	"payment-portal/internal/common/enum"
	"payment-portal/internal/pkg/provider"
)

// Config holds all application configuration loaded from environment
// variables. Read-only after GetEnv returns.
type Config struct {
	AppEnv  enum.EnvEnum `env:"APP_ENV" envDefault:"development"`
	AppPort int          `env:"APP_PORT" envDefault:"3000"`

	PaydunyaMasterKey  string `env:"PAYDUNYA_MASTER_KEY" envDefault:""`
	PaydunyaPrivateKey string `env:"PAYDUNYA_PRIVATE_KEY" envDefault:""`
	PaydunyaPublicKey  string `env:"PAYDUNYA_PUBLIC_KEY" envDefault:""`
	PaydunyaToken      string `env:"PAYDUNYA_TOKEN" envDefault:""`
	PaydunyaMode       string `env:"PAYDUNYA_MODE" envDefault:"test"`

	Currency  string `env:"CURRENCY" envDefault:"XOF"`
	StoreName string `env:"STORE_NAME" envDefault:"Tecafrik Payment Portal"`
}

// SetupServerDto contains dependencies for server setup
type SetupServerDto struct {
	Ctx      *context.Context
	Cancel   context.CancelFunc
	Env      *Config
	Provider provider.MobileMoneyProvider
}
