package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/facturio/facturio/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment   DeploymentConfig   `validate:"required"`
	Logging      LoggingConfig      `validate:"required"`
	Notification NotificationConfig `validate:"required"`
	Invoicing    InvoicingConfig    `validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type NotificationConfig struct {
	// AutoDismissAfter is how long a notice stays visible before it is
	// retracted automatically
	AutoDismissAfter time.Duration `mapstructure:"auto_dismiss_after" validate:"required"`
}

type InvoicingConfig struct {
	// SaveLatency emulates the network round trip of a real backend save.
	// Zero disables the delay; correctness never depends on it.
	SaveLatency time.Duration `mapstructure:"save_latency"`
	// DefaultPaymentTermsDays applies when an invoice references a client
	// the store cannot resolve
	DefaultPaymentTermsDays int `mapstructure:"default_payment_terms_days" validate:"min=0"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/facturio")

	v.SetEnvPrefix("FACTURIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	v.SetDefault("deployment.mode", string(types.ModeLocal))
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("notification.auto_dismiss_after", "4s")
	v.SetDefault("invoicing.save_latency", "800ms")
	v.SetDefault("invoicing.default_payment_terms_days", 30)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for tests and scripts
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Notification: NotificationConfig{
			AutoDismissAfter: 4 * time.Second,
		},
		Invoicing: InvoicingConfig{
			SaveLatency:             0,
			DefaultPaymentTermsDays: 30,
		},
	}
}
