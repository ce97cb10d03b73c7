package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/contractorpro/contractorpro/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment    DeploymentConfig    `validate:"required"`
	Server        ServerConfig        `validate:"required"`
	Logging       LoggingConfig       `validate:"required"`
	Postgres      PostgresConfig      `validate:"required"`
	Auth          AuthConfig          `validate:"required"`
	Sentry        SentryConfig        `mapstructure:"sentry"`
	Cache         CacheConfig         `mapstructure:"cache"`
	Stripe        StripeConfig        `mapstructure:"stripe"`
	Email         EmailConfig         `mapstructure:"email"`
	S3            S3Config            `mapstructure:"s3"`
	PubSub        PubSubConfig        `mapstructure:"pubsub"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	RateLimit     RateLimitConfig     `mapstructure:"rate_limit"`
	Portal        PortalConfig        `mapstructure:"portal"`
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type PostgresConfig struct {
	Host                   string `validate:"required"`
	Port                   int    `validate:"required"`
	User                   string `validate:"required"`
	Password               string
	DBName                 string `mapstructure:"dbname" validate:"required"`
	SSLMode                string `mapstructure:"sslmode"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes"`
}

type AuthConfig struct {
	Secret string       `validate:"required"`
	APIKey APIKeyConfig `mapstructure:"api_key"`
}

type APIKeyConfig struct {
	Header string `mapstructure:"header"`
	// Keys maps the sha256 hex of an API key to the details of its owner
	Keys map[string]APIKeyDetails `mapstructure:"keys"`
}

type APIKeyDetails struct {
	UserID   string `mapstructure:"user_id" json:"user_id"`
	Name     string `mapstructure:"name" json:"name"`
	IsActive bool   `mapstructure:"is_active" json:"is_active"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type StripeConfig struct {
	SecretKey       string `mapstructure:"secret_key"`
	PublishableKey  string `mapstructure:"publishable_key"`
	WebhookSecret   string `mapstructure:"webhook_secret"`
	DefaultCurrency string `mapstructure:"default_currency"`
}

type EmailConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	APIKey      string `mapstructure:"api_key"`
	FromAddress string `mapstructure:"from_address"`
	ReplyTo     string `mapstructure:"reply_to"`
	CompanyName string `mapstructure:"company_name"`
}

type S3Config struct {
	Enabled               bool          `mapstructure:"enabled"`
	Region                string        `mapstructure:"region"`
	Bucket                string        `mapstructure:"bucket"`
	KeyPrefix             string        `mapstructure:"key_prefix"`
	PresignExpiryDuration time.Duration `mapstructure:"presign_expiry_duration"`
}

type PubSubConfig struct {
	MaxRetries      int           `mapstructure:"max_retries"`
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
	Multiplier      float64       `mapstructure:"multiplier"`
	MaxElapsedTime  time.Duration `mapstructure:"max_elapsed_time"`
}

type NotificationsConfig struct {
	InvoiceEmail        bool `mapstructure:"invoice_email"`
	PaymentConfirmation bool `mapstructure:"payment_confirmation"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type PortalConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/contractorpro")

	v.SetEnvPrefix("CONTRACTORPRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
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
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func (c *Configuration) applyDefaults() {
	if c.Stripe.DefaultCurrency == "" {
		c.Stripe.DefaultCurrency = "USD"
	}
	if c.Email.FromAddress == "" {
		c.Email.FromAddress = "noreply@contractorpro.com"
	}
	if c.Email.CompanyName == "" {
		c.Email.CompanyName = "ContractorPro"
	}
	if c.Auth.APIKey.Header == "" {
		c.Auth.APIKey.Header = "x-api-key"
	}
	if c.Portal.BaseURL == "" {
		c.Portal.BaseURL = "https://portal.contractorpro.app"
	}
	if c.S3.PresignExpiryDuration == 0 {
		c.S3.PresignExpiryDuration = 24 * time.Hour
	}
}

// GetDefaultConfig returns a configuration for local scripts and tests
func GetDefaultConfig() *Configuration {
	cfg := &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
	}
	cfg.applyDefaults()
	return cfg
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
