package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the server config values
type Config struct {
	Env            string
	Port           string
	DatabaseURL    string
	JWTSecret      string
	TokenTTL       time.Duration
	RequestTimeout time.Duration
	RedisURL       string
	AllowedOrigins []string
	AdminEmails    []string

	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	StripeSecretKey     string
	StripeWebhookSecret string
	CheckoutSuccessURL  string
	CheckoutCancelURL   string
	Currency            string

	FinishJobSpec string
}

// ClientConfig holds the values the terminal client reads.
type ClientConfig struct {
	APIURL  string
	Token   string
	UserID  int64
	Timeout time.Duration
}

// New loads .env when present, installs the global zap logger and reads the
// server configuration from the environment.
func New() (*Config, error) {
	godotenv.Load()

	env := getEnv("ENV", "production")
	logger, err := setLogger(env)
	if err != nil {
		return nil, err
	}
	_ = zap.ReplaceGlobals(logger)

	c := &Config{
		Env:                 env,
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		TokenTTL:            getDuration("TOKEN_TTL", 24*time.Hour),
		RequestTimeout:      getDuration("REQUEST_TIMEOUT", 15*time.Second),
		RedisURL:            os.Getenv("REDIS_URL"),
		AllowedOrigins:      []string{getEnv("ALLOWED_ORIGIN", "*")},
		AdminEmails:         splitList(os.Getenv("ADMIN_EMAILS")),
		SendGridAPIKey:      os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail:   os.Getenv("SENDGRID_FROM_EMAIL"),
		SendGridFromName:    getEnv("SENDGRID_FROM_NAME", "RentX"),
		TwilioAccountSID:    os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:     os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber:    os.Getenv("TWILIO_FROM_NUMBER"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		CheckoutSuccessURL:  getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/schedules/complete?session_id={CHECKOUT_SESSION_ID}"),
		CheckoutCancelURL:   getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/schedules/failed?session_id={CHECKOUT_SESSION_ID}"),
		Currency:            getEnv("CURRENCY", "brl"),
		FinishJobSpec:       getEnv("FINISH_JOB_SPEC", "@hourly"),
	}

	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}
	if c.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}
	return c, nil
}

// NewClient reads the terminal client configuration.
func NewClient() (*ClientConfig, error) {
	godotenv.Load()

	logger, err := setLogger(getEnv("ENV", "local"))
	if err != nil {
		return nil, err
	}
	_ = zap.ReplaceGlobals(logger)

	c := &ClientConfig{
		APIURL:  getEnv("RENTX_API_URL", "http://localhost:8080"),
		Token:   os.Getenv("RENTX_TOKEN"),
		Timeout: getDuration("RENTX_TIMEOUT", 10*time.Second),
	}
	if raw := os.Getenv("RENTX_USER_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RENTX_USER_ID %q: %w", raw, err)
		}
		c.UserID = id
	}
	return c, nil
}

// SendGridEnabled reports whether e-mail credentials are present.
func (c *Config) SendGridEnabled() bool {
	return c.SendGridAPIKey != "" && c.SendGridFromEmail != ""
}

// TwilioEnabled reports whether SMS credentials are present.
func (c *Config) TwilioEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// StripeEnabled reports whether checkout sessions should be created.
func (c *Config) StripeEnabled() bool {
	return c.StripeSecretKey != ""
}

func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "local":
		return zap.NewDevelopment()
	case "development":
		return zap.NewDevelopment(zap.IncreaseLevel(zap.InfoLevel))
	default:
		return zap.NewProduction()
	}
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		zap.S().Warnw("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
