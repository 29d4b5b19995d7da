package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/davidaanderson/PaymentScheduleGenerator/pkg/money"
)

// Config holds all configuration for the quote service.
type Config struct {
	HTTPPort int
	GRPCPort int

	KafkaBrokers []string
	KafkaTopic   string

	QuoteCurrency       money.Currency
	QuoteArrangementFee decimal.Decimal
	QuoteCompletionFee  decimal.Decimal

	JWTSecret     string
	JWTIssuer     string
	JWTExpiration time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	currency, err := money.NewCurrency(getEnv("QUOTE_CURRENCY", "GBP"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUOTE_CURRENCY: %w", err)
	}

	arrangementFee, err := getEnvDecimal("QUOTE_ARRANGEMENT_FEE", "88.00")
	if err != nil {
		return nil, err
	}
	completionFee, err := getEnvDecimal("QUOTE_COMPLETION_FEE", "20.00")
	if err != nil {
		return nil, err
	}

	return &Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		GRPCPort: getEnvInt("GRPC_PORT", 9090),

		KafkaBrokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "quote.payment-schedules"),

		QuoteCurrency:       currency,
		QuoteArrangementFee: arrangementFee,
		QuoteCompletionFee:  completionFee,

		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTIssuer:     getEnv("JWT_ISSUER", "quote-service"),
		JWTExpiration: time.Duration(getEnvInt("JWT_EXPIRATION_MINUTES", 60)) * time.Minute,

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDecimal(key, defaultValue string) (decimal.Decimal, error) {
	raw := getEnv(key, defaultValue)
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}
