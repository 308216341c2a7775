package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	// ServerURL is the public base URL of the storefront; redirect and
	// verification links are built from it.
	ServerURL string

	MongoURI string
	MongoDB  string

	StripeSecretKey  string
	StripeWebhookKey string
	// StripeFeePriceID is the price of the flat transaction fee appended to
	// every checkout session.
	StripeFeePriceID string

	JWTSecret string

	KafkaBrokers      string
	PaymentEventTopic string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8087"),
		Env:               getEnv("APP_ENV", "development"),
		ServerURL:         getEnv("SERVER_URL", "http://localhost:3000"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           getEnv("MONGO_DB", "marketplace"),
		StripeSecretKey:   os.Getenv("STRIPE_API_KEY"),
		StripeWebhookKey:  os.Getenv("STRIPE_WEBHOOK_SECRET"),
		StripeFeePriceID:  getEnv("STRIPE_FEE_PRICE_ID", "price_1OCeBwA19umTXGu8s4p2G3aX"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		KafkaBrokers:      getEnv("KAFKA_BROKERS", "localhost:9092"),
		PaymentEventTopic: getEnv("PAYMENT_EVENT_TOPIC", "payment-events"),
	}

	if cfg.MongoURI == "" || cfg.StripeSecretKey == "" || cfg.StripeWebhookKey == "" || cfg.JWTSecret == "" {
		return nil, fmt.Errorf("missing required environment variables")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
