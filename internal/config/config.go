package config

import (
	"os"
	"strconv"
	"time"
)

// Config is loaded from the environment at startup. The shipping policy
// values are configuration, not constants, so deployments can change them
// without a rebuild.
type Config struct {
	HTTPAddr     string
	PublicOrigin string

	PaymentServiceURL string
	PaymentTimeout    time.Duration

	FreeShippingThreshold float64
	FlatShippingFee       float64
	CurrencySymbol        string

	RedisAddr string
}

func Load() Config {
	return Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		PublicOrigin: getEnv("PUBLIC_ORIGIN", "http://localhost:8080"),

		PaymentServiceURL: getEnv("PAYMENT_SERVICE_URL", "http://localhost:9090/create-checkout"),
		PaymentTimeout:    getDuration("PAYMENT_TIMEOUT", 10*time.Second),

		FreeShippingThreshold: getFloat("FREE_SHIPPING_THRESHOLD", 100),
		FlatShippingFee:       getFloat("FLAT_SHIPPING_FEE", 9.99),
		CurrencySymbol:        getEnv("CURRENCY_SYMBOL", "₹"),

		RedisAddr: getEnv("REDIS_ADDR", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
