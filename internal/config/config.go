package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPAddr    string

	// BaseURL is the externally reachable address of this service. Receipt
	// and QR links handed to kiosks are built from it.
	BaseURL string

	// RatePerHour is the parking tariff in RM per purchased hour.
	RatePerHour float64

	DBType     string
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string

	Pegepay PegepayConfig
	Blob    BlobConfig
}

// PegepayConfig carries the QR payment gateway credentials and endpoints.
type PegepayConfig struct {
	TokenURL     string
	OrderURL     string
	StatusURL    string
	RefreshToken string
}

// BlobConfig configures the Azure container receipts are uploaded to.
type BlobConfig struct {
	AccountName string
	AccountKey  string
	Container   string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "meterdemo"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),
		HTTPAddr:    getenv("HTTP_ADDR", ":8000"),
		BaseURL:     strings.TrimRight(getenv("BASE_URL", "http://localhost:8000"), "/"),
		RatePerHour: getenvFloat("PARKING_RATE_PER_HOUR", 0.65),

		DBType:     getenv("DATABASE_TYPE", "postgres"),
		DBHost:     getenv("DATABASE_HOST", "localhost"),
		DBPort:     getenv("DATABASE_PORT", "5432"),
		DBName:     getenv("DATABASE_NAME", "parking_db"),
		DBUser:     getenv("DATABASE_USER", "postgres"),
		DBPassword: getenv("DATABASE_PASSWORD", ""),
		DBSSLMode:  getenv("DATABASE_SSLMODE", "disable"),

		RedisAddr:     strings.TrimSpace(getenv("REDIS_ADDR", "")),
		RedisPassword: getenv("REDIS_PASSWORD", ""),

		Pegepay: PegepayConfig{
			TokenURL:     getenv("PEGEPAY_TOKEN_URL", "https://pegepay.com/api/get-access-token"),
			OrderURL:     getenv("PEGEPAY_ORDER_URL", "https://pegepay.com/api/npd-wa/order-create/custom-validity"),
			StatusURL:    getenv("PEGEPAY_STATUS_URL", "https://pegepay.com/api/pos/transaction-details"),
			RefreshToken: strings.TrimSpace(getenv("PEGEPAY_REFRESH_TOKEN", "")),
		},
		Blob: BlobConfig{
			AccountName: strings.TrimSpace(getenv("BLOB_ACCOUNT_NAME", "")),
			AccountKey:  strings.TrimSpace(getenv("BLOB_ACCOUNT_KEY", "")),
			Container:   getenv("BLOB_CONTAINER", "receipts"),
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}
