package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	// Server
	ServerPort  string
	CORSOrigins []string

	// Storage
	StorageDriver string
	LedgerDriver  string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisHost          string
	RedisPort          string
	RedisPassword      string
	RedisDB            int
	RateLimitPerMinute int

	// Auth
	JWTSecret     string
	AdminPassword string

	// Protocol
	SettlementDelay time.Duration
	LiquiditySeed   string
	ReferralBaseURL string

	// Ethereum
	EthRPCURL            string
	PaymentWalletAddress string
	EthUSDPrice          string

	// RabbitMQ
	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQUser     string
	RabbitMQPassword string

	// AWS S3
	AWSRegion          string
	AWSEndpoint        string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3BucketName       string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "5000"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:5000,http://localhost:5173")),

		StorageDriver: getEnv("STORAGE_DRIVER", StorageMemory),
		LedgerDriver:  getEnv("LEDGER_DRIVER", ""),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "bitnest"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisHost:          getEnv("REDIS_HOST", ""),
		RedisPort:          getEnv("REDIS_PORT", "6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 100),

		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "bitnest2024!"),

		SettlementDelay: getEnvDuration("SETTLEMENT_DELAY", 2*time.Second),
		LiquiditySeed:   getEnv("LIQUIDITY_SEED", "41597642"),
		ReferralBaseURL: getEnv("REFERRAL_BASE_URL", "https://bitnest.finance"),

		EthRPCURL:            getEnv("ETH_RPC_URL", "https://cloudflare-eth.com"),
		PaymentWalletAddress: getEnv("PAYMENT_WALLET_ADDRESS", "0xCbBa4594A1abD7e8C1781EdDB0CaA526FA992e4C"),
		EthUSDPrice:          getEnv("ETH_USD_PRICE", "2500"),

		RabbitMQHost:     getEnv("RABBITMQ_HOST", ""),
		RabbitMQPort:     getEnv("RABBITMQ_PORT", "5672"),
		RabbitMQUser:     getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPassword: getEnv("RABBITMQ_PASSWORD", "guest"),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3BucketName:       getEnv("S3_BUCKET_NAME", ""),
	}

	if config.LedgerDriver == "" {
		config.LedgerDriver = config.StorageDriver
	}

	return config, nil
}

// RedisEnabled reports whether a Redis host was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func (c *Config) RabbitMQEnabled() bool {
	return c.RabbitMQHost != ""
}

func (c *Config) S3Enabled() bool {
	return c.S3BucketName != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
