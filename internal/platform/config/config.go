package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures everything the server needs from the environment.
type Config struct {
	Addr     string
	LogLevel string

	Redis       RedisConfig
	PostgresDSN string
	Kafka       KafkaConfig

	// JWTSigningKey verifies reviewer bearer tokens on decision routes.
	JWTSigningKey string
	// AdminKeyHash is the bcrypt hash guarding the dashboard reset route.
	// Empty disables the route entirely.
	AdminKeyHash string

	// QRServiceBaseURL points at the external marker-rendering service.
	QRServiceBaseURL string

	Scan ScanConfig
}

// RedisConfig captures Redis connection tuning. An empty URL means Redis is
// not configured and the in-memory store is used instead.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig captures the optional audit-sink brokers. No brokers means
// audit events stay in the local store only.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// ScanConfig tunes the simulated platform scan.
type ScanConfig struct {
	Delay     time.Duration
	BatchSize int
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:     getEnv("CORA_ADDR", ":8080"),
		LogLevel: getEnv("CORA_LOG_LEVEL", "info"),
		Redis: RedisConfig{
			URL:          os.Getenv("CORA_REDIS_URL"),
			PoolSize:     getEnvInt("CORA_REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvInt("CORA_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getEnvDuration("CORA_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvDuration("CORA_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvDuration("CORA_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		PostgresDSN: os.Getenv("CORA_POSTGRES_DSN"),
		Kafka: KafkaConfig{
			Topic: getEnv("CORA_KAFKA_AUDIT_TOPIC", "cora.audit.events"),
		},
		// Use a default for development - should be overridden in production
		JWTSigningKey:    getEnv("CORA_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		AdminKeyHash:     os.Getenv("CORA_ADMIN_KEY_HASH"),
		QRServiceBaseURL: getEnv("CORA_QR_SERVICE_URL", "https://api.qrserver.com/v1/create-qr-code/"),
		Scan: ScanConfig{
			Delay:     getEnvDuration("CORA_SCAN_DELAY", 600*time.Millisecond),
			BatchSize: getEnvInt("CORA_SCAN_BATCH_SIZE", 3),
		},
	}

	if brokers := os.Getenv("CORA_KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
			}
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
