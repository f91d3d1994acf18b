package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	JWT     JWTConfig
	Remotes RemoteConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type JWTConfig struct {
	SecretKey string
}

// RemoteConfig holds the base URLs of the backend services the storefront
// talks to, plus the shared HTTP timeout for those calls.
type RemoteConfig struct {
	ProductBaseURL string
	OrderBaseURL   string
	UserBaseURL    string
	Timeout        time.Duration
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Second * 10,
			WriteTimeout: time.Second * 10,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "storefront_orders"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", "my-secret-key"),
		},
		Remotes: RemoteConfig{
			ProductBaseURL: getEnv("PRODUCT_API_URL", "http://localhost:8090/api/v1/product"),
			OrderBaseURL:   getEnv("ORDER_API_URL", "http://localhost:8091/api/v1/order"),
			UserBaseURL:    getEnv("USER_API_URL", "http://localhost:8095/api/v1/user"),
			Timeout:        time.Second * 15,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
