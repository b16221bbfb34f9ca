package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config структура конфигурации приложения.
// Собирается один раз при старте и дальше только читается.
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Stripe   StripeConfig
	Checkout CheckoutConfig
	CORS     CORSConfig
	Events   EventsConfig
}

// ServerConfig конфигурация HTTP сервера
type ServerConfig struct {
	Port            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// LoggingConfig конфигурация логгера
type LoggingConfig struct {
	Level string
}

// StripeConfig конфигурация Stripe
type StripeConfig struct {
	APIKey string
	// Валюта всех создаваемых цен
	Currency string
	// Максимальный размер страницы при чтении каталога
	CatalogPageLimit int64
	// Максимальное число завершенных сессий в выдаче /orders
	OrdersPageLimit int64
	// Явная политика исходящих вызовов: таймаут HTTP клиента (секунды)
	// и число сетевых повторов на уровне SDK
	RequestTimeout    int
	MaxNetworkRetries int
}

// CheckoutConfig конфигурация checkout-сессий
type CheckoutConfig struct {
	SuccessURL string
	CancelURL  string
}

// CORSConfig конфигурация CORS
type CORSConfig struct {
	AllowedOrigins []string
}

// EventsConfig конфигурация публикации событий в Kafka.
// По умолчанию выключена: основной путь сервиса полностью stateless.
type EventsConfig struct {
	Enabled bool
	Brokers []string
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8000"),
			ReadTimeout:     getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Stripe: StripeConfig{
			APIKey:            getEnv("STRIPE_SECRET_KEY", ""),
			Currency:          getEnv("STRIPE_CURRENCY", "usd"),
			CatalogPageLimit:  int64(getEnvAsInt("CATALOG_PAGE_LIMIT", 100)),
			OrdersPageLimit:   int64(getEnvAsInt("ORDERS_PAGE_LIMIT", 10)),
			RequestTimeout:    getEnvAsInt("STRIPE_REQUEST_TIMEOUT", 30),
			MaxNetworkRetries: getEnvAsInt("STRIPE_MAX_RETRIES", 0),
		},
		Checkout: CheckoutConfig{
			SuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/success"),
			CancelURL:  getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/cancel"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
			}),
		},
		Events: EventsConfig{
			Enabled: getEnvAsBool("ENABLE_EVENTS", false),
			Brokers: getEnvAsSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
		},
	}

	if cfg.Stripe.APIKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is not set")
	}

	return cfg, nil
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt получает значение переменной окружения как int или возвращает значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool получает значение переменной окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsSlice получает значение переменной окружения как список, разделенный запятыми
func getEnvAsSlice(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	if len(result) == 0 {
		return defaultValue
	}
	return result
}
