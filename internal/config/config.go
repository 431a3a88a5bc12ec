package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Профиль пользователя, от имени которого работает конвейер
	UserName        string `env:"USER_NAME" envDefault:"Sakhi User"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`

	// Postgres (необязательный аудиторский архив оповещений)
	DatabaseURL string `env:"DATABASE_URL"`

	// Redis Config (пустой REDIS_ADDR переключает хранилище в память)
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Внешний SMS-шлюз (необязательный; без него доставка симулируется)
	GatewayURL        string        `env:"GATEWAY_URL"`
	GatewaySecret     string        `env:"GATEWAY_SECRET"`
	GatewayTimeout    time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"5s"`
	GatewayMaxRetries int           `env:"GATEWAY_MAX_RETRIES" envDefault:"3"`
	GatewayBaseDelay  time.Duration `env:"GATEWAY_BASE_DELAY" envDefault:"1s"`

	// Параметры конвейера оповещений
	DeliveryDelay      time.Duration `env:"DELIVERY_DELAY" envDefault:"1s"`
	LowBatteryDebounce time.Duration `env:"LOW_BATTERY_DEBOUNCE" envDefault:"1h"`
	LocationMaxAge     time.Duration `env:"LOCATION_MAX_AGE" envDefault:"5m"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		UserName:           getEnv("USER_NAME", "Sakhi User"),
		DefaultLanguage:    getEnv("DEFAULT_LANGUAGE", "en"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		GatewayURL:         os.Getenv("GATEWAY_URL"),
		GatewaySecret:      os.Getenv("GATEWAY_SECRET"),
		GatewayTimeout:     getEnvAsDuration("GATEWAY_TIMEOUT", 5*time.Second),
		GatewayMaxRetries:  getEnvAsInt("GATEWAY_MAX_RETRIES", 3),
		GatewayBaseDelay:   getEnvAsDuration("GATEWAY_BASE_DELAY", time.Second),
		DeliveryDelay:      getEnvAsDuration("DELIVERY_DELAY", time.Second),
		LowBatteryDebounce: getEnvAsDuration("LOW_BATTERY_DEBOUNCE", time.Hour),
		LocationMaxAge:     getEnvAsDuration("LOCATION_MAX_AGE", 5*time.Minute),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
