package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	CatalogPath string

	// StorageBackend selects the cart snapshot store: memory, file or redis.
	StorageBackend string
	StorageDir     string
	RedisAddr      string
	RedisDB        int

	ToastTTL time.Duration
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		HTTPPort: getEnvInt("HTTP_PORT", 8080),

		CatalogPath: getEnv("CATALOG_PATH", "products.json"),

		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		StorageDir:     getEnv("STORAGE_DIR", ".storefront"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),

		ToastTTL: time.Duration(getEnvInt("TOAST_TTL_MS", 3000)) * time.Millisecond,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
