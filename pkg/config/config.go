package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort        int
	ShutdownTimeout time.Duration

	StoreAPIURL     string
	StoreAPITimeout time.Duration

	SessionBackend string
	SessionTTL     time.Duration
	SessionCookie  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		HTTPPort:        getEnvInt("HTTP_PORT", 8080),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		StoreAPIURL:     getEnv("STORE_API_URL", "http://localhost:5000"),
		StoreAPITimeout: getEnvDuration("STORE_API_TIMEOUT", 15*time.Second),

		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
		SessionTTL:     getEnvDuration("SESSION_TTL", 24*time.Hour),
		SessionCookie:  getEnv("SESSION_COOKIE", "storefront_session"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
	}
}

func (c Config) SecureCookies() bool {
	return c.AppEnv != "dev" && c.AppEnv != "test"
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

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}
