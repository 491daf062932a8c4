package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port         string
	APIBaseURL   string
	APITimeout   time.Duration // kept below PageLockTTL so a write cannot outlive its lock
	RedisAddr    string        // empty: in-process page locks
	KafkaBroker  string        // empty: domain events are not published
	PageLockTTL  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load reads the environment. godotenv.Load is expected to have run in main.
func Load() Config {
	return Config{
		Port:         getEnv("PORT", "3000"),
		APIBaseURL:   strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:8000"), "/"),
		APITimeout:   getDuration("API_TIMEOUT", 20*time.Second),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		KafkaBroker:  os.Getenv("KAFKA_BROKER"),
		PageLockTTL:  getDuration("PAGE_LOCK_TTL", 30*time.Second),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return defaultValue
	}
	return d
}
