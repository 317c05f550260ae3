package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Cache drivers soportados para el caché local de pedidos.
const (
	CacheNone     = "none"
	CacheMemory   = "memory"
	CachePostgres = "postgres"
	CacheSQLite   = "sqlite"
	CacheRedis    = "redis"
)

type Config struct {
	Addr string

	LogLevel  string
	LogFormat string
	AppName   string

	// Caché local de pedidos confirmados.
	OrderCache     string
	DBDSN          string
	SQLitePath     string
	RedisAddr      string
	RedisPassword  string
	RedisOrdersKey string

	// Handoff a WhatsApp.
	WhatsAppBaseURL string
	WhatsAppNumber  string

	CatalogPath         string
	Timezone            string
	BookingWindowMonths int

	NotifyTTL  time.Duration
	SessionTTL time.Duration

	RateLimitRPS int
	CORSOrigins  []string
}

// Load lee .env (si existe) y luego el entorno:
// - PORT (default 8080)
// - LOG_LEVEL, LOG_FORMAT, APP_NAME
// - ORDER_CACHE=memory|postgres|sqlite|redis|none (default memory)
// - DB_DSN, SQLITE_PATH, REDIS_ADDR, REDIS_PASSWORD, REDIS_ORDERS_KEY
// - WHATSAPP_BASE_URL, WHATSAPP_NUMBER
// - CATALOG_PATH, TIMEZONE, BOOKING_WINDOW_MONTHS
// - NOTIFY_TTL, SESSION_TTL (duraciones Go, ej. 4s, 30m)
// - RATE_LIMIT_RPS, CORS_ORIGINS (CSV)
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv arma la config desde un lookup arbitrario (tests).
func FromEnv(getenv func(string) string) Config {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	addr := ":8080"
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		addr = ":" + v
	}

	cache := strings.ToLower(get("ORDER_CACHE", CacheMemory))
	// Compat: si hay DB_DSN y nadie eligió driver, usar Postgres.
	if strings.TrimSpace(getenv("ORDER_CACHE")) == "" && strings.TrimSpace(getenv("DB_DSN")) != "" {
		cache = CachePostgres
	}

	return Config{
		Addr: addr,

		LogLevel:  get("LOG_LEVEL", "info"),
		LogFormat: get("LOG_FORMAT", "text"),
		AppName:   get("APP_NAME", "petshop-orders"),

		OrderCache:     cache,
		DBDSN:          get("DB_DSN", ""),
		SQLitePath:     get("SQLITE_PATH", "petshop-orders.db"),
		RedisAddr:      get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  get("REDIS_PASSWORD", ""),
		RedisOrdersKey: get("REDIS_ORDERS_KEY", "petshopOrders"),

		WhatsAppBaseURL: get("WHATSAPP_BASE_URL", "https://wa.me"),
		WhatsAppNumber:  get("WHATSAPP_NUMBER", "5543984336883"),

		CatalogPath:         get("CATALOG_PATH", ""),
		Timezone:            get("TIMEZONE", "America/Sao_Paulo"),
		BookingWindowMonths: getInt(getenv, "BOOKING_WINDOW_MONTHS", 3),

		NotifyTTL:  getDuration(getenv, "NOTIFY_TTL", 4*time.Second),
		SessionTTL: getDuration(getenv, "SESSION_TTL", 30*time.Minute),

		RateLimitRPS: getInt(getenv, "RATE_LIMIT_RPS", 20),
		CORSOrigins:  splitCSV(get("CORS_ORIGINS", "*")),
	}
}

// Location resuelve Timezone; cae a UTC si no se puede cargar.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getInt(getenv func(string) string, key string, def int) int {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func getDuration(getenv func(string) string, key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
