package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	c := FromEnv(envMap(nil))

	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, CacheMemory, c.OrderCache)
	assert.Equal(t, "https://wa.me", c.WhatsAppBaseURL)
	assert.Equal(t, "petshopOrders", c.RedisOrdersKey)
	assert.Equal(t, 3, c.BookingWindowMonths)
	assert.Equal(t, 4*time.Second, c.NotifyTTL)
	assert.Equal(t, 30*time.Minute, c.SessionTTL)
	assert.Equal(t, []string{"*"}, c.CORSOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	c := FromEnv(envMap(map[string]string{
		"PORT":                  "9090",
		"ORDER_CACHE":           "Redis",
		"DB_DSN":                "postgres://x",
		"BOOKING_WINDOW_MONTHS": "0",
		"NOTIFY_TTL":            "1500ms",
		"RATE_LIMIT_RPS":        "nope",
		"CORS_ORIGINS":          "https://a.example, ,https://b.example",
	}))

	assert.Equal(t, ":9090", c.Addr)
	assert.Equal(t, CacheRedis, c.OrderCache)
	assert.Equal(t, 0, c.BookingWindowMonths)
	assert.Equal(t, 1500*time.Millisecond, c.NotifyTTL)
	assert.Equal(t, 20, c.RateLimitRPS)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.CORSOrigins)
}

func TestFromEnv_DSNImpliesPostgres(t *testing.T) {
	c := FromEnv(envMap(map[string]string{"DB_DSN": "postgres://x"}))
	assert.Equal(t, CachePostgres, c.OrderCache)
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	c := Config{Timezone: "Not/AZone"}
	assert.Equal(t, time.UTC, c.Location())
}
