package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "KAFKA_BROKERS", "BOOKING_SUBMIT_DELAY", "NOTIFIER_WORKERS", "STORAGE_BACKEND"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, []string{"kafka:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, time.Second, cfg.SubmitDelay)
	assert.Equal(t, 4, cfg.NotifierWorkers)
	assert.Equal(t, "redis", cfg.StorageBackend)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", " k1:9092, ,k2:9092 ")
	t.Setenv("BOOKING_SUBMIT_DELAY", "250ms")
	t.Setenv("NOTIFIER_WORKERS", "abc")
	t.Setenv("SHOP_TIMEZONE", "Not/AZone")

	cfg := Load()
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 250*time.Millisecond, cfg.SubmitDelay)
	assert.Equal(t, 4, cfg.NotifierWorkers)
	assert.Equal(t, time.UTC, cfg.Location())
}
