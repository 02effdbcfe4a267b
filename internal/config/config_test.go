package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "bolt", cfg.StoreDriver)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "manshu@123", cfg.AdminPassword)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 999, cfg.FreeShippingAbove)
	assert.Equal(t, 99, cfg.ShippingFee)
	assert.Equal(t, "https://wa.me", cfg.WhatsAppBaseURL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("SHIPPING_FEE", "49")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 49, cfg.ShippingFee)
	assert.Equal(t, int64(1024), cfg.UploadMaxBytes)
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "tomorrow")
	t.Setenv("FREE_SHIPPING_ABOVE", "lots")

	cfg := LoadConfig()

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 999, cfg.FreeShippingAbove)
}
