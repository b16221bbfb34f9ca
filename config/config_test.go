package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "sk_test_123", cfg.Stripe.APIKey)
	assert.Equal(t, "usd", cfg.Stripe.Currency)
	assert.Equal(t, int64(10), cfg.Stripe.OrdersPageLimit)
	assert.Equal(t, "http://localhost:3000/success", cfg.Checkout.SuccessURL)
	assert.Equal(t, "http://localhost:3000/cancel", cfg.Checkout.CancelURL)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Events.Enabled)
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("PORT", "9090")
	t.Setenv("ORDERS_PAGE_LIMIT", "25")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com, https://admin.example.com")
	t.Setenv("ENABLE_EVENTS", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, int64(25), cfg.Stripe.OrdersPageLimit)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.Brokers)
}

func TestLoadIgnoresInvalidInt(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("ORDERS_PAGE_LIMIT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(10), cfg.Stripe.OrdersPageLimit)
}
