package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("GATEWAY_KEY_ID", "rzp_test_key")
	t.Setenv("JWT_SECRET", "backend-secret")

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, "INR", conf.Gateway.Currency)
	assert.Equal(t, 10*time.Second, conf.Backend.Timeout)
	assert.False(t, conf.Kafka.Enabled)
	assert.False(t, conf.Postgres.Enabled)
	assert.True(t, conf.RateLimit.Enabled)
	assert.Equal(t, 3, conf.RateLimit.Submit.Burst)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name:    "missing gateway key",
			env:     map[string]string{"GATEWAY_KEY_ID": ""},
			wantErr: true,
		},
		{
			name: "invalid currency",
			env: map[string]string{
				"GATEWAY_KEY_ID":   "rzp_test_key",
				"GATEWAY_CURRENCY": "rupee",
			},
			wantErr: true,
		},
		{
			name: "journal enabled without credentials",
			env: map[string]string{
				"GATEWAY_KEY_ID":  "rzp_test_key",
				"JOURNAL_ENABLED": "true",
			},
			wantErr: true,
		},
		{
			name: "journal enabled with credentials",
			env: map[string]string{
				"GATEWAY_KEY_ID":    "rzp_test_key",
				"JOURNAL_ENABLED":   "true",
				"POSTGRES_USER":     "checkout",
				"POSTGRES_PASSWORD": "secret",
			},
		},
		{
			name: "kafka enabled",
			env: map[string]string{
				"GATEWAY_KEY_ID": "rzp_test_key",
				"KAFKA_ENABLED":  "true",
				"KAFKA_BROKERS":  "kafka:9092,kafka2:9092",
			},
		},
		{
			name: "missing jwt secret",
			env: map[string]string{
				"GATEWAY_KEY_ID": "rzp_test_key",
				"JWT_SECRET":     "",
			},
			wantErr: true,
		},
		{
			name: "rate limit without rps",
			env: map[string]string{
				"GATEWAY_KEY_ID": "rzp_test_key",
				"RATE_LIMIT_RPS": "0",
			},
			wantErr: true,
		},
		{
			name: "rate limit disabled",
			env: map[string]string{
				"GATEWAY_KEY_ID":     "rzp_test_key",
				"RATE_LIMIT_ENABLED": "false",
				"RATE_LIMIT_RPS":     "0",
			},
		},
		{
			name: "unknown env",
			env: map[string]string{
				"GATEWAY_KEY_ID": "rzp_test_key",
				"ENV":            "dev",
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "backend-secret")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := config.New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
