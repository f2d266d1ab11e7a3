package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"managehotel/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "root", cfg.DB.User)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.Equal(t, "managehotel", cfg.DB.Name)
	assert.Equal(t, 12, cfg.Auth.TokenTTLHours)
}

// Bare PORT and USER are set on practically every host. They must only
// reach Server.Port (the conventional alias), never the database settings.
func TestLoad_HostVariablesDoNotLeakIntoDB(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("USER", "deploybot")
	t.Setenv("HOST", "worker-7")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "root", cfg.DB.User)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.Equal(t, "127.0.0.1", cfg.DB.Host)
}

func TestLoad_PrefixedVariables(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DB_USER", "hotel")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("AUTH_JWT_SECRET", "prod-secret")
	t.Setenv("VNPAY_HASH_SECRET", "prod-hash")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "hotel", cfg.DB.User)
	assert.Equal(t, "3307", cfg.DB.Port)
	assert.Equal(t, "prod-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "prod-hash", cfg.VNPay.HashSecret)
}
