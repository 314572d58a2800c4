package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "handyman", cfg.Service)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, 10*time.Second, cfg.ShutdownGrace)
	require.NotEmpty(t, cfg.DatabaseDSN)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("HANDYMAN_LISTEN_ADDR", ":9999")
	t.Setenv("HANDYMAN_TOKEN_TTL_SEC", "3600")
	t.Setenv("HANDYMAN_SHUTDOWN_GRACE_SEC", "not-a-number")

	cfg := LoadConfig()

	require.Equal(t, ":9999", cfg.ListenAddr)
	require.Equal(t, time.Hour, cfg.TokenTTL)
	// Unparseable values fall back to the default.
	require.Equal(t, 10*time.Second, cfg.ShutdownGrace)
}

func TestValidate(t *testing.T) {
	valid := Config{
		SigningKeyPath: "/tmp/key.pem",
		DatabaseDSN:    "file:test.db",
		TokenTTL:       time.Hour,
	}
	require.NoError(t, valid.Validate())

	noKey := valid
	noKey.SigningKeyPath = ""
	require.Error(t, noKey.Validate())

	noDSN := valid
	noDSN.DatabaseDSN = ""
	require.Error(t, noDSN.Validate())

	badTTL := valid
	badTTL.TokenTTL = 0
	require.Error(t, badTTL.Validate())
}
