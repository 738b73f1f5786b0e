package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Khatabook-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StoreFile, cfg.Ledger.Store)
	assert.Equal(t, "kb_customers", cfg.Ledger.Namespace)
	assert.Equal(t, "02/01/2006, 15:04:05", cfg.Ledger.DateLayout)
	assert.Equal(t, "INR", cfg.Display.Currency)
	assert.Equal(t, "IN", cfg.Display.PhoneRegion)
	assert.Equal(t, "utf-8", cfg.Export.Charset)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LEDGER_STORE", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DISPLAY_CURRENCY", "usd")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StoreRedis, cfg.Ledger.Store)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "USD", cfg.Display.Currency)
	assert.True(t, cfg.Minio.UseSSL)
}

func TestLoad_InvalidStore(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LEDGER_STORE", "localstorage")

	_, err := config.Load()
	assert.ErrorContains(t, err, "LEDGER_STORE")
}

func TestDBConfig_DSNEscapesPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "kb", Password: "p@ss:w/rd", DBName: "khatabook", SSLMode: "disable"}
	assert.Equal(t, "postgres://kb:p%40ss%3Aw%2Frd@db:5432/khatabook?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
