package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Khatabook-api/internal/application/ledger"
	"github.com/jhoicas/Khatabook-api/internal/infrastructure/storage"
	"github.com/jhoicas/Khatabook-api/pkg/config"
)

func TestOpen_File(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := &config.Config{Ledger: config.LedgerConfig{Store: config.StoreFile, Namespace: "kb_customers", Dir: dir}}

	store, closeFn, err := storage.Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeFn()

	l, err := ledger.Open(ctx, store)
	require.NoError(t, err)
	_, err = l.AddCustomer(ctx, "Asha", "")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "kb_customers.json"))
	assert.NoError(t, err)
}

func TestOpen_Redis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	ctx := context.Background()
	cfg := &config.Config{
		Ledger: config.LedgerConfig{Store: config.StoreRedis, Namespace: "kb_customers"},
		Redis:  config.RedisConfig{Addr: mr.Addr()},
	}
	store, closeFn, err := storage.Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer closeFn()

	l, err := ledger.Open(ctx, store)
	require.NoError(t, err)
	_, err = l.AddCustomer(ctx, "Asha", "")
	require.NoError(t, err)
	assert.True(t, mr.Exists("kb_customers"))
}

func TestOpen_Unknown(t *testing.T) {
	cfg := &config.Config{Ledger: config.LedgerConfig{Store: "localstorage", Namespace: "kb_customers"}}
	_, _, err := storage.Open(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}
