// Package redis guarda el snapshot de la libreta como una clave de Redis.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/Khatabook-api/internal/infrastructure/snapshot"
	"github.com/jhoicas/Khatabook-api/pkg/config"
)

var _ snapshot.Blob = (*Blob)(nil)

// Blob valor de la clave namespace (sin expiración).
type Blob struct {
	client goredis.UniversalClient
	key    string
}

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewBlob construye el adaptador sobre un cliente existente.
func NewBlob(client goredis.UniversalClient, namespace string) *Blob {
	return &Blob{client: client, key: namespace}
}

// Read GET de la clave; snapshot.ErrNoSnapshot si no existe.
func (b *Blob) Read(ctx context.Context) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, snapshot.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", b.key, err)
	}
	return data, nil
}

// Write SET de la clave completa.
func (b *Blob) Write(ctx context.Context, data []byte) error {
	if err := b.client.Set(ctx, b.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", b.key, err)
	}
	return nil
}
