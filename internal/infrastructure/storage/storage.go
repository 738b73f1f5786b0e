// Package storage elige el backend del snapshot según LEDGER_STORE.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Khatabook-api/internal/domain/repository"
	"github.com/jhoicas/Khatabook-api/internal/infrastructure/file"
	"github.com/jhoicas/Khatabook-api/internal/infrastructure/objstore"
	"github.com/jhoicas/Khatabook-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Khatabook-api/internal/infrastructure/redis"
	"github.com/jhoicas/Khatabook-api/internal/infrastructure/snapshot"
	"github.com/jhoicas/Khatabook-api/pkg/config"
)

// Open construye el repository.LedgerStore configurado. closeFn libera las conexiones abiertas.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.LedgerStore, func(), error) {
	ns := cfg.Ledger.Namespace
	log = log.With().Str("store", cfg.Ledger.Store).Str("namespace", ns).Logger()
	noop := func() {}

	switch cfg.Ledger.Store {
	case config.StoreFile:
		blob, err := file.NewBlob(cfg.Ledger.Dir, ns)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", blob.Path()).Msg("snapshot en archivo")
		return snapshot.NewStore(blob, log), noop, nil

	case config.StoreRedis:
		client, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("snapshot en redis")
		return snapshot.NewStore(redis.NewBlob(client, ns), log), func() { _ = client.Close() }, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Msg("snapshot en postgres")
		return postgres.NewSnapshotRepository(pool, ns, log), pool.Close, nil

	case config.StoreMinio:
		client, err := objstore.NewMinioClient(ctx, cfg.Minio)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("endpoint", cfg.Minio.Endpoint).Str("bucket", cfg.Minio.Bucket).Msg("snapshot en minio")
		blob := objstore.NewBlob(objstore.NewMinioObjectStore(client), cfg.Minio.Bucket, ns)
		return snapshot.NewStore(blob, log), noop, nil

	default:
		return nil, nil, fmt.Errorf("LEDGER_STORE desconocido: %q", cfg.Ledger.Store)
	}
}
