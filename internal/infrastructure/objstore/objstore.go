// Package objstore guarda el snapshot de la libreta como un objeto en un bucket S3/MinIO.
package objstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/jhoicas/Khatabook-api/internal/infrastructure/snapshot"
	"github.com/jhoicas/Khatabook-api/pkg/config"
)

// ErrObjectNotFound lo devuelve ObjectStore.Get si el objeto no existe.
var ErrObjectNotFound = errors.New("objeto inexistente")

// ObjectStore operaciones mínimas sobre objetos.
type ObjectStore interface {
	Put(ctx context.Context, bucket, obj string, reader io.Reader, size int64, contentType string) error
	Get(ctx context.Context, bucket, obj string) (io.ReadCloser, error)
}

// MinioObjectStore implementa ObjectStore con minio-go.
type MinioObjectStore struct {
	client *minio.Client
}

// NewMinioClient crea el cliente y asegura que el bucket exista.
func NewMinioClient(ctx context.Context, cfg config.MinioConfig) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente minio: %w", err)
	}
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("verificar bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("crear bucket %s: %w", cfg.Bucket, err)
		}
	}
	return client, nil
}

// NewMinioObjectStore construye el adaptador.
func NewMinioObjectStore(client *minio.Client) *MinioObjectStore {
	return &MinioObjectStore{client: client}
}

// Put sube el objeto completo.
func (s *MinioObjectStore) Put(ctx context.Context, bucket, obj string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, bucket, obj, reader, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

// Get abre el objeto; ErrObjectNotFound si no existe.
func (s *MinioObjectStore) Get(ctx context.Context, bucket, obj string) (io.ReadCloser, error) {
	object, err := s.client.GetObject(ctx, bucket, obj, minio.GetObjectOptions{})
	if err != nil {
		return nil, mapMinioError(err)
	}
	// GetObject es perezoso: Stat expone el error real.
	if _, err := object.Stat(); err != nil {
		object.Close()
		return nil, mapMinioError(err)
	}
	return object, nil
}

func mapMinioError(err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrObjectNotFound
	}
	return err
}

var _ snapshot.Blob = (*Blob)(nil)

// Blob objeto <namespace>.json dentro del bucket.
type Blob struct {
	store  ObjectStore
	bucket string
	object string
}

// NewBlob construye el blob.
func NewBlob(store ObjectStore, bucket, namespace string) *Blob {
	return &Blob{store: store, bucket: bucket, object: namespace + ".json"}
}

// Read descarga el objeto; snapshot.ErrNoSnapshot si no existe.
func (b *Blob) Read(ctx context.Context) ([]byte, error) {
	rc, err := b.store.Get(ctx, b.bucket, b.object)
	if errors.Is(err, ErrObjectNotFound) {
		return nil, snapshot.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("descargar %s/%s: %w", b.bucket, b.object, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("leer %s/%s: %w", b.bucket, b.object, err)
	}
	return data, nil
}

// Write sube el snapshot completo.
func (b *Blob) Write(ctx context.Context, data []byte) error {
	if err := b.store.Put(ctx, b.bucket, b.object, bytes.NewReader(data), int64(len(data)), "application/json"); err != nil {
		return fmt.Errorf("subir %s/%s: %w", b.bucket, b.object, err)
	}
	return nil
}
