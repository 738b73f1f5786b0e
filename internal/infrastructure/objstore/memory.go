package objstore

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// MemoryObjectStore ObjectStore en memoria para pruebas y ejecución local sin MinIO.
type MemoryObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	PutErr  error
	GetErr  error
}

// NewMemoryObjectStore crea un almacén vacío.
func NewMemoryObjectStore() *MemoryObjectStore {
	return &MemoryObjectStore{objects: make(map[string][]byte)}
}

// Put guarda una copia del contenido.
func (m *MemoryObjectStore) Put(_ context.Context, bucket, obj string, reader io.Reader, _ int64, _ string) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[bucket+"/"+obj] = data
	return nil
}

// Get devuelve el contenido o ErrObjectNotFound.
func (m *MemoryObjectStore) Get(_ context.Context, bucket, obj string) (io.ReadCloser, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[bucket+"/"+obj]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(bytes.Clone(data))), nil
}
