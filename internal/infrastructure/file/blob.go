// Package file guarda el snapshot de la libreta en un archivo JSON local.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jhoicas/Khatabook-api/internal/infrastructure/snapshot"
)

var _ snapshot.Blob = (*Blob)(nil)

// Blob archivo <dir>/<namespace>.json. La escritura es atómica (temporal + rename).
type Blob struct {
	path string
}

// NewBlob construye el blob; crea dir si no existe.
func NewBlob(dir, namespace string) (*Blob, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio %s: %w", dir, err)
	}
	return &Blob{path: filepath.Join(dir, namespace+".json")}, nil
}

// Path ruta del archivo del snapshot.
func (b *Blob) Path() string { return b.path }

// Read lee el archivo; snapshot.ErrNoSnapshot si no existe.
func (b *Blob) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, snapshot.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", b.path, err)
	}
	return data, nil
}

// Write reemplaza el archivo completo.
func (b *Blob) Write(_ context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(b.path), filepath.Base(b.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("reemplazar %s: %w", b.path, err)
	}
	return nil
}
