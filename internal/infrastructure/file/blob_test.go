package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Khatabook-api/internal/infrastructure/file"
	"github.com/jhoicas/Khatabook-api/internal/infrastructure/snapshot"
)

func TestBlob_ReadMissing(t *testing.T) {
	b, err := file.NewBlob(t.TempDir(), "kb_customers")
	require.NoError(t, err)

	_, err = b.Read(context.Background())
	assert.ErrorIs(t, err, snapshot.ErrNoSnapshot)
}

func TestBlob_WriteRead(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested")
	b, err := file.NewBlob(dir, "kb_customers")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "kb_customers.json"), b.Path())

	require.NoError(t, b.Write(ctx, []byte(`[1]`)))
	require.NoError(t, b.Write(ctx, []byte(`[]`)))

	got, err := b.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no deben quedar temporales")
}
