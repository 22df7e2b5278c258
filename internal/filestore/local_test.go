package filestore_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pfdlens/pfdlens/internal/config"
	"github.com/pfdlens/pfdlens/internal/filestore"
)

func newLocalStore(t *testing.T) filestore.Store {
	t.Helper()
	store, err := filestore.New(config.ArtifactStore{
		Type: "local",
		Data: map[string]interface{}{"dir": t.TempDir()},
	})
	require.NoError(t, err)
	return store
}

func TestLocalStoreSaveOpen(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	payload := []byte(`{"equipment":[]}`)
	require.NoError(t, store.Save(ctx, "a.json", filestore.BytesReader(payload), int64(len(payload))))

	file, err := store.Open(ctx, "a.json")
	require.NoError(t, err)
	defer file.Close()
	data, err := io.ReadAll(file)
	require.NoError(t, err)
	require.Equal(t, payload, data)
}

func TestLocalStoreRejectsPathKeys(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	require.Error(t, store.Save(ctx, "../escape.json", filestore.BytesReader(nil), 0))
	_, err := store.Open(ctx, "sub/key.json")
	require.Error(t, err)
}

func TestLocalStoreListDelete(t *testing.T) {
	store := newLocalStore(t)
	ctx := context.Background()

	purger, ok := store.(filestore.Purger)
	require.True(t, ok)

	objects, err := purger.List(ctx)
	require.NoError(t, err)
	require.Empty(t, objects)

	require.NoError(t, store.Save(ctx, "a.json", filestore.BytesReader([]byte("{}")), 2))
	objects, err = purger.List(ctx)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	require.Equal(t, "a.json", objects[0].Key)

	require.NoError(t, purger.Delete(ctx, "a.json"))
	objects, err = purger.List(ctx)
	require.NoError(t, err)
	require.Empty(t, objects)
}

func TestLocalStoreURL(t *testing.T) {
	store := newLocalStore(t)
	require.Equal(t, "http://example.com/api/v1/artifacts/a.json", store.URL("a.json", "http://example.com/"))
}

func TestNewUnknownType(t *testing.T) {
	_, err := filestore.New(config.ArtifactStore{Type: "ftp"})
	require.Error(t, err)
}
