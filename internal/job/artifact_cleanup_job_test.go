package job_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pfdlens/pfdlens/internal/config"
	"github.com/pfdlens/pfdlens/internal/filestore"
	"github.com/pfdlens/pfdlens/internal/job"
)

func TestArtifactCleanupRemovesOldObjects(t *testing.T) {
	dir := t.TempDir()
	store, err := filestore.New(config.ArtifactStore{
		Type: "local",
		Data: map[string]interface{}{"dir": dir},
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "old.json", filestore.BytesReader([]byte("{}")), 2))
	require.NoError(t, store.Save(ctx, "new.json", filestore.BytesReader([]byte("{}")), 2))

	oldTime := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old.json"), oldTime, oldTime))

	cleanup := job.NewArtifactCleanupJob(store, 24*time.Hour)
	require.Equal(t, "artifact_cleanup", cleanup.Name())
	require.NoError(t, cleanup.Run(ctx))

	_, err = os.Stat(filepath.Join(dir, "old.json"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "new.json"))
	require.NoError(t, err)
}

type noPurgeStore struct {
	filestore.Store
}

func TestArtifactCleanupSkipsNonPurgeable(t *testing.T) {
	cleanup := job.NewArtifactCleanupJob(noPurgeStore{}, time.Hour)
	require.NoError(t, cleanup.Run(context.Background()))
}
