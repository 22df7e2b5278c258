package job

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/pfdlens/pfdlens/internal/filestore"
)

// ArtifactCleanupJob removes rendered extraction artifacts once they age out.
// Stores without purge support (s3 behind a lifecycle rule) are left alone.
type ArtifactCleanupJob struct {
	store  filestore.Store
	maxAge time.Duration
}

func NewArtifactCleanupJob(store filestore.Store, maxAge time.Duration) *ArtifactCleanupJob {
	return &ArtifactCleanupJob{store: store, maxAge: maxAge}
}

func (j *ArtifactCleanupJob) Name() string {
	return "artifact_cleanup"
}

func (j *ArtifactCleanupJob) Run(ctx context.Context) error {
	purger, ok := j.store.(filestore.Purger)
	if !ok {
		return nil
	}
	maxAge := j.maxAge
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}
	cutoff := time.Now().Add(-maxAge)
	objects, err := purger.List(ctx)
	if err != nil {
		return err
	}
	removed := 0
	for _, obj := range objects {
		if obj.Mtime.After(cutoff) {
			continue
		}
		if err := purger.Delete(ctx, obj.Key); err != nil {
			logutil.GetLogger(ctx).Warn("delete artifact failed", zap.String("key", obj.Key), zap.Error(err))
			continue
		}
		removed++
	}
	if removed > 0 {
		logutil.GetLogger(ctx).Info("artifacts cleaned", zap.Int("removed", removed))
	}
	return nil
}
