package handler_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xxxsen/common/webapi"

	"github.com/pfdlens/pfdlens/internal/ai"
	"github.com/pfdlens/pfdlens/internal/config"
	"github.com/pfdlens/pfdlens/internal/filestore"
	"github.com/pfdlens/pfdlens/internal/handler"
	"github.com/pfdlens/pfdlens/internal/middleware"
	"github.com/pfdlens/pfdlens/internal/service"
)

const sampleName = "Process Diagram 1"

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

const fixtureReply = `{
  "equipment": [
    {"id": "E1", "type": "Reactor"},
    {"id": "E2", "type": "Pump"}
  ],
  "connections": [
    {"from_id": "E1", "from_type": "Reactor", "to_id": "E2", "to_type": "Pump"}
  ]
}`

type stubExtractor struct {
	reply string
	err   error
	calls int
}

func (s *stubExtractor) Extract(ctx context.Context, req ai.ExtractRequest) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func setupRouter(t *testing.T, extractor ai.IExtractor) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sampleDir := t.TempDir()
	samplePath := filepath.Join(sampleDir, "pfd.png")
	require.NoError(t, os.WriteFile(samplePath, pngBytes, 0o644))

	store, err := filestore.New(config.ArtifactStore{
		Type: "local",
		Data: map[string]interface{}{"dir": t.TempDir()},
	})
	require.NoError(t, err)

	catalogService := service.NewCatalogService([]config.SampleConfig{
		{Name: sampleName, Path: samplePath},
	})
	extractionService := service.NewExtractionService(extractor, time.Minute)
	artifactService := service.NewArtifactService(store)

	deps := handler.RouterDeps{
		Page:      handler.NewPageHandler(),
		Samples:   handler.NewSampleHandler(catalogService),
		Analyze:   handler.NewAnalyzeHandler(catalogService, extractionService, artifactService),
		Artifacts: handler.NewArtifactHandler(artifactService),
	}

	engine, err := webapi.NewEngine(
		"/api/v1",
		"",
		webapi.WithRegister(func(group *gin.RouterGroup) {
			handler.RegisterRoutes(group, deps)
		}),
		webapi.WithExtraMiddlewares(
			middleware.RequestID(),
			middleware.CORS(nil),
		),
	)
	require.NoError(t, err)
	return engine
}
