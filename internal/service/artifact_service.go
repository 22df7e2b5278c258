package service

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/pfdlens/pfdlens/internal/filestore"
	"github.com/pfdlens/pfdlens/internal/model"
)

// Artifact names the persisted renderings of one extraction: the structured
// dump and the standalone graph document.
type Artifact struct {
	JSONKey  string `json:"json_key"`
	GraphKey string `json:"graph_key"`
}

type ArtifactService struct {
	store filestore.Store
}

func NewArtifactService(store filestore.Store) *ArtifactService {
	return &ArtifactService{store: store}
}

func (s *ArtifactService) SaveExtraction(ctx context.Context, result *model.ExtractionResult, graphHTML string) (*Artifact, error) {
	dump, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	artifact := &Artifact{
		JSONKey:  id + ".json",
		GraphKey: id + ".html",
	}
	if err := s.store.Save(ctx, artifact.JSONKey, filestore.BytesReader(dump), int64(len(dump))); err != nil {
		return nil, err
	}
	htmlData := []byte(graphHTML)
	if err := s.store.Save(ctx, artifact.GraphKey, filestore.BytesReader(htmlData), int64(len(htmlData))); err != nil {
		return nil, err
	}
	return artifact, nil
}

func (s *ArtifactService) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.store.Open(ctx, key)
}

func (s *ArtifactService) URL(key, baseURL string) string {
	return s.store.URL(key, baseURL)
}

func (s *ArtifactService) StoreType() string {
	return s.store.Type()
}
